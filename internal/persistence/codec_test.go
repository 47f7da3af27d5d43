package persistence

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/validation"
)

var loadTime = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func sampleState() domain.State {
	st := domain.NewState(time.Date(2024, 5, 30, 9, 15, 0, 0, time.UTC))
	st.Currency = domain.Coins(1_234_567)
	st.LifetimeCurrency = domain.Coins(9_876_543)
	st.LifetimeCurrencyPrestige = domain.Coins(9_876_543)
	st.ClickCount = 4321
	st.Upgrades = map[string]int{domain.UpgradeClickDouble: 4, domain.UpgradeFactory: 2}
	st.CompletedQuests = []string{"q_click_50", "q_time_60"}
	st.UnlockedAchievements = []string{"a_click_1", "a_click_100", "a_prestige_1"}
	st.PrestigeLevel = 3
	st.SkillPoints = 1
	st.Skills = map[string]int{domain.SkillRoot: 1, domain.SkillClickBase: 1}
	st.Language = domain.LanguageSpanish
	st.LastSaveTime = time.Date(2024, 6, 1, 9, 59, 58, 123_000_000, time.UTC)
	return st
}

func TestRoundTrip(t *testing.T) {
	cat := catalog.MustDefault()

	for name, st := range map[string]domain.State{
		"fresh":  domain.NewState(loadTime),
		"played": sampleState(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(st)
			require.NoError(t, err)

			got, report, err := Decode(data, cat, loadTime)
			require.NoError(t, err)
			assert.Equal(t, st, got)
			assert.Empty(t, report.Missing)
			assert.Empty(t, report.Invalid)
			assert.False(t, report.SkillPointsRebuilt)
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	data, err := Encode(sampleState())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, 1234.567, doc["currency"])
	assert.Equal(t, float64(4321), doc["clickCount"])
	assert.Equal(t, "es", doc["language"])
	assert.Equal(t, float64(time.Date(2024, 5, 30, 9, 15, 0, 0, time.UTC).UnixMilli()), doc["startTime"])
	assert.Contains(t, doc, "prestigeCurrency")
	assert.Contains(t, doc, "lastSaveTime")
}

func TestEncode_MatchesSaveSchema(t *testing.T) {
	v, err := validation.NewSaveValidator()
	require.NoError(t, err)

	for name, st := range map[string]domain.State{
		"fresh":  domain.NewState(loadTime),
		"played": sampleState(),
	} {
		t.Run(name, func(t *testing.T) {
			data, err := Encode(st)
			require.NoError(t, err)
			assert.NoError(t, v.ValidateBytes(data))
		})
	}
}

func TestDecode_OriginalSave(t *testing.T) {
	// shape written by the browser build before skills existed
	raw := `{
		"currency": 512.75,
		"lifetimeCurrency": 20000,
		"lifetimeCurrencyPrestige": 20000,
		"clickCount": 800,
		"startTime": 1717000000000,
		"upgrades": {"click_double": 3, "auto_bot": 2},
		"completedQuests": ["q_click_50"],
		"unlockedAchievements": ["a_click_1", "a_click_100", "a_prestige_1"],
		"prestigeLevel": 2,
		"prestigeCurrency": 0,
		"lastSaveTime": 1717000100000,
		"language": "en"
	}`

	st, report, err := Decode([]byte(raw), catalog.MustDefault(), loadTime)
	require.NoError(t, err)

	assert.Equal(t, domain.Coins(512_750), st.Currency)
	assert.Equal(t, domain.WholeCoins(20000), st.LifetimeCurrency)
	assert.Equal(t, int64(800), st.ClickCount)
	assert.Equal(t, time.UnixMilli(1717000000000).UTC(), st.StartTime)
	assert.Equal(t, 3, st.UpgradeLevel(domain.UpgradeClickDouble))
	assert.Equal(t, 2, st.PrestigeLevel)
	assert.Equal(t, domain.LanguageEnglish, st.Language)
	assert.Empty(t, st.Skills)
	assert.Equal(t, 2, st.SkillPoints, "all prestige levels become unspent points")
	assert.True(t, report.SkillPointsRebuilt)
	assert.ElementsMatch(t, []string{keySkillPoints, keySkills}, report.Missing)
}

func TestDecode_Sanitizes(t *testing.T) {
	cat := catalog.MustDefault()

	tests := []struct {
		name    string
		raw     string
		check   func(t *testing.T, st domain.State)
		invalid []string
	}{
		{
			name: "non-numbers become zero",
			raw:  `{"currency":"lots","lifetimeCurrency":null,"prestigeLevel":true,"clickCount":[1],"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Zero(t, st.Currency)
				assert.Zero(t, st.LifetimeCurrency)
				assert.Zero(t, st.PrestigeLevel)
				assert.Zero(t, st.ClickCount)
			},
			invalid: []string{keyCurrency, keyPrestigeLevel, keyClickCount},
		},
		{
			name: "negatives clamp to zero",
			raw:  `{"currency":-50,"clickCount":-1,"skillPoints":-3}`,
			check: func(t *testing.T, st domain.State) {
				assert.Zero(t, st.Currency)
				assert.Zero(t, st.ClickCount)
				assert.Zero(t, st.SkillPoints)
			},
			invalid: []string{keyCurrency, keyClickCount, keySkillPoints},
		},
		{
			name: "extreme exponents saturate without rescaling",
			raw:  `{"currency":1e50000000,"lifetimeCurrency":1e999999999,"clickCount":1e-999999999,"prestigeLevel":-1e50000000,"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, domain.MaxCoins, st.Currency)
				assert.Equal(t, domain.MaxCoins, st.LifetimeCurrency)
				assert.Zero(t, st.ClickCount)
				assert.Zero(t, st.PrestigeLevel)
			},
			invalid: []string{keyCurrency, keyLifetimeCurrency, keyClickCount, keyPrestigeLevel},
		},
		{
			name: "extreme level entries clamp",
			raw:  `{"upgrades":{"auto_bot":1e999999999},"skills":{"s_root":1e50000000},"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, math.MaxInt32, st.UpgradeLevel(domain.UpgradeAutoBot))
				assert.Equal(t, 1, st.SkillLevel(domain.SkillRoot))
			},
			invalid: []string{
				keyUpgrades + "." + domain.UpgradeAutoBot,
				keySkills + "." + domain.SkillRoot,
				keySkills + "." + domain.SkillRoot,
			},
		},
		{
			name: "lifetime covers currency",
			raw:  `{"currency":500,"lifetimeCurrency":100,"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, domain.WholeCoins(500), st.LifetimeCurrency)
			},
		},
		{
			name: "skill levels clamp to max",
			raw:  `{"skills":{"s_root":4,"s_click_base":2,"s_retired":7},"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, 1, st.SkillLevel(domain.SkillRoot))
				assert.Equal(t, 2, st.SkillLevel(domain.SkillClickBase))
				assert.Equal(t, 7, st.SkillLevel("s_retired"), "unknown nodes are kept")
			},
			invalid: []string{keySkills + "." + domain.SkillRoot},
		},
		{
			name: "bad map entries are dropped",
			raw:  `{"upgrades":{"auto_bot":"2","factory":1.9,"mine":-1,"click_mega":0},"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, map[string]int{domain.UpgradeFactory: 1}, st.Upgrades)
			},
			invalid: []string{keyUpgrades + ".auto_bot", keyUpgrades + ".mine"},
		},
		{
			name: "wrong map type",
			raw:  `{"upgrades":[1,2],"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Empty(t, st.Upgrades)
				assert.NotNil(t, st.Upgrades)
			},
			invalid: []string{keyUpgrades},
		},
		{
			name: "sets drop duplicates and non-strings",
			raw:  `{"unlockedAchievements":["a_click_1",3,"a_click_1","","a_upg_1"],"completedQuests":"q_click_50","skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, []string{"a_click_1", "a_upg_1"}, st.UnlockedAchievements)
				assert.Equal(t, []string{}, st.CompletedQuests)
			},
			invalid: []string{keyUnlockedAchievements, keyUnlockedAchievements, keyCompletedQuests},
		},
		{
			name: "unsupported language",
			raw:  `{"language":"fr","skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, domain.LanguagePortuguese, st.Language)
			},
			invalid: []string{keyLanguage},
		},
		{
			name: "bad timestamps use load time",
			raw:  `{"startTime":"yesterday","lastSaveTime":-5,"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, loadTime, st.StartTime)
				assert.Equal(t, loadTime, st.LastSaveTime)
			},
			invalid: []string{keyStartTime, keyLastSaveTime},
		},
		{
			name: "unknown keys are ignored",
			raw:  `{"theme":"dark","prestigeCurrency":9,"skillPoints":0}`,
			check: func(t *testing.T, st domain.State) {
				assert.Equal(t, domain.NewState(loadTime), st)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, report, err := Decode([]byte(tt.raw), cat, loadTime)
			require.NoError(t, err)
			tt.check(t, st)
			assert.ElementsMatch(t, tt.invalid, report.Invalid)
		})
	}
}

func TestDecode_RebuildsSkillPoints(t *testing.T) {
	cat := catalog.MustDefault()

	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"no skills", `{"prestigeLevel":4}`, 4},
		{"spent on known nodes", `{"prestigeLevel":6,"skills":{"s_root":1,"s_prestige_luck":2}}`, 1},
		{"unknown nodes cost one", `{"prestigeLevel":3,"skills":{"s_root":1,"s_old":1}}`, 1},
		{"never negative", `{"prestigeLevel":1,"skills":{"s_root":1,"s_click_base":3}}`, 0},
		{"string is not a number", `{"prestigeLevel":2,"skillPoints":"9"}`, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, report, err := Decode([]byte(tt.raw), cat, loadTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, st.SkillPoints)
			assert.True(t, report.SkillPointsRebuilt)
		})
	}
}

func TestDecode_Corrupt(t *testing.T) {
	for _, raw := range []string{``, `not json`, `[1,2,3]`, `null`, `"save"`} {
		t.Run(raw, func(t *testing.T) {
			st, _, err := Decode([]byte(raw), catalog.MustDefault(), loadTime)
			require.ErrorIs(t, err, domain.ErrCorruptSave)
			assert.Equal(t, domain.NewState(loadTime), st)
		})
	}
}
