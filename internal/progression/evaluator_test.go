package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

func TestProgress(t *testing.T) {
	st := newTestState()
	st.ClickCount = 42
	st.LifetimeCurrency = domain.WholeCoins(1234) + 999
	st.Upgrades[domain.UpgradeClickDouble] = 3
	st.Upgrades[domain.UpgradeAutoBot] = 2
	st.CompletedQuests = []string{"q1", "q2"}
	st.UnlockedAchievements = []string{"a1"}
	st.PrestigeLevel = 4
	now := st.StartTime.Add(90*time.Second + 900*time.Millisecond)

	tests := []struct {
		name    string
		pred    domain.PredicateType
		upgrade string
		want    int64
	}{
		{"click count", domain.PredicateClickCount, "", 42},
		{"currency total floors", domain.PredicateCurrencyTotal, "", 1234},
		{"currency accumulate", domain.PredicateCurrencyAccumulate, "", 1234},
		{"upgrade count sums levels", domain.PredicateUpgradeCount, "", 5},
		{"upgrades buy sums levels", domain.PredicateUpgradesBuy, "", 5},
		{"upgrades buy with override", domain.PredicateUpgradesBuy, domain.UpgradeClickDouble, 3},
		{"play time floors seconds", domain.PredicatePlayTime, "", 90},
		{"quest count", domain.PredicateQuestCount, "", 2},
		{"prestige count", domain.PredicatePrestigeCount, "", 4},
		{"auto count", domain.PredicateAutoCount, domain.UpgradeAutoBot, 2},
		{"auto count unowned", domain.PredicateAutoCount, domain.UpgradeMine, 0},
		{"achievements count", domain.PredicateAchievementsCount, "", 1},
		{"unknown predicate", "nope", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Progress(tt.pred, tt.upgrade, st, now))
		})
	}
}

func TestEvaluateAchievements(t *testing.T) {
	cat := catalog.MustDefault()

	t.Run("fresh state unlocks nothing", func(t *testing.T) {
		st := newTestState()
		assert.Empty(t, EvaluateAchievements(st, cat, st.StartTime))
	})

	t.Run("first click", func(t *testing.T) {
		st := newTestState()
		st.ClickCount = 1
		assert.Equal(t, []string{"a_click_1"}, EvaluateAchievements(st, cat, st.StartTime))
	})

	t.Run("already unlocked are skipped", func(t *testing.T) {
		st := newTestState()
		st.ClickCount = 1
		st.UnlockedAchievements = []string{"a_click_1"}
		assert.Empty(t, EvaluateAchievements(st, cat, st.StartTime))
	})

	t.Run("catalog order", func(t *testing.T) {
		st := newTestState()
		st.ClickCount = 150
		st.LifetimeCurrency = domain.WholeCoins(20000)
		st.Upgrades[domain.UpgradeAutoBot] = 1
		now := st.StartTime.Add(61 * time.Second)

		assert.Equal(t,
			[]string{"a_click_1", "a_click_100", "a_earn_100", "a_earn_10k", "a_upg_1", "a_time_60"},
			EvaluateAchievements(st, cat, now))
	})
}

func TestIsQuestComplete(t *testing.T) {
	cat := catalog.MustDefault()
	q, ok := cat.Quest("q_upg_dbl_5")
	require.True(t, ok)

	st := newTestState()
	st.Upgrades[domain.UpgradeAutoBot] = 10
	assert.False(t, IsQuestComplete(q, st, st.StartTime), "override ignores other upgrades")

	st.Upgrades[domain.UpgradeClickDouble] = 5
	assert.True(t, IsQuestComplete(q, st, st.StartTime))
}

func TestVisibleQuests(t *testing.T) {
	cat := catalog.MustDefault()

	t.Run("fresh state shows first five zero-threshold quests", func(t *testing.T) {
		st := newTestState()
		st.ClickCount = 25

		views := VisibleQuests(st, cat, st.StartTime)
		require.Len(t, views, domain.MaxVisibleQuests)
		assert.Equal(t, []string{"q_click_50", "q_click_200", "q_earn_500", "q_upg_3", "q_upg_dbl_5"}, questIDs(views))
		assert.Equal(t, int64(25), views[0].Progress)
		assert.InDelta(t, 50.0, views[0].Percent, 1e-9)
		assert.False(t, views[0].Complete)
	})

	t.Run("thresholds and completion", func(t *testing.T) {
		st := newTestState()
		st.LifetimeCurrency = domain.WholeCoins(100000)
		st.CompletedQuests = []string{"q_click_50"}

		views := VisibleQuests(st, cat, st.StartTime)
		assert.Equal(t, []string{"q_click_200", "q_click_1000", "q_earn_500", "q_earn_5000", "q_earn_50000"}, questIDs(views))
		assert.True(t, views[2].Complete)
		assert.InDelta(t, 100.0, views[2].Percent, 1e-9)
	})

	t.Run("fewer than five left", func(t *testing.T) {
		st := newTestState()
		for _, q := range cat.Quests[:10] {
			st.CompletedQuests = append(st.CompletedQuests, q.ID)
		}
		assert.Equal(t, []string{"q_time_60", "q_time_600"}, questIDs(VisibleQuests(st, cat, st.StartTime)))
	})
}

func TestAchievementPoints(t *testing.T) {
	cat := catalog.MustDefault()
	st := newTestState()
	st.UnlockedAchievements = []string{"a_click_1", "a_prestige_1", "a_retired"}
	assert.Equal(t, 30, AchievementPoints(st, cat))

	views := Achievements(st, cat)
	require.Len(t, views, len(cat.Achievements))
	assert.True(t, views[0].Unlocked)
	assert.False(t, views[1].Unlocked)
}

func TestUpgrades(t *testing.T) {
	cat := catalog.MustDefault()
	st := newTestState()
	st.Currency = domain.WholeCoins(100)
	st.Upgrades[domain.UpgradeClickDouble] = 1

	views := Upgrades(st, cat)
	require.Len(t, views, len(cat.Upgrades))
	assert.Equal(t, 1, views[0].Level)
	assert.Equal(t, domain.WholeCoins(75), views[0].NextCost)
	assert.True(t, views[0].Affordable)
	assert.Equal(t, domain.WholeCoins(100), views[1].NextCost)
	assert.True(t, views[1].Affordable, "exactly affordable")
	assert.False(t, views[2].Affordable)
}

func TestPrestigeProgress(t *testing.T) {
	st := newTestState()
	st.Currency = domain.WholeCoins(2500)
	cost, frac := PrestigeProgress(st)
	assert.Equal(t, domain.WholeCoins(10000), cost)
	assert.InDelta(t, 0.25, frac, 1e-9)

	st.Currency = domain.WholeCoins(20000)
	_, frac = PrestigeProgress(st)
	assert.InDelta(t, 1.0, frac, 1e-9)
}

func questIDs(views []QuestView) []string {
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.Quest.ID)
	}
	return ids
}
