package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

func newTestState() domain.State {
	return domain.NewState(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
}

func TestGlobalMultiplier(t *testing.T) {
	cat := catalog.MustDefault()

	tests := []struct {
		name     string
		prestige int
		skills   map[string]int
		want     string
	}{
		{"fresh", 0, nil, "1"},
		{"prestige only", 3, nil, "1.03"},
		{"root", 0, map[string]int{domain.SkillRoot: 1}, "1.05"},
		{
			name:     "every global source",
			prestige: 2,
			skills: map[string]int{
				domain.SkillRoot:         1,
				domain.SkillPrestigeLuck: 3,
				domain.SkillAutoPassive:  2,
			},
			// 1 + 0.02 + 0.05 + 0.15 + 0.20
			want: "1.42",
		},
		{
			name:   "click and auto skills do not affect it",
			skills: map[string]int{domain.SkillClickBase: 5, domain.SkillAutoBase: 5},
			want:   "1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestState()
			st.PrestigeLevel = tt.prestige
			for id, lvl := range tt.skills {
				st.Skills[id] = lvl
			}
			assert.Equal(t, tt.want, GlobalMultiplier(st, cat).String())
		})
	}
}

func TestClickPower(t *testing.T) {
	cat := catalog.MustDefault()

	t.Run("fresh state is 1", func(t *testing.T) {
		assert.Equal(t, int64(1), ClickPower(newTestState(), cat))
	})

	t.Run("root skill with one click_double floors 2.1 to 2", func(t *testing.T) {
		st := newTestState()
		st.Skills[domain.SkillRoot] = 1
		st.Upgrades[domain.UpgradeClickDouble] = 1
		assert.Equal(t, int64(2), ClickPower(st, cat))
	})

	t.Run("upgrades and click skill", func(t *testing.T) {
		st := newTestState()
		st.Upgrades[domain.UpgradeClickDouble] = 2
		st.Upgrades[domain.UpgradeClickMega] = 1
		st.Skills[domain.SkillRoot] = 1
		st.Skills[domain.SkillClickBase] = 2
		// (1 + 2 + 10) * 1.05 * 1.4 = 19.11
		assert.Equal(t, int64(19), ClickPower(st, cat))
	})

	t.Run("auto upgrades do not count", func(t *testing.T) {
		st := newTestState()
		st.Upgrades[domain.UpgradeMine] = 4
		assert.Equal(t, int64(1), ClickPower(st, cat))
	})
}

func TestAutoPower(t *testing.T) {
	cat := catalog.MustDefault()

	t.Run("fresh state is 0", func(t *testing.T) {
		st := newTestState()
		st.Skills[domain.SkillAutoBase] = 3
		assert.Equal(t, int64(0), AutoPower(st, cat))
	})

	t.Run("mixed upgrades with skills", func(t *testing.T) {
		st := newTestState()
		st.PrestigeLevel = 5
		st.Upgrades[domain.UpgradeAutoBot] = 3
		st.Upgrades[domain.UpgradeFactory] = 1
		st.Skills[domain.SkillAutoBase] = 2
		// (3 + 15) * 1.05 * 1.4 = 26.46
		assert.Equal(t, int64(26), AutoPower(st, cat))
	})

	t.Run("mine", func(t *testing.T) {
		st := newTestState()
		st.Upgrades[domain.UpgradeMine] = 2
		assert.Equal(t, int64(100), AutoPower(st, cat))
	})
}

func TestCritChance(t *testing.T) {
	cat := catalog.MustDefault()
	st := newTestState()
	assert.Zero(t, CritChance(st, cat))

	st.Skills[domain.SkillClickCrit] = 3
	assert.InDelta(t, 0.06, CritChance(st, cat), 1e-12)
}

func TestCriticalAmount(t *testing.T) {
	assert.Equal(t, int64(8), CriticalAmount(4))
	assert.Equal(t, domain.MaxWholeCoins, CriticalAmount(domain.MaxWholeCoins))
}
