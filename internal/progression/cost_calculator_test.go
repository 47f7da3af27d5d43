package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

func TestCost(t *testing.T) {
	tests := []struct {
		name       string
		base       int64
		multiplier float64
		level      int
		want       int64
	}{
		{"level 0 is base", 50, 1.5, 0, 50},
		{"click_double level 1", 50, 1.5, 1, 75},
		{"click_double level 2 floors", 50, 1.5, 2, 112},
		{"auto_bot level 1", 100, 1.2, 1, 120},
		{"auto_bot level 3 floors", 100, 1.2, 3, 172},
		{"mine level 2", 10000, 1.4, 2, 19600},
		{"negative level treated as 0", 50, 1.5, -3, 50},
		{"zero base", 0, 1.5, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, domain.WholeCoins(tt.want), Cost(tt.base, tt.multiplier, tt.level))
		})
	}
}

func TestCost_Saturates(t *testing.T) {
	assert.Equal(t, domain.MaxCoins, Cost(10000, 1.5, 10000))
	assert.Equal(t, domain.MaxCoins, Cost(1, 2, 62))
	assert.Less(t, Cost(1, 2, 40), domain.MaxCoins)
}

func TestCost_StrictlyIncreasingForCatalogUpgrades(t *testing.T) {
	cat := catalog.MustDefault()
	for _, u := range cat.Upgrades {
		for n := 0; n < 50; n++ {
			assert.Greater(t, UpgradeCost(u, n+1), UpgradeCost(u, n), "upgrade %s level %d", u.ID, n)
		}
	}
}

func TestPrestigeCost(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{0, 10000},
		{1, 15000},
		{2, 22500},
		{3, 33750},
		{4, 50625},
		{5, 75937},
	}

	for _, tt := range tests {
		assert.Equal(t, domain.WholeCoins(tt.want), PrestigeCost(tt.level), "prestige level %d", tt.level)
	}
}
