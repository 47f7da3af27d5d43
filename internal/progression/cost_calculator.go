package progression

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/osse101/GemClicker_Go/internal/domain"
)

// Cost computes floor(baseCost * multiplier^level) whole coins.
//
// The result is strictly increasing in level for multiplier > 1 while
// baseCost*(multiplier-1)*multiplier^level >= 1, and saturates at
// domain.MaxCoins once the exact value leaves the representable range.
func Cost(baseCost int64, multiplier float64, level int) domain.Coins {
	if baseCost <= 0 {
		return 0
	}
	if level < 0 {
		level = 0
	}

	// Cheap float estimate first so decimal.Pow never grows unbounded.
	estimate := float64(baseCost) * math.Pow(multiplier, float64(level))
	if math.IsInf(estimate, 0) || math.IsNaN(estimate) || estimate >= float64(domain.MaxWholeCoins) {
		return domain.MaxCoins
	}

	exact := decimal.NewFromInt(baseCost).
		Mul(decimal.NewFromFloat(multiplier).Pow(decimal.NewFromInt(int64(level)))).
		Floor()
	if exact.GreaterThan(decimal.NewFromInt(domain.MaxWholeCoins)) {
		return domain.MaxCoins
	}
	return domain.WholeCoins(exact.IntPart())
}

// UpgradeCost returns the price of the next level of an upgrade.
func UpgradeCost(u domain.Upgrade, currentLevel int) domain.Coins {
	return Cost(u.BaseCost, u.CostMultiplier, currentLevel)
}

// PrestigeCost returns the currency required to prestige from prestigeLevel.
func PrestigeCost(prestigeLevel int) domain.Coins {
	return Cost(domain.PrestigeBaseThreshold, domain.PrestigeCostGrowth, prestigeLevel)
}
