package progression

import (
	"github.com/shopspring/decimal"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
)

var (
	one             = decimal.NewFromInt(1)
	prestigeStep    = decimal.NewFromFloat(domain.PrestigeMultiplierStep)
	maxWholeDecimal = decimal.NewFromInt(domain.MaxWholeCoins)
	critMultiplier  = decimal.NewFromInt(domain.CritMultiplier)
)

// GlobalMultiplier is 1 + 0.01 per prestige level plus every skill effect
// targeting the global multiplier. It depends only on prestigeLevel and skills.
func GlobalMultiplier(st domain.State, cat *catalog.Catalog) decimal.Decimal {
	m := one.Add(prestigeStep.Mul(decimal.NewFromInt(int64(st.PrestigeLevel))))
	return m.Add(skillBonus(st, cat, domain.TargetGlobalMultiplier))
}

// ClickPower is floor(clickBase * globalMultiplier * (1 + clickSkillBonus)),
// where clickBase is 1 plus the power of every owned click upgrade level.
func ClickPower(st domain.State, cat *catalog.Catalog) int64 {
	base := one.Add(upgradeBase(st, cat, domain.UpgradeCategoryClick))
	return scaledPower(base, st, cat, domain.TargetClickPower)
}

// AutoPower is floor(autoBase * globalMultiplier * (1 + autoSkillBonus)) coins
// per second, where autoBase sums the power of every owned auto upgrade level.
func AutoPower(st domain.State, cat *catalog.Catalog) int64 {
	base := upgradeBase(st, cat, domain.UpgradeCategoryAuto)
	return scaledPower(base, st, cat, domain.TargetAutoPower)
}

// CritChance is the probability in [0,1] that a manual action is critical.
func CritChance(st domain.State, cat *catalog.Catalog) float64 {
	chance := skillBonus(st, cat, domain.TargetCritChance).InexactFloat64()
	if chance > 1 {
		return 1
	}
	return chance
}

// CriticalAmount applies the critical-hit multiplier to a click amount.
func CriticalAmount(amount int64) int64 {
	return clampWhole(decimal.NewFromInt(amount).Mul(critMultiplier))
}

func scaledPower(base decimal.Decimal, st domain.State, cat *catalog.Catalog, target domain.EffectTarget) int64 {
	if base.IsZero() {
		return 0
	}
	factor := one.Add(skillBonus(st, cat, target))
	return clampWhole(base.Mul(GlobalMultiplier(st, cat)).Mul(factor).Floor())
}

func upgradeBase(st domain.State, cat *catalog.Catalog, category domain.UpgradeCategory) decimal.Decimal {
	sum := decimal.Zero
	for _, u := range cat.Upgrades {
		if u.Category != category {
			continue
		}
		if lvl := st.UpgradeLevel(u.ID); lvl > 0 {
			sum = sum.Add(decimal.NewFromInt(int64(lvl)).Mul(decimal.NewFromInt(u.Power)))
		}
	}
	return sum
}

func skillBonus(st domain.State, cat *catalog.Catalog, target domain.EffectTarget) decimal.Decimal {
	sum := decimal.Zero
	for _, node := range cat.Skills {
		if node.Effect.Target != target {
			continue
		}
		if lvl := st.SkillLevel(node.ID); lvl > 0 {
			sum = sum.Add(decimal.NewFromInt(int64(lvl)).Mul(decimal.NewFromFloat(node.Effect.PerLevel)))
		}
	}
	return sum
}

func clampWhole(d decimal.Decimal) int64 {
	if d.GreaterThan(maxWholeDecimal) {
		return domain.MaxWholeCoins
	}
	if d.IsNegative() {
		return 0
	}
	return d.IntPart()
}
