package domain

// UpgradeCategory selects which derived power an upgrade contributes to.
type UpgradeCategory string

const (
	UpgradeCategoryClick UpgradeCategory = "click"
	UpgradeCategoryAuto  UpgradeCategory = "auto"
)

// PredicateType names the state field a quest or achievement is measured against.
type PredicateType string

const (
	PredicateClickCount         PredicateType = "click_count"
	PredicateCurrencyTotal      PredicateType = "currency_total"
	PredicateCurrencyAccumulate PredicateType = "currency_accumulate"
	PredicateUpgradeCount       PredicateType = "upgrade_count"
	PredicateUpgradesBuy        PredicateType = "upgrades_buy"
	PredicatePlayTime           PredicateType = "play_time"
	PredicateQuestCount         PredicateType = "quest_count"
	PredicatePrestigeCount      PredicateType = "prestige_count"
	PredicateAutoCount          PredicateType = "auto_count"
	PredicateAchievementsCount  PredicateType = "achievements_count"
)

// SkillBranch is the thematic grouping of a skill node.
type SkillBranch string

const (
	BranchClick    SkillBranch = "click"
	BranchAuto     SkillBranch = "auto"
	BranchPrestige SkillBranch = "prestige"
)

// EffectKind selects how an effect descriptor turns a level into a magnitude.
type EffectKind string

const (
	// EffectLinearPercent yields level*PerLevel, shown as a signed percentage.
	EffectLinearPercent EffectKind = "linear_percent"
	// EffectChancePercent yields level*PerLevel, shown as an unsigned percentage.
	EffectChancePercent EffectKind = "chance_percent"
)

// EffectTarget names the derived stat a skill effect feeds into.
type EffectTarget string

const (
	TargetGlobalMultiplier EffectTarget = "global_multiplier"
	TargetClickPower       EffectTarget = "click_power"
	TargetAutoPower        EffectTarget = "auto_power"
	TargetCritChance       EffectTarget = "crit_chance"
)

// Upgrade is a purchasable, levelled catalog entry.
type Upgrade struct {
	ID             string          `toml:"id" validate:"required"`
	Name           string          `toml:"name" validate:"required"`
	BaseCost       int64           `toml:"base_cost" validate:"gt=0"`
	CostMultiplier float64         `toml:"cost_multiplier" validate:"gt=1"`
	Category       UpgradeCategory `toml:"category" validate:"oneof=click auto"`
	Power          int64           `toml:"power" validate:"gte=0"`
}

// Quest is a claimable objective.
type Quest struct {
	ID              string        `toml:"id" validate:"required"`
	Name            string        `toml:"name" validate:"required"`
	Type            PredicateType `toml:"type" validate:"required,predicate"`
	Target          int64         `toml:"target" validate:"gt=0"`
	Reward          int64         `toml:"reward" validate:"gte=0"`
	UnlockThreshold int64         `toml:"unlock_threshold" validate:"gte=0"`
	// Upgrade narrows upgrades_buy to one upgrade and names the upgrade for auto_count.
	Upgrade string `toml:"upgrade,omitempty"`
}

// Achievement is a permanent, automatically unlocked milestone.
type Achievement struct {
	ID     string        `toml:"id" validate:"required"`
	Title  string        `toml:"title" validate:"required"`
	Type   PredicateType `toml:"type" validate:"required,predicate"`
	Target int64         `toml:"target" validate:"gt=0"`
	Points int           `toml:"points" validate:"gte=0"`
}

// Effect is a data-only description of what a skill level does.
type Effect struct {
	Kind     EffectKind   `toml:"kind" validate:"oneof=linear_percent chance_percent"`
	Target   EffectTarget `toml:"target" validate:"oneof=global_multiplier click_power auto_power crit_chance"`
	PerLevel float64      `toml:"per_level" validate:"gt=0"`
	Label    string       `toml:"label" validate:"required"`
}

// Magnitude returns the effect strength at a level as a fraction (0.2 == 20%).
func (e Effect) Magnitude(level int) float64 {
	return float64(level) * e.PerLevel
}

// SkillNode is a node of the skill tree.
type SkillNode struct {
	ID       string      `toml:"id" validate:"required"`
	Name     string      `toml:"name" validate:"required"`
	Branch   SkillBranch `toml:"branch" validate:"oneof=click auto prestige"`
	MaxLevel int         `toml:"max_level" validate:"gt=0"`
	Cost     int         `toml:"cost" validate:"gt=0"`
	Parents  []string    `toml:"parents"`
	Effect   Effect      `toml:"effect"`
}
