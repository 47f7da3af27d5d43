package domain

import "time"

// Upgrade identifiers referenced by the derived-stats formulas.
const (
	UpgradeClickDouble = "click_double"
	UpgradeAutoBot     = "auto_bot"
	UpgradeClickMega   = "click_mega"
	UpgradeFactory     = "factory"
	UpgradeMine        = "mine"
)

// Skill node identifiers referenced by the derived-stats formulas.
const (
	SkillRoot         = "s_root"
	SkillClickBase    = "s_click_base"
	SkillClickCrit    = "s_click_crit"
	SkillAutoBase     = "s_auto_base"
	SkillAutoPassive  = "s_auto_passive"
	SkillPrestigeLuck = "s_prestige_luck"
)

// Prestige pricing
const (
	PrestigeBaseThreshold = 10000
	PrestigeCostGrowth    = 1.5
)

// Engine timing defaults
const (
	DefaultTickInterval    = 100 * time.Millisecond
	DefaultSaveInterval    = 3 * time.Second
	DefaultNotificationTTL = 3 * time.Second
	DefaultSaveSlot        = "gemClickerSave"
	MaxVisibleQuests       = 5
	CritMultiplier         = 2
	PrestigeMultiplierStep = 0.01
	SkillPointsPerPrestige = 1
	UnknownSkillCost       = 1
)
