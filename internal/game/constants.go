package game

import "time"

// MaxTickElapsed bounds the passive accrual of a single tick. A host loop
// that stalls (suspended process, overloaded worker) does not earn a burst of
// offline income when it resumes.
const MaxTickElapsed = time.Second

// Action names used for metrics and logs
const (
	ActionManual      = "manual_action"
	ActionBuyUpgrade  = "buy_upgrade"
	ActionClaimQuest  = "claim_quest"
	ActionBuySkill    = "buy_skill"
	ActionPrestige    = "prestige"
	ActionSetLanguage = "set_language"
	ActionManualSave  = "manual_save"
	ActionHardReset   = "hard_reset"
)

// Lifecycle is a host visibility transition.
type Lifecycle string

const (
	LifecycleHidden  Lifecycle = "hidden"
	LifecycleVisible Lifecycle = "visible"
)

// Log messages
const (
	LogMsgActionRejected      = "Game action rejected"
	LogMsgPrestigeCompleted   = "Prestige completed"
	LogMsgPrestigeSaveFailed  = "Save after prestige failed"
	LogMsgLifecycleSaveFailed = "Save on lifecycle transition failed"
	LogMsgAutosaveFailed      = "Autosave failed"
	LogMsgFinalSaveFailed     = "Final save on shutdown failed"
	LogMsgResetDeleteFailed   = "Deleting save during hard reset failed"
	LogMsgHardReset           = "Game state reset"
	LogMsgEventPublishFailed  = "Failed to publish game event"
	LogMsgAchievementUnlocked = "Achievement unlocked"
)
