package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Catalog lookups
	ErrMsgUnknownUpgrade = "unknown upgrade"
	ErrMsgUnknownQuest   = "unknown quest"
	ErrMsgUnknownSkill   = "unknown skill"

	// Economy
	ErrMsgInsufficientFunds       = "insufficient funds"
	ErrMsgInsufficientSkillPoints = "insufficient skill points"

	// Quests
	ErrMsgAlreadyClaimed   = "quest already claimed"
	ErrMsgQuestNotComplete = "quest not complete"

	// Skill tree
	ErrMsgSkillLocked = "skill is locked"
	ErrMsgMaxLevel    = "already at max level"

	// Prestige
	ErrMsgPrestigeLocked = "prestige threshold not reached"

	// Settings
	ErrMsgUnsupportedLanguage = "unsupported language"

	// Persistence
	ErrMsgSaveNotFound = "save not found"
	ErrMsgCorruptSave  = "corrupt save"

	// Input
	ErrMsgInvalidInput = "invalid input"
)

// Rejected-precondition errors. Handlers that return one of these leave the
// state unchanged, so the call is safe to retry.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnknownUpgrade = errors.New(ErrMsgUnknownUpgrade)
	ErrUnknownQuest   = errors.New(ErrMsgUnknownQuest)
	ErrUnknownSkill   = errors.New(ErrMsgUnknownSkill)

	ErrInsufficientFunds       = errors.New(ErrMsgInsufficientFunds)
	ErrInsufficientSkillPoints = errors.New(ErrMsgInsufficientSkillPoints)

	ErrAlreadyClaimed   = errors.New(ErrMsgAlreadyClaimed)
	ErrQuestNotComplete = errors.New(ErrMsgQuestNotComplete)

	ErrSkillLocked = errors.New(ErrMsgSkillLocked)
	ErrMaxLevel    = errors.New(ErrMsgMaxLevel)

	ErrPrestigeLocked = errors.New(ErrMsgPrestigeLocked)

	ErrUnsupportedLanguage = errors.New(ErrMsgUnsupportedLanguage)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// Persistence errors
var (
	ErrSaveNotFound = errors.New(ErrMsgSaveNotFound)
	ErrCorruptSave  = errors.New(ErrMsgCorruptSave)
)

// IsRejection reports whether err is an ordinary business-rule rejection rather
// than a system failure.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrUnknownUpgrade, ErrUnknownQuest, ErrUnknownSkill,
		ErrInsufficientFunds, ErrInsufficientSkillPoints,
		ErrAlreadyClaimed, ErrQuestNotComplete,
		ErrSkillLocked, ErrMaxLevel, ErrPrestigeLocked,
		ErrUnsupportedLanguage, ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
