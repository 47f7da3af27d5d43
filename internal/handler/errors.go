package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidID             = "Invalid id"
	ErrMsgInvalidNotificationID = "Invalid notification id"
	ErrMsgNotificationNotFound  = "Notification not found"
	ErrMsgSaveFailed            = "Failed to save game"
	ErrMsgResetFailed           = "Failed to reset game"
)

// Success messages for API responses
const (
	MsgUpgradeBought      = "Upgrade bought"
	MsgQuestClaimed       = "Quest claimed"
	MsgSkillBought        = "Skill bought"
	MsgAscended           = "Ascended"
	MsgLanguageChanged    = "Language changed"
	MsgGameSaved          = "Game saved"
	MsgGameReset          = "Game reset"
	MsgLifecycleRecorded  = "Lifecycle recorded"
	MsgNotificationsClear = "Notifications cleared"
)

// Log messages
const (
	LogMsgDecodeFailed      = "Failed to decode request"
	LogMsgValidationFailed  = "Request validation failed"
	LogMsgActionFailed      = "Game action failed"
	LogMsgActionRejected    = "Game action rejected"
	LogMsgReadinessFailed   = "Readiness check failed"
	LogMsgEncodeFailed      = "Failed to encode JSON response"
	LogMsgWriteBufferFailed = "Failed to write response buffer"
)
