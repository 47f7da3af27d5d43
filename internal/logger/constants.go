package logger

const (
	// ContextKeyRequestID carries the HTTP request id through handlers and the engine
	ContextKeyRequestID = "request_id"
)

// Log levels accepted from LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats accepted from LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys shared by every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Attribute keys for save slot records
const (
	AttrKeySlot    = "slot"
	AttrKeyBackend = "backend"
)
