package event

// EventSchemaVersion is stamped on every game event. Bump it when a payload
// struct changes shape and add a new V2 payload next to the old one.
const EventSchemaVersion = "1.0"

// ErrFmtHandlerErrors wraps the failures collected from one Publish call
const ErrFmtHandlerErrors = "%d subscribers failed on %s event: %v"
