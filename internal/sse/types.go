package sse

// ConnectedPayload is sent once when a stream opens
type ConnectedPayload struct {
	ClientID string   `json:"client_id"`
	Filters  []string `json:"filters"`
}

// NotificationPayload is the stream form of a toast-worthy game event. The
// front end resolves MessageID to localized text.
type NotificationPayload struct {
	MessageID string      `json:"message_id"`
	Data      interface{} `json:"data"`
}
