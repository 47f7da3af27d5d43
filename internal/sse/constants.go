package sse

import "time"

// Channel sizes. A browser tab draining one game's events needs little slack.
const (
	BroadcastBufferSize = 64
	ClientEventBuffer   = 32
	ClientChannelBuffer = 4
)

// KeepaliveInterval keeps idle streams open through proxies
const KeepaliveInterval = 20 * time.Second

// Stream-only event types. Game events keep their event bus type names.
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// QueryParamTypes filters a stream to a comma-separated list of event types
const QueryParamTypes = "types"

const (
	LogMsgClientConnected    = "Event stream opened"
	LogMsgClientDisconnected = "Event stream closed"
	LogMsgEventBroadcast     = "Forwarding game event to streams"
	LogMsgBroadcastDropped   = "Stream broadcast queue full, game event dropped"
	LogMsgWriteError         = "Failed to write game event to stream"
	LogMsgSubscribed         = "Stream forwarder subscribed to game events"
)
