package sse

import (
	"context"

	"github.com/osse101/GemClicker_Go/internal/event"
	"github.com/osse101/GemClicker_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the bridge for every game event type
func (s *Subscriber) Subscribe() {
	event.SubscribeAll(s.bus, s.handleEvent)
	logger.Info(LogMsgSubscribed, "types", event.AllTypes)
}

func (s *Subscriber) handleEvent(ctx context.Context, evt event.Event) error {
	var payload interface{} = evt.Payload
	if msgID, ok := evt.MessageID(); ok {
		payload = NotificationPayload{MessageID: msgID, Data: evt.Payload}
	}

	s.hub.Broadcast(string(evt.Type), payload)
	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
