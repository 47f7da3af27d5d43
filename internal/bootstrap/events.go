package bootstrap

import (
	"github.com/osse101/GemClicker_Go/internal/config"
	"github.com/osse101/GemClicker_Go/internal/event"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/metrics"
	"github.com/osse101/GemClicker_Go/internal/notification"
	"github.com/osse101/GemClicker_Go/internal/sse"
)

// EventSystem groups the event bus with everything listening on it.
type EventSystem struct {
	Bus  *event.MemoryBus
	Feed *notification.Feed
	Hub  *sse.Hub
}

// InitializeEventSystem creates the event bus and registers its subscribers:
// the metrics collector, the notification feed and the SSE bridge. The hub is
// started; GracefulShutdown stops it.
func InitializeEventSystem(cfg *config.Config) *EventSystem {
	bus := event.NewMemoryBus()

	metrics.NewEventMetricsCollector().Register(bus)

	feed := notification.NewFeed(notification.DefaultCapacity, cfg.NotificationTTL)
	feed.Register(bus)

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	logger.Info(LogMsgEventSystemInitialized,
		"notification_ttl", cfg.NotificationTTL,
		"notification_capacity", notification.DefaultCapacity)

	return &EventSystem{Bus: bus, Feed: feed, Hub: hub}
}
