package metrics

import (
	"context"

	"github.com/osse101/GemClicker_Go/internal/event"
	"github.com/osse101/GemClicker_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all game events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	event.SubscribeAll(bus, e.HandleEvent)
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Payload.(type) {
	case event.AchievementUnlockedPayloadV1:
		AchievementsUnlocked.Inc()
	case event.AscendedPayloadV1:
		PrestigesTotal.Inc()
	case event.CriticalHitPayloadV1:
		CriticalHits.Inc()
	case event.QuestClaimedPayloadV1, event.GenericPayloadV1,
		event.UpgradeBoughtPayloadV1, event.SkillBoughtPayloadV1, event.StateResetPayloadV1:
	default:
		log.Debug(LogMsgEventPayloadUnknown, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
