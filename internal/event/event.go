package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/GemClicker_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version   string      `json:"version"` // Event schema version (e.g., "1.0")
	Type      Type        `json:"type"`
	Payload   interface{} `json:"payload"`
	Metadata  Metadata    `json:"metadata,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Game event types
const (
	AchievementUnlocked Type = domain.EventTypeAchievementUnlocked
	QuestClaimed        Type = domain.EventTypeQuestClaimed
	Ascended            Type = domain.EventTypeAscended
	CriticalHit         Type = domain.EventTypeCriticalHit
	Generic             Type = domain.EventTypeGeneric
	UpgradeBought       Type = domain.EventTypeUpgradeBought
	SkillBought         Type = domain.EventTypeSkillBought
	StateReset          Type = domain.EventTypeStateReset
)

// AllTypes lists every game event type, notification kinds first.
var AllTypes = []Type{
	AchievementUnlocked,
	QuestClaimed,
	Ascended,
	CriticalHit,
	Generic,
	UpgradeBought,
	SkillBought,
	StateReset,
}

// Typed event payloads for type safety

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlock events
type AchievementUnlockedPayloadV1 struct {
	AchievementID string `json:"achievement_id"`
	Title         string `json:"title"`
	Points        int    `json:"points"`
	MessageID     string `json:"message_id"`
}

// QuestClaimedPayloadV1 is the typed payload for quest claim events
type QuestClaimedPayloadV1 struct {
	QuestID   string `json:"quest_id"`
	Name      string `json:"name"`
	Reward    int64  `json:"reward"`
	MessageID string `json:"message_id"`
}

// AscendedPayloadV1 is the typed payload for prestige events
type AscendedPayloadV1 struct {
	PrestigeLevel int    `json:"prestige_level"`
	SkillPoints   int    `json:"skill_points"`
	MessageID     string `json:"message_id"`
}

// CriticalHitPayloadV1 is the typed payload for critical manual actions
type CriticalHitPayloadV1 struct {
	Amount    int64  `json:"amount"`
	MessageID string `json:"message_id"`
}

// GenericPayloadV1 is the typed payload for informational notices
type GenericPayloadV1 struct {
	MessageID string `json:"message_id"`
}

// UpgradeBoughtPayloadV1 is the typed payload for upgrade purchases
type UpgradeBoughtPayloadV1 struct {
	UpgradeID string `json:"upgrade_id"`
	Level     int    `json:"level"`
	Cost      string `json:"cost"`
}

// SkillBoughtPayloadV1 is the typed payload for skill purchases
type SkillBoughtPayloadV1 struct {
	SkillID     string `json:"skill_id"`
	Level       int    `json:"level"`
	SkillPoints int    `json:"skill_points"`
}

// StateResetPayloadV1 is the typed payload for hard resets
type StateResetPayloadV1 struct {
	ResetAt time.Time `json:"reset_at"`
}

// Type-safe event constructors

func newEvent(t Type, payload interface{}) Event {
	return Event{
		Version:   EventSchemaVersion,
		Type:      t,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// NewAchievementUnlockedEvent creates a new achievement unlocked event
func NewAchievementUnlockedEvent(a domain.Achievement) Event {
	return newEvent(AchievementUnlocked, AchievementUnlockedPayloadV1{
		AchievementID: a.ID,
		Title:         a.Title,
		Points:        a.Points,
		MessageID:     domain.MsgAchievementUnlocked,
	})
}

// NewQuestClaimedEvent creates a new quest claimed event
func NewQuestClaimedEvent(q domain.Quest) Event {
	return newEvent(QuestClaimed, QuestClaimedPayloadV1{
		QuestID:   q.ID,
		Name:      q.Name,
		Reward:    q.Reward,
		MessageID: domain.MsgQuestComplete,
	})
}

// NewAscendedEvent creates a new prestige event
func NewAscendedEvent(prestigeLevel, skillPoints int) Event {
	return newEvent(Ascended, AscendedPayloadV1{
		PrestigeLevel: prestigeLevel,
		SkillPoints:   skillPoints,
		MessageID:     domain.MsgAscended,
	})
}

// NewCriticalHitEvent creates a new critical hit event
func NewCriticalHitEvent(amount int64) Event {
	return newEvent(CriticalHit, CriticalHitPayloadV1{
		Amount:    amount,
		MessageID: domain.MsgCriticalClick,
	})
}

// NewGenericEvent creates a new informational event
func NewGenericEvent(messageID string) Event {
	return newEvent(Generic, GenericPayloadV1{MessageID: messageID})
}

// NewUpgradeBoughtEvent creates a new upgrade purchase event
func NewUpgradeBoughtEvent(upgradeID string, level int, cost domain.Coins) Event {
	return newEvent(UpgradeBought, UpgradeBoughtPayloadV1{
		UpgradeID: upgradeID,
		Level:     level,
		Cost:      cost.String(),
	})
}

// NewSkillBoughtEvent creates a new skill purchase event
func NewSkillBoughtEvent(skillID string, level, skillPoints int) Event {
	return newEvent(SkillBought, SkillBoughtPayloadV1{
		SkillID:     skillID,
		Level:       level,
		SkillPoints: skillPoints,
	})
}

// NewStateResetEvent creates a new hard reset event
func NewStateResetEvent(at time.Time) Event {
	return newEvent(StateReset, StateResetPayloadV1{ResetAt: at})
}

// MessageID returns the localized message id carried by notification payloads.
func (e Event) MessageID() (string, bool) {
	switch p := e.Payload.(type) {
	case AchievementUnlockedPayloadV1:
		return p.MessageID, true
	case QuestClaimedPayloadV1:
		return p.MessageID, true
	case AscendedPayloadV1:
		return p.MessageID, true
	case CriticalHitPayloadV1:
		return p.MessageID, true
	case GenericPayloadV1:
		return p.MessageID, true
	default:
		return "", false
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; every handler runs even if an earlier one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(ErrFmtHandlerErrors, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// SubscribeAll subscribes one handler to every game event type
func SubscribeAll(bus Bus, handler Handler) {
	for _, t := range AllTypes {
		bus.Subscribe(t, handler)
	}
}

// NopBus discards every event.
type NopBus struct{}

// Publish implements Bus.
func (NopBus) Publish(context.Context, Event) error { return nil }

// Subscribe implements Bus.
func (NopBus) Subscribe(Type, Handler) {}
