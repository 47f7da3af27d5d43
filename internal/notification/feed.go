// Package notification keeps the short-lived toast feed shown by front ends.
package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GemClicker_Go/internal/event"
)

// DefaultCapacity bounds the feed so a burst of critical hits cannot grow it unbounded.
const DefaultCapacity = 64

// Kinds lists the event types that surface as notifications.
var Kinds = []event.Type{
	event.AchievementUnlocked,
	event.QuestClaimed,
	event.Ascended,
	event.CriticalHit,
	event.Generic,
}

// Notification is one toast. MessageID is resolved to localized text by the
// presentation layer.
type Notification struct {
	ID        uuid.UUID   `json:"id"`
	Kind      event.Type  `json:"kind"`
	MessageID string      `json:"message_id"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

// Feed holds notifications until their TTL elapses.
type Feed struct {
	lru *expirable.LRU[uuid.UUID, Notification]
}

// NewFeed creates a feed. Entries expire ttl after they are added.
func NewFeed(capacity int, ttl time.Duration) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		lru: expirable.NewLRU[uuid.UUID, Notification](capacity, nil, ttl),
	}
}

// Register subscribes the feed to every notification kind.
func (f *Feed) Register(bus event.Bus) {
	for _, kind := range Kinds {
		bus.Subscribe(kind, f.HandleEvent)
	}
}

// HandleEvent adds a notification for events that carry a message id.
func (f *Feed) HandleEvent(_ context.Context, evt event.Event) error {
	msgID, ok := evt.MessageID()
	if !ok {
		return nil
	}
	created := evt.Timestamp
	if created.IsZero() {
		created = time.Now()
	}
	n := Notification{
		ID:        uuid.New(),
		Kind:      evt.Type,
		MessageID: msgID,
		Payload:   evt.Payload,
		CreatedAt: created,
	}
	f.lru.Add(n.ID, n)
	return nil
}

// List returns unexpired notifications, oldest first.
func (f *Feed) List() []Notification {
	return f.lru.Values()
}

// Dismiss removes a notification before it expires.
func (f *Feed) Dismiss(id uuid.UUID) bool {
	return f.lru.Remove(id)
}

// Clear drops every notification.
func (f *Feed) Clear() {
	f.lru.Purge()
}
