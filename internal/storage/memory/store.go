// Package memory provides an in-process save store for tests and for running
// without durable storage.
package memory

import (
	"context"
	"sync"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/repository"
)

// Store keeps save documents in a map.
type Store struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

var _ repository.SaveStore = (*Store)(nil)

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{slots: make(map[string][]byte)}
}

// Load returns a copy of the slot's document.
func (s *Store) Load(_ context.Context, slot string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.slots[slot]
	if !ok {
		return nil, domain.ErrSaveNotFound
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data.
func (s *Store) Save(_ context.Context, slot string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slot] = append([]byte(nil), data...)
	return nil
}

// Delete removes the slot.
func (s *Store) Delete(_ context.Context, slot string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.slots, slot)
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error {
	return nil
}
