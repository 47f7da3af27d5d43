package repository

import (
	"context"
)

// SaveStore defines the interface for save-slot persistence.
// Implementations store one opaque JSON document per slot.
type SaveStore interface {
	// Load returns the raw document, or domain.ErrSaveNotFound when the slot is empty.
	Load(ctx context.Context, slot string) ([]byte, error)
	// Save replaces the document stored under slot.
	Save(ctx context.Context, slot string, data []byte) error
	// Delete removes the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context, slot string) error
	Ping(ctx context.Context) error
}
