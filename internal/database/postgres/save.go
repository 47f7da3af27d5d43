package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/repository"
)

// SaveRepository implements repository.SaveStore on the saves table
type SaveRepository struct {
	db *pgxpool.Pool
}

var _ repository.SaveStore = (*SaveRepository)(nil)

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Load returns the document stored under slot
func (r *SaveRepository) Load(ctx context.Context, slot string) ([]byte, error) {
	var data []byte
	err := r.db.QueryRow(ctx, `SELECT data FROM saves WHERE slot = $1`, slot).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSave, err)
	}
	return data, nil
}

// Save upserts the document for slot
func (r *SaveRepository) Save(ctx context.Context, slot string, data []byte) error {
	query := `
		INSERT INTO saves (slot, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (slot) DO UPDATE
		SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := r.db.Exec(ctx, query, slot, string(data)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteSave, err)
	}
	return nil
}

// Delete removes the slot row
func (r *SaveRepository) Delete(ctx context.Context, slot string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM saves WHERE slot = $1`, slot); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSave, err)
	}
	return nil
}

// Ping checks the connection pool
func (r *SaveRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
