// Package file stores save slots as JSON files in one directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/GemClicker_Go/internal/concurrency"
	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/repository"
)

const (
	fileExt  = ".json"
	dirPerm  = 0o755
	filePerm = 0o644
	slotRule = "required,max=64,excludesall=/\\.:"
)

// Store writes each slot to <dir>/<slot>.json. Writes go to a temp file that
// is renamed over the target, so a crash never leaves a half-written save.
type Store struct {
	dir      string
	locks    *concurrency.KeyedRWLock
	validate *validator.Validate
}

var _ repository.SaveStore = (*Store)(nil)

// NewStore creates the directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create save dir %s: %w", dir, err)
	}
	return &Store{
		dir:      dir,
		locks:    concurrency.NewKeyedRWLock(),
		validate: validator.New(),
	}, nil
}

func (s *Store) path(slot string) (string, error) {
	if err := s.validate.Var(slot, slotRule); err != nil {
		return "", fmt.Errorf("%w: slot %q", domain.ErrInvalidInput, slot)
	}
	return filepath.Join(s.dir, slot+fileExt), nil
}

// Load reads the slot file.
func (s *Store) Load(_ context.Context, slot string) ([]byte, error) {
	path, err := s.path(slot)
	if err != nil {
		return nil, err
	}
	defer s.locks.RLock(slot)()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSaveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Save atomically replaces the slot file.
func (s *Store) Save(_ context.Context, slot string, data []byte) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	defer s.locks.Lock(slot)()

	tmp, err := os.CreateTemp(s.dir, slot+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Delete removes the slot file. A missing file is not an error.
func (s *Store) Delete(_ context.Context, slot string) error {
	path, err := s.path(slot)
	if err != nil {
		return err
	}
	defer s.locks.Lock(slot)()

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// Ping checks that the save directory is still a directory.
func (s *Store) Ping(context.Context) error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("save dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save dir %s is not a directory", s.dir)
	}
	return nil
}
