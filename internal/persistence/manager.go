package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/metrics"
	"github.com/osse101/GemClicker_Go/internal/repository"
)

// Manager binds a SaveStore to one save slot and converts between stored
// documents and states. It satisfies game.Saver.
type Manager struct {
	store   repository.SaveStore
	slot    string
	backend string
	cat     *catalog.Catalog
	clock   func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides time.Now for lastSaveTime stamps and load defaults.
func WithClock(clock func() time.Time) Option {
	return func(m *Manager) { m.clock = clock }
}

// NewManager creates a Manager. backend labels metrics and logs.
func NewManager(store repository.SaveStore, slot, backend string, cat *catalog.Catalog, opts ...Option) *Manager {
	m := &Manager{
		store:   store,
		slot:    slot,
		backend: backend,
		cat:     cat,
		clock:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Slot returns the save slot name.
func (m *Manager) Slot() string {
	return m.slot
}

// Load reads and migrates the slot. It never fails: a missing, unreadable or
// corrupt save yields a fresh default state and is logged.
func (m *Manager) Load(ctx context.Context) domain.State {
	log := logger.ForSlot(ctx, m.slot, m.backend)
	now := m.clock()

	start := time.Now()
	data, err := m.store.Load(ctx, m.slot)
	m.observe(OperationLoad, start, err, errors.Is(err, domain.ErrSaveNotFound))
	if errors.Is(err, domain.ErrSaveNotFound) {
		log.Info(LogMsgNoSaveFound)
		return domain.NewState(now)
	}
	if err != nil {
		log.Error(LogMsgLoadFailed, "error", err)
		return domain.NewState(now)
	}

	st, report, err := Decode(data, m.cat, now)
	if err != nil {
		log.Error(LogMsgSaveCorrupt, "error", err)
		return domain.NewState(now)
	}
	if len(report.Invalid) > 0 || len(report.Missing) > 0 {
		log.Warn(LogMsgFieldSanitized, "invalid", report.Invalid, "missing", report.Missing)
	}
	if report.SkillPointsRebuilt {
		log.Info(LogMsgSkillPointsRebuilt, "skill_points", st.SkillPoints)
	}
	log.Info(LogMsgSaveLoaded,
		"prestige_level", st.PrestigeLevel,
		"last_save", st.LastSaveTime)
	return st
}

// Save stamps lastSaveTime and writes the state to the slot.
func (m *Manager) Save(ctx context.Context, st domain.State) error {
	st.LastSaveTime = m.clock()
	data, err := Encode(st)
	if err != nil {
		return err
	}

	start := time.Now()
	err = m.store.Save(ctx, m.slot, data)
	m.observe(OperationSave, start, err, false)
	if err != nil {
		logger.ForSlot(ctx, m.slot, m.backend).Error(LogMsgSaveFailed, "error", err)
		return fmt.Errorf("failed to save slot %s: %w", m.slot, err)
	}
	logger.ForSlot(ctx, m.slot, m.backend).Debug(LogMsgSaved, "bytes", len(data))
	return nil
}

// Delete removes the slot.
func (m *Manager) Delete(ctx context.Context) error {
	start := time.Now()
	err := m.store.Delete(ctx, m.slot)
	m.observe(OperationDelete, start, err, false)
	if err != nil {
		return fmt.Errorf("failed to delete slot %s: %w", m.slot, err)
	}
	logger.ForSlot(ctx, m.slot, m.backend).Info(LogMsgSaveDeleted)
	return nil
}

// Ping checks the backing store.
func (m *Manager) Ping(ctx context.Context) error {
	return m.store.Ping(ctx)
}

func (m *Manager) observe(operation string, start time.Time, err error, notFound bool) {
	result := metrics.ResultOK
	if err != nil && !notFound {
		result = metrics.ResultError
	}
	metrics.SavesTotal.WithLabelValues(operation, m.backend, result).Inc()
	metrics.SaveDuration.WithLabelValues(operation, m.backend).Observe(time.Since(start).Seconds())
}
