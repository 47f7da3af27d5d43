package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/event"
	"github.com/osse101/GemClicker_Go/internal/logger"
	"github.com/osse101/GemClicker_Go/internal/metrics"
	"github.com/osse101/GemClicker_Go/internal/progression"
)

// Engine owns the single progression state. Every action and every tick runs
// under one mutex, so passive accrual never interleaves with a purchase.
// Events are published after the mutex is released. Saves are serialized by
// saveMu and snapshot inside it, so a slower save never lands after a newer one.
type Engine struct {
	mu       sync.Mutex
	state    domain.State
	lastTick time.Time

	saveMu sync.Mutex

	cat   *catalog.Catalog
	clock func() time.Time
	roll  Roller
	bus   event.Bus
	saver Saver
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock overrides time.Now.
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) { e.clock = clock }
}

// WithRoller overrides the critical-hit random source.
func WithRoller(roll Roller) Option {
	return func(e *Engine) { e.roll = roll }
}

// WithBus sets the event bus notifications are published to.
func WithBus(bus event.Bus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithSaver sets the persistence adapter.
func WithSaver(saver Saver) Option {
	return func(e *Engine) { e.saver = saver }
}

// NewEngine creates an engine around an initial state, usually the result of
// loading the save slot.
func NewEngine(initial domain.State, cat *catalog.Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:   cat,
		clock: time.Now,
		roll:  rand.Float64,
		bus:   event.NopBus{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.state = initial.Clone()
	e.lastTick = e.clock()
	return e
}

var _ Service = (*Engine)(nil)

// ManualAction credits one click at the current click power.
func (e *Engine) ManualAction(ctx context.Context) ClickResult {
	e.mu.Lock()
	next, result := ManualAction(e.state, e.cat, e.roll)
	e.state = next
	e.mu.Unlock()

	metrics.RecordAction(ActionManual, nil, false)
	if result.IsCritical {
		e.publish(ctx, event.NewCriticalHitEvent(result.Amount))
	}
	return result
}

// BuyUpgrade purchases the next level of an upgrade.
func (e *Engine) BuyUpgrade(ctx context.Context, id string) error {
	e.mu.Lock()
	next, cost, err := BuyUpgrade(e.state, e.cat, id)
	e.state = next
	level := next.UpgradeLevel(id)
	e.mu.Unlock()

	if e.reject(ctx, ActionBuyUpgrade, err) {
		return err
	}
	e.publish(ctx, event.NewUpgradeBoughtEvent(id, level, cost))
	return nil
}

// ClaimQuest pays out a completed quest.
func (e *Engine) ClaimQuest(ctx context.Context, id string) error {
	e.mu.Lock()
	next, q, err := ClaimQuest(e.state, e.cat, id, e.clock())
	e.state = next
	e.mu.Unlock()

	if e.reject(ctx, ActionClaimQuest, err) {
		return err
	}
	e.publish(ctx, event.NewQuestClaimedEvent(q))
	return nil
}

// BuySkill purchases the next level of a skill node.
func (e *Engine) BuySkill(ctx context.Context, id string) error {
	e.mu.Lock()
	next, err := BuySkill(e.state, e.cat, id)
	e.state = next
	level, points := next.SkillLevel(id), next.SkillPoints
	e.mu.Unlock()

	if e.reject(ctx, ActionBuySkill, err) {
		return err
	}
	e.publish(ctx, event.NewSkillBoughtEvent(id, level, points))
	return nil
}

// Prestige resets the run and flushes a save before returning. A failed save
// is logged and does not undo the prestige.
func (e *Engine) Prestige(ctx context.Context) error {
	e.mu.Lock()
	next, err := Prestige(e.state)
	e.state = next
	e.mu.Unlock()

	if e.reject(ctx, ActionPrestige, err) {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgPrestigeCompleted,
		"prestige_level", next.PrestigeLevel,
		"skill_points", next.SkillPoints)
	if err := e.save(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgPrestigeSaveFailed, "error", err)
	}
	e.publish(ctx, event.NewAscendedEvent(next.PrestigeLevel, next.SkillPoints))
	return nil
}

// SetLanguage changes the persisted UI language.
func (e *Engine) SetLanguage(ctx context.Context, lang string) error {
	e.mu.Lock()
	next, err := SetLanguage(e.state, lang)
	e.state = next
	e.mu.Unlock()

	e.reject(ctx, ActionSetLanguage, err)
	return err
}

// ManualSave saves synchronously and announces success.
func (e *Engine) ManualSave(ctx context.Context) error {
	err := e.save(ctx)
	metrics.RecordAction(ActionManualSave, err, false)
	if err != nil {
		return err
	}
	e.publish(ctx, event.NewGenericEvent(domain.MsgSaved))
	return nil
}

// HardReset restarts from the default state and deletes the save slot.
func (e *Engine) HardReset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	e.saveMu.Lock()
	e.mu.Lock()
	now := e.clock()
	e.state = domain.NewState(now)
	e.lastTick = now
	e.mu.Unlock()

	if e.saver != nil {
		if err := e.saver.Delete(ctx); err != nil && !errors.Is(err, domain.ErrSaveNotFound) {
			log.Error(LogMsgResetDeleteFailed, "error", err)
		}
	}
	e.saveMu.Unlock()

	metrics.RecordAction(ActionHardReset, nil, false)
	log.Info(LogMsgHardReset)
	e.publish(ctx, event.NewStateResetEvent(now))
	return nil
}

// OnLifecycle reacts to host visibility changes. Going hidden flushes a save
// because the host may be suspended or killed next.
func (e *Engine) OnLifecycle(ctx context.Context, l Lifecycle) {
	switch l {
	case LifecycleHidden:
		if err := e.save(ctx); err != nil {
			logger.FromContext(ctx).Warn(LogMsgLifecycleSaveFailed, "error", err)
		}
	case LifecycleVisible:
		e.mu.Lock()
		e.lastTick = e.clock()
		e.mu.Unlock()
	}
}

// Tick advances the engine to now: passive income for the time since the
// previous tick (at most MaxTickElapsed), then one achievement evaluation pass.
// It returns the ids of newly unlocked achievements in catalog order.
func (e *Engine) Tick(ctx context.Context, now time.Time) []string {
	start := time.Now()

	e.mu.Lock()
	elapsed := now.Sub(e.lastTick)
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxTickElapsed {
		elapsed = MaxTickElapsed
	}
	if now.After(e.lastTick) {
		e.lastTick = now
	}
	next, unlocked := ApplyTick(e.state, e.cat, elapsed, now)
	e.state = next
	e.mu.Unlock()

	metrics.TicksTotal.Inc()
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.Currency.Set(next.Currency.Decimal().InexactFloat64())
	metrics.LifetimeCurrency.Set(next.LifetimeCurrency.Decimal().InexactFloat64())

	for _, id := range unlocked {
		a, _ := e.cat.Achievement(id)
		logger.FromContext(ctx).Info(LogMsgAchievementUnlocked, "achievement", id)
		e.publish(ctx, event.NewAchievementUnlockedEvent(a))
	}
	return unlocked
}

// Step runs Tick at the engine clock's current time.
func (e *Engine) Step(ctx context.Context) {
	e.Tick(ctx, e.clock())
}

// Autosave saves the current snapshot. Failures are logged and returned.
func (e *Engine) Autosave(ctx context.Context) error {
	err := e.save(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgAutosaveFailed, "error", err)
	}
	return err
}

// Shutdown flushes one final save.
func (e *Engine) Shutdown(ctx context.Context) error {
	if err := e.save(ctx); err != nil {
		logger.FromContext(ctx).Error(LogMsgFinalSaveFailed, "error", err)
		return err
	}
	return nil
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() domain.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// ClickPower returns the current click power in whole coins.
func (e *Engine) ClickPower() int64 {
	return progression.ClickPower(e.Snapshot(), e.cat)
}

// AutoPower returns the current passive income in coins per second.
func (e *Engine) AutoPower() int64 {
	return progression.AutoPower(e.Snapshot(), e.cat)
}

// GlobalMultiplier returns the current global multiplier.
func (e *Engine) GlobalMultiplier() decimal.Decimal {
	return progression.GlobalMultiplier(e.Snapshot(), e.cat)
}

// PrestigeCost returns the currency needed for the next prestige.
func (e *Engine) PrestigeCost() domain.Coins {
	return progression.PrestigeCost(e.Snapshot().PrestigeLevel)
}

// AchievementPoints returns the points of every unlocked achievement.
func (e *Engine) AchievementPoints() int {
	return progression.AchievementPoints(e.Snapshot(), e.cat)
}

// Stats returns every derived value computed from one snapshot.
func (e *Engine) Stats() Stats {
	st := e.Snapshot()
	now := e.clock()
	cost, frac := progression.PrestigeProgress(st)
	return Stats{
		Currency:          st.Currency,
		ClickPower:        progression.ClickPower(st, e.cat),
		AutoPower:         progression.AutoPower(st, e.cat),
		GlobalMultiplier:  progression.GlobalMultiplier(st, e.cat),
		CritChance:        progression.CritChance(st, e.cat),
		PrestigeCost:      cost,
		PrestigeProgress:  frac,
		AchievementPoints: progression.AchievementPoints(st, e.cat),
		PlaySeconds:       st.PlaySeconds(now),
		At:                now,
	}
}

// Upgrades returns the upgrade shop.
func (e *Engine) Upgrades() []progression.UpgradeView {
	return progression.Upgrades(e.Snapshot(), e.cat)
}

// VisibleQuests returns the quests currently on display.
func (e *Engine) VisibleQuests() []progression.QuestView {
	return progression.VisibleQuests(e.Snapshot(), e.cat, e.clock())
}

// Achievements returns every achievement with its unlock flag.
func (e *Engine) Achievements() []progression.AchievementView {
	return progression.Achievements(e.Snapshot(), e.cat)
}

// SkillTree returns the skill tree view.
func (e *Engine) SkillTree() []progression.SkillView {
	return progression.SkillTree(e.Snapshot(), e.cat)
}

// Catalog returns the static catalog the engine runs on.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.cat
}

func (e *Engine) save(ctx context.Context) error {
	if e.saver == nil {
		return nil
	}
	e.saveMu.Lock()
	defer e.saveMu.Unlock()
	return e.saver.Save(ctx, e.Snapshot())
}

// reject records the action outcome and reports whether err stopped it.
func (e *Engine) reject(ctx context.Context, action string, err error) bool {
	rejected := domain.IsRejection(err)
	metrics.RecordAction(action, err, rejected)
	if err == nil {
		return false
	}
	logger.FromContext(ctx).Debug(LogMsgActionRejected, "action", action, "error", err)
	return true
}

func (e *Engine) publish(ctx context.Context, evt event.Event) {
	if err := e.bus.Publish(ctx, evt); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", evt.Type, "error", err)
	}
}
