package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GemClicker_Go/internal/catalog"
	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/event"
)

// MockSaver is a mock implementation of the Saver interface
type MockSaver struct {
	mock.Mock
}

func (m *MockSaver) Save(ctx context.Context, st domain.State) error {
	args := m.Called(ctx, st)
	return args.Error(0)
}

func (m *MockSaver) Delete(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(_ context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) types() []event.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]event.Type, 0, len(r.events))
	for _, evt := range r.events {
		types = append(types, evt.Type)
	}
	return types
}

func newTestEngine(t *testing.T, st domain.State, opts ...Option) (*Engine, *fakeClock, *recorder) {
	t.Helper()
	clock := &fakeClock{now: testStart}
	rec := &recorder{}
	bus := event.NewMemoryBus()
	event.SubscribeAll(bus, rec.handle)

	all := append([]Option{WithClock(clock.Now), WithBus(bus), WithRoller(fixedRoll(0.99))}, opts...)
	return NewEngine(st, catalog.MustDefault(), all...), clock, rec
}

func TestEngine_FreshState(t *testing.T) {
	e, _, _ := newTestEngine(t, freshState())

	assert.Equal(t, int64(1), e.ClickPower())
	assert.Equal(t, int64(0), e.AutoPower())
	assert.Equal(t, "1", e.GlobalMultiplier().String())

	assert.Equal(t, domain.WholeCoins(10000), e.PrestigeCost())
	assert.Zero(t, e.AchievementPoints())

	stats := e.Stats()
	assert.Equal(t, domain.WholeCoins(10000), stats.PrestigeCost)
	assert.Zero(t, stats.PrestigeProgress)
	assert.Len(t, e.Upgrades(), 5)
	assert.Len(t, e.VisibleQuests(), domain.MaxVisibleQuests)
	assert.Len(t, e.SkillTree(), 6)
}

func TestEngine_SnapshotIsACopy(t *testing.T) {
	e, _, _ := newTestEngine(t, freshState())

	snap := e.Snapshot()
	snap.Upgrades[domain.UpgradeClickDouble] = 99
	snap.CompletedQuests = append(snap.CompletedQuests, "q_click_50")

	assert.Zero(t, e.Snapshot().UpgradeLevel(domain.UpgradeClickDouble))
	assert.Empty(t, e.Snapshot().CompletedQuests)
}

func TestEngine_ManualActionUnlocksFirstAchievementOnce(t *testing.T) {
	ctx := context.Background()
	e, clock, rec := newTestEngine(t, freshState())

	res := e.ManualAction(ctx)
	assert.Equal(t, int64(1), res.Amount)

	unlocked := e.Tick(ctx, clock.Advance(100*time.Millisecond))
	assert.Equal(t, []string{"a_click_1"}, unlocked)

	e.ManualAction(ctx)
	unlocked = e.Tick(ctx, clock.Advance(100*time.Millisecond))
	assert.Empty(t, unlocked)

	assert.Equal(t, []string{"a_click_1"}, e.Snapshot().UnlockedAchievements)
	assert.Equal(t, 5, e.AchievementPoints())
	assert.Equal(t, []event.Type{event.AchievementUnlocked}, rec.types())
}

func TestEngine_SkillRootRaisesPower(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.SkillPoints = 1
	st.Upgrades[domain.UpgradeClickDouble] = 1
	e, _, rec := newTestEngine(t, st)

	require.NoError(t, e.BuySkill(ctx, domain.SkillRoot))

	assert.Equal(t, "1.05", e.GlobalMultiplier().String())
	assert.Equal(t, int64(2), e.ClickPower())
	assert.Equal(t, 0, e.Snapshot().SkillPoints)
	assert.Equal(t, []event.Type{event.SkillBought}, rec.types())

	err := e.BuySkill(ctx, domain.SkillRoot)
	require.ErrorIs(t, err, domain.ErrMaxLevel)
	assert.Len(t, rec.types(), 1, "rejections publish nothing")
}

func TestEngine_BuyUpgradeRejectedLeavesState(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.Currency = domain.WholeCoins(10)
	e, _, rec := newTestEngine(t, st)

	err := e.BuyUpgrade(ctx, domain.UpgradeClickDouble)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, st, e.Snapshot())
	assert.Equal(t, int64(1), e.ClickPower())
	assert.Empty(t, rec.types())
}

func TestEngine_BuyUpgradePublishes(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.Currency = domain.WholeCoins(100)
	e, _, rec := newTestEngine(t, st)

	require.NoError(t, e.BuyUpgrade(ctx, domain.UpgradeAutoBot))
	assert.Equal(t, int64(1), e.AutoPower())
	require.Len(t, rec.events, 1)

	payload, ok := rec.events[0].Payload.(event.UpgradeBoughtPayloadV1)
	require.True(t, ok)
	assert.Equal(t, domain.UpgradeAutoBot, payload.UpgradeID)
	assert.Equal(t, 1, payload.Level)
}

func TestEngine_ClaimQuest(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.ClickCount = 50
	e, _, rec := newTestEngine(t, st)

	require.NoError(t, e.ClaimQuest(ctx, "q_click_50"))
	require.ErrorIs(t, e.ClaimQuest(ctx, "q_click_50"), domain.ErrAlreadyClaimed)

	snap := e.Snapshot()
	assert.Equal(t, domain.WholeCoins(100), snap.Currency)
	assert.Equal(t, []event.Type{event.QuestClaimed}, rec.types())

	msg, ok := rec.events[0].MessageID()
	assert.True(t, ok)
	assert.Equal(t, domain.MsgQuestComplete, msg)
}

func TestEngine_CriticalHitPublishes(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.Skills[domain.SkillClickCrit] = 5
	e, _, rec := newTestEngine(t, st, WithRoller(fixedRoll(0.05)))

	res := e.ManualAction(ctx)
	assert.True(t, res.IsCritical)
	assert.Equal(t, int64(2), res.Amount)
	assert.Equal(t, []event.Type{event.CriticalHit}, rec.types())
}

func TestEngine_Prestige(t *testing.T) {
	ctx := context.Background()

	t.Run("saves and publishes", func(t *testing.T) {
		st := freshState()
		st.Currency = domain.WholeCoins(10000)
		st.LifetimeCurrency = domain.WholeCoins(10000)
		saver := new(MockSaver)
		saver.On("Save", mock.Anything, mock.MatchedBy(func(s domain.State) bool {
			return s.PrestigeLevel == 1 && s.Currency == 0
		})).Return(nil).Once()

		e, _, rec := newTestEngine(t, st, WithSaver(saver))
		require.NoError(t, e.Prestige(ctx))

		snap := e.Snapshot()
		assert.Equal(t, 1, snap.PrestigeLevel)
		assert.Equal(t, 1, snap.SkillPoints)
		assert.Equal(t, domain.Coins(0), snap.Currency)
		assert.Equal(t, domain.WholeCoins(10000), snap.LifetimeCurrency)
		assert.Equal(t, "1.01", e.GlobalMultiplier().String())
		assert.Equal(t, domain.WholeCoins(15000), e.PrestigeCost())
		assert.Equal(t, []event.Type{event.Ascended}, rec.types())
		saver.AssertExpectations(t)
	})

	t.Run("save failure does not undo", func(t *testing.T) {
		st := freshState()
		st.Currency = domain.WholeCoins(10000)
		saver := new(MockSaver)
		saver.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

		e, _, _ := newTestEngine(t, st, WithSaver(saver))
		require.NoError(t, e.Prestige(ctx))
		assert.Equal(t, 1, e.Snapshot().PrestigeLevel)
	})

	t.Run("locked", func(t *testing.T) {
		saver := new(MockSaver)
		e, _, _ := newTestEngine(t, freshState(), WithSaver(saver))
		require.ErrorIs(t, e.Prestige(ctx), domain.ErrPrestigeLocked)
		saver.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestEngine_SetLanguage(t *testing.T) {
	ctx := context.Background()
	e, _, _ := newTestEngine(t, freshState())

	require.NoError(t, e.SetLanguage(ctx, "es-MX"))
	assert.Equal(t, domain.LanguageSpanish, e.Snapshot().Language)

	require.ErrorIs(t, e.SetLanguage(ctx, "de"), domain.ErrUnsupportedLanguage)
	assert.Equal(t, domain.LanguageSpanish, e.Snapshot().Language)
}

func TestEngine_Tick(t *testing.T) {
	ctx := context.Background()

	t.Run("accrues for elapsed time", func(t *testing.T) {
		st := freshState()
		st.Upgrades[domain.UpgradeAutoBot] = 1
		e, clock, _ := newTestEngine(t, st)

		e.Tick(ctx, clock.Advance(100*time.Millisecond))
		assert.Equal(t, domain.Coins(100), e.Snapshot().Currency)
	})

	t.Run("elapsed is capped", func(t *testing.T) {
		st := freshState()
		st.Upgrades[domain.UpgradeAutoBot] = 1
		e, clock, _ := newTestEngine(t, st)

		e.Tick(ctx, clock.Advance(time.Hour))
		assert.Equal(t, domain.WholeCoins(1), e.Snapshot().Currency)
	})

	t.Run("clock going backwards accrues nothing", func(t *testing.T) {
		st := freshState()
		st.Upgrades[domain.UpgradeAutoBot] = 1
		e, clock, _ := newTestEngine(t, st)

		e.Tick(ctx, clock.Now().Add(-time.Second))
		assert.Equal(t, domain.Coins(0), e.Snapshot().Currency)

		e.Step(ctx)
		assert.Equal(t, domain.Coins(0), e.Snapshot().Currency)
	})

	t.Run("visible resets the tick baseline", func(t *testing.T) {
		st := freshState()
		st.Upgrades[domain.UpgradeAutoBot] = 1
		e, clock, _ := newTestEngine(t, st)

		clock.Advance(500 * time.Millisecond)
		e.OnLifecycle(ctx, LifecycleVisible)
		e.Tick(ctx, clock.Advance(200*time.Millisecond))
		assert.Equal(t, domain.Coins(200), e.Snapshot().Currency)
	})
}

func TestEngine_ManualSave(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes saved notice", func(t *testing.T) {
		saver := new(MockSaver)
		saver.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
		e, _, rec := newTestEngine(t, freshState(), WithSaver(saver))

		require.NoError(t, e.ManualSave(ctx))
		assert.Equal(t, []event.Type{event.Generic}, rec.types())
		msg, _ := rec.events[0].MessageID()
		assert.Equal(t, domain.MsgSaved, msg)
		saver.AssertExpectations(t)
	})

	t.Run("failure is returned", func(t *testing.T) {
		saver := new(MockSaver)
		saver.On("Save", mock.Anything, mock.Anything).Return(errors.New("boom"))
		e, _, rec := newTestEngine(t, freshState(), WithSaver(saver))

		require.Error(t, e.ManualSave(ctx))
		assert.Empty(t, rec.types())
	})
}

func TestEngine_LifecycleHiddenSaves(t *testing.T) {
	saver := new(MockSaver)
	saver.On("Save", mock.Anything, mock.Anything).Return(nil).Once()
	e, _, _ := newTestEngine(t, freshState(), WithSaver(saver))

	e.OnLifecycle(context.Background(), LifecycleHidden)
	saver.AssertExpectations(t)
}

func TestEngine_HardReset(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.Currency = domain.WholeCoins(500)
	st.PrestigeLevel = 3
	st.Skills[domain.SkillRoot] = 1

	saver := new(MockSaver)
	e, clock, rec := newTestEngine(t, st, WithSaver(saver))
	resetAt := clock.Advance(time.Minute)
	saver.On("Delete", mock.Anything).Run(func(mock.Arguments) {
		assert.Equal(t, domain.NewState(resetAt), e.Snapshot(), "state is swapped before the slot is deleted")
	}).Return(domain.ErrSaveNotFound).Once()

	require.NoError(t, e.HardReset(ctx))
	assert.Equal(t, domain.NewState(resetAt), e.Snapshot())
	assert.Equal(t, []event.Type{event.StateReset}, rec.types())
	saver.AssertExpectations(t)
}

func TestEngine_Shutdown(t *testing.T) {
	saver := new(MockSaver)
	saver.On("Save", mock.Anything, mock.Anything).Return(errors.New("closed")).Twice()
	e, _, _ := newTestEngine(t, freshState(), WithSaver(saver))

	require.Error(t, e.Shutdown(context.Background()))
	require.Error(t, e.Autosave(context.Background()))
	saver.AssertExpectations(t)
}

// gatedSaver blocks its first Save until release is closed.
type gatedSaver struct {
	entered chan struct{}
	release chan struct{}

	mu    sync.Mutex
	calls int
	saved []domain.State
}

func newGatedSaver() *gatedSaver {
	return &gatedSaver{entered: make(chan struct{}), release: make(chan struct{})}
}

func (s *gatedSaver) Save(_ context.Context, st domain.State) error {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()

	if first {
		close(s.entered)
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, st)
	return nil
}

func (s *gatedSaver) Delete(context.Context) error {
	return nil
}

func (s *gatedSaver) last() domain.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved[len(s.saved)-1]
}

func TestEngine_SlowAutosaveDoesNotOverwritePrestigeSave(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.Currency = domain.WholeCoins(10000)
	st.LifetimeCurrency = domain.WholeCoins(10000)
	saver := newGatedSaver()
	e, _, _ := newTestEngine(t, st, WithSaver(saver))

	autosaved := make(chan error, 1)
	go func() { autosaved <- e.Autosave(ctx) }()
	<-saver.entered

	prestiged := make(chan error, 1)
	go func() { prestiged <- e.Prestige(ctx) }()
	require.Eventually(t, func() bool {
		return e.Snapshot().PrestigeLevel == 1
	}, time.Second, time.Millisecond)

	close(saver.release)
	require.NoError(t, <-autosaved)
	require.NoError(t, <-prestiged)

	assert.Len(t, saver.saved, 2)
	assert.Equal(t, 1, saver.last().PrestigeLevel)
	assert.Equal(t, domain.Coins(0), saver.last().Currency)
}

func TestEngine_NoSaverIsNoop(t *testing.T) {
	e, _, _ := newTestEngine(t, freshState())
	assert.NoError(t, e.Autosave(context.Background()))
	assert.NoError(t, e.HardReset(context.Background()))
}

func TestEngine_ConcurrentActions(t *testing.T) {
	ctx := context.Background()
	st := freshState()
	st.Upgrades[domain.UpgradeAutoBot] = 1
	e, clock, _ := newTestEngine(t, st)

	const workers, clicks = 20, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < clicks; j++ {
				e.ManualAction(ctx)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 10; j++ {
			e.Tick(ctx, clock.Advance(100*time.Millisecond))
		}
	}()
	wg.Wait()

	snap := e.Snapshot()
	assert.Equal(t, int64(workers*clicks), snap.ClickCount)
	// one coin per click plus one second of auto income
	assert.Equal(t, domain.WholeCoins(workers*clicks+1), snap.Currency)
	assert.Equal(t, snap.Currency, snap.LifetimeCurrency)
}
