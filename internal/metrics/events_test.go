package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GemClicker_Go/internal/domain"
	"github.com/osse101/GemClicker_Go/internal/event"
)

func TestEventMetricsCollector(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	achievementsBefore := testutil.ToFloat64(AchievementsUnlocked)
	prestigesBefore := testutil.ToFloat64(PrestigesTotal)
	critsBefore := testutil.ToFloat64(CriticalHits)
	genericBefore := testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.Generic)))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, event.NewAchievementUnlockedEvent(domain.Achievement{ID: "a_click_1"})))
	require.NoError(t, bus.Publish(ctx, event.NewAchievementUnlockedEvent(domain.Achievement{ID: "a_click_100"})))
	require.NoError(t, bus.Publish(ctx, event.NewAscendedEvent(1, 1)))
	require.NoError(t, bus.Publish(ctx, event.NewCriticalHitEvent(4)))
	require.NoError(t, bus.Publish(ctx, event.NewGenericEvent(domain.MsgSaved)))

	assert.Equal(t, achievementsBefore+2, testutil.ToFloat64(AchievementsUnlocked))
	assert.Equal(t, prestigesBefore+1, testutil.ToFloat64(PrestigesTotal))
	assert.Equal(t, critsBefore+1, testutil.ToFloat64(CriticalHits))
	assert.Equal(t, genericBefore+1, testutil.ToFloat64(EventsPublished.WithLabelValues(string(event.Generic))))
}

func TestRecordAction(t *testing.T) {
	ok := ActionsTotal.WithLabelValues("buy_upgrade", ResultOK)
	rejected := ActionsTotal.WithLabelValues("buy_upgrade", ResultRejected)
	failed := ActionsTotal.WithLabelValues("buy_upgrade", ResultError)
	okBefore, rejBefore, errBefore := testutil.ToFloat64(ok), testutil.ToFloat64(rejected), testutil.ToFloat64(failed)

	RecordAction("buy_upgrade", nil, false)
	RecordAction("buy_upgrade", domain.ErrInsufficientFunds, true)
	RecordAction("buy_upgrade", assert.AnError, false)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, rejBefore+1, testutil.ToFloat64(rejected))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(failed))
}
