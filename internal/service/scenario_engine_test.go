package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"wealth-sprint/internal/catalog"
	"wealth-sprint/internal/effects"
	"wealth-sprint/internal/messaging"
	messagingmocks "wealth-sprint/internal/messaging/mocks"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"
	"wealth-sprint/internal/service"
	"wealth-sprint/internal/store"
	storemocks "wealth-sprint/internal/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScenarioEngine(stats store.PlayerStatsStore, fin store.FinancialStore, publisher messaging.EventPublisher, delay time.Duration) *service.ScenarioEngine {
	applier := effects.NewApplier(stats, fin, zap.NewNop())
	return service.NewScenarioEngine(random.New(7), stats, fin, applier, publisher, delay, zap.NewNop())
}

func TestScenarioEngine_ContextualPick(t *testing.T) {
	ctx := context.Background()
	poor := initialFinancial
	poor.BankBalance = 1000
	e := newScenarioEngine(store.NewMemoryStatsStore(initialStats), store.NewMemoryFinancialStore(poor), nil, 0)

	s, err := e.Next(ctx)
	require.NoError(t, err)
	assert.True(t, s.HasTag(catalog.TagFinancialCrisis))

	current, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, s.ID, current.ID)
}

func TestScenarioEngine_FallsBackToRandom(t *testing.T) {
	ctx := context.Background()
	stats := new(storemocks.PlayerStatsStore)
	stats.On("Get", mock.Anything).Return(models.PlayerStats{}, errors.New("redis unavailable"))
	fin := new(storemocks.FinancialStore)
	fin.On("Get", mock.Anything).Return(initialFinancial, nil)

	e := newScenarioEngine(stats, fin, nil, 0)
	s, err := e.Next(ctx)
	require.NoError(t, err)
	_, known := catalog.ScenarioByID(s.ID)
	assert.True(t, known)
}

func TestScenarioEngine_Choose(t *testing.T) {
	ctx := context.Background()
	stats := store.NewMemoryStatsStore(initialStats)
	fin := store.NewMemoryFinancialStore(initialFinancial)
	publisher := new(messagingmocks.EventPublisher)
	e := newScenarioEngine(stats, fin, publisher, 0)

	_, err := e.Choose(ctx, 0)
	assert.ErrorIs(t, err, models.ErrNoActiveScenario)

	s, err := e.Next(ctx)
	require.NoError(t, err)

	_, err = e.Choose(ctx, len(s.Options))
	assert.ErrorIs(t, err, models.ErrInvalidInput)
	_, err = e.Choose(ctx, -1)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	publisher.On("PublishScenarioResolved", mock.Anything, mock.MatchedBy(func(ev messaging.ScenarioResolvedEvent) bool {
		return ev.Type == messaging.EventScenarioResolved && ev.ScenarioID == s.ID && ev.Effects == s.Options[0].Effects
	})).Return(nil).Once()

	ev, err := e.Choose(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, s.ID, ev.ScenarioID)
	assert.Equal(t, s.Options[0].Text, ev.ChoiceText)

	// Те же эффекты на свежих хранилищах дают то же состояние.
	wantStats := store.NewMemoryStatsStore(initialStats)
	wantFin := store.NewMemoryFinancialStore(initialFinancial)
	_, err = effects.NewApplier(wantStats, wantFin, zap.NewNop()).Apply(ctx, s.Options[0].Effects)
	require.NoError(t, err)
	got, _ := stats.Get(ctx)
	want, _ := wantStats.Get(ctx)
	assert.Equal(t, want, got)
	assert.Equal(t, want, ev.Applied.Stats)

	_, ok := e.Current()
	assert.False(t, ok, "no auto-advance with zero delay")
	assert.Len(t, e.Events(), 1)
	publisher.AssertExpectations(t)

	e.Reset()
	assert.Empty(t, e.Events())
}

func TestScenarioEngine_AutoAdvance(t *testing.T) {
	ctx := context.Background()
	e := newScenarioEngine(store.NewMemoryStatsStore(initialStats), store.NewMemoryFinancialStore(initialFinancial), nil, 20*time.Millisecond)
	defer e.Stop()

	_, err := e.Next(ctx)
	require.NoError(t, err)
	_, err = e.Choose(ctx, 0)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, ok := e.Current()
		return ok
	}, time.Second, 5*time.Millisecond)
}

func TestScenarioEngine_StopCancelsAutoAdvance(t *testing.T) {
	ctx := context.Background()
	e := newScenarioEngine(store.NewMemoryStatsStore(initialStats), store.NewMemoryFinancialStore(initialFinancial), nil, 30*time.Millisecond)

	_, err := e.Next(ctx)
	require.NoError(t, err)
	_, err = e.Choose(ctx, 0)
	require.NoError(t, err)
	e.Stop()

	time.Sleep(100 * time.Millisecond)
	_, ok := e.Current()
	assert.False(t, ok)
}
