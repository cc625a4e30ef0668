package effects_test

import (
	"context"
	"errors"
	"testing"

	"wealth-sprint/internal/effects"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/store"
	storeMocks "wealth-sprint/internal/store/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newApplier(stats models.PlayerStats, fin models.FinancialData) (*effects.Applier, *store.MemoryStatsStore, *store.MemoryFinancialStore) {
	s := store.NewMemoryStatsStore(stats)
	f := store.NewMemoryFinancialStore(fin)
	return effects.NewApplier(s, f, zap.NewNop()), s, f
}

func TestClampAndFloor(t *testing.T) {
	assert.Equal(t, 100, effects.Clamp(110, 0, 100))
	assert.Equal(t, 0, effects.Clamp(-4, 0, 100))
	assert.Equal(t, 42, effects.Clamp(42, 0, 100))
	assert.Equal(t, 0, effects.Floor(-40000))
	assert.Equal(t, 12, effects.Floor(12))
}

func TestSumAndSplit(t *testing.T) {
	total := effects.Sum(
		models.Effects{Logic: 8, Stress: -5},
		models.Effects{Logic: 5, Emotion: -5, Stress: 5},
	)
	assert.Equal(t, models.Effects{Logic: 13, Emotion: -5}, total)
	assert.Equal(t, map[models.Dimension]int{models.DimensionLogic: 13, models.DimensionEmotion: -5}, total.NonZero())

	stats, fin := effects.Split(models.Effects{Financial: -1000, BankBalance: 300, InHandCash: 50, Karma: 2})
	assert.Equal(t, -700, fin.BankBalance, "financial and bankBalance share the bank balance")
	assert.Equal(t, 50, fin.InHandCash)
	assert.Equal(t, 2, stats.Karma)
}

func TestApply_ClampsStats(t *testing.T) {
	ctx := context.Background()
	a, statsStore, _ := newApplier(models.PlayerStats{Emotion: 95, Stress: 3}, models.FinancialData{})

	applied, err := a.Apply(ctx, models.Effects{Emotion: 15, Stress: -10})
	require.NoError(t, err)
	assert.Equal(t, 100, applied.Stats.Emotion)
	assert.Equal(t, 0, applied.Stats.Stress)

	got, _ := statsStore.Get(ctx)
	assert.Equal(t, 100, got.Emotion)
	assert.Equal(t, 0, got.Stress)
}

func TestApply_FloorsMoney(t *testing.T) {
	ctx := context.Background()
	a, _, finStore := newApplier(models.PlayerStats{}, models.FinancialData{BankBalance: 10000, InHandCash: 500, MonthlyExpenses: 100, NetWorth: 10500})

	_, err := a.Apply(ctx, models.Effects{Financial: -50000, InHandCash: -9000, MonthlyExpenses: -700})
	require.NoError(t, err)

	got, _ := finStore.Get(ctx)
	assert.Equal(t, 0, got.BankBalance)
	assert.Equal(t, 0, got.InHandCash)
	assert.Equal(t, 0, got.MonthlyExpenses)
	assert.Equal(t, 0, got.NetWorth, "net worth follows the actual liquid change")
}

func TestApply_OnlyTouchedFieldsAreUpdated(t *testing.T) {
	ctx := context.Background()
	statsMock := new(storeMocks.PlayerStatsStore)
	finMock := new(storeMocks.FinancialStore)
	a := effects.NewApplier(statsMock, finMock, zap.NewNop())

	statsMock.On("Get", ctx).Return(models.PlayerStats{Logic: 50, Energy: 40}, nil).Once()
	statsMock.On("Update", ctx, mock.MatchedBy(func(p models.PlayerStatsPatch) bool {
		return p.Logic != nil && *p.Logic == 58 && p.Energy == nil && p.Emotion == nil
	})).Return(nil).Once()
	finMock.On("Get", ctx).Return(models.FinancialData{BankBalance: 1000}, nil).Once()

	_, err := a.Apply(ctx, models.Effects{Logic: 8})
	require.NoError(t, err)
	statsMock.AssertExpectations(t)
	finMock.AssertExpectations(t)
	finMock.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestApply_StoreError(t *testing.T) {
	ctx := context.Background()
	statsMock := new(storeMocks.PlayerStatsStore)
	finMock := new(storeMocks.FinancialStore)
	a := effects.NewApplier(statsMock, finMock, zap.NewNop())

	boom := errors.New("connection refused")
	statsMock.On("Get", ctx).Return(models.PlayerStats{}, boom).Once()

	_, err := a.Apply(ctx, models.Effects{Logic: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestApplyAll_SequentialClamping(t *testing.T) {
	ctx := context.Background()
	a, statsStore, _ := newApplier(models.PlayerStats{Energy: 90}, models.FinancialData{})

	// +20 упирается в 100, затем -20 даёт 80, а не 90.
	total, last, err := a.ApplyAll(ctx, []models.Effects{{Energy: 20}, {Energy: -20}})
	require.NoError(t, err)
	assert.Equal(t, 0, total.Energy)
	assert.Equal(t, 80, last.Stats.Energy)

	got, _ := statsStore.Get(ctx)
	assert.Equal(t, 80, got.Energy)
}
