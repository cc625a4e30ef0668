package mocks

import (
	"context"

	"wealth-sprint/internal/models"

	"github.com/stretchr/testify/mock"
)

// Mock PlayerStatsStore
type PlayerStatsStore struct {
	mock.Mock
}

func (m *PlayerStatsStore) Get(ctx context.Context) (models.PlayerStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PlayerStats), args.Error(1)
}

func (m *PlayerStatsStore) Update(ctx context.Context, patch models.PlayerStatsPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

// Mock FinancialStore
type FinancialStore struct {
	mock.Mock
}

func (m *FinancialStore) Get(ctx context.Context) (models.FinancialData, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.FinancialData), args.Error(1)
}

func (m *FinancialStore) Update(ctx context.Context, patch models.FinancialPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

// Mock SectorProvider
type SectorProvider struct {
	mock.Mock
}

func (m *SectorProvider) PurchasedSectors(ctx context.Context) ([]models.Sector, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]models.Sector), args.Error(1)
	}
	return nil, args.Error(1)
}
