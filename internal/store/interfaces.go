// Package store contains the ports for the external player-state collaborators
// (player stats, financial data, sector ownership) and their implementations.
package store

import (
	"context"

	"wealth-sprint/internal/models"
)

// PlayerStatsStore хранит статы игрока. Update получает уже зажатые абсолютные значения.
type PlayerStatsStore interface {
	Get(ctx context.Context) (models.PlayerStats, error)
	Update(ctx context.Context, patch models.PlayerStatsPatch) error
}

// FinancialStore хранит финансовые данные игрока.
type FinancialStore interface {
	Get(ctx context.Context) (models.FinancialData, error)
	Update(ctx context.Context, patch models.FinancialPatch) error
}

// SectorProvider сообщает, какие секторы куплены.
type SectorProvider interface {
	PurchasedSectors(ctx context.Context) ([]models.Sector, error)
}

// SectorRegistry - SectorProvider с возможностью покупки.
type SectorRegistry interface {
	SectorProvider
	Purchase(ctx context.Context, sector models.Sector) error
}
