package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"wealth-sprint/internal/models"
)

// Compile-time checks
var (
	_ PlayerStatsStore = (*MemoryStatsStore)(nil)
	_ FinancialStore   = (*MemoryFinancialStore)(nil)
	_ SectorRegistry   = (*MemorySectorRegistry)(nil)
)

// MemoryStatsStore - статы игрока в памяти процесса.
type MemoryStatsStore struct {
	mu    sync.RWMutex
	stats models.PlayerStats
}

// NewMemoryStatsStore создает хранилище с начальными значениями.
func NewMemoryStatsStore(initial models.PlayerStats) *MemoryStatsStore {
	return &MemoryStatsStore{stats: initial}
}

func (s *MemoryStatsStore) Get(_ context.Context) (models.PlayerStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, nil
}

func (s *MemoryStatsStore) Update(_ context.Context, patch models.PlayerStatsPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = patch.ApplyTo(s.stats)
	return nil
}

// MemoryFinancialStore - финансы игрока в памяти процесса.
type MemoryFinancialStore struct {
	mu   sync.RWMutex
	data models.FinancialData
}

// NewMemoryFinancialStore создает хранилище с начальными значениями.
func NewMemoryFinancialStore(initial models.FinancialData) *MemoryFinancialStore {
	return &MemoryFinancialStore{data: initial}
}

func (s *MemoryFinancialStore) Get(_ context.Context) (models.FinancialData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, nil
}

func (s *MemoryFinancialStore) Update(_ context.Context, patch models.FinancialPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = patch.ApplyTo(s.data)
	return nil
}

// MemorySectorRegistry - множество купленных секторов.
type MemorySectorRegistry struct {
	mu      sync.RWMutex
	sectors map[models.Sector]struct{}
}

// NewMemorySectorRegistry создает реестр с уже купленными секторами.
func NewMemorySectorRegistry(initial ...models.Sector) *MemorySectorRegistry {
	r := &MemorySectorRegistry{sectors: make(map[models.Sector]struct{})}
	for _, s := range initial {
		r.sectors[s] = struct{}{}
	}
	return r
}

func (r *MemorySectorRegistry) PurchasedSectors(_ context.Context) ([]models.Sector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Sector, 0, len(r.sectors))
	for s := range r.sectors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

func (r *MemorySectorRegistry) Purchase(_ context.Context, sector models.Sector) error {
	if sector.IsGeneral() || !sector.IsValid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownSector, sector)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sectors[sector] = struct{}{}
	return nil
}
