package ledger

import (
	"context"
	"fmt"
	"sync"

	"wealth-sprint/internal/models"

	"github.com/google/uuid"
)

var _ Ledger = (*MemoryLedger)(nil)

// MemoryLedger - реализация по умолчанию, живёт в памяти процесса.
type MemoryLedger struct {
	mu      sync.RWMutex
	records []models.PlayerDecision // в порядке добавления
	byID    map[uuid.UUID]int
	byHash  map[string]int
}

// NewMemoryLedger создает пустой леджер.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{
		byID:   make(map[uuid.UUID]int),
		byHash: make(map[string]int),
	}
}

func (l *MemoryLedger) Append(_ context.Context, record models.PlayerDecision) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.byID[record.ID]; exists {
		return fmt.Errorf("%w: record %s already appended", models.ErrInvalidInput, record.ID)
	}
	if record.BlockchainHash != "" {
		if _, exists := l.byHash[record.BlockchainHash]; exists {
			return fmt.Errorf("%w: hash %s already used", models.ErrInvalidInput, record.BlockchainHash)
		}
		l.byHash[record.BlockchainHash] = len(l.records)
	}
	l.byID[record.ID] = len(l.records)
	l.records = append(l.records, record)
	return nil
}

func (l *MemoryLedger) AttachHash(_ context.Context, recordID uuid.UUID, hash string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	idx, ok := l.byID[recordID]
	if !ok {
		return models.ErrRecordNotFound
	}
	if l.records[idx].BlockchainHash != "" {
		return models.ErrHashAlreadySet
	}
	l.records[idx].BlockchainHash = hash
	l.byHash[hash] = idx
	return nil
}

func (l *MemoryLedger) Retrieve(_ context.Context, hash string) (models.PlayerDecision, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	idx, ok := l.byHash[hash]
	if !ok {
		return models.PlayerDecision{}, models.ErrRecordNotFound
	}
	return l.records[idx], nil
}

func (l *MemoryLedger) History(_ context.Context) ([]models.PlayerDecision, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]models.PlayerDecision, 0, len(l.records))
	for i := len(l.records) - 1; i >= 0; i-- {
		out = append(out, l.records[i])
	}
	return out, nil
}

func (l *MemoryLedger) HistoryForDay(ctx context.Context, day int) ([]models.PlayerDecision, error) {
	all, err := l.History(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PlayerDecision, 0)
	for _, r := range all {
		if r.Day == day {
			out = append(out, r)
		}
	}
	return out, nil
}

func (l *MemoryLedger) Reset(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = nil
	l.byID = make(map[uuid.UUID]int)
	l.byHash = make(map[string]int)
	return nil
}
