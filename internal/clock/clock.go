// Package clock holds the current game day and notifies subscribers when it
// advances.
package clock

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// DayListener вызывается после перехода на новый день.
type DayListener func(ctx context.Context, day int)

// GameDay - счётчик игровых дней. Дни начинаются с 1.
type GameDay struct {
	mu        sync.RWMutex
	day       int
	listeners []DayListener
	logger    *zap.Logger
}

// New создает часы на стартовом дне (значения < 1 заменяются на 1).
func New(startDay int, logger *zap.Logger) *GameDay {
	if startDay < 1 {
		startDay = 1
	}
	return &GameDay{day: startDay, logger: logger.Named("GameDay")}
}

func (g *GameDay) Current() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.day
}

// Subscribe добавляет слушателя. Слушатели вызываются по порядку подписки.
func (g *GameDay) Subscribe(l DayListener) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.listeners = append(g.listeners, l)
}

// Advance переводит часы на следующий день и синхронно уведомляет слушателей.
func (g *GameDay) Advance(ctx context.Context) int {
	g.mu.Lock()
	g.day++
	day := g.day
	listeners := append([]DayListener(nil), g.listeners...)
	g.mu.Unlock()

	g.logger.Info("Game day advanced", zap.Int("day", day))
	for _, l := range listeners {
		l(ctx, day)
	}
	return day
}

// Reset возвращает часы на день startDay без уведомления слушателей.
func (g *GameDay) Reset(startDay int) {
	if startDay < 1 {
		startDay = 1
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.day = startDay
}
