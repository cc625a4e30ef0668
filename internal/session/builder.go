// Package session decides which catalog decisions make up a day's session.
package session

import (
	"wealth-sprint/internal/catalog"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"
)

const (
	// Дни с фиксированным набором решений.
	lastFixedDay = 3

	minRandomCount = 3
	maxRandomCount = 4
)

// DecisionSource - источник решений дня. По умолчанию catalog.DecisionsForDay.
type DecisionSource func(day int, purchased []models.Sector) []models.Decision

// Builder собирает список решений для сессии дня.
type Builder struct {
	rng    random.Source
	source DecisionSource
}

// NewBuilder создает Builder поверх каталога.
func NewBuilder(rng random.Source) *Builder {
	return NewBuilderWithSource(rng, catalog.DecisionsForDay)
}

// NewBuilderWithSource позволяет подменить каталог (тесты, контент-пакеты).
func NewBuilderWithSource(rng random.Source, source DecisionSource) *Builder {
	if rng == nil {
		rng = random.NewSystem()
	}
	return &Builder{rng: rng, source: source}
}

// Build возвращает решения для дня.
// Дни 1-3 детерминированы. Начиная с 4-го дня берётся случайное количество
// от 3 до min(4, доступно) без повторов (shuffle, затем срез).
// Пустой пул даёт пустой результат, это не ошибка.
func (b *Builder) Build(day int, purchased []models.Sector) []models.Decision {
	pool := append([]models.Decision(nil), b.source(day, purchased)...)
	if len(pool) == 0 {
		return []models.Decision{}
	}
	if day <= lastFixedDay {
		return pool
	}

	random.Shuffle(b.rng, len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	if len(pool) <= minRandomCount {
		return pool
	}
	n := random.Between(b.rng, minRandomCount, min(maxRandomCount, len(pool)))
	return pool[:n]
}

// PlannedCount сообщает ожидаемый диапазон размера сессии без выборки.
// Только для отображения, каноническое число считает Build.
func (b *Builder) PlannedCount(day int, purchased []models.Sector) (lo, hi int) {
	available := len(b.source(day, purchased))
	if day <= lastFixedDay || available <= minRandomCount {
		return available, available
	}
	return minRandomCount, min(maxRandomCount, available)
}
