package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wealth-sprint/internal/catalog"
	"wealth-sprint/internal/messaging"
	"wealth-sprint/internal/metrics"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/random"
	"wealth-sprint/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScenarioEngine ведёт поток одиночных сценариев: выбор, применение, автопереход.
type ScenarioEngine struct {
	mu sync.Mutex

	rng       random.Source
	stats     store.PlayerStatsStore
	financial store.FinancialStore
	applier   EffectApplier
	publisher messaging.EventPublisher
	delay     time.Duration
	logger    *zap.Logger

	current *models.GameScenario
	events  []models.ScenarioEvent
	timer   *time.Timer
	stopped bool
}

// NewScenarioEngine создает движок. delay <= 0 отключает автопереход.
func NewScenarioEngine(
	rng random.Source,
	stats store.PlayerStatsStore,
	financial store.FinancialStore,
	applier EffectApplier,
	publisher messaging.EventPublisher,
	delay time.Duration,
	logger *zap.Logger,
) *ScenarioEngine {
	if rng == nil {
		rng = random.NewSystem()
	}
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &ScenarioEngine{
		rng:       rng,
		stats:     stats,
		financial: financial,
		applier:   applier,
		publisher: publisher,
		delay:     delay,
		logger:    logger.Named("ScenarioEngine"),
	}
}

// Current - активный сценарий, false если его нет.
func (e *ScenarioEngine) Current() (models.GameScenario, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.current == nil {
		return models.GameScenario{}, false
	}
	return *e.current, true
}

// Next выбирает следующий сценарий по состоянию игрока, иначе случайный.
func (e *ScenarioEngine) Next(ctx context.Context) (models.GameScenario, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextLocked(ctx)
}

func (e *ScenarioEngine) nextLocked(ctx context.Context) (models.GameScenario, error) {
	e.cancelTimerLocked()

	var candidates []models.GameScenario
	stats, statsErr := e.stats.Get(ctx)
	fin, finErr := e.financial.Get(ctx)
	if statsErr != nil || finErr != nil {
		e.logger.Warn("Player state unavailable, picking random scenario",
			zap.NamedError("statsErr", statsErr), zap.NamedError("financialErr", finErr))
	} else {
		candidates = catalog.ContextualScenarios(e.rng, stats, fin)
	}
	if len(candidates) == 0 {
		candidates = catalog.RandomScenarios(e.rng, 1)
	}
	if len(candidates) == 0 {
		return models.GameScenario{}, models.ErrNoActiveScenario
	}

	s := candidates[0]
	e.current = &s
	e.logger.Info("Scenario loaded", zap.Int("scenarioID", s.ID), zap.String("section", string(s.Section)))
	return s, nil
}

// Choose применяет выбранный вариант сразу и планирует загрузку следующего сценария.
func (e *ScenarioEngine) Choose(ctx context.Context, choiceIndex int) (models.ScenarioEvent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.current == nil {
		return models.ScenarioEvent{}, models.ErrNoActiveScenario
	}
	s := *e.current
	if choiceIndex < 0 || choiceIndex >= len(s.Options) {
		return models.ScenarioEvent{}, fmt.Errorf("%w: choice %d out of range for scenario %d", models.ErrInvalidInput, choiceIndex, s.ID)
	}
	choice := s.Options[choiceIndex]
	log := e.logger.With(zap.Int("scenarioID", s.ID), zap.Int("choice", choiceIndex))

	applied, err := e.applier.Apply(ctx, choice.Effects)
	if err != nil {
		log.Error("Failed to apply scenario effects", zap.Error(err))
	}

	ev := models.ScenarioEvent{
		ID:          uuid.New(),
		ScenarioID:  s.ID,
		Title:       s.Title,
		ChoiceIndex: choiceIndex,
		ChoiceText:  choice.Text,
		Applied:     applied,
		Timestamp:   time.Now().UTC(),
	}
	e.events = append(e.events, ev)
	e.current = nil
	metrics.MetricsIncrementScenariosResolved(string(s.Section))

	if err := e.publisher.PublishScenarioResolved(ctx, messaging.NewScenarioResolvedEvent(ev, choice.Effects)); err != nil {
		log.Warn("Failed to publish scenario event", zap.Error(err))
	}

	e.scheduleNextLocked()
	log.Info("Scenario resolved")
	return ev, nil
}

// Events - разрешённые сценарии в порядке выбора.
func (e *ScenarioEngine) Events() []models.ScenarioEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]models.ScenarioEvent(nil), e.events...)
}

// Stop отменяет запланированную загрузку и выключает автопереход.
func (e *ScenarioEngine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopped = true
	e.cancelTimerLocked()
}

// Reset очищает активный сценарий и журнал событий.
func (e *ScenarioEngine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancelTimerLocked()
	e.current = nil
	e.events = nil
}

func (e *ScenarioEngine) scheduleNextLocked() {
	if e.stopped || e.delay <= 0 {
		return
	}
	var t *time.Timer
	t = time.AfterFunc(e.delay, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		// Таймер мог быть отменён или заменён, пока ждали мьютекс.
		if e.timer != t || e.stopped {
			return
		}
		e.timer = nil
		if _, err := e.nextLocked(context.Background()); err != nil {
			e.logger.Error("Auto-advance failed", zap.Error(err))
		}
	})
	e.timer = t
}

func (e *ScenarioEngine) cancelTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
