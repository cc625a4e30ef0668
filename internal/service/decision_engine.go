package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"wealth-sprint/internal/effects"
	"wealth-sprint/internal/ledger"
	"wealth-sprint/internal/messaging"
	"wealth-sprint/internal/metrics"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/session"
	"wealth-sprint/internal/store"

	"go.uber.org/zap"
)

// DayProvider - текущий игровой день (clock.GameDay).
type DayProvider interface {
	Current() int
}

// EffectApplier применяет эффекты одного решения к хранилищам.
type EffectApplier interface {
	Apply(ctx context.Context, e models.Effects) (models.AppliedEffects, error)
}

var _ EffectApplier = (*effects.Applier)(nil)

// DecisionEngine - машина состояний дневной сессии решений.
// Все операции сериализуются мьютексом, SubmitAll держит его на весь цикл.
type DecisionEngine struct {
	mu sync.Mutex

	builder   *session.Builder
	sectors   store.SectorProvider
	applier   EffectApplier
	ledger    ledger.Ledger
	committer ledger.Committer
	publisher messaging.EventPublisher
	days      DayProvider
	logger    *zap.Logger
	now       func() time.Time

	state         models.SessionState
	session       *models.DailyDecisionSession
	selected      map[string]models.DecisionOption
	completedDays map[int]bool
	lastResult    *models.SessionResult
}

// NewDecisionEngine создает движок в состоянии idle.
func NewDecisionEngine(
	builder *session.Builder,
	sectors store.SectorProvider,
	applier EffectApplier,
	history ledger.Ledger,
	committer ledger.Committer,
	publisher messaging.EventPublisher,
	days DayProvider,
	logger *zap.Logger,
) *DecisionEngine {
	if publisher == nil {
		publisher = messaging.NopPublisher{}
	}
	return &DecisionEngine{
		builder:       builder,
		sectors:       sectors,
		applier:       applier,
		ledger:        history,
		committer:     committer,
		publisher:     publisher,
		days:          days,
		logger:        logger.Named("DecisionEngine"),
		now:           func() time.Time { return time.Now().UTC() },
		state:         models.SessionStateIdle,
		selected:      make(map[string]models.DecisionOption),
		completedDays: make(map[int]bool),
	}
}

// StartSession собирает сессию дня. Пустой пул не запускает сессию.
func (e *DecisionEngine) StartSession(ctx context.Context, day int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.startSessionLocked(ctx, day)
}

func (e *DecisionEngine) startSessionLocked(ctx context.Context, day int) error {
	log := e.logger.With(zap.Int("day", day))
	if day < 1 {
		return fmt.Errorf("%w: day must be positive, got %d", models.ErrInvalidInput, day)
	}
	if e.state == models.SessionStateSubmitting {
		return models.ErrInvalidSessionState
	}
	if e.completedDays[day] {
		return models.ErrDayAlreadyCompleted
	}

	purchased, err := e.sectors.PurchasedSectors(ctx)
	if err != nil {
		log.Error("Failed to load purchased sectors, using general decisions only", zap.Error(err))
		purchased = nil
	}

	decisions := e.builder.Build(day, purchased)
	if len(decisions) == 0 {
		log.Info("No decisions available for day, session not started")
		return models.ErrEmptySessionCandidate
	}

	if e.session != nil && !e.session.IsCompleted {
		log.Warn("Replacing unfinished session", zap.Int("previousDay", e.session.Day))
	}
	e.session = &models.DailyDecisionSession{
		Day:                day,
		Decisions:          decisions,
		CompletedDecisions: []models.PlayerDecision{},
		StartTime:          e.now(),
	}
	e.selected = make(map[string]models.DecisionOption)
	e.state = models.SessionStateAwaitingAnswers
	metrics.MetricsIncrementSessionsStarted()
	log.Info("Decision session started", zap.Int("decisions", len(decisions)))
	return nil
}

// SelectOption запоминает выбор игрока. Повторный выбор перезаписывает предыдущий.
func (e *DecisionEngine) SelectOption(decisionID, optionID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.answeringLocked() {
		return models.ErrInvalidSessionState
	}
	d, ok := e.decisionLocked(decisionID)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrDecisionNotInSession, decisionID)
	}
	opt, ok := d.Option(optionID)
	if !ok {
		return fmt.Errorf("%w: %s/%s", models.ErrOptionNotFound, decisionID, optionID)
	}
	e.selected[decisionID] = opt
	e.logger.Debug("Option selected", zap.String("decisionID", decisionID), zap.String("optionID", optionID))
	return nil
}

// AdvanceCursor двигает курсор вперёд. На последнем решении при всех ответах переходит в all_answered.
func (e *DecisionEngine) AdvanceCursor() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.answeringLocked() {
		return models.ErrInvalidSessionState
	}
	last := len(e.session.Decisions) - 1
	switch {
	case e.session.CurrentDecisionIndex < last:
		e.session.CurrentDecisionIndex++
	case e.session.CurrentDecisionIndex == last && len(e.unansweredLocked()) == 0:
		e.session.CurrentDecisionIndex = len(e.session.Decisions)
		e.state = models.SessionStateAllAnswered
	}
	return nil
}

// RetreatCursor двигает курсор назад. Ниже 0 не уходит.
func (e *DecisionEngine) RetreatCursor() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.answeringLocked() {
		return models.ErrInvalidSessionState
	}
	if e.state == models.SessionStateAllAnswered {
		e.state = models.SessionStateAwaitingAnswers
		e.session.CurrentDecisionIndex = len(e.session.Decisions) - 1
		return nil
	}
	if e.session.CurrentDecisionIndex > 0 {
		e.session.CurrentDecisionIndex--
	}
	return nil
}

// SubmitAll коммитит и применяет все решения сессии по порядку.
// Без ответа хотя бы на одно решение ничего не применяется.
func (e *DecisionEngine) SubmitAll(ctx context.Context) (*models.SessionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.answeringLocked() {
		return nil, models.ErrInvalidSessionState
	}
	if unanswered := e.unansweredLocked(); len(unanswered) > 0 {
		return nil, &models.IncompleteSubmissionError{Unanswered: unanswered}
	}

	// Отправка не прерывается отменой запроса.
	ctx = context.WithoutCancel(ctx)
	log := e.logger.With(zap.Int("day", e.session.Day))
	e.state = models.SessionStateSubmitting
	log.Info("Submitting decisions", zap.Int("count", len(e.session.Decisions)))

	result := &models.SessionResult{Day: e.session.Day, Outcomes: make([]models.DecisionOutcome, 0, len(e.session.Decisions))}
	for _, d := range e.session.Decisions {
		outcome := e.resolveLocked(ctx, d, e.selected[d.ID])
		result.Totals = result.Totals.Add(outcome.Record.Consequences)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	e.completeLocked()
	e.lastResult = result
	metrics.MetricsIncrementSessionsCompleted()
	log.Info("Decision session completed", zap.Any("totals", result.VisibleTotals()))
	return result, nil
}

// resolveLocked проводит одно решение: запись, хеш, эффекты, история.
func (e *DecisionEngine) resolveLocked(ctx context.Context, d models.Decision, opt models.DecisionOption) models.DecisionOutcome {
	log := e.logger.With(zap.String("decisionID", d.ID), zap.String("optionID", opt.ID))
	record := models.NewPlayerDecision(d, opt, e.now())

	committed := false
	hash, err := e.committer.Commit(ctx, record)
	if err != nil {
		log.Warn("Commitment failed, record kept without hash", zap.Error(err))
		metrics.MetricsIncrementCommitmentFailures()
	} else {
		record.BlockchainHash = hash
		committed = true
	}

	applied, err := e.applier.Apply(ctx, record.Consequences)
	if err != nil {
		log.Error("Failed to apply decision effects", zap.Error(err))
	}

	e.session.CompletedDecisions = append(e.session.CompletedDecisions, record)
	if err := e.ledger.Append(ctx, record); err != nil {
		log.Error("Failed to append decision to history", zap.Error(err))
	}

	outcome := models.DecisionOutcome{Record: record, Applied: applied, Committed: committed}
	metrics.MetricsIncrementDecisionsResolved(committed)
	if err := e.publisher.PublishDecisionResolved(ctx, messaging.NewDecisionResolvedEvent(outcome)); err != nil {
		log.Warn("Failed to publish decision event", zap.Error(err))
	}
	return outcome
}

// FinishSession завершает сессию без проверки ответов.
func (e *DecisionEngine) FinishSession() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case models.SessionStateCompleted:
		return nil
	case models.SessionStateAwaitingAnswers, models.SessionStateAllAnswered:
		e.completeLocked()
		e.logger.Info("Decision session finished early", zap.Int("day", e.session.Day), zap.Int("resolved", len(e.session.CompletedDecisions)))
		return nil
	default:
		return models.ErrInvalidSessionState
	}
}

func (e *DecisionEngine) completeLocked() {
	end := e.now()
	e.session.IsCompleted = true
	e.session.EndTime = &end
	e.completedDays[e.session.Day] = true
	e.selected = make(map[string]models.DecisionOption)
	e.state = models.SessionStateCompleted
}

// ResetAll - административный сброс: idle, пустая история.
func (e *DecisionEngine) ResetAll(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.ledger.Reset(ctx); err != nil {
		return fmt.Errorf("reset history: %w", err)
	}
	e.state = models.SessionStateIdle
	e.session = nil
	e.selected = make(map[string]models.DecisionOption)
	e.completedDays = make(map[int]bool)
	e.lastResult = nil
	e.logger.Warn("Decision engine reset")
	return nil
}

// OnDayAdvanced - слушатель игровых часов.
func (e *DecisionEngine) OnDayAdvanced(ctx context.Context, day int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.completedDays[day] {
		return
	}
	if err := e.startSessionLocked(ctx, day); err != nil {
		if errors.Is(err, models.ErrEmptySessionCandidate) {
			return
		}
		e.logger.Error("Failed to start session on day advance", zap.Int("day", day), zap.Error(err))
	}
}

// RetryCommitments повторяет коммит для записей истории без хеша.
// Возвращает число записей, получивших хеш.
func (e *DecisionEngine) RetryCommitments(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	records, err := e.ledger.History(ctx)
	if err != nil {
		return 0, fmt.Errorf("load history: %w", err)
	}
	attached := 0
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if r.BlockchainHash != "" {
			continue
		}
		hash, err := e.committer.Commit(ctx, r)
		if err != nil {
			e.logger.Warn("Commitment retry failed", zap.String("recordID", r.ID.String()), zap.Error(err))
			metrics.MetricsIncrementCommitmentFailures()
			continue
		}
		if err := e.ledger.AttachHash(ctx, r.ID, hash); err != nil {
			if errors.Is(err, models.ErrHashAlreadySet) {
				continue
			}
			return attached, fmt.Errorf("attach hash to %s: %w", r.ID, err)
		}
		e.attachSessionHashLocked(r, hash)
		attached++
	}
	if attached > 0 {
		e.logger.Info("Commitments retried", zap.Int("attached", attached))
	}
	return attached, nil
}

// attachSessionHashLocked синхронизирует хеш в списке решений текущей сессии.
func (e *DecisionEngine) attachSessionHashLocked(r models.PlayerDecision, hash string) {
	if e.session == nil {
		return
	}
	for i := range e.session.CompletedDecisions {
		if e.session.CompletedDecisions[i].ID == r.ID {
			e.session.CompletedDecisions[i].BlockchainHash = hash
		}
	}
	if e.lastResult == nil {
		return
	}
	for i := range e.lastResult.Outcomes {
		if e.lastResult.Outcomes[i].Record.ID == r.ID {
			e.lastResult.Outcomes[i].Record.BlockchainHash = hash
			e.lastResult.Outcomes[i].Committed = true
		}
	}
}

// Retrieve ищет запись по хешу коммита.
func (e *DecisionEngine) Retrieve(ctx context.Context, hash string) (models.PlayerDecision, error) {
	return e.ledger.Retrieve(ctx, hash)
}

func (e *DecisionEngine) History(ctx context.Context) ([]models.PlayerDecision, error) {
	return e.ledger.History(ctx)
}

func (e *DecisionEngine) HistoryForDay(ctx context.Context, day int) ([]models.PlayerDecision, error) {
	return e.ledger.HistoryForDay(ctx, day)
}

// Snapshot возвращает копию состояния для слоя представления.
func (e *DecisionEngine) Snapshot() models.SessionSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := models.SessionSnapshot{
		State:             e.state,
		Session:           e.session.Clone(),
		SelectedOptions:   e.selectedCopyLocked(),
		HasCompletedToday: e.completedDays[e.days.Current()],
	}
	if d, ok := e.currentDecisionLocked(); ok {
		snap.CurrentDecision = &d
	}
	return snap
}

func (e *DecisionEngine) State() models.SessionState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// CurrentDecision - решение под курсором. false, если сессии нет или курсор за концом.
func (e *DecisionEngine) CurrentDecision() (models.Decision, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.currentDecisionLocked()
}

func (e *DecisionEngine) SelectedOptions() map[string]models.DecisionOption {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selectedCopyLocked()
}

// HasCompletedToday сообщает, завершён ли текущий игровой день.
func (e *DecisionEngine) HasCompletedToday() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.completedDays[e.days.Current()]
}

// LastResult - итоги последней отправки, nil до первой.
func (e *DecisionEngine) LastResult() *models.SessionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.lastResult == nil {
		return nil
	}
	r := *e.lastResult
	r.Outcomes = append([]models.DecisionOutcome(nil), e.lastResult.Outcomes...)
	return &r
}

func (e *DecisionEngine) answeringLocked() bool {
	return e.session != nil &&
		(e.state == models.SessionStateAwaitingAnswers || e.state == models.SessionStateAllAnswered)
}

func (e *DecisionEngine) decisionLocked(id string) (models.Decision, bool) {
	for _, d := range e.session.Decisions {
		if d.ID == id {
			return d, true
		}
	}
	return models.Decision{}, false
}

func (e *DecisionEngine) currentDecisionLocked() (models.Decision, bool) {
	if e.session == nil || e.session.IsCompleted {
		return models.Decision{}, false
	}
	idx := e.session.CurrentDecisionIndex
	if idx < 0 || idx >= len(e.session.Decisions) {
		return models.Decision{}, false
	}
	return e.session.Decisions[idx], true
}

// unansweredLocked - ID решений без выбора, в порядке сессии.
func (e *DecisionEngine) unansweredLocked() []string {
	var out []string
	for _, d := range e.session.Decisions {
		if _, ok := e.selected[d.ID]; !ok {
			out = append(out, d.ID)
		}
	}
	return out
}

func (e *DecisionEngine) selectedCopyLocked() map[string]models.DecisionOption {
	out := make(map[string]models.DecisionOption, len(e.selected))
	for k, v := range e.selected {
		out[k] = v
	}
	return out
}
