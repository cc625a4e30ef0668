package models

import "time"

// SessionState определяет возможные состояния дневной сессии решений.
type SessionState string

const (
	SessionStateIdle            SessionState = "idle"             // Сессии нет.
	SessionStateAwaitingAnswers SessionState = "awaiting_answers" // Игрок отвечает на вопросы.
	SessionStateAllAnswered     SessionState = "all_answered"     // Ответы есть на все вопросы, курсор прошёл конец.
	SessionStateSubmitting      SessionState = "submitting"       // Идёт коммит записей и применение эффектов.
	SessionStateCompleted       SessionState = "completed"        // День завершён.
)

// DailyDecisionSession - агрегат дневной сессии.
// CurrentDecisionIndex всегда в [0, len(Decisions)].
type DailyDecisionSession struct {
	Day                  int              `json:"day"`
	Decisions            []Decision       `json:"decisions"`
	CompletedDecisions   []PlayerDecision `json:"completedDecisions"`
	CurrentDecisionIndex int              `json:"currentDecisionIndex"`
	IsCompleted          bool             `json:"isCompleted"`
	StartTime            time.Time        `json:"startTime"`
	EndTime              *time.Time       `json:"endTime,omitempty"`
}

// Clone возвращает глубокую копию сессии для read-only представлений.
func (s *DailyDecisionSession) Clone() *DailyDecisionSession {
	if s == nil {
		return nil
	}
	c := *s
	c.Decisions = append([]Decision(nil), s.Decisions...)
	c.CompletedDecisions = append([]PlayerDecision(nil), s.CompletedDecisions...)
	if s.EndTime != nil {
		t := *s.EndTime
		c.EndTime = &t
	}
	return &c
}

// SessionSnapshot - то, что видит слой представления.
type SessionSnapshot struct {
	State             SessionState              `json:"state"`
	Session           *DailyDecisionSession     `json:"session,omitempty"`
	CurrentDecision   *Decision                 `json:"currentDecision,omitempty"`
	SelectedOptions   map[string]DecisionOption `json:"selectedOptions"`
	HasCompletedToday bool                      `json:"hasCompletedToday"`
}

// DecisionOutcome - строка разбивки результата по одному решению.
type DecisionOutcome struct {
	Record  PlayerDecision `json:"record"`
	Applied AppliedEffects `json:"applied"`
	// Committed=false означает, что хеш получить не удалось.
	Committed bool `json:"committed"`
}

// SessionResult - данные экрана итогов: суммы по измерениям и разбивка по решениям.
type SessionResult struct {
	Day      int               `json:"day"`
	Totals   Effects           `json:"totals"`
	Outcomes []DecisionOutcome `json:"outcomes"`
}

// VisibleTotals возвращает только ненулевые суммы, как их показывает экран итогов.
func (r SessionResult) VisibleTotals() map[Dimension]int {
	return r.Totals.NonZero()
}
