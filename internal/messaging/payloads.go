package messaging

import (
	"time"

	"wealth-sprint/internal/models"
)

// EventType - тип события в очереди.
type EventType string

const (
	EventDecisionResolved EventType = "decision_resolved"
	EventScenarioResolved EventType = "scenario_resolved"
)

// DecisionResolvedEvent публикуется после разрешения каждого решения сессии.
type DecisionResolvedEvent struct {
	Type             EventType      `json:"type"`
	RecordID         string         `json:"record_id"`
	DecisionID       string         `json:"decision_id"`
	Day              int            `json:"day"`
	SelectedOptionID string         `json:"selected_option_id"`
	Consequences     models.Effects `json:"consequences"`
	BlockchainHash   string         `json:"blockchain_hash,omitempty"`
	Committed        bool           `json:"committed"`
	Timestamp        time.Time      `json:"timestamp"`
}

// NewDecisionResolvedEvent собирает событие из результата разрешения.
func NewDecisionResolvedEvent(outcome models.DecisionOutcome) DecisionResolvedEvent {
	r := outcome.Record
	return DecisionResolvedEvent{
		Type:             EventDecisionResolved,
		RecordID:         r.ID.String(),
		DecisionID:       r.DecisionID,
		Day:              r.Day,
		SelectedOptionID: r.SelectedOptionID,
		Consequences:     r.Consequences,
		BlockchainHash:   r.BlockchainHash,
		Committed:        outcome.Committed,
		Timestamp:        r.Timestamp,
	}
}

// ScenarioResolvedEvent публикуется после выбора варианта в сценарии.
type ScenarioResolvedEvent struct {
	Type        EventType      `json:"type"`
	EventID     string         `json:"event_id"`
	ScenarioID  int            `json:"scenario_id"`
	ChoiceIndex int            `json:"choice_index"`
	Effects     models.Effects `json:"effects"`
	Timestamp   time.Time      `json:"timestamp"`
}

// NewScenarioResolvedEvent собирает событие из записи сценария.
func NewScenarioResolvedEvent(ev models.ScenarioEvent, effects models.Effects) ScenarioResolvedEvent {
	return ScenarioResolvedEvent{
		Type:        EventScenarioResolved,
		EventID:     ev.ID.String(),
		ScenarioID:  ev.ScenarioID,
		ChoiceIndex: ev.ChoiceIndex,
		Effects:     effects,
		Timestamp:   ev.Timestamp,
	}
}
