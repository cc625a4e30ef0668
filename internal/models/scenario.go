package models

import (
	"time"

	"github.com/google/uuid"
)

// ScenarioSection - раздел игры, к которому относится сценарий.
type ScenarioSection string

const (
	SectionFinance    ScenarioSection = "Finance"
	SectionEmotion    ScenarioSection = "Emotion"
	SectionBusiness   ScenarioSection = "Business"
	SectionPersonal   ScenarioSection = "Personal"
	SectionInvestment ScenarioSection = "Investment"
	SectionHRTeam     ScenarioSection = "HR-Team"
)

// Urgency - срочность сценария.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// ScenarioChoice - вариант ответа в сценарии. Описание хранится вне карты эффектов.
type ScenarioChoice struct {
	Text        string  `json:"text"`
	Effects     Effects `json:"effects"`
	Description string  `json:"description,omitempty"`
}

// GameScenario - переиспользуемый сценарий, не привязанный к дню.
type GameScenario struct {
	ID          int              `json:"id"`
	Section     ScenarioSection  `json:"section"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Urgency     Urgency          `json:"urgency"`
	Tags        []string         `json:"tags"`
	Options     []ScenarioChoice `json:"options"`
}

// HasTag проверяет точное совпадение тега.
func (s GameScenario) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ScenarioEvent - облегчённая запись о разрешённом сценарии (без леджера).
type ScenarioEvent struct {
	ID          uuid.UUID      `json:"id"`
	ScenarioID  int            `json:"scenarioId"`
	Title       string         `json:"title"`
	ChoiceIndex int            `json:"choiceIndex"`
	ChoiceText  string         `json:"choiceText"`
	Applied     AppliedEffects `json:"applied"`
	Timestamp   time.Time      `json:"timestamp"`
}
