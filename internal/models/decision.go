package models

import (
	"time"

	"github.com/google/uuid"
)

// Sector - бизнес-направление, которое игрок может купить.
type Sector string

const (
	SectorGeneral      Sector = "general"
	SectorFastFood     Sector = "fast_food"
	SectorTechStartups Sector = "tech_startups"
	SectorEcommerce    Sector = "ecommerce"
	SectorHealthcare   Sector = "healthcare"
)

// PurchasableSectors - секторы, которые открываются покупкой.
var PurchasableSectors = []Sector{SectorFastFood, SectorTechStartups, SectorEcommerce, SectorHealthcare}

// IsGeneral сообщает, что решение с этим сектором доступно всегда.
func (s Sector) IsGeneral() bool {
	return s == "" || s == SectorGeneral
}

// IsValid проверяет, что сектор известен.
func (s Sector) IsValid() bool {
	if s.IsGeneral() {
		return true
	}
	for _, p := range PurchasableSectors {
		if p == s {
			return true
		}
	}
	return false
}

// DecisionCategory - тематический тег решения.
type DecisionCategory string

const (
	CategoryRealEstate DecisionCategory = "real_estate"
	CategoryLifestyle  DecisionCategory = "lifestyle"
	CategoryCareer     DecisionCategory = "career"
	CategoryInvestment DecisionCategory = "investment"
	CategoryTeam       DecisionCategory = "team"
	CategoryBusiness   DecisionCategory = "business"
	CategoryHealth     DecisionCategory = "health"
	CategoryFamily     DecisionCategory = "family"
	CategoryEducation  DecisionCategory = "education"
	CategoryOperations DecisionCategory = "operations"
	CategoryMarketing  DecisionCategory = "marketing"
)

// DecisionOption - один вариант ответа на решение. Неизменяем после объявления в каталоге.
type DecisionOption struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	Consequences Effects `json:"consequences"`
	Description  string  `json:"description,omitempty"`
}

// Decision - вопрос дня с 2-3 вариантами.
type Decision struct {
	ID       string           `json:"id"`
	Day      int              `json:"day"`
	Question string           `json:"question"`
	Category DecisionCategory `json:"category"`
	Sector   Sector           `json:"sector,omitempty"`
	Options  []DecisionOption `json:"options"`
}

// Option ищет вариант по ID.
func (d Decision) Option(optionID string) (DecisionOption, bool) {
	for _, o := range d.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return DecisionOption{}, false
}

// PlayerDecision - неизменяемая запись о принятом решении.
// Вопрос, текст варианта и последствия денормализованы, чтобы запись читалась
// даже после изменения каталога. BlockchainHash выставляется не более одного раза.
type PlayerDecision struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	DecisionID         string    `json:"decisionId" db:"decision_id"`
	Day                int       `json:"day" db:"day"`
	Question           string    `json:"question" db:"question"`
	SelectedOptionID   string    `json:"selectedOptionId" db:"selected_option_id"`
	SelectedOptionText string    `json:"selectedOptionText" db:"selected_option_text"`
	Consequences       Effects   `json:"consequences" db:"consequences"`
	Timestamp          time.Time `json:"timestamp" db:"timestamp"`
	BlockchainHash     string    `json:"blockchainHash,omitempty" db:"blockchain_hash"`
	IPFSHash           string    `json:"ipfsHash,omitempty" db:"ipfs_hash"` // Зарезервировано, не заполняется
}

// NewPlayerDecision собирает запись истории из решения и выбранного варианта.
func NewPlayerDecision(d Decision, o DecisionOption, at time.Time) PlayerDecision {
	return PlayerDecision{
		ID:                 uuid.New(),
		DecisionID:         d.ID,
		Day:                d.Day,
		Question:           d.Question,
		SelectedOptionID:   o.ID,
		SelectedOptionText: o.Text,
		Consequences:       o.Consequences,
		Timestamp:          at,
	}
}
