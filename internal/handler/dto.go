package handler

import (
	"wealth-sprint/internal/models"
)

// --- Запросы --- //

// startSessionRequest: day = 0 означает текущий игровой день.
type startSessionRequest struct {
	Day int `json:"day" validate:"omitempty,min=1"`
}

type selectOptionRequest struct {
	DecisionID string `json:"decisionId" validate:"required"`
	OptionID   string `json:"optionId" validate:"required"`
}

// chooseScenarioRequest: указатель, чтобы отличить 0 от отсутствия поля.
type chooseScenarioRequest struct {
	ChoiceIndex *int `json:"choiceIndex" validate:"required,min=0"`
}

// --- Ответы --- //

// submitResponse - экран итогов: только ненулевые суммы и разбивка по решениям.
type submitResponse struct {
	Day      int                      `json:"day"`
	Totals   map[models.Dimension]int `json:"totals"`
	Outcomes []models.DecisionOutcome `json:"outcomes"`
}

func newSubmitResponse(r *models.SessionResult) submitResponse {
	return submitResponse{Day: r.Day, Totals: r.VisibleTotals(), Outcomes: r.Outcomes}
}

type dayResponse struct {
	Day               int  `json:"day"`
	HasCompletedToday bool `json:"hasCompletedToday"`
}

type advanceDayResponse struct {
	Day     int                    `json:"day"`
	Session models.SessionSnapshot `json:"session"`
}

type statsResponse struct {
	Stats     models.PlayerStats   `json:"stats"`
	Financial models.FinancialData `json:"financial"`
}

type sectorsResponse struct {
	Purchased []models.Sector `json:"purchased"`
	Available []models.Sector `json:"available"`
}

type retryResponse struct {
	Attached int `json:"attached"`
}

type healthResponse struct {
	Status string `json:"status"`
}
