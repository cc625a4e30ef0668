package handler

import (
	"errors"
	"net/http"
	"strconv"

	"wealth-sprint/internal/clock"
	"wealth-sprint/internal/metrics"
	"wealth-sprint/internal/models"
	"wealth-sprint/internal/service"
	"wealth-sprint/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// APIError представляет стандартизированный ответ об ошибке.
type APIError struct {
	Message    string   `json:"message"`
	Unanswered []string `json:"unanswered,omitempty"` // Только для незавершённой отправки
}

// CustomValidator подключает validator v10 к echo.Context.Validate.
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// GameHandler обрабатывает HTTP запросы движка решений.
type GameHandler struct {
	decisions *service.DecisionEngine
	scenarios *service.ScenarioEngine
	days      *clock.GameDay
	stats     store.PlayerStatsStore
	financial store.FinancialStore
	sectors   store.SectorRegistry
	startDay  int
	logger    *zap.Logger
}

// NewGameHandler создает новый GameHandler.
func NewGameHandler(
	decisions *service.DecisionEngine,
	scenarios *service.ScenarioEngine,
	days *clock.GameDay,
	stats store.PlayerStatsStore,
	financial store.FinancialStore,
	sectors store.SectorRegistry,
	startDay int,
	logger *zap.Logger,
) *GameHandler {
	return &GameHandler{
		decisions: decisions,
		scenarios: scenarios,
		days:      days,
		stats:     stats,
		financial: financial,
		sectors:   sectors,
		startDay:  startDay,
		logger:    logger.Named("GameHandler"),
	}
}

// RegisterRoutes регистрирует маршруты API.
func (h *GameHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	api := e.Group("/api/v1")

	sessionGroup := api.Group("/session")
	{
		sessionGroup.GET("", h.getSession)
		sessionGroup.POST("/start", h.startSession)
		sessionGroup.POST("/select", h.selectOption)
		sessionGroup.POST("/advance", h.advanceCursor)
		sessionGroup.POST("/retreat", h.retreatCursor)
		sessionGroup.POST("/submit", h.submitAll)
		sessionGroup.POST("/finish", h.finishSession)
	}

	api.GET("/history", h.getHistory)
	api.GET("/ledger/:hash", h.getLedgerRecord)
	api.POST("/ledger/retry", h.retryCommitments)

	api.GET("/day", h.getDay)
	api.POST("/day/advance", h.advanceDay)

	scenarioGroup := api.Group("/scenario")
	{
		scenarioGroup.GET("", h.getScenario)
		scenarioGroup.POST("/next", h.nextScenario)
		scenarioGroup.POST("/choose", h.chooseScenario)
		scenarioGroup.GET("/events", h.getScenarioEvents)
	}

	api.GET("/stats", h.getStats)
	api.GET("/sectors", h.getSectors)
	api.POST("/sectors/:sector/purchase", h.purchaseSector)

	api.POST("/admin/reset", h.resetAll)
}

// handleServiceError маппит ошибки движка на HTTP статусы.
func handleServiceError(c echo.Context, err error) error {
	var statusCode int
	apiErr := APIError{Message: err.Error()}

	var incomplete *models.IncompleteSubmissionError
	switch {
	case errors.As(err, &incomplete):
		statusCode = http.StatusUnprocessableEntity
		apiErr.Unanswered = incomplete.Unanswered
	case errors.Is(err, models.ErrEmptySessionCandidate),
		errors.Is(err, models.ErrDecisionNotInSession),
		errors.Is(err, models.ErrOptionNotFound),
		errors.Is(err, models.ErrRecordNotFound),
		errors.Is(err, models.ErrNoActiveScenario):
		statusCode = http.StatusNotFound
	case errors.Is(err, models.ErrInvalidSessionState),
		errors.Is(err, models.ErrDayAlreadyCompleted),
		errors.Is(err, models.ErrHashAlreadySet):
		statusCode = http.StatusConflict
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrUnknownSector):
		statusCode = http.StatusBadRequest
	default:
		statusCode = http.StatusInternalServerError
		apiErr = APIError{Message: "Internal server error"}
	}
	return c.JSON(statusCode, apiErr)
}

// bindAndValidate разбирает тело запроса и проверяет его тегами validate.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return c.JSON(http.StatusBadRequest, APIError{Message: "Invalid request body: " + err.Error()})
	}
	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, APIError{Message: "Validation failed: " + err.Error()})
	}
	return nil
}

// --- Обработчики HTTP --- //

func (h *GameHandler) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

func (h *GameHandler) getSession(c echo.Context) error {
	return c.JSON(http.StatusOK, h.decisions.Snapshot())
}

func (h *GameHandler) startSession(c echo.Context) error {
	var req startSessionRequest
	if err := bindAndValidate(c, &req); err != nil || c.Response().Committed {
		return err
	}
	day := req.Day
	if day == 0 {
		day = h.days.Current()
	}
	if err := h.decisions.StartSession(c.Request().Context(), day); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.decisions.Snapshot())
}

func (h *GameHandler) selectOption(c echo.Context) error {
	var req selectOptionRequest
	if err := bindAndValidate(c, &req); err != nil || c.Response().Committed {
		return err
	}
	if err := h.decisions.SelectOption(req.DecisionID, req.OptionID); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.decisions.Snapshot())
}

func (h *GameHandler) advanceCursor(c echo.Context) error {
	if err := h.decisions.AdvanceCursor(); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.decisions.Snapshot())
}

func (h *GameHandler) retreatCursor(c echo.Context) error {
	if err := h.decisions.RetreatCursor(); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.decisions.Snapshot())
}

func (h *GameHandler) submitAll(c echo.Context) error {
	result, err := h.decisions.SubmitAll(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, newSubmitResponse(result))
}

func (h *GameHandler) finishSession(c echo.Context) error {
	if err := h.decisions.FinishSession(); err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, h.decisions.Snapshot())
}

func (h *GameHandler) getHistory(c echo.Context) error {
	ctx := c.Request().Context()
	dayStr := c.QueryParam("day")
	if dayStr == "" {
		records, err := h.decisions.History(ctx)
		if err != nil {
			h.logger.Error("Failed to load history", zap.Error(err))
			return handleServiceError(c, err)
		}
		return c.JSON(http.StatusOK, records)
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil || day < 1 {
		return c.JSON(http.StatusBadRequest, APIError{Message: "Invalid day parameter"})
	}
	records, err := h.decisions.HistoryForDay(ctx, day)
	if err != nil {
		h.logger.Error("Failed to load history for day", zap.Int("day", day), zap.Error(err))
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, records)
}

func (h *GameHandler) getLedgerRecord(c echo.Context) error {
	record, err := h.decisions.Retrieve(c.Request().Context(), c.Param("hash"))
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, record)
}

func (h *GameHandler) retryCommitments(c echo.Context) error {
	attached, err := h.decisions.RetryCommitments(c.Request().Context())
	if err != nil {
		h.logger.Error("Commitment retry failed", zap.Error(err))
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, retryResponse{Attached: attached})
}

func (h *GameHandler) getDay(c echo.Context) error {
	return c.JSON(http.StatusOK, dayResponse{Day: h.days.Current(), HasCompletedToday: h.decisions.HasCompletedToday()})
}

func (h *GameHandler) advanceDay(c echo.Context) error {
	day := h.days.Advance(c.Request().Context())
	metrics.MetricsIncrementDaysAdvanced()
	return c.JSON(http.StatusOK, advanceDayResponse{Day: day, Session: h.decisions.Snapshot()})
}

func (h *GameHandler) getScenario(c echo.Context) error {
	s, ok := h.scenarios.Current()
	if !ok {
		return handleServiceError(c, models.ErrNoActiveScenario)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *GameHandler) nextScenario(c echo.Context) error {
	s, err := h.scenarios.Next(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *GameHandler) chooseScenario(c echo.Context) error {
	var req chooseScenarioRequest
	if err := bindAndValidate(c, &req); err != nil || c.Response().Committed {
		return err
	}
	ev, err := h.scenarios.Choose(c.Request().Context(), *req.ChoiceIndex)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, ev)
}

func (h *GameHandler) getScenarioEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.scenarios.Events())
}

func (h *GameHandler) getStats(c echo.Context) error {
	ctx := c.Request().Context()
	stats, err := h.stats.Get(ctx)
	if err != nil {
		h.logger.Error("Failed to load player stats", zap.Error(err))
		return handleServiceError(c, err)
	}
	fin, err := h.financial.Get(ctx)
	if err != nil {
		h.logger.Error("Failed to load financial data", zap.Error(err))
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, statsResponse{Stats: stats, Financial: fin})
}

func (h *GameHandler) getSectors(c echo.Context) error {
	purchased, err := h.sectors.PurchasedSectors(c.Request().Context())
	if err != nil {
		h.logger.Error("Failed to load sectors", zap.Error(err))
		return handleServiceError(c, err)
	}
	return c.JSON(http.StatusOK, sectorsResponse{Purchased: purchased, Available: models.PurchasableSectors})
}

func (h *GameHandler) purchaseSector(c echo.Context) error {
	sector := models.Sector(c.Param("sector"))
	if err := h.sectors.Purchase(c.Request().Context(), sector); err != nil {
		return handleServiceError(c, err)
	}
	h.logger.Info("Sector purchased", zap.String("sector", string(sector)))
	return h.getSectors(c)
}

func (h *GameHandler) resetAll(c echo.Context) error {
	if err := h.decisions.ResetAll(c.Request().Context()); err != nil {
		h.logger.Error("Reset failed", zap.Error(err))
		return handleServiceError(c, err)
	}
	h.scenarios.Reset()
	h.days.Reset(h.startDay)
	return c.NoContent(http.StatusNoContent)
}
