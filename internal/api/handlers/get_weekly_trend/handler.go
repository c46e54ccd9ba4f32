package get_weekly_trend

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRB-AnalyticsService/internal/api/handlers"
	weeklyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_trend"
)

const (
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from/to в формате YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase WeeklyTrendUseCase
	logger  Logger
}

func NewHandler(useCase WeeklyTrendUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/weekly-trend
// Query params: from, to (required, YYYY-MM-DD), resourceType, onlyAvailable,
// statuses, openStart, openEnd
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeStart, rangeEnd, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /analytics/weekly-trend - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &weeklyTrend.Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Options:    handlers.ParseUtilizationOptions(r),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, weeklyTrend.ErrInvalidInput), errors.Is(err, weeklyTrend.ErrInvalidRange):
			h.logger.Warn("GET /analytics/weekly-trend - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /analytics/weekly-trend - Failed to build trend: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/weekly-trend - OK: range=[%s, %s)",
		req.RangeStart.Format("2006-01-02"), req.RangeEnd.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
