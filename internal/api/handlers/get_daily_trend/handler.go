package get_daily_trend

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRB-AnalyticsService/internal/api/handlers"
	dailyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/daily_trend"
)

const (
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from/to в формате YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase DailyTrendUseCase
	logger  Logger
}

func NewHandler(useCase DailyTrendUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/daily-trend
// Query params: from, to (required, YYYY-MM-DD), resourceType, onlyAvailable,
// statuses, openStart, openEnd
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeStart, rangeEnd, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /analytics/daily-trend - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &dailyTrend.Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Options:    handlers.ParseUtilizationOptions(r),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, dailyTrend.ErrInvalidInput), errors.Is(err, dailyTrend.ErrInvalidRange):
			h.logger.Warn("GET /analytics/daily-trend - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /analytics/daily-trend - Failed to build trend: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/daily-trend - OK: range=[%s, %s)",
		req.RangeStart.Format("2006-01-02"), req.RangeEnd.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
