package get_weekly_heatmap

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRB-AnalyticsService/internal/api/handlers"
	weeklyHeatmap "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_heatmap"
)

const (
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from/to в формате YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase WeeklyHeatmapUseCase
	logger  Logger
}

func NewHandler(useCase WeeklyHeatmapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/weekly-heatmap
// Query params: from, to (required), resourceType, onlyAvailable, statuses,
// openStart, openEnd; раскладка band'ов задаётся конфигурацией сервиса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeStart, rangeEnd, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /analytics/weekly-heatmap - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &weeklyHeatmap.Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Options:    handlers.ParseUtilizationOptions(r),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, weeklyHeatmap.ErrInvalidInput), errors.Is(err, weeklyHeatmap.ErrInvalidRange):
			h.logger.Warn("GET /analytics/weekly-heatmap - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /analytics/weekly-heatmap - Failed to build heatmap: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/weekly-heatmap - OK: %d bands", len(result.Bands))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
