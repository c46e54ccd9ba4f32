package get_type_distribution

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/CRB-AnalyticsService/internal/api/handlers"
	typeDistribution "github.com/m04kA/CRB-AnalyticsService/internal/usecase/type_distribution"
)

const (
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from/to в формате YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase TypeDistributionUseCase
	logger  Logger
}

func NewHandler(useCase TypeDistributionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/type-distribution
// Query params: from, to (required), resourceType, onlyAvailable, statuses,
// openStart, openEnd, optimalThreshold, busyThreshold
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeStart, rangeEnd, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /analytics/type-distribution - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	opts := handlers.ParseUtilizationOptions(r)
	if v, err := strconv.Atoi(r.URL.Query().Get("optimalThreshold")); err == nil {
		opts.OptimalThreshold = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("busyThreshold")); err == nil {
		opts.BusyThreshold = v
	}

	req := &typeDistribution.Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Options:    opts,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, typeDistribution.ErrInvalidInput), errors.Is(err, typeDistribution.ErrInvalidRange):
			h.logger.Warn("GET /analytics/type-distribution - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /analytics/type-distribution - Failed to build distribution: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/type-distribution - OK: %d types", len(result.Types))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
