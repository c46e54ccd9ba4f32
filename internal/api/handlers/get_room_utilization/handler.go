package get_room_utilization

import (
	"errors"
	"net/http"

	"github.com/m04kA/CRB-AnalyticsService/internal/api/handlers"
	roomUtilization "github.com/m04kA/CRB-AnalyticsService/internal/usecase/room_utilization"
)

const (
	msgInvalidDateRange = "некорректный диапазон дат, ожидается from/to в формате YYYY-MM-DD"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase RoomUtilizationUseCase
	logger  Logger
}

func NewHandler(useCase RoomUtilizationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/room-utilization
// Query params: from, to (required), resourceType, onlyAvailable, statuses,
// openStart, openEnd
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rangeStart, rangeEnd, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /analytics/room-utilization - Invalid date range: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateRange)
		return
	}

	req := &roomUtilization.Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Options:    handlers.ParseUtilizationOptions(r),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, roomUtilization.ErrInvalidInput), errors.Is(err, roomUtilization.ErrInvalidRange):
			h.logger.Warn("GET /analytics/room-utilization - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)
		default:
			h.logger.Error("GET /analytics/room-utilization - Failed to build ranking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /analytics/room-utilization - OK: %d rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
