package get_resources

import (
	"net/http"

	"github.com/m04kA/CRB-AnalyticsService/internal/api/handlers"
	"github.com/m04kA/CRB-AnalyticsService/internal/service/catalog/models"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources
// Query params: type, onlyAvailable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.GetResourcesRequest{
		Type:          r.URL.Query().Get("type"),
		OnlyAvailable: r.URL.Query().Get("onlyAvailable") == "true",
	}

	result, err := h.service.GetResources(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /resources - Failed to list resources: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /resources - OK: %d resources", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
