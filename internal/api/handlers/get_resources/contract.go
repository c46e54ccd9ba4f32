package get_resources

import (
	"context"

	"github.com/m04kA/CRB-AnalyticsService/internal/service/catalog/models"
)

type CatalogService interface {
	GetResources(ctx context.Context, req *models.GetResourcesRequest) (*models.ResourceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
