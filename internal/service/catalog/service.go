package catalog

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/CRB-AnalyticsService/internal/service/catalog/models"
)

// Service сервис каталога ресурсов: данные для фильтров дашборда
type Service struct {
	datasets DatasetProvider
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(datasets DatasetProvider, logger Logger) *Service {
	return &Service{
		datasets: datasets,
		logger:   logger,
	}
}

// GetResources возвращает ресурсы, опционально отфильтрованные по типу
// и статусу доступности, плюс список всех встречающихся типов
func (s *Service) GetResources(ctx context.Context, req *models.GetResourcesRequest) (*models.ResourceListResponse, error) {
	s.logger.Info("GetResources: type=%q, onlyAvailable=%v", req.Type, req.OnlyAvailable)

	resources, err := s.datasets.Resources(ctx)
	if err != nil {
		s.logger.Error("GetResources: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: GetResources - dataset error: %v", ErrInternal, err)
	}

	typeSet := make(map[string]struct{})
	filtered := make([]models.ResourceResponse, 0, len(resources))

	for i := range resources {
		r := &resources[i]
		typeSet[r.Type] = struct{}{}

		if req.Type != "" && r.Type != req.Type {
			continue
		}
		if req.OnlyAvailable && !r.IsAvailable() {
			continue
		}
		filtered = append(filtered, models.FromDomainResource(r))
	}

	types := make([]string, 0, len(typeSet))
	for t := range typeSet {
		types = append(types, t)
	}
	sort.Strings(types)

	s.logger.Info("GetResources: returning %d of %d resources, %d types",
		len(filtered), len(resources), len(types))

	return &models.ResourceListResponse{
		Resources: filtered,
		Types:     types,
		Total:     len(filtered),
	}, nil
}
