package aggregate

import (
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Scope набор ресурсов, прошедших фильтрацию по типу и статусу доступности
// Определяет и знаменатель утилизации, и множество бронирований,
// которые будут учтены (бронирование ресурса вне scope пропускается)
type Scope struct {
	resources []domain.Resource
	byID      map[string]*domain.Resource
}

// NewScope отбирает ресурсы согласно настройкам агрегации
func NewScope(resources []domain.Resource, opts *domain.UtilizationOptions) *Scope {
	scope := &Scope{
		resources: make([]domain.Resource, 0, len(resources)),
		byID:      make(map[string]*domain.Resource, len(resources)),
	}

	for _, r := range resources {
		if opts.ResourceType != "" && r.Type != opts.ResourceType {
			continue
		}
		if opts.OnlyAvailableResources && !r.IsAvailable() {
			continue
		}
		scope.resources = append(scope.resources, r)
	}

	for i := range scope.resources {
		scope.byID[scope.resources[i].ID] = &scope.resources[i]
	}

	return scope
}

// Resources возвращает ресурсы scope в исходном порядке
func (s *Scope) Resources() []domain.Resource {
	return s.resources
}

// Lookup возвращает ресурс по ID, если он входит в scope
func (s *Scope) Lookup(id string) (*domain.Resource, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Count возвращает количество ресурсов в scope
func (s *Scope) Count() int {
	return len(s.resources)
}

// TotalCapacity возвращает суммарную вместимость ресурсов scope
// Ресурс без явной вместимости считается за единицу
func (s *Scope) TotalCapacity() int {
	total := 0
	for i := range s.resources {
		total += s.resources[i].EffectiveCapacity()
	}
	return total
}
