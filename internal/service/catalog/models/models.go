package models

import "github.com/m04kA/CRB-AnalyticsService/internal/domain"

// ResourceResponse модель ресурса для каталога дашборда
type ResourceResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Status    string `json:"status,omitempty"`
	Capacity  int    `json:"capacity"`
	Available bool   `json:"available"`
}

// ResourceListResponse список ресурсов с перечнем встречающихся типов
// Типы нужны дашборду для выпадающего фильтра
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Types     []string           `json:"types"`
	Total     int                `json:"total"`
}

// GetResourcesRequest параметры фильтрации каталога
type GetResourcesRequest struct {
	Type          string // фильтр по типу ресурса, "" = все типы
	OnlyAvailable bool   // только доступные ресурсы
}

// FromDomainResource конвертирует доменный ресурс в модель ответа
func FromDomainResource(r *domain.Resource) ResourceResponse {
	return ResourceResponse{
		ID:        r.ID,
		Type:      r.Type,
		Name:      r.Name,
		Status:    string(r.Status),
		Capacity:  r.EffectiveCapacity(),
		Available: r.IsAvailable(),
	}
}
