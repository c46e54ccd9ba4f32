package get_type_distribution

import (
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	typeDistribution "github.com/m04kA/CRB-AnalyticsService/internal/usecase/type_distribution"
)

// TypeDistributionResponse HTTP response model
type TypeDistributionResponse struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Types []TypeRow `json:"types"`
}

// TypeRow распределение ресурсов одного типа по статусам загрузки
type TypeRow struct {
	Type         string `json:"type"`
	Resources    int    `json:"resources"`
	Utilization  int    `json:"utilization"`
	Optimal      int    `json:"optimal"`
	Busy         int    `json:"busy"`
	OverUtilized int    `json:"overUtilized"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *typeDistribution.Response) *TypeDistributionResponse {
	rows := make([]TypeRow, len(resp.Types))
	for i, t := range resp.Types {
		rows[i] = TypeRow{
			Type:         t.Type,
			Resources:    t.Resources,
			Utilization:  t.Utilization,
			Optimal:      t.OptimalPct,
			Busy:         t.BusyPct,
			OverUtilized: t.OverPct,
		}
	}

	return &TypeDistributionResponse{
		From:  resp.RangeStart.Format(domain.DateFormat),
		To:    resp.RangeEnd.AddDate(0, 0, -1).Format(domain.DateFormat),
		Types: rows,
	}
}
