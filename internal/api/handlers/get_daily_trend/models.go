package get_daily_trend

import (
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	dailyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/daily_trend"
)

// DailyTrendResponse HTTP response model
type DailyTrendResponse struct {
	From  string      `json:"from"`
	To    string      `json:"to"`
	Hours []HourPoint `json:"hours"`
}

// HourPoint точка дневного тренда
type HourPoint struct {
	Hour        int    `json:"hour"`
	Label       string `json:"label"`
	Utilization int    `json:"utilization"`
	Bookings    int    `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *dailyTrend.Response) *DailyTrendResponse {
	hours := make([]HourPoint, len(resp.Hours))
	for i, h := range resp.Hours {
		hours[i] = HourPoint{
			Hour:        h.Hour,
			Label:       h.Label,
			Utilization: h.Utilization,
			Bookings:    h.Bookings,
		}
	}

	return &DailyTrendResponse{
		From: resp.RangeStart.Format(domain.DateFormat),
		// Диапазон полуоткрытый: последний учтённый день на сутки раньше конца
		To:    resp.RangeEnd.AddDate(0, 0, -1).Format(domain.DateFormat),
		Hours: hours,
	}
}
