package get_weekly_trend

import (
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	weeklyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_trend"
)

// WeeklyTrendResponse HTTP response model
type WeeklyTrendResponse struct {
	From string     `json:"from"`
	To   string     `json:"to"`
	Days []DayPoint `json:"days"`
}

// DayPoint точка недельного тренда
type DayPoint struct {
	Weekday     int    `json:"weekday"`
	Label       string `json:"label"`
	Utilization int    `json:"utilization"`
	Bookings    int    `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *weeklyTrend.Response) *WeeklyTrendResponse {
	days := make([]DayPoint, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayPoint{
			Weekday:     d.Weekday,
			Label:       d.Label,
			Utilization: d.Utilization,
			Bookings:    d.Bookings,
		}
	}

	return &WeeklyTrendResponse{
		From: resp.RangeStart.Format(domain.DateFormat),
		To:   resp.RangeEnd.AddDate(0, 0, -1).Format(domain.DateFormat),
		Days: days,
	}
}
