package get_weekly_heatmap

import (
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	weeklyHeatmap "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_heatmap"
)

// WeeklyHeatmapResponse HTTP response model
type WeeklyHeatmapResponse struct {
	From  string   `json:"from"`
	To    string   `json:"to"`
	Bands []string `json:"bands"`
	Days  []DayRow `json:"days"`
}

// DayRow строка heatmap: один день недели
type DayRow struct {
	Weekday int    `json:"weekday"`
	Label   string `json:"label"`
	Cells   []Cell `json:"cells"`
}

// Cell ячейка heatmap
type Cell struct {
	Band        string `json:"band"`
	Utilization int    `json:"utilization"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *weeklyHeatmap.Response) *WeeklyHeatmapResponse {
	days := make([]DayRow, len(resp.Days))
	for i, d := range resp.Days {
		cells := make([]Cell, len(d.Cells))
		for j, c := range d.Cells {
			cells[j] = Cell{Band: c.Band, Utilization: c.Utilization}
		}
		days[i] = DayRow{
			Weekday: d.Weekday,
			Label:   d.Label,
			Cells:   cells,
		}
	}

	return &WeeklyHeatmapResponse{
		From:  resp.RangeStart.Format(domain.DateFormat),
		To:    resp.RangeEnd.AddDate(0, 0, -1).Format(domain.DateFormat),
		Bands: resp.Bands,
		Days:  days,
	}
}
