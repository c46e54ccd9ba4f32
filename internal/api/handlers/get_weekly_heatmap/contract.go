package get_weekly_heatmap

import (
	"context"

	weeklyHeatmap "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_heatmap"
)

type WeeklyHeatmapUseCase interface {
	Execute(ctx context.Context, req *weeklyHeatmap.Request) (*weeklyHeatmap.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
