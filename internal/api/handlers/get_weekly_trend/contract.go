package get_weekly_trend

import (
	"context"

	weeklyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_trend"
)

type WeeklyTrendUseCase interface {
	Execute(ctx context.Context, req *weeklyTrend.Request) (*weeklyTrend.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
