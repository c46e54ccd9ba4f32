package get_daily_trend

import (
	"context"

	dailyTrend "github.com/m04kA/CRB-AnalyticsService/internal/usecase/daily_trend"
)

type DailyTrendUseCase interface {
	Execute(ctx context.Context, req *dailyTrend.Request) (*dailyTrend.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
