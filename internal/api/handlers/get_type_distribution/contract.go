package get_type_distribution

import (
	"context"

	typeDistribution "github.com/m04kA/CRB-AnalyticsService/internal/usecase/type_distribution"
)

type TypeDistributionUseCase interface {
	Execute(ctx context.Context, req *typeDistribution.Request) (*typeDistribution.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
