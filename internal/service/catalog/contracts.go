package catalog

import (
	"context"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// DatasetProvider интерфейс источника данных ресурсов
type DatasetProvider interface {
	Resources(ctx context.Context) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
