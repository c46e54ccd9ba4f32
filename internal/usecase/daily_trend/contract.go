package daily_trend

import (
	"context"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// DatasetProvider интерфейс источника данных бронирований и ресурсов
// Данные материализуются целиком до начала агрегации
type DatasetProvider interface {
	Bookings(ctx context.Context) ([]domain.Booking, error)
	Resources(ctx context.Context) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
