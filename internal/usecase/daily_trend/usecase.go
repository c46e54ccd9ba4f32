package daily_trend

import (
	"context"
	"fmt"

	"github.com/m04kA/CRB-AnalyticsService/internal/aggregate"
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// UseCase use case дневного тренда: утилизация по часам суток
type UseCase struct {
	datasets DatasetProvider
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(datasets DatasetProvider, logger Logger) *UseCase {
	return &UseCase{
		datasets: datasets,
		logger:   logger,
	}
}

// Execute выполняет построение дневного тренда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DailyTrend: range=[%s, %s), type=%q, onlyAvailable=%v",
		req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat),
		req.Options.ResourceType, req.Options.OnlyAvailableResources)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DailyTrend: validation failed: %v", err)
		return nil, err
	}

	// 2. Материализуем входные данные
	resources, err := uc.datasets.Resources(ctx)
	if err != nil {
		uc.logger.Error("DailyTrend: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	bookings, err := uc.datasets.Bookings(ctx)
	if err != nil {
		uc.logger.Error("DailyTrend: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	// 3. Отбираем ресурсы и считаем корзины по часам суток
	scope := aggregate.NewScope(resources, &req.Options)

	buckets := aggregate.NewBuckets()
	aggregate.AccumulateAvailability(buckets, scope,
		req.RangeStart, req.RangeEnd, aggregate.GroupByHour, req.Options.OperatingHours)
	aggregate.AccumulateBookings(buckets, bookings, scope,
		req.RangeStart, req.RangeEnd, aggregate.GroupByHour, req.Options.Statuses(), req.Options.OperatingHours)

	// 4. Формируем ровно 24 точки, включая часы без данных
	hours := make([]HourPoint, domain.HoursPerDay)
	for h := 0; h < domain.HoursPerDay; h++ {
		bucket := buckets.Get(aggregate.HourKey(h))
		hours[h] = HourPoint{
			Hour:        h,
			Label:       hourLabel(h),
			Utilization: aggregate.Percent(bucket.BookedMin, bucket.AvailMin),
			Bookings:    bucket.Bookings,
		}
	}

	uc.logger.Info("DailyTrend: computed over %d resources, %d bookings", scope.Count(), len(bookings))

	return &Response{
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Hours:      hours,
	}, nil
}

// hourLabel возвращает 12-часовую подпись часа суток: "12 AM" ... "11 PM"
func hourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}
