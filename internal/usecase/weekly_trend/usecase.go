package weekly_trend

import (
	"context"
	"fmt"

	"github.com/m04kA/CRB-AnalyticsService/internal/aggregate"
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// UseCase use case недельного тренда: утилизация по дням недели
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

// Execute выполняет построение недельного тренда
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("WeeklyTrend: range=[%s, %s), type=%q",
		req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat),
		req.Options.ResourceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("WeeklyTrend: validation failed: %v", err)
		return nil, err
	}

	resources, err := uc.datasets.Resources(ctx)
	if err != nil {
		uc.logger.Error("WeeklyTrend: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	bookings, err := uc.datasets.Bookings(ctx)
	if err != nil {
		uc.logger.Error("WeeklyTrend: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	scope := aggregate.NewScope(resources, &req.Options)

	buckets := aggregate.NewBuckets()
	aggregate.AccumulateAvailability(buckets, scope,
		req.RangeStart, req.RangeEnd, aggregate.GroupByWeekday, req.Options.OperatingHours)
	aggregate.AccumulateBookings(buckets, bookings, scope,
		req.RangeStart, req.RangeEnd, aggregate.GroupByWeekday, req.Options.Statuses(), req.Options.OperatingHours)

	// Ровно 7 точек Mon..Sun, включая дни без данных
	days := make([]DayPoint, domain.WeekdayCount)
	for d := 0; d < domain.WeekdayCount; d++ {
		bucket := buckets.Get(aggregate.WeekdayKey(d))
		days[d] = DayPoint{
			Weekday:     d,
			Label:       domain.WeekdayLabels[d],
			Utilization: aggregate.Percent(bucket.BookedMin, bucket.AvailMin),
			Bookings:    bucket.Bookings,
		}
	}

	uc.logger.Info("WeeklyTrend: computed over %d resources, %d bookings", scope.Count(), len(bookings))

	return &Response{
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Days:       days,
	}, nil
}
