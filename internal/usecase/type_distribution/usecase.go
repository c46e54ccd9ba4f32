package type_distribution

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/CRB-AnalyticsService/internal/aggregate"
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// UseCase use case распределения ресурсов по статусам загрузки внутри типа
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

// Execute выполняет построение распределения по типам
//
// Утилизация считается ДЛЯ КАЖДОГО РЕСУРСА: его забронированные минуты
// против openMinutes(диапазон) * вместимость. По двум порогам ресурс
// попадает в optimal/busy/over, затем по каждому типу считается доля
// ресурсов в каждой корзине.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TypeDistribution: range=[%s, %s), type=%q",
		req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat),
		req.Options.ResourceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TypeDistribution: validation failed: %v", err)
		return nil, err
	}

	resources, err := uc.datasets.Resources(ctx)
	if err != nil {
		uc.logger.Error("TypeDistribution: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	bookings, err := uc.datasets.Bookings(ctx)
	if err != nil {
		uc.logger.Error("TypeDistribution: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	scope := aggregate.NewScope(resources, &req.Options)
	statuses := req.Options.Statuses()
	hours := req.Options.OperatingHours
	optimalThreshold, busyThreshold := req.Options.Thresholds()

	// Агрегированная утилизация типа (числитель и знаменатель по типу)
	buckets := aggregate.NewBuckets()
	aggregate.AccumulateAvailability(buckets, scope,
		req.RangeStart, req.RangeEnd, aggregate.GroupByType, hours)
	aggregate.AccumulateBookings(buckets, bookings, scope,
		req.RangeStart, req.RangeEnd, aggregate.GroupByType, statuses, hours)

	// Поресурсная занятость для порогового распределения
	usage := aggregate.UsageByResource(bookings, scope, req.RangeStart, req.RangeEnd, statuses)
	openMin := aggregate.OpenMinutes(req.RangeStart, req.RangeEnd, hours)

	type counters struct {
		optimal int
		busy    int
		total   int
	}
	byType := make(map[string]*counters)

	for _, r := range scope.Resources() {
		c, ok := byType[r.Type]
		if !ok {
			c = &counters{}
			byType[r.Type] = c
		}
		c.total++

		pct := aggregate.Percent(usage[r.ID].BookedMin, openMin*float64(r.EffectiveCapacity()))
		switch {
		case pct < optimalThreshold:
			c.optimal++
		case pct < busyThreshold:
			c.busy++
		}
	}

	rows := make([]TypeRow, 0, len(byType))
	for resourceType, c := range byType {
		bucket := buckets.Get(aggregate.TypeKey(resourceType))

		optimalPct := sharePct(c.optimal, c.total)
		busyPct := sharePct(c.busy, c.total)

		rows = append(rows, TypeRow{
			Type:        resourceType,
			Resources:   bucket.ResourcesCount,
			Utilization: aggregate.Percent(bucket.BookedMin, bucket.AvailMin),
			OptimalPct:  optimalPct,
			BusyPct:     busyPct,
			// Остаток до 100, чтобы сумма трёх долей сходилась точно,
			// несмотря на независимое округление первых двух
			OverPct: 100 - optimalPct - busyPct,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].Type < rows[j].Type })

	uc.logger.Info("TypeDistribution: computed %d type rows over %d resources", len(rows), scope.Count())

	return &Response{
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Types:      rows,
	}, nil
}

// sharePct возвращает округлённую долю count от total в процентах
func sharePct(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}
