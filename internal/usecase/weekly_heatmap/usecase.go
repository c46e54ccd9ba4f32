package weekly_heatmap

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/aggregate"
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// UseCase use case недельного heatmap: день недели x heat band
type UseCase struct {
	datasets     DatasetProvider
	defaultBands []domain.HeatBand
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// defaultBands раскладка колонок на уровне сервиса; nil = DefaultBands()
func NewUseCase(datasets DatasetProvider, defaultBands []domain.HeatBand, logger Logger) *UseCase {
	return &UseCase{
		datasets:     datasets,
		defaultBands: defaultBands,
		logger:       logger,
	}
}

// bands возвращает действующую раскладку: запрос > конфигурация > умолчание
func (uc *UseCase) bands(req *Request) []domain.HeatBand {
	if len(req.Options.Bands) > 0 {
		return req.Options.Bands
	}
	if len(uc.defaultBands) > 0 {
		return uc.defaultBands
	}
	return domain.DefaultBands()
}

// cell внутренний аккумулятор одной ячейки матрицы
type cell struct {
	bookedMin float64
	availMin  float64
}

// Execute выполняет построение недельного heatmap
//
// Для каждого календарного дня диапазона и каждого band: доступные минуты =
// ширина band, обрезанная по дневной части диапазона, умноженная на
// количество ресурсов scope; занятые минуты = пересечение обрезанного
// интервала бронирования с band этого дня. Многодневное бронирование
// вносит вклад в каждый день, которого касается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("WeeklyHeatmap: range=[%s, %s), type=%q",
		req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat),
		req.Options.ResourceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("WeeklyHeatmap: validation failed: %v", err)
		return nil, err
	}

	resources, err := uc.datasets.Resources(ctx)
	if err != nil {
		uc.logger.Error("WeeklyHeatmap: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	bookings, err := uc.datasets.Bookings(ctx)
	if err != nil {
		uc.logger.Error("WeeklyHeatmap: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	scope := aggregate.NewScope(resources, &req.Options)
	bands := uc.bands(req)
	statuses := req.Options.Statuses()

	// Заранее обрезаем все учитываемые бронирования по диапазону
	type interval struct {
		start time.Time
		end   time.Time
	}
	clamped := make([]interval, 0, len(bookings))
	for i := range bookings {
		booking := &bookings[i]
		if !booking.MatchesStatus(statuses) {
			continue
		}
		if _, inScope := scope.Lookup(booking.ResourceID); !inScope {
			continue
		}
		if start, end, ok := aggregate.ClampBooking(booking, req.RangeStart, req.RangeEnd); ok {
			clamped = append(clamped, interval{start: start, end: end})
		}
	}

	matrix := make([][]cell, domain.WeekdayCount)
	for d := range matrix {
		matrix[d] = make([]cell, len(bands))
	}

	resourceCount := float64(scope.Count())

	for day := aggregate.DayStart(req.RangeStart); day.Before(req.RangeEnd); day = day.AddDate(0, 0, 1) {
		weekday := aggregate.WeekdayIndex(day)

		for bandIdx, band := range bands {
			bandStart, bandEnd := aggregate.BandWindow(day, band)
			c := &matrix[weekday][bandIdx]

			// Band обрезается по дневной части диапазона запроса
			c.availMin += aggregate.OverlapMinutes(bandStart, bandEnd, req.RangeStart, req.RangeEnd) * resourceCount

			for _, iv := range clamped {
				c.bookedMin += aggregate.OverlapMinutes(bandStart, bandEnd, iv.start, iv.end)
			}
		}
	}

	bandLabels := make([]string, len(bands))
	for i, band := range bands {
		bandLabels[i] = band.Label
	}

	days := make([]DayRow, domain.WeekdayCount)
	for d := 0; d < domain.WeekdayCount; d++ {
		cells := make([]Cell, len(bands))
		for i := range bands {
			cells[i] = Cell{
				Band:        bands[i].Label,
				Utilization: aggregate.Percent(matrix[d][i].bookedMin, matrix[d][i].availMin),
			}
		}
		days[d] = DayRow{
			Weekday: d,
			Label:   domain.WeekdayLabels[d],
			Cells:   cells,
		}
	}

	uc.logger.Info("WeeklyHeatmap: computed %dx%d matrix over %d resources",
		domain.WeekdayCount, len(bands), scope.Count())

	return &Response{
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Bands:      bandLabels,
		Days:       days,
	}, nil
}
