package room_utilization

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/CRB-AnalyticsService/internal/aggregate"
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Помещения, у которых источник данных не смог разрешить имя, приходят
// с литеральной строкой "undefined" — такие записи из рейтинга выбрасываются
const unresolvedName = "undefined"

// UseCase use case поресурсной утилизации: рейтинг помещений и heatmap
// помещение x heat band
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

// Execute выполняет построение рейтинга помещений
//
// Поминутный учёт тот же, что в недельном heatmap, но ключ — конкретное
// помещение: доступные минуты band'а считаются на одно помещение,
// занятые — только из его бронирований.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RoomUtilization: range=[%s, %s), type=%q",
		req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat),
		req.Options.ResourceType)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RoomUtilization: validation failed: %v", err)
		return nil, err
	}

	resources, err := uc.datasets.Resources(ctx)
	if err != nil {
		uc.logger.Error("RoomUtilization: failed to load resources: %v", err)
		return nil, fmt.Errorf("%w: failed to load resources: %v", ErrInternal, err)
	}

	bookings, err := uc.datasets.Bookings(ctx)
	if err != nil {
		uc.logger.Error("RoomUtilization: failed to load bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
	}

	scope := aggregate.NewScope(resources, &req.Options)
	bands := uc.bands(req)
	statuses := req.Options.Statuses()

	// Доступные минуты каждого band'а на одно помещение —
	// одинаковы для всех помещений scope, считаем один раз
	bandAvail := make([]float64, len(bands))
	for day := aggregate.DayStart(req.RangeStart); day.Before(req.RangeEnd); day = day.AddDate(0, 0, 1) {
		for i, band := range bands {
			bandStart, bandEnd := aggregate.BandWindow(day, band)
			bandAvail[i] += aggregate.OverlapMinutes(bandStart, bandEnd, req.RangeStart, req.RangeEnd)
		}
	}

	totalAvail := 0.0
	for _, a := range bandAvail {
		totalAvail += a
	}

	// Занятые минуты по помещениям и band'ам
	type roomAcc struct {
		bandBooked []float64
		booked     float64
		bookings   int
	}
	rooms := make(map[string]*roomAcc, scope.Count())

	for i := range bookings {
		booking := &bookings[i]
		if !booking.MatchesStatus(statuses) {
			continue
		}
		if _, inScope := scope.Lookup(booking.ResourceID); !inScope {
			continue
		}

		start, end, ok := aggregate.ClampBooking(booking, req.RangeStart, req.RangeEnd)
		if !ok {
			continue
		}

		acc, exists := rooms[booking.ResourceID]
		if !exists {
			acc = &roomAcc{bandBooked: make([]float64, len(bands))}
			rooms[booking.ResourceID] = acc
		}
		acc.bookings++

		for day := aggregate.DayStart(start); day.Before(end); day = day.AddDate(0, 0, 1) {
			for bandIdx, band := range bands {
				bandStart, bandEnd := aggregate.BandWindow(day, band)
				minutes := aggregate.OverlapMinutes(bandStart, bandEnd, start, end)
				acc.bandBooked[bandIdx] += minutes
				acc.booked += minutes
			}
		}
	}

	bandLabels := make([]string, len(bands))
	for i, band := range bands {
		bandLabels[i] = band.Label
	}

	// Строка на каждое помещение scope, включая не бронировавшиеся
	rows := make([]RoomRow, 0, scope.Count())
	for _, r := range scope.Resources() {
		if resolveName(&r) == unresolvedName {
			continue
		}

		acc := rooms[r.ID]
		if acc == nil {
			acc = &roomAcc{bandBooked: make([]float64, len(bands))}
		}

		cells := make([]Cell, len(bands))
		for i := range bands {
			cells[i] = Cell{
				Band:        bands[i].Label,
				Utilization: aggregate.Percent(acc.bandBooked[i], bandAvail[i]),
			}
		}

		rows = append(rows, RoomRow{
			ResourceID:  r.ID,
			Name:        resolveName(&r),
			Type:        r.Type,
			Utilization: aggregate.Percent(acc.booked, totalAvail),
			Bookings:    acc.bookings,
			Cells:       cells,
		})
	}

	// Рейтинг: по убыванию утилизации, при равенстве — по имени
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Utilization != rows[j].Utilization {
			return rows[i].Utilization > rows[j].Utilization
		}
		return rows[i].Name < rows[j].Name
	})

	uc.logger.Info("RoomUtilization: computed %d room rows", len(rows))

	return &Response{
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Bands:      bandLabels,
		Rooms:      rows,
	}, nil
}

// resolveName возвращает отображаемое имя помещения
func resolveName(r *domain.Resource) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

