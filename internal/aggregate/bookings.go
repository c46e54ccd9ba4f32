package aggregate

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	"github.com/m04kA/CRB-AnalyticsService/pkg/localtime"
)

// ClampBooking разбирает временные метки бронирования и обрезает интервал
// по диапазону запроса
//
// ok=false означает, что бронирование не дает минут: метки не разобрались,
// интервал вырожден (end <= start) или целиком вне диапазона. Такие записи
// пропускаются молча — одна битая запись не должна ронять весь отчёт.
func ClampBooking(b *domain.Booking, rangeStart, rangeEnd time.Time) (start, end time.Time, ok bool) {
	bookingStart, err := localtime.ParseIn(b.StartTime, rangeStart.Location())
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	bookingEnd, err := localtime.ParseIn(b.EndTime, rangeStart.Location())
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	start = bookingStart
	if rangeStart.After(start) {
		start = rangeStart
	}

	end = bookingEnd
	if rangeEnd.Before(end) {
		end = rangeEnd
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, false
	}

	return start, end, true
}

// AccumulateBookings вычисляет числитель утилизации: забронированные
// ресурсо-минуты и количество бронирований по ключам группировки
//
// Бронирование пропускается, если его статус не входит в allow-list
// или его ресурс не входит в scope (бронирование "чужого" ресурса —
// не ошибка, а запись вне текущего фильтра).
//
// Счётчик бронирований привязывается к ровно одной корзине — по обрезанному
// началу интервала. Иначе многодневное бронирование посчиталось бы один раз
// на каждый день.
//
// Минуты для группировки по типу добавляются всей обрезанной длительностью
// без фильтра операционных часов — симметрично упрощённому знаменателю
// типа в AccumulateAvailability. Почасовые группировки обходят интервал
// кусками и учитывают только открытые часы.
func AccumulateBookings(
	buckets Buckets,
	bookings []domain.Booking,
	scope *Scope,
	rangeStart, rangeEnd time.Time,
	groupBy GroupBy,
	statuses []domain.BookingStatus,
	hours *domain.OperatingHours,
) {
	for i := range bookings {
		booking := &bookings[i]

		if !booking.MatchesStatus(statuses) {
			continue
		}

		resource, inScope := scope.Lookup(booking.ResourceID)
		if !inScope {
			continue
		}

		start, end, ok := ClampBooking(booking, rangeStart, rangeEnd)
		if !ok {
			continue
		}

		countKey := chunkKey(groupBy, start)
		if groupBy == GroupByType {
			countKey = TypeKey(resource.Type)
		}
		buckets.At(countKey).Bookings++

		if groupBy == GroupByType {
			buckets.At(TypeKey(resource.Type)).BookedMin += end.Sub(start).Minutes()
			continue
		}

		cursor := start
		for cursor.Before(end) {
			chunkStart, chunkEnd := HourChunk(cursor, start, end)
			if chunkEnd.After(chunkStart) && isOpen(chunkStart.Hour(), hours) {
				minutes := chunkEnd.Sub(chunkStart).Minutes()
				buckets.At(chunkKey(groupBy, chunkStart)).BookedMin += minutes
			}
			cursor = floorHour(cursor).Add(time.Hour)
		}
	}
}

// ResourceUsage поминутная занятость одного ресурса за диапазон
type ResourceUsage struct {
	BookedMin float64
	Bookings  int
}

// UsageByResource суммирует занятость по каждому ресурсу scope
//
// Минуты добавляются всей обрезанной длительностью (без фильтра операционных
// часов) — та же упрощённая схема, что и у группировки по типу; используется
// распределением ресурсов по статусам загрузки.
func UsageByResource(
	bookings []domain.Booking,
	scope *Scope,
	rangeStart, rangeEnd time.Time,
	statuses []domain.BookingStatus,
) map[string]ResourceUsage {
	usage := make(map[string]ResourceUsage, scope.Count())

	for i := range bookings {
		booking := &bookings[i]

		if !booking.MatchesStatus(statuses) {
			continue
		}

		if _, inScope := scope.Lookup(booking.ResourceID); !inScope {
			continue
		}

		start, end, ok := ClampBooking(booking, rangeStart, rangeEnd)
		if !ok {
			continue
		}

		u := usage[booking.ResourceID]
		u.BookedMin += end.Sub(start).Minutes()
		u.Bookings++
		usage[booking.ResourceID] = u
	}

	return usage
}
