package aggregate

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// AccumulateAvailability вычисляет знаменатель утилизации: доступные
// ресурсо-минуты по ключам группировки за диапазон [rangeStart, rangeEnd)
//
// Для группировки по часу/дню недели диапазон обходится почасовыми кусками:
// каждый открытый кусок добавляет minutes * суммарная вместимость scope
// в корзину своего часа/дня. Доступность растёт линейно с числом ресурсов
// и их вместимостью: комната на 2 места даёт вдвое больший знаменатель,
// чем комната на 1 место, за те же открытые минуты.
//
// Для группировки по типу знаменатель считается упрощённо:
// openMinutes(диапазон) * вместимость, по ресурсу за раз; ResourcesCount
// инкрементируется один раз на ресурс независимо от бронирований.
//
// Пустой scope оставляет все знаменатели нулевыми — композитор процентов
// обязан отдать 0%, а не NaN.
func AccumulateAvailability(
	buckets Buckets,
	scope *Scope,
	rangeStart, rangeEnd time.Time,
	groupBy GroupBy,
	hours *domain.OperatingHours,
) {
	if groupBy == GroupByType {
		openMin := OpenMinutes(rangeStart, rangeEnd, hours)
		for _, r := range scope.Resources() {
			bucket := buckets.At(TypeKey(r.Type))
			bucket.AvailMin += openMin * float64(r.EffectiveCapacity())
			bucket.ResourcesCount++
		}
		return
	}

	totalCapacity := float64(scope.TotalCapacity())
	if totalCapacity == 0 {
		return
	}

	cursor := rangeStart
	for cursor.Before(rangeEnd) {
		chunkStart, chunkEnd := HourChunk(cursor, rangeStart, rangeEnd)
		if chunkEnd.After(chunkStart) && isOpen(chunkStart.Hour(), hours) {
			minutes := chunkEnd.Sub(chunkStart).Minutes()
			buckets.At(chunkKey(groupBy, chunkStart)).AvailMin += minutes * totalCapacity
		}
		cursor = floorHour(cursor).Add(time.Hour)
	}
}

// chunkKey возвращает ключ корзины для почасового куска
func chunkKey(groupBy GroupBy, chunkStart time.Time) BucketKey {
	if groupBy == GroupByWeekday {
		return WeekdayKey(WeekdayIndex(chunkStart))
	}
	return HourKey(chunkStart.Hour())
}
