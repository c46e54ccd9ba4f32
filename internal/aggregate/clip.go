package aggregate

import (
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// floorHour возвращает начало часа, в который попадает t
// Обрезка выполняется по настенным часам локации, а не по абсолютному времени
func floorHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
}

// HourChunk возвращает пересечение часа, в который попадает cursor,
// с окном [windowStart, windowEnd)
//
// Это единица итерации для всех поминутных сумм: интервалы бронирований и
// доступности раскладываются на последовательность таких часовых кусков,
// потому что и фильтр операционных часов, и группировка по часу/дню недели
// требуют почасовой гранулярности.
//
// Гарантируется chunkEnd >= chunkStart; кусок нулевой ширины означает
// "сдвинуть курсор, ничего не добавлять" — вызывающий код всегда двигает
// курсор к началу следующего часа, иначе цикл не завершится.
func HourChunk(cursor, windowStart, windowEnd time.Time) (chunkStart, chunkEnd time.Time) {
	hourStart := floorHour(cursor)
	hourEnd := hourStart.Add(time.Hour)

	chunkStart = hourStart
	if windowStart.After(chunkStart) {
		chunkStart = windowStart
	}

	chunkEnd = hourEnd
	if windowEnd.Before(chunkEnd) {
		chunkEnd = windowEnd
	}

	if chunkEnd.Before(chunkStart) {
		chunkEnd = chunkStart
	}

	return chunkStart, chunkEnd
}

// isOpen проверяет, открыт ли объект в указанный час
// Отсутствие конфигурации означает круглосуточную работу
//
// Час берётся от начала ОБРЕЗАННОГО куска, а не от начала бронирования:
// бронирование, пересекающее границу закрытия/открытия, должно учитывать
// только свою "открытую" часть.
func isOpen(hour int, hours *domain.OperatingHours) bool {
	if hours == nil {
		return true
	}
	return hours.Contains(hour)
}

// OpenMinutes суммирует минуты окна [start, end), приходящиеся на
// операционные часы
func OpenMinutes(start, end time.Time, hours *domain.OperatingHours) float64 {
	total := 0.0

	cursor := start
	for cursor.Before(end) {
		chunkStart, chunkEnd := HourChunk(cursor, start, end)
		if chunkEnd.After(chunkStart) && isOpen(chunkStart.Hour(), hours) {
			total += chunkEnd.Sub(chunkStart).Minutes()
		}
		cursor = floorHour(cursor).Add(time.Hour)
	}

	return total
}

// OverlapMinutes возвращает длительность пересечения двух полуоткрытых
// интервалов в минутах; непересекающиеся интервалы дают 0
func OverlapMinutes(aStart, aEnd, bStart, bEnd time.Time) float64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}

	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}

	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Minutes()
}

// DayStart возвращает полночь дня, в который попадает t
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// BandWindow возвращает границы heat band для конкретного календарного дня
func BandWindow(day time.Time, band domain.HeatBand) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), band.StartHour, 0, 0, 0, day.Location())
	end := time.Date(day.Year(), day.Month(), day.Day(), band.EndHour, 0, 0, 0, day.Location())
	return start, end
}

// WeekdayIndex возвращает индекс дня недели в нумерации дашборда:
// 0=понедельник .. 6=воскресенье
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % domain.WeekdayCount
}
