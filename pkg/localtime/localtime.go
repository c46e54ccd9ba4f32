// Package localtime реализует правило разбора временных меток дашборда:
// любые обозначения часового пояса отбрасываются, а оставшиеся цифры
// интерпретируются как локальное настенное время.
//
// Бэкенд бронирований отдаёт временные метки в локальном времени кампуса,
// но в зависимости от источника строка может приходить как с суффиксом "Z",
// так и со смещением "+03:00". Для учёта занятости важен именно настенный
// час (операционные часы, heatmap-колонки), поэтому пояс игнорируется
// намеренно, а не по недосмотру.
package localtime

import (
	"errors"
	"strings"
	"time"
)

// ErrUnparsable возвращается, когда строка не соответствует ни одному
// из поддерживаемых форматов
var ErrUnparsable = errors.New("localtime: unparsable timestamp")

// Поддерживаемые форматы после отбрасывания пояса и долей секунды
var layouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Parse разбирает временную метку как наивное локальное время
func Parse(s string) (time.Time, error) {
	return ParseIn(s, time.Local)
}

// ParseIn разбирает временную метку в указанной локации
// Используется в тестах, чтобы результат не зависел от TZ окружения
func ParseIn(s string, loc *time.Location) (time.Time, error) {
	cleaned := stripDesignator(strings.TrimSpace(s))

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, cleaned, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparsable
}

// stripDesignator отбрасывает обозначение часового пояса и доли секунды:
// "2025-03-01T09:00:00.123Z" -> "2025-03-01T09:00:00"
// "2025-03-01T09:00:00+03:00" -> "2025-03-01T09:00:00"
func stripDesignator(s string) string {
	if len(s) <= len("2006-01-02") {
		return s
	}

	// Суффикс UTC
	s = strings.TrimSuffix(strings.TrimSuffix(s, "Z"), "z")

	// Числовое смещение: ищем '+' или '-' в части времени
	// (после разделителя даты и времени, чтобы не задеть дефисы даты)
	timePart := s[len("2006-01-02"):]
	if i := strings.LastIndexAny(timePart, "+-"); i >= 0 {
		s = s[:len("2006-01-02")+i]
	}

	// Доли секунды
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	return s
}
