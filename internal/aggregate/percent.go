package aggregate

import "math"

// Percent возвращает процент утилизации 0-100
//
// Нулевой или отрицательный знаменатель всегда даёт 0% — пустой scope
// или вырожденный диапазон это штатная ситуация отчёта, а не ошибка.
// Результат округляется и зажимается в [0, 100]: числитель может слегка
// превысить знаменатель, когда бронирования пересекаются между собой
// или выходят за операционные часы.
func Percent(bookedMin, availMin float64) int {
	if availMin <= 0 {
		return 0
	}

	pct := int(math.Round(bookedMin / availMin * 100))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
