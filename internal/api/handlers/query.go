package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Ошибки разбора общих query-параметров аналитики
var (
	ErrMissingFrom = errors.New("query: parameter 'from' is required")
	ErrMissingTo   = errors.New("query: parameter 'to' is required")
	ErrInvalidDate = errors.New("query: invalid date, expected YYYY-MM-DD")
)

// ParseDateRange разбирает параметры from/to (даты YYYY-MM-DD) в полуоткрытый
// диапазон [from 00:00, to+1день 00:00) локального времени
// Обе даты включаются в отчёт: to — последний учитываемый день
func ParseDateRange(r *http.Request) (time.Time, time.Time, error) {
	fromStr := r.URL.Query().Get("from")
	if fromStr == "" {
		return time.Time{}, time.Time{}, ErrMissingFrom
	}

	toStr := r.URL.Query().Get("to")
	if toStr == "" {
		return time.Time{}, time.Time{}, ErrMissingTo
	}

	from, err := time.ParseInLocation(domain.DateFormat, fromStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	to, err := time.ParseInLocation(domain.DateFormat, toStr, time.Local)
	if err != nil {
		return time.Time{}, time.Time{}, ErrInvalidDate
	}

	return from, to.AddDate(0, 0, 1), nil
}

// ParseUtilizationOptions разбирает общие настройки агрегации из query:
// resourceType, onlyAvailable, statuses (через запятую), openStart/openEnd.
// Отсутствующие параметры оставляют нулевые значения — usecase подставит
// значения по умолчанию.
func ParseUtilizationOptions(r *http.Request) domain.UtilizationOptions {
	q := r.URL.Query()

	opts := domain.UtilizationOptions{
		ResourceType:           q.Get("resourceType"),
		OnlyAvailableResources: q.Get("onlyAvailable") == "true",
	}

	if statuses := q.Get("statuses"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			s = strings.TrimSpace(s)
			if s != "" {
				opts.IncludeStatuses = append(opts.IncludeStatuses, domain.BookingStatus(s))
			}
		}
	}

	openStart, okStart := parseIntParam(q.Get("openStart"))
	openEnd, okEnd := parseIntParam(q.Get("openEnd"))
	if okStart && okEnd {
		opts.OperatingHours = &domain.OperatingHours{Start: openStart, End: openEnd}
	}

	return opts
}

// parseIntParam разбирает целочисленный query-параметр
func parseIntParam(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
