package dataset

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	"github.com/m04kA/CRB-AnalyticsService/pkg/psqlbuilder"
)

// Repository read-only источник данных бронирований и ресурсов
// поверх управляемого бэкенда бронирований
//
// Сервис отчётности никогда не пишет в эти таблицы: создание бронирований,
// проверка конфликтов и права доступа остаются на стороне бэкенда.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория данных
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Bookings возвращает все бронирования
//
// Временные метки читаются как строки и разбираются уже в ядре агрегации:
// битая метка должна выкинуть только свою запись, а не весь запрос.
func (r *Repository) Bookings(ctx context.Context) ([]domain.Booking, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"resource_id",
		"start_time",
		"end_time",
		"status",
	).
		From("bookings").
		OrderBy("start_time").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Bookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Bookings - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var (
			b      domain.Booking
			status string
		)
		if err := rows.Scan(&b.ID, &b.ResourceID, &b.StartTime, &b.EndTime, &status); err != nil {
			return nil, fmt.Errorf("%w: Bookings - scan row: %v", ErrScanRow, err)
		}
		b.Status = domain.BookingStatus(status)
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Bookings - iterate rows: %v", ErrExecQuery, err)
	}

	return bookings, nil
}

// Resources возвращает все ресурсы
func (r *Repository) Resources(ctx context.Context) ([]domain.Resource, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"type",
		"name",
		"status",
		"capacity",
	).
		From("resources").
		OrderBy("id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Resources - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Resources - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	resources := make([]domain.Resource, 0)
	for rows.Next() {
		var (
			res      domain.Resource
			status   sql.NullString
			capacity sql.NullInt64
		)
		if err := rows.Scan(&res.ID, &res.Type, &res.Name, &status, &capacity); err != nil {
			return nil, fmt.Errorf("%w: Resources - scan row: %v", ErrScanRow, err)
		}
		if status.Valid {
			res.Status = domain.ResourceStatus(status.String)
		}
		if capacity.Valid {
			res.Capacity = int(capacity.Int64)
		}
		resources = append(resources, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Resources - iterate rows: %v", ErrExecQuery, err)
	}

	return resources, nil
}
