// Package filestore источник данных из JSON-снапшотов на диске.
//
// Это граница нормализации: экспортные снапшоты приходят из разных версий
// бэкенда и используют разные написания одних и тех же полей
// (start_time/startTime, resource_id/resourceId). Все разночтения гасятся
// здесь — ядро агрегации видит единственную каноническую форму записи.
package filestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// Store читает снапшоты бронирований и ресурсов из JSON-файлов
type Store struct {
	bookingsPath  string
	resourcesPath string
	logger        Logger
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// NewStore создает новый источник данных из файлов
func NewStore(bookingsPath, resourcesPath string, logger Logger) *Store {
	return &Store{
		bookingsPath:  bookingsPath,
		resourcesPath: resourcesPath,
		logger:        logger,
	}
}

// rawBooking принимает оба встречающихся написания полей
type rawBooking struct {
	ID            string `json:"id"`
	ResourceID    string `json:"resource_id"`
	ResourceIDAlt string `json:"resourceId"`
	StartTime     string `json:"start_time"`
	StartTimeAlt  string `json:"startTime"`
	EndTime       string `json:"end_time"`
	EndTimeAlt    string `json:"endTime"`
	Status        string `json:"status"`
}

// rawResource принимает оба встречающихся написания полей
type rawResource struct {
	ID            string `json:"id"`
	ResourceID    string `json:"resource_id"`
	ResourceIDAlt string `json:"resourceId"`
	Type          string `json:"type"`
	TypeAlt       string `json:"resourceType"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Capacity      int    `json:"capacity"`
}

// Bookings читает и нормализует снапшот бронирований
func (s *Store) Bookings(ctx context.Context) ([]domain.Booking, error) {
	var raw []rawBooking
	if err := s.readSnapshot(s.bookingsPath, &raw); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(raw))
	for _, rb := range raw {
		bookings = append(bookings, domain.Booking{
			ID:         rb.ID,
			ResourceID: firstNonEmpty(rb.ResourceID, rb.ResourceIDAlt),
			StartTime:  firstNonEmpty(rb.StartTime, rb.StartTimeAlt),
			EndTime:    firstNonEmpty(rb.EndTime, rb.EndTimeAlt),
			Status:     domain.BookingStatus(rb.Status),
		})
	}

	s.logger.Info("filestore: loaded %d bookings from %s", len(bookings), s.bookingsPath)
	return bookings, nil
}

// Resources читает и нормализует снапшот ресурсов
func (s *Store) Resources(ctx context.Context) ([]domain.Resource, error) {
	var raw []rawResource
	if err := s.readSnapshot(s.resourcesPath, &raw); err != nil {
		return nil, err
	}

	resources := make([]domain.Resource, 0, len(raw))
	for _, rr := range raw {
		resources = append(resources, domain.Resource{
			ID:       firstNonEmpty(rr.ID, rr.ResourceID, rr.ResourceIDAlt),
			Type:     firstNonEmpty(rr.Type, rr.TypeAlt),
			Name:     rr.Name,
			Status:   domain.ResourceStatus(rr.Status),
			Capacity: rr.Capacity,
		})
	}

	s.logger.Info("filestore: loaded %d resources from %s", len(resources), s.resourcesPath)
	return resources, nil
}

// readSnapshot читает файл и декодирует его в v
func (s *Store) readSnapshot(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrReadFile, path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	return nil
}

// firstNonEmpty возвращает первое непустое значение
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
