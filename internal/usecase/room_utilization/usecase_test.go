package room_utilization

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// stubDatasets тестовый источник данных
type stubDatasets struct {
	bookings  []domain.Booking
	resources []domain.Resource
}

func (s *stubDatasets) Bookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings, nil
}

func (s *stubDatasets) Resources(ctx context.Context) ([]domain.Resource, error) {
	return s.resources, nil
}

// nopLogger глушит логи в тестах
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_RankingByUtilization(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-1", Type: "study-room", Name: "Alpha", Capacity: 1},
			{ID: "room-2", Type: "study-room", Name: "Beta", Capacity: 1},
			{ID: "room-3", Type: "study-room", Name: "Gamma", Capacity: 1},
		},
		bookings: []domain.Booking{
			{ID: "b1", ResourceID: "room-2", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T08:00:00", EndTime: "2025-03-03T22:00:00"},
			{ID: "b2", ResourceID: "room-3", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T08:00:00", EndTime: "2025-03-03T12:00:00"},
		},
	}
	uc := NewUseCase(datasets, nil, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 3)

	// Сортировка по убыванию утилизации; незанятое помещение тоже в списке
	assert.Equal(t, "Beta", resp.Rooms[0].Name)
	assert.Equal(t, 100, resp.Rooms[0].Utilization)
	assert.Equal(t, "Gamma", resp.Rooms[1].Name)
	assert.Equal(t, "Alpha", resp.Rooms[2].Name)
	assert.Equal(t, 0, resp.Rooms[2].Utilization)
	assert.Equal(t, 0, resp.Rooms[2].Bookings)
}

func TestExecute_TiesBrokenByName(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-b", Type: "study-room", Name: "Bravo", Capacity: 1},
			{ID: "room-a", Type: "study-room", Name: "Alpha", Capacity: 1},
		},
	}
	uc := NewUseCase(datasets, nil, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)

	assert.Equal(t, "Alpha", resp.Rooms[0].Name)
	assert.Equal(t, "Bravo", resp.Rooms[1].Name)
}

func TestExecute_DropsUnresolvedRooms(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-1", Type: "study-room", Name: "Alpha", Capacity: 1},
			{ID: "room-2", Type: "study-room", Name: "undefined", Capacity: 1},
		},
	}
	uc := NewUseCase(datasets, nil, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "Alpha", resp.Rooms[0].Name)
}

func TestExecute_NamelessRoomFallsBackToID(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-1", Type: "study-room", Capacity: 1},
		},
	}
	uc := NewUseCase(datasets, nil, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, "room-1", resp.Rooms[0].Name)
}

func TestExecute_PerRoomCells(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-1", Type: "study-room", Name: "Alpha", Capacity: 1},
			{ID: "room-2", Type: "study-room", Name: "Beta", Capacity: 1},
		},
		bookings: []domain.Booking{
			// Бронирование Alpha не попадает в ячейки Beta
			{ID: "b1", ResourceID: "room-1", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T10:00:00", EndTime: "2025-03-03T11:00:00"},
		},
	}
	uc := NewUseCase(datasets, domain.BandRange(10, 12), nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Rooms, 2)
	assert.Equal(t, []string{"10-11", "11-12"}, resp.Bands)

	alpha := resp.Rooms[0]
	require.Equal(t, "Alpha", alpha.Name)
	assert.Equal(t, 100, alpha.Cells[0].Utilization)
	assert.Equal(t, 0, alpha.Cells[1].Utilization)
	// 60 из 120 минут раскладки = 50%
	assert.Equal(t, 50, alpha.Utilization)
	assert.Equal(t, 1, alpha.Bookings)

	beta := resp.Rooms[1]
	require.Equal(t, "Beta", beta.Name)
	assert.Equal(t, 0, beta.Cells[0].Utilization)
	assert.Equal(t, 0, beta.Utilization)
}

func TestExecute_CancelledBookingsIgnored(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-1", Type: "study-room", Name: "Alpha", Capacity: 1},
		},
		bookings: []domain.Booking{
			{ID: "b1", ResourceID: "room-1", Status: domain.StatusCancelled,
				StartTime: "2025-03-03T10:00:00", EndTime: "2025-03-03T11:00:00"},
		},
	}
	uc := NewUseCase(datasets, nil, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Rooms, 1)
	assert.Equal(t, 0, resp.Rooms[0].Utilization)
	assert.Equal(t, 0, resp.Rooms[0].Bookings)
}
