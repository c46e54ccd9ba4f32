package type_distribution

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

func TestExecute_TypeUtilization(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "room-1", Type: "study-room", Capacity: 1},
		},
		bookings: []domain.Booking{
			// 60 занятых минут из 240 открытых = 25%
			{ID: "b1", ResourceID: "room-1", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T10:00:00", EndTime: "2025-03-03T11:00:00"},
		},
	}
	uc := NewUseCase(datasets, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
		Options: domain.UtilizationOptions{
			OperatingHours: &domain.OperatingHours{Start: 10, End: 14},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Types, 1)

	row := resp.Types[0]
	assert.Equal(t, "study-room", row.Type)
	assert.Equal(t, 1, row.Resources)
	assert.Equal(t, 25, row.Utilization)
}

func TestExecute_ThresholdBuckets(t *testing.T) {
	// Открыто 10 часов = 600 минут на ресурс вместимости 1
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "idle", Type: "study-room", Capacity: 1},  // 0%  -> optimal
			{ID: "mid", Type: "study-room", Capacity: 1},   // 70% -> busy
			{ID: "full", Type: "study-room", Capacity: 1},  // 90% -> over
			{ID: "spare", Type: "study-room", Capacity: 1}, // 10% -> optimal
		},
		bookings: []domain.Booking{
			{ID: "b1", ResourceID: "mid", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T08:00:00", EndTime: "2025-03-03T15:00:00"},
			{ID: "b2", ResourceID: "full", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T08:00:00", EndTime: "2025-03-03T17:00:00"},
			{ID: "b3", ResourceID: "spare", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T08:00:00", EndTime: "2025-03-03T09:00:00"},
		},
	}
	uc := NewUseCase(datasets, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
		Options: domain.UtilizationOptions{
			OperatingHours: &domain.OperatingHours{Start: 8, End: 18},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Types, 1)

	row := resp.Types[0]
	assert.Equal(t, 4, row.Resources)
	assert.Equal(t, 50, row.OptimalPct) // idle + spare
	assert.Equal(t, 25, row.BusyPct)    // mid
	assert.Equal(t, 25, row.OverPct)    // full
}

func TestExecute_SharesAlwaysSumTo100(t *testing.T) {
	// Три ресурса: независимое округление долей 33+33 оставляет 34 в остатке
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "r1", Type: "lab", Capacity: 1}, // optimal
			{ID: "r2", Type: "lab", Capacity: 1}, // busy
			{ID: "r3", Type: "lab", Capacity: 1}, // over
		},
		bookings: []domain.Booking{
			{ID: "b1", ResourceID: "r2", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T00:00:00", EndTime: "2025-03-03T17:00:00"},
			{ID: "b2", ResourceID: "r3", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T00:00:00", EndTime: "2025-03-04T00:00:00"},
		},
	}
	uc := NewUseCase(datasets, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Types, 1)

	row := resp.Types[0]
	assert.Equal(t, 100, row.OptimalPct+row.BusyPct+row.OverPct)
	assert.Equal(t, 33, row.OptimalPct)
	assert.Equal(t, 33, row.BusyPct)
	assert.Equal(t, 34, row.OverPct)
}

func TestExecute_CustomThresholds(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "r1", Type: "lab", Capacity: 1},
		},
		bookings: []domain.Booking{
			// 12 часов из 24 = 50%
			{ID: "b1", ResourceID: "r1", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T00:00:00", EndTime: "2025-03-03T12:00:00"},
		},
	}
	uc := NewUseCase(datasets, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
		Options: domain.UtilizationOptions{
			OptimalThreshold: 40,
			BusyThreshold:    60,
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Types, 1)

	// 50% между порогами 40 и 60 -> busy
	row := resp.Types[0]
	assert.Equal(t, 0, row.OptimalPct)
	assert.Equal(t, 100, row.BusyPct)
	assert.Equal(t, 0, row.OverPct)
}

func TestExecute_RowsSortedByType(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "r1", Type: "study-room", Capacity: 1},
			{ID: "r2", Type: "conf-room", Capacity: 1},
			{ID: "r3", Type: "lab", Capacity: 1},
		},
	}
	uc := NewUseCase(datasets, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Types, 3)

	assert.Equal(t, "conf-room", resp.Types[0].Type)
	assert.Equal(t, "lab", resp.Types[1].Type)
	assert.Equal(t, "study-room", resp.Types[2].Type)
}

func TestExecute_CapacityScalesDenominator(t *testing.T) {
	datasets := &stubDatasets{
		resources: []domain.Resource{
			{ID: "big", Type: "conf-room", Capacity: 4},
		},
		bookings: []domain.Booking{
			// 24 часа одной брони против 24ч * 4 места = 25%
			{ID: "b1", ResourceID: "big", Status: domain.StatusConfirmed,
				StartTime: "2025-03-03T00:00:00", EndTime: "2025-03-04T00:00:00"},
		},
	}
	uc := NewUseCase(datasets, nopLogger{})

	rangeStart := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{
		RangeStart: rangeStart,
		RangeEnd:   rangeStart.AddDate(0, 0, 1),
	})
	require.NoError(t, err)
	require.Len(t, resp.Types, 1)

	assert.Equal(t, 25, resp.Types[0].Utilization)
}
