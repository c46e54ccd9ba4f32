package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
)

// nopLogger глушит логи в тестах
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBookings_NormalizesFieldSpellings(t *testing.T) {
	dir := t.TempDir()

	// Снапшоты разных версий бэкенда: snake_case и camelCase вперемешку
	bookingsPath := writeFile(t, dir, "bookings.json", `[
		{"id": "b1", "resource_id": "room-1", "start_time": "2025-03-03T09:00:00", "end_time": "2025-03-03T10:00:00", "status": "confirmed"},
		{"id": "b2", "resourceId": "room-2", "startTime": "2025-03-03T11:00:00", "endTime": "2025-03-03T12:00:00", "status": "active"}
	]`)

	store := NewStore(bookingsPath, "", nopLogger{})
	bookings, err := store.Bookings(context.Background())
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, domain.Booking{
		ID: "b1", ResourceID: "room-1",
		StartTime: "2025-03-03T09:00:00", EndTime: "2025-03-03T10:00:00",
		Status: domain.StatusConfirmed,
	}, bookings[0])

	assert.Equal(t, domain.Booking{
		ID: "b2", ResourceID: "room-2",
		StartTime: "2025-03-03T11:00:00", EndTime: "2025-03-03T12:00:00",
		Status: domain.StatusActive,
	}, bookings[1])
}

func TestResources_NormalizesFieldSpellings(t *testing.T) {
	dir := t.TempDir()

	resourcesPath := writeFile(t, dir, "resources.json", `[
		{"id": "room-1", "type": "study-room", "name": "Alpha", "status": "available", "capacity": 4},
		{"resourceId": "room-2", "resourceType": "lab", "name": "Beta"}
	]`)

	store := NewStore("", resourcesPath, nopLogger{})
	resources, err := store.Resources(context.Background())
	require.NoError(t, err)
	require.Len(t, resources, 2)

	assert.Equal(t, domain.Resource{
		ID: "room-1", Type: "study-room", Name: "Alpha",
		Status: domain.ResourceAvailable, Capacity: 4,
	}, resources[0])

	assert.Equal(t, domain.Resource{
		ID: "room-2", Type: "lab", Name: "Beta",
	}, resources[1])
}

func TestBookings_MissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"), "", nopLogger{})

	_, err := store.Bookings(context.Background())
	assert.ErrorIs(t, err, ErrReadFile)
}

func TestBookings_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	bookingsPath := writeFile(t, dir, "bookings.json", `{"not": "an array"`)

	store := NewStore(bookingsPath, "", nopLogger{})
	_, err := store.Bookings(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}

func TestBookings_EmptySnapshot(t *testing.T) {
	dir := t.TempDir()
	bookingsPath := writeFile(t, dir, "bookings.json", `[]`)

	store := NewStore(bookingsPath, "", nopLogger{})
	bookings, err := store.Bookings(context.Background())
	require.NoError(t, err)
	assert.Empty(t, bookings)
}
