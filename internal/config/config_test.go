package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090
read_timeout = 15
write_timeout = 15
idle_timeout = 120
shutdown_timeout = 5

[logs]
file = "logs/app.log"
level = "debug"

[metrics]
enabled = true
service_name = "crb-analytics"
path = "/metrics"

[dataset]
source = "postgres"

[database]
host = "localhost"
port = 5432
user = "analytics"
password = "secret"
dbname = "bookings"
sslmode = "disable"
max_open_conns = 10
max_idle_conns = 5
conn_max_lifetime = 300

[aggregation]
band_start_hour = 8
band_end_hour = 22
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "postgres", cfg.Dataset.Source)
	assert.Equal(t, 8, cfg.Aggregation.BandStartHour)
	assert.Equal(t, 22, cfg.Aggregation.BandEndHour)

	assert.Equal(t,
		"host=localhost port=5432 user=analytics password=secret dbname=bookings sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_DefaultsForMissingSections(t *testing.T) {
	path := writeConfig(t, `
[dataset]
source = "file"
bookings_file = "data/bookings.json"
resources_file = "data/resources.json"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "data/bookings.json", cfg.Dataset.BookingsFile)
}

func TestLoad_UnknownDatasetSource(t *testing.T) {
	path := writeConfig(t, `
[dataset]
source = "carrier-pigeon"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset source")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
