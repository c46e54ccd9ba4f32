package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server      Server      `toml:"server"`
	Logs        Logs        `toml:"logs"`
	Metrics     Metrics     `toml:"metrics"`
	Dataset     Dataset     `toml:"dataset"`
	Database    Database    `toml:"database"`
	Aggregation Aggregation `toml:"aggregation"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки prometheus-метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Dataset выбор источника данных бронирований и ресурсов
type Dataset struct {
	Source        string `toml:"source"` // "postgres" или "file"
	BookingsFile  string `toml:"bookings_file"`
	ResourcesFile string `toml:"resources_file"`
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// Aggregation сервисные умолчания агрегации
type Aggregation struct {
	BandStartHour int `toml:"band_start_hour"` // начало раскладки heatmap
	BandEndHour   int `toml:"band_end_hour"`   // конец раскладки heatmap
}

// DSN возвращает строку подключения к PostgreSQL
func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Load читает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := &Config{
		// Умолчания на случай неполного файла
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: Logs{
			Level: "info",
		},
		Dataset: Dataset{
			Source: "file",
		},
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}

	if cfg.Dataset.Source != "postgres" && cfg.Dataset.Source != "file" {
		return nil, fmt.Errorf("config: unknown dataset source %q", cfg.Dataset.Source)
	}

	return cfg, nil
}
