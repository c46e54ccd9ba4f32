package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getDailyTrendHandler "github.com/m04kA/CRB-AnalyticsService/internal/api/handlers/get_daily_trend"
	getResourcesHandler "github.com/m04kA/CRB-AnalyticsService/internal/api/handlers/get_resources"
	getRoomUtilizationHandler "github.com/m04kA/CRB-AnalyticsService/internal/api/handlers/get_room_utilization"
	getTypeDistributionHandler "github.com/m04kA/CRB-AnalyticsService/internal/api/handlers/get_type_distribution"
	getWeeklyHeatmapHandler "github.com/m04kA/CRB-AnalyticsService/internal/api/handlers/get_weekly_heatmap"
	getWeeklyTrendHandler "github.com/m04kA/CRB-AnalyticsService/internal/api/handlers/get_weekly_trend"
	"github.com/m04kA/CRB-AnalyticsService/internal/api/middleware"
	"github.com/m04kA/CRB-AnalyticsService/internal/config"
	"github.com/m04kA/CRB-AnalyticsService/internal/domain"
	"github.com/m04kA/CRB-AnalyticsService/internal/infra/filestore"
	datasetRepo "github.com/m04kA/CRB-AnalyticsService/internal/infra/storage/dataset"
	catalogService "github.com/m04kA/CRB-AnalyticsService/internal/service/catalog"
	dailyTrendUC "github.com/m04kA/CRB-AnalyticsService/internal/usecase/daily_trend"
	roomUtilizationUC "github.com/m04kA/CRB-AnalyticsService/internal/usecase/room_utilization"
	typeDistributionUC "github.com/m04kA/CRB-AnalyticsService/internal/usecase/type_distribution"
	weeklyHeatmapUC "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_heatmap"
	weeklyTrendUC "github.com/m04kA/CRB-AnalyticsService/internal/usecase/weekly_trend"
	"github.com/m04kA/CRB-AnalyticsService/pkg/logger"
	"github.com/m04kA/CRB-AnalyticsService/pkg/metrics"
)

// datasetProvider — источник снапшота бронирований и ресурсов.
// Сервис только читает: бэкендом данных владеет сервис бронирований.
type datasetProvider interface {
	Bookings(ctx context.Context) ([]domain.Booking, error)
	Resources(ctx context.Context) ([]domain.Resource, error)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CRB-AnalyticsService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled, endpoint: %s", cfg.Metrics.Path)
	}

	// Выбираем источник данных
	var datasets datasetProvider

	switch cfg.Dataset.Source {
	case "postgres":
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		// Проверяем соединение
		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		datasets = datasetRepo.NewRepository(db)

	case "file":
		datasets = filestore.NewStore(cfg.Dataset.BookingsFile, cfg.Dataset.ResourcesFile, log)
		log.Info("Dataset source: snapshot files (%s, %s)",
			cfg.Dataset.BookingsFile, cfg.Dataset.ResourcesFile)
	}

	// Раскладка полос heatmap на уровне сервиса
	var bands []domain.HeatBand
	if cfg.Aggregation.BandStartHour != 0 || cfg.Aggregation.BandEndHour != 0 {
		bands = domain.BandRange(cfg.Aggregation.BandStartHour, cfg.Aggregation.BandEndHour)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(datasets, log)

	// Инициализируем use cases
	dailyTrendUseCase := dailyTrendUC.NewUseCase(datasets, log)
	weeklyTrendUseCase := weeklyTrendUC.NewUseCase(datasets, log)
	typeDistributionUseCase := typeDistributionUC.NewUseCase(datasets, log)
	weeklyHeatmapUseCase := weeklyHeatmapUC.NewUseCase(datasets, bands, log)
	roomUtilizationUseCase := roomUtilizationUC.NewUseCase(datasets, bands, log)

	// Инициализируем handlers
	getDailyTrend := getDailyTrendHandler.NewHandler(dailyTrendUseCase, log)
	getWeeklyTrend := getWeeklyTrendHandler.NewHandler(weeklyTrendUseCase, log)
	getTypeDistribution := getTypeDistributionHandler.NewHandler(typeDistributionUseCase, log)
	getWeeklyHeatmap := getWeeklyHeatmapHandler.NewHandler(weeklyHeatmapUseCase, log)
	getRoomUtilization := getRoomUtilizationHandler.NewHandler(roomUtilizationUseCase, log)
	getResources := getResourcesHandler.NewHandler(catalogSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Аналитика утилизации
	api.HandleFunc("/analytics/daily-trend", getDailyTrend.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics/weekly-trend", getWeeklyTrend.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics/type-distribution", getTypeDistribution.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics/weekly-heatmap", getWeeklyHeatmap.Handle).Methods(http.MethodGet)
	api.HandleFunc("/analytics/room-utilization", getRoomUtilization.Handle).Methods(http.MethodGet)

	// Справочник ресурсов для фильтров дашборда
	api.HandleFunc("/resources", getResources.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
