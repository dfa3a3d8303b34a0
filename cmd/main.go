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

	blockSlotsHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/block_slots"
	createReservationHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/create_reservation"
	deleteBlockedDayHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/delete_blocked_day"
	deleteBlockedSlotHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/delete_blocked_slot"
	getAvailabilityHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/get_availability"
	getOccupancyHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/get_occupancy"
	getReservationHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/get_reservation"
	listBlockedSlotsHandler "github.com/m04kA/BIM-AvailabilityService/internal/api/handlers/list_blocked_slots"
	"github.com/m04kA/BIM-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/BIM-AvailabilityService/internal/config"
	"github.com/m04kA/BIM-AvailabilityService/internal/domain"
	blockedslotRepo "github.com/m04kA/BIM-AvailabilityService/internal/infra/storage/blockedslot"
	reservationRepo "github.com/m04kA/BIM-AvailabilityService/internal/infra/storage/reservation"
	blocksService "github.com/m04kA/BIM-AvailabilityService/internal/service/blocks"
	reservationsService "github.com/m04kA/BIM-AvailabilityService/internal/service/reservations"
	statisticsService "github.com/m04kA/BIM-AvailabilityService/internal/service/statistics"
	blockSlotsUC "github.com/m04kA/BIM-AvailabilityService/internal/usecase/block_slots"
	createReservationUC "github.com/m04kA/BIM-AvailabilityService/internal/usecase/create_reservation"
	getAvailabilityUC "github.com/m04kA/BIM-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/BIM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/BIM-AvailabilityService/pkg/logger"
	"github.com/m04kA/BIM-AvailabilityService/pkg/metrics"
	"github.com/m04kA/BIM-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/BIM-AvailabilityService/pkg/txmanager"
	"github.com/m04kA/BIM-AvailabilityService/pkg/types"
)

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

	log.Info("Starting BIM-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Строим сетку слотов из конфигурации
	grid, err := domain.NewSlotGrid(
		types.TimeString(cfg.SlotGrid.OpenTime),
		types.TimeString(cfg.SlotGrid.CloseTime),
		cfg.SlotGrid.StepMinutes,
	)
	if err != nil {
		log.Fatal("Failed to build slot grid: %v", err)
	}
	log.Info("Slot grid built: %s-%s step %dm, %d slots",
		cfg.SlotGrid.OpenTime, cfg.SlotGrid.CloseTime, cfg.SlotGrid.StepMinutes, grid.Len())

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	// Инициализируем репозитории (с метриками или без)
	var (
		blockedSlotRepository *blockedslotRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		blockedSlotRepository = blockedslotRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		blockedSlotRepository = blockedslotRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	blocksSvc := blocksService.NewService(blockedSlotRepository, log)
	statisticsSvc := statisticsService.NewService(blockedSlotRepository, reservationRepository, grid, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)

	// Инициализируем use cases
	queryTimeout := time.Duration(cfg.Database.QueryTimeout) * time.Second

	blockSlotsUseCase := blockSlotsUC.NewUseCase(blockedSlotRepository, grid, queryTimeout, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(blockedSlotRepository, grid, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		blockedSlotRepository,
		reservationRepository,
		txMgr,
		grid,
		log,
	)

	// Инициализируем handlers
	blockSlots := blockSlotsHandler.NewHandler(blockSlotsUseCase, log)
	listBlockedSlots := listBlockedSlotsHandler.NewHandler(blocksSvc, log)
	deleteBlockedSlot := deleteBlockedSlotHandler.NewHandler(blocksSvc, log)
	deleteBlockedDay := deleteBlockedDayHandler.NewHandler(blocksSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getOccupancy := getOccupancyHandler.NewHandler(statisticsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность дня для записи
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Создание резервации
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Просмотр резервации по ID
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth)

	// --- Блокировки ---
	// Блокировка слотов (single / range / timeRange / specificSlots)
	protected.HandleFunc("/blocked-slots", blockSlots.Handle).Methods(http.MethodPost)

	// Список блокировок, сгруппированных по дням
	protected.HandleFunc("/blocked-slots", listBlockedSlots.Handle).Methods(http.MethodGet)

	// Удаление одной блокировки
	protected.HandleFunc("/blocked-slots/{slotId}", deleteBlockedSlot.Handle).Methods(http.MethodDelete)

	// Каскадное удаление всех блокировок дня
	protected.HandleFunc("/blocked-days/{date}", deleteBlockedDay.Handle).Methods(http.MethodDelete)

	// --- Статистика ---
	// Отчет о занятости за период
	protected.HandleFunc("/statistics/occupancy", getOccupancy.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
