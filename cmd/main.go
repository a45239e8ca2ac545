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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getHallScheduleHandler "github.com/hallhub/SHB-ScheduleService/internal/api/handlers/get_hall_schedule"
	getScheduleOverviewHandler "github.com/hallhub/SHB-ScheduleService/internal/api/handlers/get_schedule_overview"
	getTimeSlotsHandler "github.com/hallhub/SHB-ScheduleService/internal/api/handlers/get_time_slots"
	updateHallScheduleHandler "github.com/hallhub/SHB-ScheduleService/internal/api/handlers/update_hall_schedule"
	"github.com/hallhub/SHB-ScheduleService/internal/api/middleware"
	"github.com/hallhub/SHB-ScheduleService/internal/config"
	scheduleRepo "github.com/hallhub/SHB-ScheduleService/internal/infra/storage/schedule"
	hallServiceClient "github.com/hallhub/SHB-ScheduleService/internal/integrations/hallservice"
	scheduleService "github.com/hallhub/SHB-ScheduleService/internal/service/schedule"
	getScheduleOverviewUC "github.com/hallhub/SHB-ScheduleService/internal/usecase/get_schedule_overview"
	"github.com/hallhub/SHB-ScheduleService/pkg/dbmetrics"
	"github.com/hallhub/SHB-ScheduleService/pkg/logger"
	"github.com/hallhub/SHB-ScheduleService/pkg/metrics"
	"github.com/hallhub/SHB-ScheduleService/pkg/simpletxmanager"
	"github.com/hallhub/SHB-ScheduleService/pkg/txmanager"
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

	log.Info("Starting SHB-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем клиент справочника залов
	hallClient := hallServiceClient.NewClient(
		cfg.HallService.URL,
		time.Duration(cfg.HallService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (HallService=%s timeout=%ds)",
		cfg.HallService.URL, cfg.HallService.Timeout)

	// Инициализируем репозиторий и менеджер транзакций (с метриками или без)
	var (
		scheduleRepository *scheduleRepo.Repository
		txMgr              scheduleService.TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		hallClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	overviewUseCase := getScheduleOverviewUC.NewUseCase(scheduleRepository, log)

	// Инициализируем handlers
	getHallSchedule := getHallScheduleHandler.NewHandler(scheduleSvc, log)
	updateHallSchedule := updateHallScheduleHandler.NewHandler(scheduleSvc, log)
	getScheduleOverview := getScheduleOverviewHandler.NewHandler(overviewUseCase, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(log)

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

	// Сетка допустимых значений времени для редактора
	api.HandleFunc("/schedules/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(cfg.Auth.JWTSecret))

	// Получение недельного расписания зала
	protected.HandleFunc("/schedules/hall/{hallId}", getHallSchedule.Handle).Methods(http.MethodGet)

	// Полная замена недельного расписания зала (только менеджеры зала)
	protected.HandleFunc("/schedules/hall/{hallId}", updateHallSchedule.Handle).Methods(http.MethodPost)

	// Сводка с производными значениями (слоты по дням, сумма, активные дни)
	protected.HandleFunc("/schedules/hall/{hallId}/overview", getScheduleOverview.Handle).Methods(http.MethodGet)

	// CORS: редактор расписания живет на другом origin
	corsHandler := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
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
