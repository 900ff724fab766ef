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
	"github.com/redis/go-redis/v9"

	advanceStepHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/advance_step"
	claimHandoffHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/claim_handoff"
	closeSessionHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/close_session"
	getAvailableSlotsHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/get_available_slots"
	getCentersHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/get_centers"
	getServiceOptionsHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/get_service_options"
	getSessionHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/get_session"
	resetSessionHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/reset_session"
	retreatStepHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/retreat_step"
	startSessionHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/start_session"
	submitBookingHandler "github.com/no-solace/EVSC-BookingFlow/internal/api/handlers/submit_booking"
	"github.com/no-solace/EVSC-BookingFlow/internal/api/middleware"
	"github.com/no-solace/EVSC-BookingFlow/internal/config"
	handoffRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/handoff"
	sessionRepo "github.com/no-solace/EVSC-BookingFlow/internal/infra/storage/session"
	"github.com/no-solace/EVSC-BookingFlow/internal/integrations/centralservice"
	refdataService "github.com/no-solace/EVSC-BookingFlow/internal/service/refdata"
	wizardService "github.com/no-solace/EVSC-BookingFlow/internal/service/wizard"
	claimHandoffUC "github.com/no-solace/EVSC-BookingFlow/internal/usecase/claim_handoff"
	getAvailableSlotsUC "github.com/no-solace/EVSC-BookingFlow/internal/usecase/get_available_slots"
	submitBookingUC "github.com/no-solace/EVSC-BookingFlow/internal/usecase/submit_booking"
	"github.com/no-solace/EVSC-BookingFlow/pkg/logger"
	"github.com/no-solace/EVSC-BookingFlow/pkg/metrics"
	"github.com/no-solace/EVSC-BookingFlow/pkg/txmanager"
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

	log.Info("Starting EVSC-BookingFlow...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (хранилище handoff-записей для приёмки)
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

	// Подключаемся к Redis (опционально, кэш справочных данных)
	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal("Failed to parse redis url: %v", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Reference data cache enabled (redis, ttl=%ds)", cfg.Redis.TTLSeconds)
	} else {
		log.Info("Reference data cache disabled, reading central service directly")
	}

	// Инициализируем клиента центрального сервиса
	centralClient := centralservice.NewClient(
		cfg.CentralService.URL,
		time.Duration(cfg.CentralService.Timeout)*time.Second,
		log,
		upstreamMetrics(metricsCollector),
	)
	log.Info("Central service client initialized (url=%s, timeout=%ds)",
		cfg.CentralService.URL, cfg.CentralService.Timeout)

	// Инициализируем хранилища
	sessions := sessionRepo.NewRepository()
	handoffs := handoffRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	sessionTTL := time.Duration(cfg.Wizard.SessionTTLMinutes) * time.Minute
	wizardSvc := wizardService.NewService(sessions, sessionTTL, log)
	refdataSvc := refdataService.NewService(
		centralClient,
		redisClient,
		time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(sessions, centralClient, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(
		sessions,
		handoffs,
		centralClient,
		txMgr,
		submissionMetrics(metricsCollector),
		log,
	)
	claimHandoffUseCase := claimHandoffUC.NewUseCase(handoffs, txMgr, log)

	// Инициализируем handlers
	startSession := startSessionHandler.NewHandler(wizardSvc, log)
	getSession := getSessionHandler.NewHandler(wizardSvc, log)
	advanceStep := advanceStepHandler.NewHandler(wizardSvc, log)
	retreatStep := retreatStepHandler.NewHandler(wizardSvc, log)
	resetSession := resetSessionHandler.NewHandler(wizardSvc, log)
	closeSession := closeSessionHandler.NewHandler(wizardSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getCenters := getCentersHandler.NewHandler(refdataSvc, log)
	getServiceOptions := getServiceOptionsHandler.NewHandler(refdataSvc, log)
	claimHandoff := claimHandoffHandler.NewHandler(claimHandoffUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочные данные для шагов мастера
	api.HandleFunc("/centers", getCenters.Handle).Methods(http.MethodGet)
	api.HandleFunc("/service-options", getServiceOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Сессии мастера бронирования ---
	protected.HandleFunc("/booking-sessions", startSession.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-sessions/{sessionId}", getSession.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-sessions/{sessionId}", closeSession.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/booking-sessions/{sessionId}/advance", advanceStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-sessions/{sessionId}/retreat", retreatStep.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/booking-sessions/{sessionId}/reset", resetSession.Handle).Methods(http.MethodPost)

	// --- Слоты и отправка ---
	protected.HandleFunc("/booking-sessions/{sessionId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/booking-sessions/{sessionId}/submit", submitBooking.Handle).Methods(http.MethodPost)

	// --- Передача на приёмку (для сотрудников центра) ---
	protected.HandleFunc("/handoffs/{bookingId}/claim", claimHandoff.Handle).Methods(http.MethodPost)

	// Фоновая очистка истёкших сессий
	cleanupStop := make(chan struct{})
	go runSessionCleanup(sessions, metricsCollector, time.Duration(cfg.Wizard.CleanupIntervalSec)*time.Second, cleanupStop, log)

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

	close(cleanupStop)

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

// runSessionCleanup периодически удаляет истёкшие сессии мастера
// и обновляет gauge живых сессий
func runSessionCleanup(
	sessions *sessionRepo.Repository,
	m *metrics.Metrics,
	interval time.Duration,
	stop <-chan struct{},
	log *logger.Logger,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := sessions.DeleteExpired(time.Now())
			if removed > 0 {
				log.Info("Session cleanup: removed %d expired sessions", removed)
			}
			if m != nil {
				m.SetActiveSessions(sessions.Count())
			}
		case <-stop:
			return
		}
	}
}

// upstreamMetrics возвращает nil-безопасный рекордер для клиента
// центрального сервиса: typed-nil в интерфейсе недопустим
func upstreamMetrics(m *metrics.Metrics) centralservice.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}

// submissionMetrics то же самое для usecase отправки
func submissionMetrics(m *metrics.Metrics) submitBookingUC.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
