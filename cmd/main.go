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

	cancelAppointmentHandler "github.com/beautyline/salon-service/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/beautyline/salon-service/internal/api/handlers/create_appointment"
	createReviewHandler "github.com/beautyline/salon-service/internal/api/handlers/create_review"
	deleteAppointmentHandler "github.com/beautyline/salon-service/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/beautyline/salon-service/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/beautyline/salon-service/internal/api/handlers/get_available_slots"
	getSalonHandler "github.com/beautyline/salon-service/internal/api/handlers/get_salon"
	getSalonAppointmentsHandler "github.com/beautyline/salon-service/internal/api/handlers/get_salon_appointments"
	getUserAppointmentsHandler "github.com/beautyline/salon-service/internal/api/handlers/get_user_appointments"
	listReviewsHandler "github.com/beautyline/salon-service/internal/api/handlers/list_reviews"
	listSalonsHandler "github.com/beautyline/salon-service/internal/api/handlers/list_salons"
	updateAppointmentHandler "github.com/beautyline/salon-service/internal/api/handlers/update_appointment"
	updateAppointmentStatusHandler "github.com/beautyline/salon-service/internal/api/handlers/update_appointment_status"
	updateSalonScheduleHandler "github.com/beautyline/salon-service/internal/api/handlers/update_salon_schedule"
	updateSpecialistScheduleHandler "github.com/beautyline/salon-service/internal/api/handlers/update_specialist_schedule"
	"github.com/beautyline/salon-service/internal/api/middleware"
	"github.com/beautyline/salon-service/internal/config"
	appointmentRepo "github.com/beautyline/salon-service/internal/infra/storage/appointment"
	reviewRepo "github.com/beautyline/salon-service/internal/infra/storage/review"
	salonRepo "github.com/beautyline/salon-service/internal/infra/storage/salon"
	serviceRepo "github.com/beautyline/salon-service/internal/infra/storage/service"
	specialistRepo "github.com/beautyline/salon-service/internal/infra/storage/specialist"
	appointmentsService "github.com/beautyline/salon-service/internal/service/appointments"
	catalogService "github.com/beautyline/salon-service/internal/service/catalog"
	reviewsService "github.com/beautyline/salon-service/internal/service/reviews"
	scheduleService "github.com/beautyline/salon-service/internal/service/schedule"
	createAppointmentUC "github.com/beautyline/salon-service/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/beautyline/salon-service/internal/usecase/get_available_slots"
	updateAppointmentUC "github.com/beautyline/salon-service/internal/usecase/update_appointment"
	"github.com/beautyline/salon-service/pkg/dbmetrics"
	"github.com/beautyline/salon-service/pkg/logger"
	"github.com/beautyline/salon-service/pkg/metrics"
	"github.com/beautyline/salon-service/pkg/simpletxmanager"
	"github.com/beautyline/salon-service/pkg/txmanager"
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

	log.Info("Starting salon-service...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		salonRepository       *salonRepo.Repository
		specialistRepository  *specialistRepo.Repository
		serviceRepository     *serviceRepo.Repository
		reviewRepository      *reviewRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		salonRepository = salonRepo.NewRepository(wrappedDB)
		specialistRepository = specialistRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		reviewRepository = reviewRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		salonRepository = salonRepo.NewRepository(db)
		specialistRepository = specialistRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		reviewRepository = reviewRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		salonRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		salonRepository,
		specialistRepository,
		serviceRepository,
		cfg.Booking.DefaultLocale,
		log,
	)
	scheduleSvc := scheduleService.NewService(
		salonRepository,
		specialistRepository,
		log,
	)
	reviewsSvc := reviewsService.NewService(
		reviewRepository,
		salonRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		salonRepository,
		specialistRepository,
		serviceRepository,
		appointmentRepository,
		cfg.Booking,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		salonRepository,
		specialistRepository,
		serviceRepository,
		txMgr,
		cfg.Booking,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		salonRepository,
		specialistRepository,
		serviceRepository,
		txMgr,
		cfg.Booking,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getUserAppointments := getUserAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getSalonAppointments := getSalonAppointmentsHandler.NewHandler(appointmentsSvc, log)
	listSalons := listSalonsHandler.NewHandler(catalogSvc, log)
	getSalon := getSalonHandler.NewHandler(catalogSvc, log)
	updateSalonSchedule := updateSalonScheduleHandler.NewHandler(scheduleSvc, log)
	updateSpecialistSchedule := updateSpecialistScheduleHandler.NewHandler(scheduleSvc, log)
	createReview := createReviewHandler.NewHandler(reviewsSvc, log)
	listReviews := listReviewsHandler.NewHandler(reviewsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

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

	// Каталог салонов
	api.HandleFunc("/salons", listSalons.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salons/{salonId}", getSalon.Handle).Methods(http.MethodGet)

	// Получение доступных слотов для записи
	api.HandleFunc("/salons/{salonId}/specialists/{specialistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Одобренные отзывы
	api.HandleFunc("/reviews", listReviews.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	// Создание записи
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Получение записи по ID
	protected.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)

	// Перенос записи (время и/или услуга)
	protected.HandleFunc("/appointments/{id}", updateAppointment.Handle).Methods(http.MethodPut)

	// Отмена записи
	protected.HandleFunc("/appointments/{id}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// Подтверждение/завершение записи
	protected.HandleFunc("/appointments/{id}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// Удаление записи (только администратор)
	protected.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)

	// История записей пользователя
	protected.HandleFunc("/users/{userId}/appointments", getUserAppointments.Handle).Methods(http.MethodGet)

	// --- Управление салоном (для владельцев) ---
	// Список записей салона
	protected.HandleFunc("/salons/{salonId}/appointments", getSalonAppointments.Handle).Methods(http.MethodGet)

	// Обновление рабочих часов салона
	protected.HandleFunc("/salons/{salonId}/working-hours", updateSalonSchedule.Handle).Methods(http.MethodPut)

	// Обновление персонального расписания мастера
	protected.HandleFunc("/salons/{salonId}/specialists/{specialistId}/working-hours",
		updateSpecialistSchedule.Handle).Methods(http.MethodPut)

	// --- Отзывы ---
	protected.HandleFunc("/reviews", createReview.Handle).Methods(http.MethodPost)

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
