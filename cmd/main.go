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

	cancelBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_booking"
	createAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_availability"
	createBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_booking"
	createEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_event_type"
	deleteAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_availability"
	deleteEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_event_type"
	deleteOverrideHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/delete_override"
	getAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_availability"
	getAvailableDaysHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking"
	getBookingCalendarHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_booking_calendar"
	getEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_event_type"
	getPublicEventHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_public_event"
	getPublicProfileHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_public_profile"
	getUserHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_user"
	listAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_availability"
	listBookingsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_bookings"
	listEventTypesHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/list_event_types"
	rescheduleBookingHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/reschedule_booking"
	updateAvailabilityHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_availability"
	updateEventTypeHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_event_type"
	updateUserHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_user"
	upsertOverrideHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/upsert_override"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/calendar"
	"github.com/m04kA/SMC-SchedulingService/internal/config"
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/infra/ratelimit"
	availabilityRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	eventTypeRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/event_type"
	userRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/user"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/eventbus"
	mailersendClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/mailersend"
	smtpClient "github.com/m04kA/SMC-SchedulingService/internal/integrations/smtp"
	"github.com/m04kA/SMC-SchedulingService/internal/jobs"
	"github.com/m04kA/SMC-SchedulingService/internal/notifier"
	availabilityService "github.com/m04kA/SMC-SchedulingService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-SchedulingService/internal/service/bookings"
	eventTypesService "github.com/m04kA/SMC-SchedulingService/internal/service/event_types"
	usersService "github.com/m04kA/SMC-SchedulingService/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	getAvailableDaysUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
	sendRemindersUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/send_reminders"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/logger"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

const (
	calendarProductID = "-//m04kA//SMC-SchedulingService//EN"
	calendarUIDDomain = "smc-scheduling"

	natsClientName  = "smc-scheduling-service"
	rateLimitPrefix = "ratelimit:public"

	reminderPassTimeout = time.Minute
)

// TxManager транзакции для сервисов (Do) и записи бронирований (DoSerializable)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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

	log.Info("Starting SMC-SchedulingService...")
	log.Info("Configuration loaded from config.toml (host_id=%d, guard_mode=%s)", cfg.Host.ID, cfg.Booking.GuardMode)

	guardMode, err := domain.ParseGuardMode(cfg.Booking.GuardMode)
	if err != nil {
		log.Fatal("Invalid booking guard mode: %v", err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Репозитории работают поверх обёртки с метриками или напрямую с *sql.DB
	var (
		executor dbmetrics.DBExecutor
		txMgr    TxManager
	)
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		executor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	userRepository := userRepo.NewRepository(executor)
	eventTypeRepository := eventTypeRepo.NewRepository(executor)
	availabilityRepository := availabilityRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)

	// Доставка писем
	var mailer notifier.Mailer
	switch cfg.Mail.Provider {
	case config.MailProviderMailerSend:
		mailer = mailersendClient.NewClient(cfg.Mail.MailerSendAPIKey, cfg.Mail.FromName, cfg.Mail.FromEmail, log)
		log.Info("Mail provider: MailerSend (from=%s)", cfg.Mail.FromEmail)
	case config.MailProviderSMTP:
		mailer = smtpClient.NewClient(cfg.Mail.SMTPHost, cfg.Mail.SMTPPort,
			cfg.Mail.SMTPUsername, cfg.Mail.SMTPPassword, cfg.Mail.FromName, cfg.Mail.FromEmail)
		log.Info("Mail provider: SMTP (host=%s, port=%d)", cfg.Mail.SMTPHost, cfg.Mail.SMTPPort)
	default:
		mailer = notifier.NewLogMailer(log)
		log.Warn("Mail provider is not configured, notifications will only be logged")
	}

	// Шина событий (опционально)
	var (
		publisher notifier.Publisher
		bus       *eventbus.NATSBus
	)
	if cfg.NATS.Enabled {
		bus, err = eventbus.Connect(cfg.NATS.URL, natsClientName, cfg.NATS.SubjectPrefix, log)
		if err != nil {
			log.Fatal("Failed to connect to NATS: %v", err)
		}
		publisher = bus
		log.Info("Booking events are published to NATS (url=%s, prefix=%s)", cfg.NATS.URL, cfg.NATS.SubjectPrefix)
	}

	calendarBuilder := calendar.NewBuilder(calendarProductID, calendarUIDDomain)

	templates, err := notifier.LoadTemplates(nil)
	if err != nil {
		log.Fatal("Failed to load notification templates: %v", err)
	}

	bookingNotifier := notifier.New(
		notifier.Config{
			Workers:   cfg.Notifier.Workers,
			QueueSize: cfg.Notifier.QueueSize,
			Timeout:   time.Duration(cfg.Notifier.Timeout) * time.Second,
		},
		mailer,
		publisher,
		calendarBuilder,
		templates,
		metricsCollector,
		log,
	)
	bookingNotifier.Start()
	log.Info("Notifier started (workers=%d, queue=%d)", cfg.Notifier.Workers, cfg.Notifier.QueueSize)

	// Инициализируем сервисы
	userSvc := usersService.NewService(userRepository, eventTypeRepository, log)
	eventTypeSvc := eventTypesService.NewService(eventTypeRepository, txMgr, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txMgr, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingNotifier,
		calendarBuilder,
		metricsCollector,
		txMgr,
		&bookingsService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		userRepository,
		eventTypeRepository,
		availabilityRepository,
		bookingRepository,
		log,
	)
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(
		userRepository,
		eventTypeRepository,
		availabilityRepository,
		bookingRepository,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		eventTypeRepository,
		bookingRepository,
		bookingNotifier,
		metricsCollector,
		txMgr,
		guardMode,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		eventTypeRepository,
		bookingRepository,
		bookingNotifier,
		metricsCollector,
		txMgr,
		guardMode,
		log,
	)
	sendRemindersUseCase := sendRemindersUC.NewUseCase(bookingRepository, bookingNotifier, log)

	// Фоновые задачи
	scheduler := jobs.NewScheduler(log)
	if cfg.Reminders.Enabled {
		if err := scheduler.AddReminders(cfg.Reminders.Schedule, sendRemindersUseCase, cfg.Reminders.Lead(), reminderPassTimeout); err != nil {
			log.Fatal("Failed to schedule reminders: %v", err)
		}
	}
	scheduler.Start()

	// Rate limit публичных эндпоинтов (опционально)
	var (
		redisClient *redis.Client
		limiter     middleware.Limiter
	)
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		redisLimiter := ratelimit.NewRedisLimiter(
			redisClient,
			rateLimitPrefix,
			cfg.RateLimit.Requests,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisLimiter.Ping(pingCtx); err != nil {
			log.Warn("Redis is not reachable, rate limit will fail open: %v", err)
		}
		cancelPing()

		limiter = redisLimiter
		log.Info("Rate limit enabled (addr=%s, %d requests per %ds)",
			cfg.Redis.Addr, cfg.RateLimit.Requests, cfg.RateLimit.WindowSeconds)
	}

	// Инициализируем handlers
	getUser := getUserHandler.NewHandler(userSvc, log)
	updateUser := updateUserHandler.NewHandler(userSvc, log)
	getPublicProfile := getPublicProfileHandler.NewHandler(userSvc, log)
	getPublicEvent := getPublicEventHandler.NewHandler(userSvc, log)

	listEventTypes := listEventTypesHandler.NewHandler(eventTypeSvc, log)
	getEventType := getEventTypeHandler.NewHandler(eventTypeSvc, log)
	createEventType := createEventTypeHandler.NewHandler(eventTypeSvc, log)
	updateEventType := updateEventTypeHandler.NewHandler(eventTypeSvc, log)
	deleteEventType := deleteEventTypeHandler.NewHandler(eventTypeSvc, log)

	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	upsertOverride := upsertOverrideHandler.NewHandler(availabilitySvc, log)
	deleteOverride := deleteOverrideHandler.NewHandler(availabilitySvc, log)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)

	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingCalendar := getBookingCalendarHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix, все запросы выполняются от имени сконфигурированного хоста
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.HostScope(cfg.Host.ID))

	// ============================================================
	// PUBLIC ROUTES (страница бронирования)
	// ============================================================

	public := api.PathPrefix("/public").Subrouter()
	if limiter != nil {
		public.Use(middleware.RateLimit(limiter, log))
	}

	public.HandleFunc("/book", createBooking.Handle).Methods(http.MethodPost)
	public.HandleFunc("/{username}", getPublicProfile.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{username}/{slug}", getPublicEvent.Handle).Methods(http.MethodGet)
	public.HandleFunc("/{username}/{slug}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Слоты ---
	api.HandleFunc("/availability-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability-days", getAvailableDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// HOST ROUTES
	// ============================================================

	// --- Профиль ---
	api.HandleFunc("/user", getUser.Handle).Methods(http.MethodGet)
	api.HandleFunc("/user", updateUser.Handle).Methods(http.MethodPut)

	// --- Типы событий ---
	api.HandleFunc("/event-types", listEventTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/event-types", createEventType.Handle).Methods(http.MethodPost)
	api.HandleFunc("/event-types/{id}", getEventType.Handle).Methods(http.MethodGet)
	api.HandleFunc("/event-types/{id}", updateEventType.Handle).Methods(http.MethodPut)
	api.HandleFunc("/event-types/{id}", deleteEventType.Handle).Methods(http.MethodDelete)

	// --- Расписания ---
	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", createAvailability.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/{id}", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/{id}", updateAvailability.Handle).Methods(http.MethodPut)
	api.HandleFunc("/availability/{id}", deleteAvailability.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/availability/{id}/overrides", upsertOverride.Handle).Methods(http.MethodPost)
	api.HandleFunc("/availability/{id}/overrides/{overrideId}", deleteOverride.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{uid}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{uid}/calendar.ics", getBookingCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{uid}/cancel", cancelBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{uid}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер, CORS оборачивает роутер целиком, чтобы отвечать на preflight
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      middleware.CORS(cfg.CORS.AllowedOrigins)(r),
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

	// Новых бронирований больше нет: останавливаем задачи и дожидаемся уведомлений
	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.Error("Scheduler stop: %v", err)
	}
	if err := bookingNotifier.Stop(shutdownCtx); err != nil {
		log.Error("Notifier stop: %v", err)
	}

	if bus != nil {
		if err := bus.Close(); err != nil {
			log.Error("NATS drain: %v", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Redis close: %v", err)
		}
	}

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	log.Info("Server stopped gracefully")
}
