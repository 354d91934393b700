package cli

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PickupService/internal/api/handlers"
	createBookingHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/get_booking"
	getBookingCalendarHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/get_booking_calendar"
	getBookingPolicyHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/get_booking_policy"
	getBookingsHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/get_bookings"
	loginHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-PickupService/internal/api/handlers/logout"
	"github.com/m04kA/SMC-PickupService/internal/api/middleware"
	"github.com/m04kA/SMC-PickupService/internal/api/pages"
	"github.com/m04kA/SMC-PickupService/internal/config"
	adminUserRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/adminuser"
	bookingRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/booking"
	sessionRepo "github.com/m04kA/SMC-PickupService/internal/infra/storage/session"
	"github.com/m04kA/SMC-PickupService/internal/integrations/holidayservice"
	"github.com/m04kA/SMC-PickupService/internal/integrations/slacknotify"
	authService "github.com/m04kA/SMC-PickupService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-PickupService/internal/service/bookings"
	holidaysService "github.com/m04kA/SMC-PickupService/internal/service/holidays"
	createBookingUC "github.com/m04kA/SMC-PickupService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-PickupService/internal/usecase/get_available_slots"
	getBookingPolicyUC "github.com/m04kA/SMC-PickupService/internal/usecase/get_booking_policy"
	"github.com/m04kA/SMC-PickupService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PickupService/pkg/logger"
	"github.com/m04kA/SMC-PickupService/pkg/metrics"
	"github.com/m04kA/SMC-PickupService/pkg/txmanager"
)

// deps внешние зависимости, из которых собирается HTTP приложение
type deps struct {
	cfg     *config.Config
	db      *sql.DB
	log     *logger.Logger
	metrics *metrics.Metrics // nil, если метрики выключены
	stopCh  <-chan struct{}  // Останавливает сбор метрик пула соединений
}

// buildRouter собирает репозитории, сервисы, use cases и handlers и регистрирует маршруты
func buildRouter(d deps) (*mux.Router, error) {
	cfg, log := d.cfg, d.log

	location, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("business timezone: %w", err)
	}
	policy := cfg.Policy()

	staticHolidays, err := cfg.HolidayList()
	if err != nil {
		return nil, fmt.Errorf("holidays: %w", err)
	}

	// Репозитории и transaction manager (с метриками или без)
	var (
		executor dbmetrics.DBExecutor
		txMgr    *txmanager.TransactionManager
	)
	if d.metrics != nil {
		wrappedDB := dbmetrics.WrapWithDefault(d.db, d.metrics, d.stopCh)
		executor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		executor = d.db
		txMgr = txmanager.NewSimpleTransactionManager(d.db)
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	adminUserRepository := adminUserRepo.NewRepository(executor)
	sessionRepository := sessionRepo.NewRepository(executor)

	// Интеграции
	var holidayClient holidaysService.HolidayClient
	if cfg.Holidays.SourceURL != "" {
		holidayClient = holidayservice.NewClient(
			cfg.Holidays.SourceURL,
			cfg.Holidays.CountryCode,
			time.Duration(cfg.Holidays.Timeout)*time.Second,
			log,
		)
		log.Info("Holiday calendar enabled (url=%s, country=%s, timeout=%ds)",
			cfg.Holidays.SourceURL, cfg.Holidays.CountryCode, cfg.Holidays.Timeout)
	}

	var notifier createBookingUC.Notifier = slacknotify.Nop{}
	if cfg.Slack.BotToken != "" && cfg.Slack.ChannelID != "" {
		notifier = slacknotify.New(cfg.Slack.BotToken, cfg.Slack.ChannelID, location)
		log.Info("Slack notifications enabled (channel=%s)", cfg.Slack.ChannelID)
	}

	var bookingMetrics createBookingUC.MetricsRecorder
	if d.metrics != nil {
		bookingMetrics = d.metrics
	}

	// Сервисы
	holidaySvc := holidaysService.NewService(staticHolidays, holidayClient, location, log)
	bookingSvc := bookingsService.NewService(bookingRepository, location, log)
	authSvc := authService.NewService(adminUserRepository, sessionRepository, cfg.Session.TTL(), log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		holidaySvc,
		policy,
		txMgr,
		notifier,
		bookingMetrics,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, policy, log)
	getBookingPolicyUseCase := getBookingPolicyUC.NewUseCase(holidaySvc, policy, log)

	// Сессии администратора
	hashKey, blockKey, err := cfg.Session.Keys()
	if err != nil {
		return nil, fmt.Errorf("session keys: %w", err)
	}
	if len(hashKey) == 0 {
		log.Warn("session.hash_key is not set, using temporary keys: sessions will not survive a restart")
	}
	cookies := middleware.NewSessionCookie(cfg.Session.CookieName, hashKey, blockKey, cfg.Session.Secure)
	gate := middleware.NewGate(cookies, authSvc, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getBookingPolicy := getBookingPolicyHandler.NewHandler(getBookingPolicyUseCase, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getBookingCalendar := getBookingCalendarHandler.NewHandler(bookingSvc, location, log)
	login := loginHandler.NewHandler(authSvc, cookies, log)
	logout := logoutHandler.NewHandler(authSvc, cookies, log)

	adminPages, err := pages.New(bookingSvc, authSvc, cookies, location, log)
	if err != nil {
		return nil, fmt.Errorf("admin pages: %w", err)
	}

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.Recover(log), middleware.RequestLogger(log))

	if d.metrics != nil {
		r.Use(middleware.MetricsMiddleware(d.metrics))
		r.Handle(cfg.Metrics.Path, d.metrics.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler(d.db)).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/booking-policy", getBookingPolicy.Handle).Methods(http.MethodGet)
	api.HandleFunc("/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/logout", logout.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN API (требуют cookie сессии)
	// ============================================================

	adminAPI := api.PathPrefix("/admin").Subrouter()
	adminAPI.Use(gate.RequireSession)

	adminAPI.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	adminAPI.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	adminAPI.HandleFunc("/calendar", getBookingCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN HTML (Session Gate с редиректами)
	// ============================================================

	gated := func(h http.HandlerFunc) http.Handler {
		return gate.SessionGate(h)
	}

	r.Handle(middleware.AdminPrefix, gated(adminPages.List)).Methods(http.MethodGet)
	r.Handle(middleware.LoginPath, gated(adminPages.LoginForm)).Methods(http.MethodGet)
	r.Handle(middleware.LoginPath, gated(adminPages.LoginSubmit)).Methods(http.MethodPost)
	r.Handle(middleware.AdminPrefix+"/logout", gated(adminPages.Logout)).Methods(http.MethodPost)
	r.Handle(middleware.AdminPrefix+"/calendar", gated(adminPages.Calendar)).Methods(http.MethodGet)

	return r, nil
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// healthHandler GET /health
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			handlers.RespondJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "degraded", Database: "unavailable"})
			return
		}

		handlers.RespondJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "ok"})
	}
}
