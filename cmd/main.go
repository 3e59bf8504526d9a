package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	cancelBookingHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/create_booking"
	flowHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/flow"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/get_available_slots"
	getCartHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/get_cart"
	getEligibleGroupsHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/get_eligible_groups"
	getOrderSummaryHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/get_order_summary"
	loyaltyCardHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/loyalty_card"
	notificationsHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/notifications"
	participantsHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/participants"
	preferencesHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/preferences"
	sessionsHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/sessions"
	stayHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/stay"
	timerHandler "github.com/m04kA/SMC-SkiSchoolBooking/internal/api/handlers/timer"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/api/middleware"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/config"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/integrations/loyaltycard"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/classes"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/pricing"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/service/stayconfig"
	"github.com/m04kA/SMC-SkiSchoolBooking/internal/session"
	cancelBookingUC "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/cancel_booking"
	createBookingUC "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_available_slots"
	getEligibleGroupsUC "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_eligible_groups"
	getOrderSummaryUC "github.com/m04kA/SMC-SkiSchoolBooking/internal/usecase/get_order_summary"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/logger"
	"github.com/m04kA/SMC-SkiSchoolBooking/pkg/metrics"
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

	log.Info("Starting SMC-SkiSchoolBooking...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Сервис карт постоянного клиента: внешний сервис или имитация
	var cardValidator pricing.CardValidator
	if cfg.LoyaltyCard.URL != "" {
		cardValidator = loyaltycard.NewClient(
			cfg.LoyaltyCard.URL,
			time.Duration(cfg.LoyaltyCard.Timeout)*time.Second,
			log,
		)
		log.Info("Loyalty card client initialized (url=%s, timeout=%ds)", cfg.LoyaltyCard.URL, cfg.LoyaltyCard.Timeout)
	} else {
		cardValidator = loyaltycard.NewStub(time.Duration(cfg.LoyaltyCard.StubLatencyMs)*time.Millisecond, log)
		log.Info("Loyalty card stub enabled (latency=%dms)", cfg.LoyaltyCard.StubLatencyMs)
	}

	// Справочник пребывания и хранилище сессий
	stayCatalog := stayconfig.New()

	registry := session.NewRegistry(session.Deps{
		Clock:          &classes.RealTimeProvider{},
		Skills:         stayCatalog,
		Validator:      cardValidator,
		Metrics:        metricsCollector,
		Logger:         log,
		Pricing:        cfg.Pricing.Domain(),
		Hold:           cfg.Hold.HoldTimer(),
		CatalogDays:    cfg.Session.CatalogDays,
		LoyaltyTimeout: time.Duration(cfg.LoyaltyCard.Timeout) * time.Second,
	}, time.Duration(cfg.Session.IdleTimeout)*time.Second)
	registry.StartEviction(time.Duration(cfg.Session.EvictionInterval) * time.Second)
	log.Info("Session registry started (idle_timeout=%ds, eviction_interval=%ds)",
		cfg.Session.IdleTimeout, cfg.Session.EvictionInterval)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(registry, log)
	getEligibleGroupsUseCase := getEligibleGroupsUC.NewUseCase(registry, stayCatalog, log)
	createBookingUseCase := createBookingUC.NewUseCase(registry, stayCatalog, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(registry, log)
	getOrderSummaryUseCase := getOrderSummaryUC.NewUseCase(registry, log)

	// Инициализируем handlers
	sessions := sessionsHandler.NewHandler(registry, stayCatalog, log)
	stay := stayHandler.NewHandler(registry, stayCatalog, log)
	participants := participantsHandler.NewHandler(registry, stayCatalog, log)
	prefs := preferencesHandler.NewHandler(registry, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEligibleGroups := getEligibleGroupsHandler.NewHandler(getEligibleGroupsUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getCart := getCartHandler.NewHandler(registry, log)
	getOrderSummary := getOrderSummaryHandler.NewHandler(getOrderSummaryUseCase, log)
	loyaltyCard := loyaltyCardHandler.NewHandler(registry, log)
	holdTimer := timerHandler.NewHandler(registry, log)
	bookingFlow := flowHandler.NewHandler(registry, log)
	notifications := notificationsHandler.NewHandler(registry, log)

	loyaltyLimiter := middleware.NewRateLimiter(cfg.LoyaltyCard.RateLimitPerMinute, cfg.LoyaltyCard.RateLimitBurst)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии ---
	api.HandleFunc("/sessions", sessions.Create).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}", sessions.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}", sessions.Delete).Methods(http.MethodDelete)

	// --- Пребывание и участники ---
	api.HandleFunc("/sessions/{sessionId}/stay", stay.Update).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/stay/reset", stay.Reset).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/participants/{participantId}", participants.Update).Methods(http.MethodPatch)

	// --- Предпочтения ---
	api.HandleFunc("/sessions/{sessionId}/preferences/{kind}", prefs.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/preferences/{kind}", prefs.Update).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/previous-instructor", prefs.UpdatePreviousInstructor).Methods(http.MethodPut)
	api.HandleFunc("/sessions/{sessionId}/locale", prefs.UpdateLocale).Methods(http.MethodPut)

	// --- Занятия и корзина ---
	api.HandleFunc("/sessions/{sessionId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/groups", getEligibleGroups.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/bookings", getCart.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{sessionId}/summary", getOrderSummary.Handle).Methods(http.MethodGet)

	// --- Карта постоянного клиента (с ограничением частоты проверок) ---
	api.HandleFunc("/sessions/{sessionId}/loyalty-card", loyaltyCard.Get).Methods(http.MethodGet)
	api.Handle("/sessions/{sessionId}/loyalty-card",
		loyaltyLimiter.Limit(http.HandlerFunc(loyaltyCard.Check))).Methods(http.MethodPost)

	// --- Таймер удержания и мастер ---
	api.HandleFunc("/sessions/{sessionId}/timer", holdTimer.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/timer/{action}", holdTimer.Act).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/flow", bookingFlow.Get).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/flow", bookingFlow.Update).Methods(http.MethodPut)

	// --- Уведомления ---
	api.HandleFunc("/sessions/{sessionId}/ws", notifications.Connect).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/notifications/{messageId}/action", notifications.Act).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/notifications/{messageId}", notifications.Dismiss).Methods(http.MethodDelete)

	// Создаем HTTP сервер
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

	// Останавливаем таймеры и отключаем клиентов уведомлений
	registry.Close()

	log.Info("Server stopped gracefully")
}
