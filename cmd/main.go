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

	chatHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/chat"
	createBookingHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/delete_booking"
	getAvailabilityHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/get_availability"
	listBookingsHandler "github.com/m04kA/BRB-BookingService/internal/api/handlers/list_bookings"
	"github.com/m04kA/BRB-BookingService/internal/api/handlers"
	"github.com/m04kA/BRB-BookingService/internal/api/middleware"
	"github.com/m04kA/BRB-BookingService/internal/config"
	bookingRepo "github.com/m04kA/BRB-BookingService/internal/infra/storage/booking"
	geminiClient "github.com/m04kA/BRB-BookingService/internal/integrations/gemini"
	bookingsService "github.com/m04kA/BRB-BookingService/internal/service/bookings"
	chatUC "github.com/m04kA/BRB-BookingService/internal/usecase/chat"
	createBookingUC "github.com/m04kA/BRB-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/BRB-BookingService/internal/usecase/get_availability"
	"github.com/m04kA/BRB-BookingService/pkg/dbmetrics"
	"github.com/m04kA/BRB-BookingService/pkg/logger"
	"github.com/m04kA/BRB-BookingService/pkg/metrics"
)

const msgRouteNotFound = "ресурс не найден"

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

	log.Info("Starting BRB-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем репозиторий (с метриками или без)
	var bookingRepository *bookingRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
	}

	// Инициализируем сервисы и use cases
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, log)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Каждому запросу — request ID, каждый запрос — в access log
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Неизвестный маршрут отвечает в том же формате ошибки, что и API
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		handlers.RespondNotFound(w, msgRouteNotFound)
	})

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Доступность слотов на дату
	api.HandleFunc("/slots", getAvailability.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Административная выдача всех бронирований
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Удаление бронирования (идемпотентно)
	api.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// Чат-ассистент (если включен)
	// Ассистент читает только сегодняшние бронирования и никогда не пишет.
	if cfg.Gemini.Enabled {
		gemini, err := geminiClient.NewClient(
			context.Background(),
			cfg.Gemini.APIKey,
			cfg.Gemini.Model,
			time.Duration(cfg.Gemini.Timeout)*time.Second,
			log,
		)
		if err != nil {
			log.Fatal("Failed to initialize Gemini client: %v", err)
		}
		defer gemini.Close()

		business := chatUC.BusinessInfo{Name: cfg.Business.Name}
		for _, svc := range cfg.Business.Services {
			business.Services = append(business.Services, chatUC.ServicePrice{
				Name:  svc.Name,
				Price: svc.Price,
			})
		}

		chatUseCase := chatUC.NewUseCase(bookingRepository, gemini, business, log)
		chat := chatHandler.NewHandler(chatUseCase, log)
		api.HandleFunc("/chat", chat.Handle).Methods(http.MethodPost)

		log.Info("Chat assistant enabled (model=%s)", cfg.Gemini.Model)
	}

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
