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

	availabilityCalendarHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/availability_calendar"
	cancelOrderHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/cancel_order"
	checkAvailabilityHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/check_availability"
	completeOrderHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/complete_order"
	createOrderHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/create_order"
	getOrderHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/get_order"
	getUserOrdersHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/get_user_orders"
	getVehicleOrdersHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/get_vehicle_orders"
	getVehicleStatusHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/get_vehicle_status"
	startOrderHandler "github.com/vrmarket/VRM-RentalService/internal/api/handlers/start_order"
	"github.com/vrmarket/VRM-RentalService/internal/api/middleware"
	"github.com/vrmarket/VRM-RentalService/internal/config"
	orderRepo "github.com/vrmarket/VRM-RentalService/internal/infra/storage/order"
	vehicleCacheRepo "github.com/vrmarket/VRM-RentalService/internal/infra/storage/vehiclecache"
	authServiceClient "github.com/vrmarket/VRM-RentalService/internal/integrations/authservice"
	vehicleServiceClient "github.com/vrmarket/VRM-RentalService/internal/integrations/vehicleservice"
	ordersService "github.com/vrmarket/VRM-RentalService/internal/service/orders"
	vehicleStatusService "github.com/vrmarket/VRM-RentalService/internal/service/vehiclestatus"
	availabilityCalendarUC "github.com/vrmarket/VRM-RentalService/internal/usecase/availability_calendar"
	checkAvailabilityUC "github.com/vrmarket/VRM-RentalService/internal/usecase/check_availability"
	createOrderUC "github.com/vrmarket/VRM-RentalService/internal/usecase/create_order"
	"github.com/vrmarket/VRM-RentalService/pkg/dbmetrics"
	"github.com/vrmarket/VRM-RentalService/pkg/logger"
	"github.com/vrmarket/VRM-RentalService/pkg/metrics"
	"github.com/vrmarket/VRM-RentalService/pkg/otp"
	"github.com/vrmarket/VRM-RentalService/pkg/simpletxmanager"
	"github.com/vrmarket/VRM-RentalService/pkg/txmanager"
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

	log.Info("Starting VRM-RentalService...")
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

	// Инициализируем интеграционных клиентов
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	vehicleClient := vehicleServiceClient.NewClient(
		cfg.VehicleService.URL,
		time.Duration(cfg.VehicleService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds, VehicleService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout, cfg.VehicleService.URL, cfg.VehicleService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		orderRepository *orderRepo.Repository
		cacheRepository *vehicleCacheRepo.Repository
	)

	var txMgr createOrderUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		orderRepository = orderRepo.NewRepository(wrappedDB)
		cacheRepository = vehicleCacheRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		orderRepository = orderRepo.NewRepository(db)
		cacheRepository = vehicleCacheRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	statusSvc := vehicleStatusService.NewService(
		orderRepository,
		cacheRepository,
		vehicleClient,
		log,
	)
	orderSvc := ordersService.NewService(
		orderRepository,
		vehicleClient,
		statusSvc,
		log,
	)

	// Инициализируем use cases
	createOrderUseCase := createOrderUC.NewUseCase(
		orderRepository,
		vehicleClient,
		statusSvc,
		txMgr,
		otp.NewCryptoGenerator(),
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		orderRepository,
		vehicleClient,
		log,
	)
	availabilityCalendarUseCase := availabilityCalendarUC.NewUseCase(
		orderRepository,
		vehicleClient,
		log,
	)

	// Инициализируем handlers
	createOrder := createOrderHandler.NewHandler(createOrderUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	availabilityCalendar := availabilityCalendarHandler.NewHandler(availabilityCalendarUseCase, log)
	getOrder := getOrderHandler.NewHandler(orderSvc, log)
	cancelOrder := cancelOrderHandler.NewHandler(orderSvc, log)
	startOrder := startOrderHandler.NewHandler(orderSvc, log)
	completeOrder := completeOrderHandler.NewHandler(orderSvc, log)
	getUserOrders := getUserOrdersHandler.NewHandler(orderSvc, log)
	getVehicleOrders := getVehicleOrdersHandler.NewHandler(orderSvc, log)
	getVehicleStatus := getVehicleStatusHandler.NewHandler(statusSvc, log)

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

	// Проверка доступности автомобиля на интервал
	api.HandleFunc("/vehicles/{vehicleId}/availability",
		checkAvailability.Handle).Methods(http.MethodGet)

	// Календарь занятости автомобиля
	api.HandleFunc("/vehicles/{vehicleId}/calendar",
		availabilityCalendar.Handle).Methods(http.MethodGet)

	// Витринный статус автомобиля
	api.HandleFunc("/vehicles/{vehicleId}/status",
		getVehicleStatus.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют Bearer-токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authClient, log))

	// --- Заказы ---
	// Бронирование автомобиля
	protected.HandleFunc("/orders", createOrder.Handle).Methods(http.MethodPost)

	// Список заказов текущего пользователя
	protected.HandleFunc("/orders", getUserOrders.Handle).Methods(http.MethodGet)

	// Получение заказа по ID
	protected.HandleFunc("/orders/{orderId}", getOrder.Handle).Methods(http.MethodGet)

	// Отмена заказа
	protected.HandleFunc("/orders/{orderId}/cancel", cancelOrder.Handle).Methods(http.MethodPatch)

	// Выдача автомобиля (начало аренды)
	protected.HandleFunc("/orders/{orderId}/start", startOrder.Handle).Methods(http.MethodPost)

	// Возврат автомобиля (завершение аренды)
	protected.HandleFunc("/orders/{orderId}/complete", completeOrder.Handle).Methods(http.MethodPost)

	// --- Для владельцев автомобилей ---
	// Список заказов по автомобилю
	protected.HandleFunc("/vehicles/{vehicleId}/orders", getVehicleOrders.Handle).Methods(http.MethodGet)

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
