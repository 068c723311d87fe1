package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/sigec-swap/internal/adapter/cache"
	"github.com/seu-repo/sigec-swap/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/sigec-swap/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/sigec-swap/internal/adapter/queue"
	"github.com/seu-repo/sigec-swap/internal/adapter/storage/postgres"
	"github.com/seu-repo/sigec-swap/internal/domain"
	"github.com/seu-repo/sigec-swap/internal/observability/telemetry"
	"github.com/seu-repo/sigec-swap/internal/ports"
	"github.com/seu-repo/sigec-swap/internal/service/auth"
	"github.com/seu-repo/sigec-swap/internal/service/booking"
	"github.com/seu-repo/sigec-swap/internal/service/health"
	"github.com/seu-repo/sigec-swap/internal/service/shift"
	"github.com/seu-repo/sigec-swap/internal/service/station"
	"github.com/seu-repo/sigec-swap/internal/service/subscription"
	"github.com/seu-repo/sigec-swap/internal/service/wallet"
	"github.com/seu-repo/sigec-swap/pkg/config"
)

const (
	serviceName    = "sigec-swap"
	serviceVersion = "v1.0.0"
)

func main() {
	// 1. Initialize Logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting SIGEC-Swap",
		zap.String("service", serviceName),
		zap.String("version", serviceVersion),
	)

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// 3. Initialize OpenTelemetry (Distributed Tracing)
	if cfg.OpenTelemetry.Enabled {
		tracerProvider, err := telemetry.InitTracer(serviceName, cfg.OpenTelemetry.Jaeger.Endpoint)
		if err != nil {
			logger.Fatal("Failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			if err := tracerProvider.Shutdown(context.Background()); err != nil {
				logger.Error("Error shutting down tracer provider", zap.Error(err))
			}
		}()
	}

	// 4. Initialize PostgreSQL Connection Pool
	db, err := postgres.NewConnection(cfg.Database.URL, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get underlying SQL DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.RunMigrations(db); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// 5. Initialize Cache (Redis with in-memory fallback)
	var appCache ports.Cache
	appCache, err = cache.NewRedisCache(cfg.Redis.URL, logger)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to local cache", zap.Error(err))
		appCache = cache.NewLocalCache(time.Minute, logger)
	}
	defer appCache.Close()

	// 6. Initialize Message Queue
	messageQueue, err := newMessageQueue(cfg.Queue, logger)
	if err != nil {
		logger.Fatal("Failed to connect to message queue", zap.Error(err))
	}
	defer messageQueue.Close()

	// 7. Initialize Unit of Work
	uow := postgres.NewUnitOfWork(db, logger)

	// 8. Initialize Services (Business Logic Layer)
	authService := auth.NewService(uow, appCache, cfg.JWT.Secret, logger)
	walletService := wallet.NewService(uow, logger)
	shiftService := shift.NewService(uow, logger)
	subscriptionService := subscription.NewService(uow, walletService, appCache, messageQueue, logger)
	bookingService := booking.NewService(uow, walletService, messageQueue, logger)
	stationService := station.NewService(uow, appCache, logger)

	// 9. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))
	if cfg.CircuitBreaker.Enabled {
		app.Use(middleware.CircuitBreaker(logger))
	}

	// Health Check Endpoints
	healthService := health.NewService(&health.Config{
		Version: serviceVersion,
		DB:      sqlDB,
		Cache:   appCache,
	}, logger)
	health.NewFiberHandler(healthService).RegisterRoutes(app)

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	// Auth routes (public)
	authHandler := handlers.NewAuthHandler(authService, logger)
	v1.Post("/auth/login", authHandler.Login)
	v1.Post("/auth/register", authHandler.Register)
	v1.Post("/auth/refresh", authHandler.RefreshToken)

	// Protected routes
	protected := v1.Group("", middleware.AuthRequired(authService))
	protected.Get("/auth/me", authHandler.Me)

	// Station routes
	stationHandler := handlers.NewStationHandler(stationService, logger)
	protected.Get("/stations", stationHandler.List)
	protected.Get("/stations/:id", stationHandler.Get)
	protected.Get("/stations/:id/batteries", stationHandler.ListBatteries)

	// Shift routes (admin manages, staff reads own)
	shiftHandler := handlers.NewShiftHandler(shiftService, logger)
	shifts := protected.Group("/shifts", middleware.RequireRole(domain.UserRoleAdmin, domain.UserRoleStaff))
	shifts.Get("/", shiftHandler.List)
	shifts.Post("/", middleware.RequireRole(domain.UserRoleAdmin), shiftHandler.Create)
	shifts.Put("/:id", middleware.RequireRole(domain.UserRoleAdmin), shiftHandler.Update)
	shifts.Patch("/:id/status", shiftHandler.UpdateStatus)
	shifts.Delete("/:id", middleware.RequireRole(domain.UserRoleAdmin), shiftHandler.Delete)

	// Wallet routes
	walletHandler := handlers.NewWalletHandler(walletService, logger)
	protected.Get("/wallet", walletHandler.GetWallet)
	protected.Post("/wallet/topup", walletHandler.TopUp)
	protected.Get("/wallet/transactions", walletHandler.GetTransactions)

	// Subscription routes
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, logger)
	protected.Get("/packages", subscriptionHandler.ListPackages)
	protected.Get("/subscriptions", subscriptionHandler.List)
	protected.Post("/subscriptions", subscriptionHandler.Subscribe)
	protected.Post("/subscriptions/:id/cancel", subscriptionHandler.Cancel)

	// Booking routes
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	protected.Get("/bookings", bookingHandler.List)
	protected.Post("/bookings", bookingHandler.Create)
	protected.Get("/bookings/:id", bookingHandler.Get)
	protected.Post("/bookings/:id/cancel", bookingHandler.Cancel)
	staffOnly := middleware.RequireRole(domain.UserRoleStaff, domain.UserRoleAdmin)
	protected.Post("/bookings/:id/checkin", staffOnly, bookingHandler.CheckIn)
	protected.Post("/bookings/:id/complete", staffOnly, bookingHandler.Complete)

	// 10. Start Background Workers
	go startBackgroundWorkers(messageQueue, logger)

	// 11. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 12. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// newMessageQueue builds the configured broker, defaulting to NATS.
func newMessageQueue(cfg config.QueueConfig, logger *zap.Logger) (queue.MessageQueue, error) {
	switch cfg.Driver {
	case "rabbitmq":
		return queue.NewRabbitMQQueue(cfg.RabbitMQURL, logger)
	default:
		url := cfg.NATSURL
		if url == "" {
			url = "nats://localhost:4222"
		}
		return queue.NewNATSQueue(url, logger)
	}
}

// startBackgroundWorkers consumes the domain events published after commits.
func startBackgroundWorkers(mq queue.MessageQueue, logger *zap.Logger) {
	logger.Info("Starting background workers")

	subjects := []string{
		"booking.created",
		"booking.cancelled",
		"swap.completed",
		"subscription.purchased",
	}
	for _, subject := range subjects {
		subject := subject
		if err := mq.Subscribe(subject, func(msg []byte) error {
			logger.Info("Event received",
				zap.String("subject", subject),
				zap.ByteString("payload", msg),
			)
			return nil
		}); err != nil {
			logger.Error("Failed to subscribe", zap.String("subject", subject), zap.Error(err))
		}
	}
}
