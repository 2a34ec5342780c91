package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"ensabun/internal/config"
	"ensabun/internal/handlers"
	"ensabun/internal/middleware"
	"ensabun/internal/repositories"
	"ensabun/internal/services"
	"ensabun/pkg/db"
	"ensabun/pkg/logger"
	"ensabun/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// --- Database ---
	database, err := db.Open(cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize database")
	}
	store := repositories.NewGORMStore(database)

	// An unreachable store is not fatal: requests fail with store errors and
	// /health reports it until the database comes back.
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if store.Ping(pingCtx) {
		log.WithField("driver", cfg.Database.Driver).Info("Database connected")
	} else {
		log.WithField("driver", cfg.Database.Driver).Warn("Database unreachable, starting in degraded mode")
	}
	cancel()

	// --- RabbitMQ (optional) ---
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
		if err != nil {
			log.WithError(err).Warn("RabbitMQ unavailable, inventory events disabled")
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	app := NewApp(cfg, log, store, events)

	// --- Start HTTP Server ---
	log.WithField("port", cfg.AppPort).Info("Starting server")

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.WithError(err).Fatal("Server failed to start")
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("Error during Fiber shutdown")
	}
	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
	log.Info("Server gracefully stopped")
}

// NewApp wires repositories, services and handlers onto a Fiber app.
// events may be nil, in which case no inventory events are published.
func NewApp(cfg *config.Config, log *logrus.Logger, store repositories.Store, events services.EventPublisher) *fiber.App {
	responder := handlers.Responder{Log: log, Verbose: cfg.IsDevelopment()}

	app := fiber.New(fiber.Config{
		AppName:      "ensabun",
		ErrorHandler: responder.ErrorHandler,
		UnescapePath: true,
	})

	// --- Middleware ---
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log))
	app.Use(recover.New())
	app.Use(corsMiddleware(cfg.CORSOrigins))
	app.Use(middleware.Timeout(cfg.RequestTimeout))

	// --- Repositories ---
	productTypeRepo := repositories.NewSQLProductTypeRepository(store)
	productRepo := repositories.NewSQLProductRepository(store)
	genericRepo := repositories.NewSQLGenericRepository(store)

	// --- Services ---
	productTypeService := services.NewProductTypeService(productTypeRepo, events, log)
	productService := services.NewProductService(productRepo, productTypeRepo, events, log)
	genericService := services.NewGenericService(genericRepo)

	// --- Routes ---
	handlers.NewSystemHandler(store).RegisterRoutes(app)

	api := app.Group("/api")
	handlers.NewProductTypeHandler(productTypeService, responder).RegisterRoutes(api)
	handlers.NewProductHandler(productService, responder).RegisterRoutes(api)
	handlers.NewGenericHandler(genericService, responder).RegisterRoutes(api)

	return app
}

func corsMiddleware(origins []string) fiber.Handler {
	allowed := strings.Join(origins, ",")
	if allowed == "" || allowed == "*" {
		return cors.New()
	}
	return cors.New(cors.Config{
		AllowOrigins:     allowed,
		AllowCredentials: true,
	})
}
