package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"bookstore/docs"
	"bookstore/internal/config"
	"bookstore/internal/database"
	"bookstore/internal/database/migration"
	handlers "bookstore/internal/http/handler"
	"bookstore/internal/http/middleware"
	"bookstore/internal/logger"
	"bookstore/internal/otel"
	"bookstore/internal/repository/sqldb"
	"bookstore/internal/service"
)

// @title Bookstore API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	log := logger.New(logger.Options{
		Level:    cfg.LogLevel,
		Pretty:   cfg.LogPretty,
		Location: cfg.Location(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize tracing")
	}

	db, dialect, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Database.Driver).Msg("failed to connect to database")
	}

	if err := migration.EnsureMigrated(ctx, db, dialect, log); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	bookRepo := sqldb.NewBookSQL(db, dialect)
	bookSvc := service.NewBookService(bookRepo)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, string(dialect)),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware(
		otelfiber.WithNext(func(c *fiber.Ctx) bool { return c.Path() == "/metrics" }),
	))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(metrics.Handler())

	handlers.RegisterRoutes(app, db, bookSvc, handlers.HealthInfo{
		Service:  cfg.ServiceName,
		BooksURL: cfg.BooksURL(),
	})
	app.Get("/metrics", handlers.Metrics(reg))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.Swagger(docs.SwaggerInfo))

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", addr).
			Str("api_url", cfg.BooksURL()).
			Str("db_driver", string(dialect)).
			Msg("server_starting")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown_signal_received")
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.Error().Err(err).Msg("server_shutdown_failed")
	}

	// Writes already admitted have finished by now; closing waits for idle connections only.
	if err := db.Close(); err != nil {
		log.Error().Err(err).Msg("database_close_failed")
	}

	tctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(tctx); err != nil {
		log.Error().Err(err).Msg("tracing_shutdown_failed")
	}

	log.Info().Msg("server_stopped")
}
