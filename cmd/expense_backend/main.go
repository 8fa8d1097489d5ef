package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portssvc "github.com/SscSPs/expense_manager_backend/internal/core/ports/services"
	"github.com/SscSPs/expense_manager_backend/internal/core/services"
	"github.com/SscSPs/expense_manager_backend/internal/events"
	"github.com/SscSPs/expense_manager_backend/internal/handlers"
	"github.com/SscSPs/expense_manager_backend/internal/middleware"
	"github.com/SscSPs/expense_manager_backend/internal/platform/config"
	"github.com/SscSPs/expense_manager_backend/internal/repositories/database"
	"github.com/SscSPs/expense_manager_backend/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @title Expense Manager API
// @version 1.0
// @description Personal finance ledger with running and aggregate balances.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger := logging.Setup(os.Stderr, cfg.LogLevel, cfg.IsProduction)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("Store opened", slog.String("backend", store.Backend))

	if err := migrate(cfg, logger); err != nil {
		return err
	}

	publisher, closePublisher := newPublisher(cfg, logger)
	defer closePublisher()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc := services.NewServiceContainer(cfg, store.Repos, publisher, reg)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := newRouter(cfg, logger, svc, reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	m, err := database.NewMigrator(cfg)
	if err != nil {
		return err
	}
	applied, upErr := m.Up()
	if closeErr := m.Close(); closeErr != nil {
		logger.Warn("Error closing migrator", slog.String("error", closeErr.Error()))
	}
	if upErr != nil {
		return upErr
	}
	if applied {
		logger.Info("Database migrations applied successfully.")
	} else {
		logger.Info("No new migrations to apply.")
	}
	return nil
}

// newPublisher connects to AMQP when configured. Without AMQP_URL, or when the
// broker is unreachable, events are dropped.
func newPublisher(cfg *config.Config, logger *slog.Logger) (portssvc.EventPublisher, func()) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, transaction events are disabled")
		return events.NoopPublisher{}, func() {}
	}
	p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to connect to AMQP broker, transaction events are disabled", slog.String("error", err.Error()))
		return events.NoopPublisher{}, func() {}
	}
	logger.Info("Publishing transaction events", slog.String("exchange", cfg.AMQPExchange), slog.String("queue", cfg.AMQPQueue))
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Warn("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}
}

func newRouter(cfg *config.Config, logger *slog.Logger, svc *portssvc.ServiceContainer, reg *prometheus.Registry) (*gin.Engine, error) {
	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.NewHTTPMetrics(reg).Middleware(),
		cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
			ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	if err := handlers.RegisterRoutes(r, cfg, svc); err != nil {
		return nil, err
	}
	return r, nil
}
