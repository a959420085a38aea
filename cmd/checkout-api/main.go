// Package main is the entry point for the checkout API.
// It wires the pricing engine, the checkout flow, persistence and the
// external stock and payment services behind a Chi router.
//
// 12-Factor App compilance:
//   - III. Config: Configuration via environment variables
//   - VII. Port Binding: Self-contained HTTP server
//   - IX. Disposability: Graceful shutdown
//   - XI. Logs: Structured logging to stdout
//
// Usage:
//
//	go run ./cmd/checkout-api
//
// Environment Variables:
//
//	OPS_ENVIRONMENT     - Deployment environment (development, staging, production)
//	OPS_SERVER_PORT     - HTTP server port (default: 8080), PORT is also honoured
//	DATABASE_URL        - PostgreSQL DSN; in-memory repositories when empty
//	OPS_DATABASE_MIGRATE - apply the embedded schema migrations at startup
//	OPS_GATEWAYS_STOCK_URL, OPS_GATEWAYS_PAYMENT_URL - external services
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/hapkiduki/checkout-go/internal/application/checkout"
	"github.com/hapkiduki/checkout-go/internal/domain/pricing"
	"github.com/hapkiduki/checkout-go/internal/domain/repository"
	"github.com/hapkiduki/checkout-go/internal/domain/valueobject"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/config"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/gateway"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/logging"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/metrics"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/persistance/memory"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/persistance/postgres"
	"github.com/hapkiduki/checkout-go/internal/infrastructure/tracing"
	"github.com/hapkiduki/checkout-go/internal/interfaces/http/handler"
	"github.com/hapkiduki/checkout-go/internal/interfaces/http/middleware"
	"github.com/hapkiduki/checkout-go/migrations"
	"github.com/hapkiduki/checkout-go/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// version is set at build time via ldflags
var version = "dev"

// startTime tracks when the server started for uptime calculations
var startTime = time.Now()

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting checkout API",
		"version", version,
		"environment", cfg.App.Environment,
	)

	// Create context that listens for shutdowns signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logAdapter := logging.NewAdapter(log)

	// ============================================================================
	// Observability
	// ============================================================================

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitProvider(ctx, tracing.Config{
			ServiceName:   cfg.App.Name,
			Environment:   cfg.App.Environment,
			Endpoint:      cfg.Tracing.Endpoint,
			SamplingRatio: cfg.Tracing.SamplingRatio,
		})
		if err != nil {
			return fmt.Errorf("init tracing: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Error("Tracer shutdown failed", "error", err)
			}
		}()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// ============================================================================
	// Persistence
	// ============================================================================

	currency := valueobject.Currency(cfg.App.Currency)
	if !currency.IsValid() {
		return fmt.Errorf("unsupported currency %q", cfg.App.Currency)
	}

	var (
		customers repository.CustomerRepository
		carts     repository.CartRepository
		checks    map[string]handler.Pinger
	)
	if cfg.Database.DSN != "" {
		if cfg.Database.Migrate {
			if err := postgres.Migrate(cfg.Database.DSN, migrations.FS); err != nil {
				return err
			}
			log.Info("Database migrations applied")
		}

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pool.Close()

		customers = postgres.NewCustomerRepository(pool)
		carts = postgres.NewCartRepository(pool, currency)
		checks = map[string]handler.Pinger{"database": pool}
		log.Info("Using PostgreSQL repositories")
	} else {
		memCustomers, memCarts := memory.NewCustomerRepository(), memory.NewCartRepository()
		memory.Seed(memCustomers, memCarts, currency)
		customers, carts = memCustomers, memCarts
		log.Warn("No database configured, using in-memory repositories",
			"seed_customer_id", memory.SeedCustomerID.String(),
			"seed_cart_id", memory.SeedCartID.String(),
		)
	}

	// ============================================================================
	// Application
	// ============================================================================

	httpClient := gateway.NewHTTPClient(cfg.Gateways.Timeout)
	service := checkout.NewService(
		customers,
		carts,
		gateway.NewStockClient(cfg.Gateways.StockURL, httpClient),
		gateway.NewPaymentClient(cfg.Gateways.PaymentURL, httpClient),
		pricing.NewCalculator(pricing.WithCurrency(currency)),
		logAdapter,
		checkout.WithMetrics(metrics.NewPrometheus(registry, nil)),
		checkout.WithTracer(tracing.NewTracer(nil)),
		checkout.WithCancelTimeout(cfg.Gateways.Timeout),
	)

	checkoutHandler := handler.NewCheckoutHandler(service, logAdapter, version)
	healthHandler := handler.NewHealthHandler(version, startTime, checks)

	// ============================================================================
	// Middleware stack
	// ============================================================================
	// Order matters! Middleware is executed in the order added.

	r := chi.NewRouter()

	// 1. Real IP extraction (for rate limiting and logging)
	r.Use(middleware.RealIP)

	// 2. Request ID generation/propagation
	r.Use(middleware.RequestID)

	// 3. Logging (after Request ID so it's included in logs)
	r.Use(middleware.Logger(logAdapter))

	// 4. Panic recovery
	r.Use(middleware.Recoverer(logAdapter))

	// 5. Request timeout
	r.Use(middleware.Timeout(cfg.Server.RequestTimeout))

	// 6. CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-API-Version"},
		MaxAge:         300,
	}))

	// 7. Rate limiting
	r.Use(middleware.RateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}))

	// 8. Security headers
	r.Use(middleware.SecureHeaders)

	// 9. API version header
	r.Use(middleware.APIVersion(version))

	// 10. Request metrics
	if cfg.Metrics.Enabled {
		r.Use(metrics.NewHTTPMetrics("checkout", registry).Middleware)
	}

	// ============================================================================
	// Routes
	// ============================================================================

	// Probes and metrics are plain text or JSON and skip Content-Type enforcement.
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		checkoutHandler.Routes(r)
	})

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	// ============================================================================
	// HTTP server
	// ============================================================================

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, "checkout-api"),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Graceful shutdown
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", "error", err)
		return err
	}
	log.Info("Server shutdown complete")
	return nil
}
