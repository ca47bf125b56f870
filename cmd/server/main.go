// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, seeds the task store, starts the HTTP server, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/taskboard-api/internal/adapters/http"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/security"
	"github.com/jsamuelsen11/taskboard-api/internal/adapters/store/memory"
	"github.com/jsamuelsen11/taskboard-api/internal/app"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/config"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/health"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/logging"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerStores(injector)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register store health checks after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*memory.TaskStore](injector))
	registry.Register(do.MustInvoke[*memory.UserStore](injector))
	registry.Register(do.MustInvoke[*memory.TestimonialStore](injector))

	if err := seedTasks(ctx, injector, cfg.Store.SeedTasks); err != nil {
		return fmt.Errorf("seeding tasks: %w", err)
	}

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

func seedTasks(ctx context.Context, injector do.Injector, seeds []config.SeedTask) error {
	if len(seeds) == 0 {
		return nil
	}
	drafts := make([]task.Draft, len(seeds))
	for i, s := range seeds {
		drafts[i] = task.Draft{Title: s.Title, Priority: s.Priority, Deadline: s.Deadline}
	}
	svc := do.MustInvoke[*app.TaskService](injector)
	return svc.Seed(ctx, drafts)
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerStores(injector *do.RootScope) {
	do.Provide(injector, func(_ do.Injector) (*memory.TaskStore, error) {
		return memory.NewTaskStore()
	})
	do.Provide(injector, func(_ do.Injector) (*memory.UserStore, error) {
		return memory.NewUserStore()
	})
	do.Provide(injector, func(_ do.Injector) (*memory.TestimonialStore, error) {
		return memory.NewTestimonialStore()
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.PasswordHasher, error) {
		return security.NewBcryptHasher(cfg.Auth.BcryptCost)
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenIssuer, error) {
		return security.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)
	})

	do.Provide(injector, func(i do.Injector) (*app.TaskService, error) {
		store := do.MustInvoke[*memory.TaskStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTaskService(store, logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TestimonialService, error) {
		store := do.MustInvoke[*memory.TestimonialStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTestimonialService(store, logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.AuthService, error) {
		users := do.MustInvoke[*memory.UserStore](i)
		hasher := do.MustInvoke[ports.PasswordHasher](i)
		tokens := do.MustInvoke[ports.TokenIssuer](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewAuthService(users, hasher, tokens, logger, app.WithMetrics(metrics)), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		auth := do.MustInvoke[*app.AuthService](i)
		return adapthttp.Handlers{
			Tasks:        handlers.NewTaskHandler(do.MustInvoke[*app.TaskService](i)),
			Auth:         handlers.NewAuthHandler(auth),
			Testimonials: handlers.NewTestimonialHandler(do.MustInvoke[*app.TestimonialService](i), auth),
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		authLimit, err := middleware.RateLimit(cfg.Auth.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("auth rate limit: %w", err)
		}

		return adapthttp.NewRouter(h, authLimit,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.CORS(cfg.CORS.AllowedOrigins),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
