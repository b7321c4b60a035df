package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Black-And-White-Club/league-ranker/app/modules/standings"
	"github.com/Black-And-White-Club/league-ranker/config"
	"github.com/Black-And-White-Club/league-ranker/internal/eventbus"
	"github.com/Black-And-White-Club/league-ranker/internal/observability"
	"github.com/Black-And-White-Club/league-ranker/internal/observability/attr"
	standingsmetrics "github.com/Black-And-White-Club/league-ranker/internal/observability/metrics"
)

// Options tweaks how NewApp builds its dependencies.
type Options struct {
	// LogOutput receives structured logs. Defaults to os.Stderr.
	LogOutput io.Writer
	// RunID overrides the generated run identifier.
	RunID string
}

// App holds one ranking run: its configuration, observability and the
// standings module.
type App struct {
	Config    *config.Config
	Logger    *slog.Logger
	RunID     string
	EventBus  eventbus.EventBus
	Standings *standings.Module
	registry  *prometheus.Registry
}

// NewApp initializes the application with the necessary services and configuration.
func NewApp(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}
	runID := opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	logger, err := observability.NewLogger(opts.LogOutput, observability.LoggerOptions{
		Level:       cfg.Observability.LogLevel,
		Format:      cfg.Observability.LogFormat,
		Environment: cfg.Observability.Environment,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logger = logger.With(attr.String("run_id", runID))

	tracer := observability.NewTracer(cfg.Observability.ServiceName)

	registry := prometheus.NewRegistry()
	metrics, err := standingsmetrics.NewPrometheusMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	bus := eventbus.NewGoChannelEventBus(logger)

	module, err := standings.NewStandingsModule(ctx, cfg, logger, metrics, tracer, bus)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("failed to initialize standings module: %w", err)
	}

	logger.DebugContext(ctx, "Application initialized")

	return &App{
		Config:    cfg,
		Logger:    logger,
		RunID:     runID,
		EventBus:  bus,
		Standings: module,
		registry:  registry,
	}, nil
}

// Context returns ctx tagged with the run's correlation ID.
func (a *App) Context(ctx context.Context) context.Context {
	return attr.WithCorrelationID(ctx, a.RunID)
}

// Gatherer exposes the run's metrics registry.
func (a *App) Gatherer() prometheus.Gatherer {
	return a.registry
}

// Close stops the module, closes the bus and flushes metrics when a textfile
// is configured.
func (a *App) Close() error {
	var errs []error

	if a.Standings != nil {
		if err := a.Standings.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.EventBus != nil {
		if err := a.EventBus.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if path := a.Config.Observability.MetricsTextfile; path != "" {
		if err := standingsmetrics.WriteTextfile(path, a.registry); err != nil {
			errs = append(errs, err)
		} else {
			a.Logger.Debug("Metrics written", attr.String("path", path))
		}
	}

	return errors.Join(errs...)
}
