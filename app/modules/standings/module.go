package standings

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	standingsservice "github.com/Black-And-White-Club/league-ranker/app/modules/standings/application"
	"github.com/Black-And-White-Club/league-ranker/app/modules/standings/application/parsers"
	standingssubscribers "github.com/Black-And-White-Club/league-ranker/app/modules/standings/infrastructure/subscribers"
	"github.com/Black-And-White-Club/league-ranker/config"
	"github.com/Black-And-White-Club/league-ranker/internal/eventbus"
	standingsmetrics "github.com/Black-And-White-Club/league-ranker/internal/observability/metrics"
)

// Module represents the standings module.
type Module struct {
	EventBus         eventbus.EventBus
	StandingsService *standingsservice.StandingsService
	Audit            *standingssubscribers.AuditSubscriber
	config           *config.Config
	logger           *slog.Logger
	cancelFunc       context.CancelFunc
	group            *errgroup.Group
}

// NewStandingsModule creates a new instance of the standings module and starts
// its audit subscriber.
func NewStandingsModule(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	metrics standingsmetrics.StandingsMetrics,
	tracer trace.Tracer,
	eventBus eventbus.EventBus,
) (*Module, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.DebugContext(ctx, "standings.NewStandingsModule called")

	service := standingsservice.NewStandingsService(parsers.NewResultParser(), eventBus, logger, metrics, tracer)
	audit := standingssubscribers.NewAuditSubscriber(eventBus, logger)

	runCtx, cancel := context.WithCancel(ctx)
	consume, err := audit.Subscribe(runCtx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start audit subscriber: %w", err)
	}

	group, _ := errgroup.WithContext(runCtx)
	group.Go(consume)

	return &Module{
		EventBus:         eventBus,
		StandingsService: service,
		Audit:            audit,
		config:           cfg,
		logger:           logger,
		cancelFunc:       cancel,
		group:            group,
	}, nil
}

// Close stops the standings module and waits for the audit subscriber to exit.
func (m *Module) Close() error {
	m.logger.Debug("Stopping standings module")

	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	if m.group != nil {
		if err := m.group.Wait(); err != nil {
			m.logger.Error("Error stopping audit subscriber", "error", err)
			return fmt.Errorf("error stopping audit subscriber: %w", err)
		}
	}

	recorded, rejected := m.Audit.Counts()
	m.logger.Debug("Standings module stopped",
		slog.Int64("results_recorded", recorded),
		slog.Int64("lines_rejected", rejected),
	)
	return nil
}
