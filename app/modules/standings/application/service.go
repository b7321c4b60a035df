package standingsservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Black-And-White-Club/league-ranker/app/modules/standings/application/parsers"
	standingsevents "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/events"
	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
	"github.com/Black-And-White-Club/league-ranker/internal/observability/attr"
	standingsmetrics "github.com/Black-And-White-Club/league-ranker/internal/observability/metrics"
	"github.com/Black-And-White-Club/league-ranker/pkg/results"
)

const serviceName = "StandingsService"

// StandingsService implements the Service interface.
type StandingsService struct {
	engine    *Engine
	parser    parsers.Parser
	publisher EventPublisher
	logger    *slog.Logger
	metrics   standingsmetrics.StandingsMetrics
	tracer    trace.Tracer
}

// NewStandingsService creates a new StandingsService around an empty engine.
// publisher, metrics and tracer may be nil.
func NewStandingsService(
	parser parsers.Parser,
	publisher EventPublisher,
	logger *slog.Logger,
	metrics standingsmetrics.StandingsMetrics,
	tracer trace.Tracer,
) *StandingsService {
	if logger == nil {
		logger = slog.Default()
	}
	if parser == nil {
		parser = parsers.NewResultParser()
	}
	return &StandingsService{
		engine:    NewEngine(),
		parser:    parser,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		tracer:    tracer,
	}
}

// RecordLine parses and applies one raw game result line.
func (s *StandingsService) RecordLine(ctx context.Context, line string) (results.OperationResult[standingstypes.GameResult, *parsers.FormatError], error) {
	return withTelemetry(s, ctx, "RecordLine", line, func(ctx context.Context) (results.OperationResult[standingstypes.GameResult, *parsers.FormatError], error) {
		result, err := s.parser.Parse(line)
		if err != nil {
			var ferr *parsers.FormatError
			if !errors.As(err, &ferr) {
				return results.OperationResult[standingstypes.GameResult, *parsers.FormatError]{}, fmt.Errorf("failed to parse game result: %w", err)
			}
			if s.metrics != nil {
				s.metrics.RecordLineRejected(ctx, ferr.Kind.String())
			}
			s.publish(ctx, standingsevents.LineRejectedTopic, standingsevents.LineRejectedPayload{
				Line:   line,
				Kind:   ferr.Kind.String(),
				Reason: ferr.Error(),
			})
			return results.FailureResult[standingstypes.GameResult](ferr), nil
		}

		s.apply(ctx, result)
		return results.SuccessResult[standingstypes.GameResult, *parsers.FormatError](result), nil
	})
}

// RecordResult applies an already decoded game result.
func (s *StandingsService) RecordResult(ctx context.Context, result standingstypes.GameResult) error {
	_, err := withTelemetry(s, ctx, "RecordResult", result.Team1Name+" v "+result.Team2Name, func(ctx context.Context) (results.OperationResult[standingstypes.GameResult, error], error) {
		s.apply(ctx, result)
		return results.SuccessResult[standingstypes.GameResult, error](result), nil
	})
	return err
}

// apply is the single write path into the engine.
func (s *StandingsService) apply(ctx context.Context, result standingstypes.GameResult) {
	s.engine.RecordResult(result)

	if s.metrics != nil {
		s.metrics.RecordLineAccepted(ctx)
		s.metrics.SetTeamsTracked(ctx, s.engine.TeamCount())
	}

	s.publish(ctx, standingsevents.ResultRecordedTopic, standingsevents.ResultRecordedPayload{
		Team1Name:   result.Team1Name,
		Team1Score:  result.Team1Score,
		Team1Points: PointsFor(result.Team1Score, result.Team2Score),
		Team2Name:   result.Team2Name,
		Team2Score:  result.Team2Score,
		Team2Points: PointsFor(result.Team2Score, result.Team1Score),
	})
}

// Ranking computes the current ranking table.
func (s *StandingsService) Ranking(ctx context.Context) ([]standingstypes.RankingEntry, error) {
	result, err := withTelemetry(s, ctx, "Ranking", "", func(ctx context.Context) (results.OperationResult[[]standingstypes.RankingEntry, error], error) {
		return results.SuccessResult[[]standingstypes.RankingEntry, error](s.engine.ComputeRanking()), nil
	})
	if err != nil {
		return nil, err
	}
	return *result.Success, nil
}

// RankingLines renders the current ranking table.
func (s *StandingsService) RankingLines(ctx context.Context) ([]string, error) {
	entries, err := s.Ranking(ctx)
	if err != nil {
		return nil, err
	}
	return standingstypes.RenderLines(entries), nil
}

func (s *StandingsService) TeamCount() int {
	return s.engine.TeamCount()
}

func (s *StandingsService) String() string {
	return s.engine.String()
}

// publish sends an audit event. Delivery problems are logged, never returned:
// the audit trail must not block ingestion.
func (s *StandingsService) publish(ctx context.Context, topic string, payload any) {
	if s.publisher == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to marshal event payload",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if id := attr.CorrelationIDFromContext(ctx); id != "" {
		msg.Metadata.Set("correlation_id", id)
	}

	if err := s.publisher.Publish(topic, msg); err != nil {
		s.logger.WarnContext(ctx, "Failed to publish event",
			attr.ExtractCorrelationID(ctx),
			attr.String("topic", topic),
			attr.Error(err),
		)
	}
}

// -----------------------------------------------------------------------------
// Generic Helpers (Defined as functions because methods cannot have type params)
// -----------------------------------------------------------------------------

// operationFunc is the generic signature for service operation functions.
type operationFunc[S any, F any] func(ctx context.Context) (results.OperationResult[S, F], error)

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[S any, F any](
	s *StandingsService,
	ctx context.Context,
	operationName string,
	identifier string,
	op operationFunc[S, F],
) (result results.OperationResult[S, F], err error) {
	var span trace.Span
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operationName, trace.WithAttributes(
			attribute.String("operation", operationName),
			attribute.String("identifier", identifier),
		))
	} else {
		span = trace.SpanFromContext(ctx)
	}
	defer span.End()

	if s.metrics != nil {
		s.metrics.RecordOperationAttempt(ctx, operationName, serviceName)
	}

	startTime := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.RecordOperationDuration(ctx, operationName, serviceName, time.Since(startTime))
		}
	}()

	s.logger.DebugContext(ctx, "Operation triggered",
		attr.ExtractCorrelationID(ctx),
		attr.String("operation", operationName),
		attr.String("identifier", identifier),
	)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("identifier", identifier),
				attr.Error(err),
			)
			if s.metrics != nil {
				s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
			}
			span.RecordError(err)
			result = results.OperationResult[S, F]{}
		}
	}()

	result, err = op(ctx)

	// Infrastructure error
	if err != nil {
		wrappedErr := fmt.Errorf("%s: %w", operationName, err)
		s.logger.ErrorContext(ctx, "Operation failed with error",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Error(wrappedErr),
		)
		if s.metrics != nil {
			s.metrics.RecordOperationFailure(ctx, operationName, serviceName)
		}
		span.RecordError(wrappedErr)
		return result, wrappedErr
	}

	// Domain failure
	if result.IsFailure() {
		s.logger.WarnContext(ctx, "Operation returned failure result",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
			attr.Any("failure_payload", *result.Failure),
		)
	}

	if result.IsSuccess() {
		s.logger.DebugContext(ctx, "Operation completed successfully",
			attr.ExtractCorrelationID(ctx),
			attr.String("operation", operationName),
			attr.String("identifier", identifier),
		)
	}

	if s.metrics != nil {
		s.metrics.RecordOperationSuccess(ctx, operationName, serviceName)
	}

	return result, nil
}
