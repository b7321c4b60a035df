package standingssubscribers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/ThreeDotsLabs/watermill/message"

	standingsevents "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/events"
	"github.com/Black-And-White-Club/league-ranker/internal/eventbus"
	"github.com/Black-And-White-Club/league-ranker/internal/observability/attr"
)

// AuditSubscriber logs every standings event it receives.
type AuditSubscriber struct {
	bus    eventbus.EventBus
	logger *slog.Logger

	recorded atomic.Int64
	rejected atomic.Int64
}

// NewAuditSubscriber creates a new AuditSubscriber.
func NewAuditSubscriber(bus eventbus.EventBus, logger *slog.Logger) *AuditSubscriber {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditSubscriber{bus: bus, logger: logger}
}

// Subscribe registers for the standings topics and returns a function that
// consumes them until both channels close or ctx is done. Splitting the two
// steps lets callers subscribe before anything is published.
func (s *AuditSubscriber) Subscribe(ctx context.Context) (func() error, error) {
	recorded, err := s.bus.Subscribe(ctx, standingsevents.ResultRecordedTopic)
	if err != nil {
		return nil, fmt.Errorf("audit subscriber: %w", err)
	}
	rejected, err := s.bus.Subscribe(ctx, standingsevents.LineRejectedTopic)
	if err != nil {
		return nil, fmt.Errorf("audit subscriber: %w", err)
	}

	return func() error {
		for recorded != nil || rejected != nil {
			select {
			case <-ctx.Done():
				return nil
			case msg, ok := <-recorded:
				if !ok {
					recorded = nil
					continue
				}
				s.handleRecorded(msg)
			case msg, ok := <-rejected:
				if !ok {
					rejected = nil
					continue
				}
				s.handleRejected(msg)
			}
		}
		return nil
	}, nil
}

func (s *AuditSubscriber) handleRecorded(msg *message.Message) {
	defer msg.Ack()
	ctx := attr.WithCorrelationID(msg.Context(), msg.Metadata.Get("correlation_id"))

	var payload standingsevents.ResultRecordedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.WarnContext(ctx, "Dropping malformed result event",
			attr.ExtractCorrelationID(ctx),
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return
	}

	s.recorded.Add(1)
	s.logger.InfoContext(ctx, "Result recorded",
		attr.ExtractCorrelationID(ctx),
		attr.String("team1", payload.Team1Name),
		attr.Int("team1_score", payload.Team1Score),
		attr.Int("team1_points", payload.Team1Points),
		attr.String("team2", payload.Team2Name),
		attr.Int("team2_score", payload.Team2Score),
		attr.Int("team2_points", payload.Team2Points),
	)
}

func (s *AuditSubscriber) handleRejected(msg *message.Message) {
	defer msg.Ack()
	ctx := attr.WithCorrelationID(msg.Context(), msg.Metadata.Get("correlation_id"))

	var payload standingsevents.LineRejectedPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.WarnContext(ctx, "Dropping malformed rejection event",
			attr.ExtractCorrelationID(ctx),
			attr.String("message_id", msg.UUID),
			attr.Error(err),
		)
		return
	}

	s.rejected.Add(1)
	s.logger.InfoContext(ctx, "Line rejected",
		attr.ExtractCorrelationID(ctx),
		attr.String("line", payload.Line),
		attr.String("kind", payload.Kind),
		attr.String("reason", payload.Reason),
	)
}

// Counts returns the number of recorded and rejected events handled so far.
func (s *AuditSubscriber) Counts() (recorded, rejected int64) {
	return s.recorded.Load(), s.rejected.Load()
}
