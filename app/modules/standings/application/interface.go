package standingsservice

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/Black-And-White-Club/league-ranker/app/modules/standings/application/parsers"
	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
	"github.com/Black-And-White-Club/league-ranker/pkg/results"
)

// Service defines the contract for standings operations.
// All state mutations flow through RecordLine or RecordResult.
type Service interface {
	// RecordLine parses one raw line and, if it is well formed, applies it.
	// Malformed lines come back as a failure result and leave state untouched.
	RecordLine(ctx context.Context, line string) (results.OperationResult[standingstypes.GameResult, *parsers.FormatError], error)

	// RecordResult applies an already decoded result.
	RecordResult(ctx context.Context, result standingstypes.GameResult) error

	Ranking(ctx context.Context) ([]standingstypes.RankingEntry, error)

	// RankingLines renders the ranking, or the no-teams sentinel when empty.
	RankingLines(ctx context.Context) ([]string, error)

	TeamCount() int
}

// EventPublisher is the publishing half of the event bus.
type EventPublisher interface {
	Publish(topic string, messages ...*message.Message) error
}
