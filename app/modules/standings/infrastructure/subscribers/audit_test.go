package standingssubscribers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/require"

	standingsevents "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/events"
	"github.com/Black-And-White-Club/league-ranker/internal/eventbus"
)

// syncBuffer guards a bytes.Buffer shared with the subscriber goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newMessage(t *testing.T, payload any) *message.Message {
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("correlation_id", "run-7")
	return msg
}

func TestAuditSubscriber(t *testing.T) {
	var out syncBuffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	bus := eventbus.NewGoChannelEventBus(logger)

	sub := NewAuditSubscriber(bus, logger)
	run, err := sub.Subscribe(context.Background())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- run() }()

	require.NoError(t, bus.Publish(standingsevents.ResultRecordedTopic, newMessage(t, standingsevents.ResultRecordedPayload{
		Team1Name: "Lions", Team1Score: 3, Team1Points: 1,
		Team2Name: "Snakes", Team2Score: 3, Team2Points: 1,
	})))
	require.NoError(t, bus.Publish(standingsevents.LineRejectedTopic, newMessage(t, standingsevents.LineRejectedPayload{
		Line: "Lions 3", Kind: "missing_comma", Reason: "INVALID ENTRY",
	})))
	require.NoError(t, bus.Publish(standingsevents.LineRejectedTopic, message.NewMessage(watermill.NewUUID(), []byte("{not json"))))

	// publishes block until acked, so the handlers have already run
	recorded, rejected := sub.Counts()
	require.Equal(t, int64(1), recorded)
	require.Equal(t, int64(1), rejected)

	require.NoError(t, bus.Close())
	require.NoError(t, <-done)

	logs := out.String()
	require.Contains(t, logs, "Result recorded")
	require.Contains(t, logs, "team1=Lions")
	require.Contains(t, logs, "correlation_id=run-7")
	require.Contains(t, logs, "kind=missing_comma")
	require.Contains(t, logs, "Dropping malformed rejection event")
}

func TestAuditSubscriber_ContextCancel(t *testing.T) {
	bus := eventbus.NewGoChannelEventBus(slog.New(slog.NewTextHandler(&syncBuffer{}, nil)))
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	run, err := NewAuditSubscriber(bus, nil).Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	require.NoError(t, run())
}
