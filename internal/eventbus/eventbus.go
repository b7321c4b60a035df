package eventbus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventBus publishes and subscribes to in-process messages.
type EventBus interface {
	Publish(topic string, messages ...*message.Message) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}

// GoChannelEventBus is an EventBus backed by watermill's in-memory pub/sub.
type GoChannelEventBus struct {
	pubSub *gochannel.GoChannel
	logger *slog.Logger
}

// ensure GoChannelEventBus adheres to the EventBus interface
var _ EventBus = (*GoChannelEventBus)(nil)

// NewGoChannelEventBus creates a new in-process event bus. Publish blocks
// until every subscriber has acked, which keeps delivery ordered.
func NewGoChannelEventBus(logger *slog.Logger) *GoChannelEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		BlockPublishUntilSubscriberAck: true,
	}, watermill.NewSlogLogger(logger))

	return &GoChannelEventBus{
		pubSub: pubSub,
		logger: logger,
	}
}

// Publish publishes messages to the specified topic.
func (b *GoChannelEventBus) Publish(topic string, messages ...*message.Message) error {
	if err := b.pubSub.Publish(topic, messages...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}
	return nil
}

// Subscribe returns a channel of messages for topic. The channel closes when
// ctx is cancelled or the bus is closed.
func (b *GoChannelEventBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch, err := b.pubSub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to %s: %w", topic, err)
	}
	return ch, nil
}

func (b *GoChannelEventBus) Close() error {
	if err := b.pubSub.Close(); err != nil {
		return fmt.Errorf("failed to close event bus: %w", err)
	}
	return nil
}
