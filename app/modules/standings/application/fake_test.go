package standingsservice

import (
	"context"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	standingstypes "github.com/Black-And-White-Club/league-ranker/app/modules/standings/domain/types"
)

// FakePublisher records published messages by topic.
type FakePublisher struct {
	mu         sync.Mutex
	Published  map[string][]*message.Message
	PublishErr error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{Published: make(map[string][]*message.Message)}
}

func (f *FakePublisher) Publish(topic string, messages ...*message.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.PublishErr != nil {
		return f.PublishErr
	}
	f.Published[topic] = append(f.Published[topic], messages...)
	return nil
}

func (f *FakePublisher) Count(topic string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Published[topic])
}

// FakeParser returns canned results.
type FakeParser struct {
	ParseFunc func(line string) (standingstypes.GameResult, error)
}

func (f *FakeParser) Parse(line string) (standingstypes.GameResult, error) {
	return f.ParseFunc(line)
}

// FakeMetrics counts calls instead of exporting them.
type FakeMetrics struct {
	mu           sync.Mutex
	Attempts     map[string]int
	Successes    map[string]int
	Failures     map[string]int
	Accepted     int
	Rejected     map[string]int
	TeamsTracked int
}

func NewFakeMetrics() *FakeMetrics {
	return &FakeMetrics{
		Attempts:  make(map[string]int),
		Successes: make(map[string]int),
		Failures:  make(map[string]int),
		Rejected:  make(map[string]int),
	}
}

func (f *FakeMetrics) RecordOperationAttempt(_ context.Context, operation, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Attempts[operation]++
}

func (f *FakeMetrics) RecordOperationSuccess(_ context.Context, operation, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Successes[operation]++
}

func (f *FakeMetrics) RecordOperationFailure(_ context.Context, operation, _ string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Failures[operation]++
}

func (f *FakeMetrics) RecordOperationDuration(context.Context, string, string, time.Duration) {}

func (f *FakeMetrics) RecordLineAccepted(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Accepted++
}

func (f *FakeMetrics) RecordLineRejected(_ context.Context, kind string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Rejected[kind]++
}

func (f *FakeMetrics) SetTeamsTracked(_ context.Context, count int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.TeamsTracked = count
}
