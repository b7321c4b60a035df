// Package standingsmetrics records standings ingestion metrics.
package standingsmetrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "league_ranker"

// StandingsMetrics is the set of measurements the standings service records.
type StandingsMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation, service string)
	RecordOperationSuccess(ctx context.Context, operation, service string)
	RecordOperationFailure(ctx context.Context, operation, service string)
	RecordOperationDuration(ctx context.Context, operation, service string, duration time.Duration)
	RecordLineAccepted(ctx context.Context)
	RecordLineRejected(ctx context.Context, kind string)
	SetTeamsTracked(ctx context.Context, count int)
}

// PrometheusMetrics implements StandingsMetrics on a Prometheus registerer.
type PrometheusMetrics struct {
	operationAttempts *prometheus.CounterVec
	operationSuccess  *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	linesAccepted     prometheus.Counter
	linesRejected     *prometheus.CounterVec
	teamsTracked      prometheus.Gauge
}

// NewPrometheusMetrics creates the collectors and registers them on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_attempts_total",
			Help:      "Number of standings operations started.",
		}, []string{"operation", "service"}),
		operationSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_success_total",
			Help:      "Number of standings operations that completed.",
		}, []string{"operation", "service"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operation_failures_total",
			Help:      "Number of standings operations that failed with an error.",
		}, []string{"operation", "service"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Duration of standings operations.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"operation", "service"}),
		linesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_accepted_total",
			Help:      "Number of game result lines recorded.",
		}),
		linesRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_rejected_total",
			Help:      "Number of game result lines rejected, by format error kind.",
		}, []string{"kind"}),
		teamsTracked: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "teams_tracked",
			Help:      "Number of distinct teams seen so far.",
		}),
	}

	collectors := []prometheus.Collector{
		m.operationAttempts,
		m.operationSuccess,
		m.operationFailures,
		m.operationDuration,
		m.linesAccepted,
		m.linesRejected,
		m.teamsTracked,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register standings collector: %w", err)
		}
	}

	return m, nil
}

func (m *PrometheusMetrics) RecordOperationAttempt(_ context.Context, operation, service string) {
	m.operationAttempts.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationSuccess(_ context.Context, operation, service string) {
	m.operationSuccess.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationFailure(_ context.Context, operation, service string) {
	m.operationFailures.WithLabelValues(operation, service).Inc()
}

func (m *PrometheusMetrics) RecordOperationDuration(_ context.Context, operation, service string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation, service).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordLineAccepted(_ context.Context) {
	m.linesAccepted.Inc()
}

func (m *PrometheusMetrics) RecordLineRejected(_ context.Context, kind string) {
	m.linesRejected.WithLabelValues(kind).Inc()
}

func (m *PrometheusMetrics) SetTeamsTracked(_ context.Context, count int) {
	m.teamsTracked.Set(float64(count))
}

// WriteTextfile dumps the gatherer in the node-exporter textfile format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
