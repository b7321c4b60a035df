package standingsmetrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()

	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	m.RecordLineAccepted(ctx)
	m.RecordLineAccepted(ctx)
	m.RecordLineRejected(ctx, "missing_comma")
	m.SetTeamsTracked(ctx, 5)
	m.RecordOperationAttempt(ctx, "RecordLine", "StandingsService")
	m.RecordOperationSuccess(ctx, "RecordLine", "StandingsService")
	m.RecordOperationFailure(ctx, "RecordLine", "StandingsService")
	m.RecordOperationDuration(ctx, "RecordLine", "StandingsService", time.Millisecond)

	require.Equal(t, 2.0, testutil.ToFloat64(m.linesAccepted))
	require.Equal(t, 1.0, testutil.ToFloat64(m.linesRejected.WithLabelValues("missing_comma")))
	require.Equal(t, 5.0, testutil.ToFloat64(m.teamsTracked))
	require.Equal(t, 1.0, testutil.ToFloat64(m.operationAttempts.WithLabelValues("RecordLine", "StandingsService")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.operationFailures.WithLabelValues("RecordLine", "StandingsService")))
}

func TestNewPrometheusMetrics_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMetrics(reg)
	require.Error(t, err)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)
	m.RecordLineAccepted(context.Background())

	path := filepath.Join(t.TempDir(), "league_ranker.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "league_ranker_lines_accepted_total 1")
}

func TestNoop(t *testing.T) {
	m := NewNoop()
	ctx := context.Background()
	require.NotPanics(t, func() {
		m.RecordLineAccepted(ctx)
		m.RecordLineRejected(ctx, "x")
		m.SetTeamsTracked(ctx, 1)
		m.RecordOperationDuration(ctx, "op", "svc", time.Second)
	})
}
