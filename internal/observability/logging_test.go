package observability

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "", want: slog.LevelInfo},
		{in: "INFO", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("json output carries service name", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, LoggerOptions{Level: "info", Format: "json", ServiceName: "league-ranker"})
		require.NoError(t, err)

		logger.Info("hello")
		require.Contains(t, buf.String(), `"service":"league-ranker"`)
		require.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, LoggerOptions{Level: "warn"})
		require.NoError(t, err)

		logger.Info("quiet")
		require.Empty(t, buf.String())
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, LoggerOptions{Format: "xml"})
		require.Error(t, err)
	})
}

func TestNewTracer(t *testing.T) {
	require.NotNil(t, NewTracer("league-ranker"))
}
