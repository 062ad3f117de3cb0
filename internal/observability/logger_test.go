package observability

import (
	"testing"

	"kbportal/internal/config"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValues(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{s: zap.New(core).Sugar()}

	l.With("component", "compare").Info("comparison done", "left", "1", "right", "2")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "comparison done", entries[0].Message)
	require.Equal(t, map[string]any{"component": "compare", "left": "1", "right": "2"}, entries[0].ContextMap())
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger

	l.Info("ignored", "k", "v")
	l.Error("ignored")
	require.Nil(t, l.With("k", "v"))
	require.NoError(t, l.Sync())
}

func TestNewLogger_Level(t *testing.T) {
	cfg := config.Default()
	cfg.Env = "production"
	cfg.LogLevel = "warn"

	l := NewLogger(cfg)
	require.False(t, l.s.Desugar().Core().Enabled(zapcore.InfoLevel))
	require.True(t, l.s.Desugar().Core().Enabled(zapcore.WarnLevel))
}
