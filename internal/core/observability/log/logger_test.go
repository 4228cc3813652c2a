package log

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved(level Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromCore(core, level), logs
}

func TestLogger_Fields(t *testing.T) {
	logger, logs := newObserved(LevelDebug)

	logger.Info("traced",
		String("job", "a"),
		Int("voxels", 4),
		Int64("offset", -1),
		Uint64("digest", 42),
		Float64("distance", 1.5),
		Bool("hit", true),
		Duration("took", time.Second),
		Stringer("level", LevelWarn),
		Error(errors.New("boom")),
		Any("extra", []int{1}),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "a", fields["job"])
	assert.Equal(t, int64(4), fields["voxels"])
	assert.Equal(t, int64(-1), fields["offset"])
	assert.Equal(t, uint64(42), fields["digest"])
	assert.Equal(t, 1.5, fields["distance"])
	assert.Equal(t, true, fields["hit"])
	assert.Equal(t, time.Second, fields["took"])
	assert.Equal(t, "warn", fields["level"])
	assert.Equal(t, "boom", fields["error"])
}

func TestLogger_Levels(t *testing.T) {
	logger, logs := newObserved(LevelWarn)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Log(LevelError, "kept")
	logger.Log(LevelInfo, "dropped")
	assert.Equal(t, 2, logs.Len())
	assert.Equal(t, LevelWarn, logger.GetLevel())

	logger.SetLevel(LevelDebug)
	logger.Debug("kept")
	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, LevelDebug, logger.GetLevel())
}

func TestLogger_With(t *testing.T) {
	logger, logs := newObserved(LevelInfo)

	child := logger.With(String("component", "trace"))
	child.Info("hello")

	ctx := ContextWith(context.Background(), String("request", "r1"))
	ctx = ContextWith(ctx, Int("attempt", 2))
	logger.WithContext(ctx).Info("scoped")
	assert.Same(t, logger, logger.WithContext(context.Background()))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "trace", entries[0].ContextMap()["component"])
	assert.Equal(t, "r1", entries[1].ContextMap()["request"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["attempt"])

	// derived loggers share the level
	logger.SetLevel(LevelError)
	child.Info("dropped")
	assert.Equal(t, 2, logs.Len())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{"", LevelInfo, true},
		{"info", LevelInfo, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewWithConfig(t *testing.T) {
	logger, err := NewWithConfig(Config{Level: LevelDebug, Encoding: "console"})
	require.NoError(t, err)
	assert.Equal(t, LevelDebug, logger.GetLevel())
	assert.NotNil(t, Provide())

	_, err = NewWithConfig(Config{Encoding: "xml"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Error("nothing happens")
	logger.With(String("k", "v")).Info("still nothing")
}
