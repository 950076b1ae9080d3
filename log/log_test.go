package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quiet returns options for deterministic text output.
func quiet(opts ...Option) []Option {
	return append([]Option{WithTimeLayout("none"), WithPretty(false)}, opts...)
}

// Logger Tests
// ============================================================================

// TestLogger_Levels verifies records below the level are dropped.
func TestLogger_Levels(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, quiet(WithLevel(LevelWarn))...)
	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.ErrorContext(context.Background(), "error message")

	assert.Equal(t,
		"level=WARN msg=\"warn message\"\nlevel=ERROR msg=\"error message\"\n",
		buf.String())
	assert.Equal(t, LevelWarn, logger.Level())
}

// TestLogger_Trace verifies the trace level name.
func TestLogger_Trace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	Make(&buf, quiet(WithLevel(LevelTrace))...).
		TraceContext(context.Background(), "cache lookup", slog.Bool("cache_hit", true))

	assert.Equal(t, "level=TRACE msg=\"cache lookup\" cache_hit=true\n", buf.String())
}

// TestLogger_JSON verifies JSON records and attributes.
func TestLogger_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON)).With(slog.String("script", "a.expr"))
	logger.Info("script evaluated", slog.Int("source_bytes", 12))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "INFO", record[slog.LevelKey])
	assert.Equal(t, "script evaluated", record[slog.MessageKey])
	assert.Equal(t, "a.expr", record["script"])
	assert.InDelta(t, 12, record["source_bytes"], 0)
	assert.Contains(t, record, slog.TimeKey)
	assert.Equal(t, FormatJSON, logger.Format())
}

// TestLogger_Caller verifies the source points at the calling line.
func TestLogger_Caller(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	Make(&buf, quiet(WithCaller(true))...).Info("here")

	assert.Contains(t, buf.String(), "log_test.go:")
}

// TestLogger_Wrap verifies reconfiguration leaves the original intact.
func TestLogger_Wrap(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	base := Make(&buf, quiet()...)
	debug := base.Wrap(WithLevel(LevelDebug))

	base.Debug("hidden")
	debug.Debug("shown")

	assert.Equal(t, "level=DEBUG msg=shown\n", buf.String())
	assert.Equal(t, LevelInfo, base.Level())
}

// TestLogger_Zero verifies the zero Logger is a usable no-op.
func TestLogger_Zero(t *testing.T) {
	t.Parallel()

	var logger Logger

	assert.NotPanics(t, func() {
		logger.TraceContext(context.Background(), "nothing")
		logger.With(slog.String("k", "v")).Error("nothing")
	})
	assert.Equal(t, DefaultLevel, logger.Level())
	assert.Equal(t, DefaultFormat, logger.Format())
}

// Pretty Handler Tests
// ============================================================================

// TestPretty verifies pretty records without a terminal carry plain text.
func TestPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("script", "a.expr"))
	logger.Warn("run failed",
		slog.Any("error", errors.New("boom")),
		slog.Group("cache", slog.Int("size", 3), slog.Bool("hit", false)),
	)

	got := buf.String()
	for _, want := range []string{
		"level", "WARN", "msg", "run failed", "script", "a.expr",
		"error", "boom", "cache.size", "3", "cache.hit", "false",
	} {
		assert.Contains(t, got, want)
	}

	assert.True(t, strings.HasSuffix(got, "\n"))
	assert.Equal(t, 1, strings.Count(got, "\n"))
}

// TestPretty_Group verifies WithGroup prefixes keys.
func TestPretty_Group(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none"))
	slog.New(logger.Handler().WithGroup("repl")).Info("key", slog.String("name", "enter"))

	assert.Contains(t, buf.String(), "repl.name")
}
