package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var out map[string]any

	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &out))

	return out
}

func TestLogger(t *testing.T) { //nolint:paralleltest // Mutates the default logger
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		Output:    &buf,
	})

	t.Run("default subsystem", func(t *testing.T) {
		Get().Info("hello")

		line := lastLine(t, &buf)
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "test", line["subsystem"])
	})

	t.Run("overridden subsystem", func(t *testing.T) {
		Get(WithSubsystem(t.Context(), "overridden")).Info("hello")

		assert.Equal(t, "overridden", lastLine(t, &buf)["subsystem"])
	})

	t.Run("values from context", func(t *testing.T) {
		ctx := With(With(t.Context(), "set", "pokedex"), "size", 3)
		Get(ctx).Info("hello")

		line := lastLine(t, &buf)
		assert.Equal(t, "pokedex", line["set"])
		assert.InDelta(t, 3, line["size"], 0)
	})

	t.Run("sibling contexts do not share values", func(t *testing.T) {
		base := With(t.Context(), "a", 1)
		left := With(base, "b", 2)
		right := With(base, "c", 3)

		assert.Equal(t, []any{"a", 1, "b", 2}, getValues(left))
		assert.Equal(t, []any{"a", 1, "c", 3}, getValues(right))
	})

	t.Run("muted context", func(t *testing.T) {
		buf.Reset()

		Get(WithMuted(t.Context(), true)).Error("should not appear")

		assert.Empty(t, buf.String())
	})

	t.Run("nil context falls back to background", func(t *testing.T) {
		//nolint:staticcheck // Exercising the nil guard
		Get(nil).Info("still logs")

		assert.Equal(t, "still logs", lastLine(t, &buf)["msg"])
	})
}

func TestLegacy(t *testing.T) { //nolint:paralleltest // Mutates the default logger
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem:   "test",
		JSON:        true,
		MinLevel:    slog.LevelDebug,
		LegacyLevel: slog.LevelWarn,
		Output:      &buf,
	})

	log.Println("legacy")

	line := lastLine(t, &buf)
	assert.Equal(t, "legacy", line["msg"])
	assert.Equal(t, "WARN", line["level"])
}

func TestConfigureLogging(t *testing.T) { //nolint:paralleltest // t.Setenv
	t.Run("reads the environment", func(t *testing.T) {
		var buf bytes.Buffer

		t.Setenv("LOG_JSON", "true")
		t.Setenv("LOG_LEVEL", "warn")

		logger, err := ConfigureLogging("env-app", WithOutput(&buf))
		require.NoError(t, err)

		logger.Info("dropped")
		assert.Empty(t, buf.String())

		Get(context.Background()).Warn("kept")
		assert.Equal(t, "env-app", lastLine(t, &buf)["subsystem"])
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		t.Setenv("LOG_OUTPUT", "syslog")

		_, err := ConfigureLogging("env-app")
		require.ErrorIs(t, err, ErrInvalidLogOutput)
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")

		_, err := ConfigureLogging("env-app")
		require.Error(t, err)
	})
}

func TestAttach(t *testing.T) { //nolint:paralleltest // Reads the configured default subsystem
	var buf bytes.Buffer

	base := slog.New(slog.NewJSONHandler(&buf, nil))

	t.Run("adds context values to the given logger", func(t *testing.T) {
		buf.Reset()

		ctx := With(WithSubsystem(context.Background(), "catalog"), "request_id", "r-1")
		Attach(ctx, base).Info("attached")

		line := lastLine(t, &buf)
		assert.Equal(t, "attached", line["msg"])
		assert.Equal(t, "catalog", line["subsystem"])
		assert.Equal(t, "r-1", line["request_id"])
	})

	t.Run("muted context discards output", func(t *testing.T) {
		buf.Reset()

		Attach(WithMuted(context.Background(), true), base).Info("silent")

		assert.Empty(t, buf.String())
	})
}
