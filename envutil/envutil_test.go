package envutil

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNotAllowed = errors.New("not allowed")

func TestString(t *testing.T) { //nolint:paralleltest // t.Setenv
	t.Run("present", func(t *testing.T) {
		t.Setenv("AMP_TEST_STRING", "hello")

		val, err := String("AMP_TEST_STRING").Value()
		require.NoError(t, err)
		assert.Equal(t, "hello", val)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := String("AMP_TEST_STRING_MISSING").Value()
		require.ErrorIs(t, err, ErrEnvVarMissing)
	})

	t.Run("missing with default", func(t *testing.T) {
		val, err := String("AMP_TEST_STRING_MISSING", Default("dflt")).Value()
		require.NoError(t, err)
		assert.Equal(t, "dflt", val)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Setenv("AMP_TEST_STRING", "nope")

		rdr := String("AMP_TEST_STRING", Validate(func(string) error { return errNotAllowed }))

		_, err := rdr.Value()
		require.ErrorIs(t, err, ErrBadEnvVar)
		require.ErrorIs(t, err, errNotAllowed)
		assert.False(t, rdr.HasValue())
	})
}

func TestBool(t *testing.T) { //nolint:paralleltest // t.Setenv
	t.Run("parses true", func(t *testing.T) {
		t.Setenv("AMP_TEST_BOOL", "true")

		assert.True(t, Bool("AMP_TEST_BOOL").ValueOrElse(false))
	})

	t.Run("bad value falls back", func(t *testing.T) {
		t.Setenv("AMP_TEST_BOOL", "maybe")

		rdr := Bool("AMP_TEST_BOOL")
		require.Error(t, rdr.Error())
		assert.True(t, rdr.ValueOrElse(true))
	})
}

func TestSlogLevel(t *testing.T) { //nolint:paralleltest // t.Setenv
	tests := []struct {
		raw      string
		expected slog.Level
	}{
		{raw: "debug", expected: slog.LevelDebug},
		{raw: " INFO ", expected: slog.LevelInfo},
		{raw: "Warn", expected: slog.LevelWarn},
		{raw: "error", expected: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("AMP_TEST_LEVEL", tt.raw)

			val, err := SlogLevel("AMP_TEST_LEVEL").Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, val)
		})
	}

	t.Run("unknown level", func(t *testing.T) {
		t.Setenv("AMP_TEST_LEVEL", "loud")

		_, err := SlogLevel("AMP_TEST_LEVEL").Value()
		require.ErrorIs(t, err, ErrInvalidLogLevel)
	})
}

func TestNewReader(t *testing.T) {
	t.Parallel()

	rdr := NewReader("k", true, nil, 42)

	val, err := rdr.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, "k", rdr.Key())
}
