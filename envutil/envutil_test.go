package envutil

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_STRING", "hello")

	val, err := String("ENVUTIL_TEST_STRING").Value()
	require.NoError(t, err)
	assert.Equal(t, "hello", val)

	_, err = String("ENVUTIL_TEST_STRING_MISSING").Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)

	assert.Equal(t, "fallback", String("ENVUTIL_TEST_STRING_MISSING", Default("fallback")).ValueOrFatal())
}

func TestTypedReaders(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_BOOL", "true")
	t.Setenv("ENVUTIL_TEST_INT", "42")
	t.Setenv("ENVUTIL_TEST_UINT", "7")
	t.Setenv("ENVUTIL_TEST_FLOAT", "0.25")
	t.Setenv("ENVUTIL_TEST_DURATION", "1500ms")
	t.Setenv("ENVUTIL_TEST_LEVEL", " WARN ")

	assert.True(t, Bool("ENVUTIL_TEST_BOOL").ValueOrElse(false))
	assert.Equal(t, 42, Int("ENVUTIL_TEST_INT").ValueOrElse(0))
	assert.Equal(t, uint64(7), Uint64("ENVUTIL_TEST_UINT").ValueOrElse(0))
	assert.InDelta(t, 0.25, Float64("ENVUTIL_TEST_FLOAT").ValueOrElse(0), 1e-9)
	assert.Equal(t, 1500*time.Millisecond, Duration("ENVUTIL_TEST_DURATION").ValueOrElse(0))
	assert.Equal(t, slog.LevelWarn, SlogLevel("ENVUTIL_TEST_LEVEL").ValueOrElse(slog.LevelInfo))
}

func TestParseErrors(t *testing.T) {
	t.Setenv("ENVUTIL_TEST_BAD_INT", "forty-two")
	t.Setenv("ENVUTIL_TEST_BAD_LEVEL", "loud")

	rdr := Int("ENVUTIL_TEST_BAD_INT", Default(3))
	assert.True(t, rdr.HasError())

	_, err := rdr.Value()
	require.ErrorIs(t, err, ErrBadEnvVar)

	// Parse errors fall back rather than using the default.
	assert.Equal(t, 9, rdr.ValueOrElse(9))

	_, err = SlogLevel("ENVUTIL_TEST_BAD_LEVEL").Value()
	require.ErrorIs(t, err, ErrInvalidLogLevel)
}

var errTooSmall = errors.New("too small")

func TestValidate(t *testing.T) {
	positive := Validate(func(n int) error {
		if n < 1 {
			return errTooSmall
		}

		return nil
	})

	t.Setenv("ENVUTIL_TEST_SIZE", "0")

	_, err := Int("ENVUTIL_TEST_SIZE", positive).Value()
	require.ErrorIs(t, err, errTooSmall)

	t.Setenv("ENVUTIL_TEST_SIZE", "5")
	assert.Equal(t, 5, Int("ENVUTIL_TEST_SIZE", positive).ValueOrFatal())

	// Missing values are not validated; the default is applied first.
	rdr := Int("ENVUTIL_TEST_SIZE_MISSING", positive)
	assert.False(t, rdr.HasError())
	assert.Equal(t, 8, Int("ENVUTIL_TEST_SIZE_MISSING", Default(8), positive).ValueOrFatal())
}
