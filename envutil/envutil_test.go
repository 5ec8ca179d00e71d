package envutil

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextOverrideWins(t *testing.T) {
	t.Setenv("ARFLOW_TEST_VALUE", "from-env")

	ctx := WithEnvOverride(t.Context(), "ARFLOW_TEST_VALUE", "from-ctx")

	val, err := String(ctx, "ARFLOW_TEST_VALUE").Value()
	require.NoError(t, err)
	assert.Equal(t, "from-ctx", val)

	val, err = String(t.Context(), "ARFLOW_TEST_VALUE").Value()
	require.NoError(t, err)
	assert.Equal(t, "from-env", val)
}

func TestMissingAndDefault(t *testing.T) {
	t.Parallel()

	ctx := t.Context()

	_, err := Int(ctx, "ARFLOW_TEST_DOES_NOT_EXIST").Value()
	require.ErrorIs(t, err, ErrEnvVarMissing)

	val, err := Int(ctx, "ARFLOW_TEST_DOES_NOT_EXIST", Default(42)).Value()
	require.NoError(t, err)
	assert.Equal(t, 42, val)
}

func TestTypedReaders(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverride(t.Context(), "B", " true ")
	ctx = WithEnvOverride(ctx, "F", "8.5")
	ctx = WithEnvOverride(ctx, "D", "1m30s")
	ctx = WithEnvOverride(ctx, "L", "DEBUG")

	b, err := Bool(ctx, "B").Value()
	require.NoError(t, err)
	assert.True(t, b)

	f, err := Float64(ctx, "F").Value()
	require.NoError(t, err)
	assert.InDelta(t, 8.5, f, 1e-9)

	d, err := Duration(ctx, "D").Value()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)

	l, err := SlogLevel(ctx, "L").Value()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)
}

func TestMalformedAndValidation(t *testing.T) {
	t.Parallel()

	ctx := WithEnvOverride(t.Context(), "N", "not-a-number")
	ctx = WithEnvOverride(ctx, "NEG", "-3")

	_, err := Int(ctx, "N").Value()
	require.ErrorIs(t, err, ErrBadEnvVar)
	assert.Equal(t, 7, Int(ctx, "N").ValueOrElse(7))

	_, err = Int(ctx, "NEG", Validate(Positive[int])).Value()
	require.ErrorIs(t, err, ErrBadEnvVar)

	called := false
	Int(ctx, "NEG").DoWithValue(func(int) { called = true })
	assert.True(t, called)
}
