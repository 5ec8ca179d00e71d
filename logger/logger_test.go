package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/amp-labs/arflow/envutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &rec))

	return rec
}

func TestLogger(t *testing.T) { //nolint:paralleltest
	var buf bytes.Buffer

	ConfigureLoggingWithOptions(Options{
		Subsystem: "test",
		JSON:      true,
		MinLevel:  slog.LevelDebug,
		Output:    &buf,
	})

	Get().Info("default subsystem")
	assert.Equal(t, "test", lastRecord(t, &buf)["subsystem"])

	ctx := WithSessionID(WithWorkflow(t.Context(), "floorplan"), "session-1")
	Get(ctx).Info("session and workflow")

	rec := lastRecord(t, &buf)
	assert.Equal(t, "floorplan", rec["workflow"])
	assert.Equal(t, "session-1", rec["session_id"])

	ctx = WithSubsystem(With(ctx, "corner_count", 3), "overridden")
	Get(ctx).Info("values and subsystem override")

	rec = lastRecord(t, &buf)
	assert.Equal(t, "overridden", rec["subsystem"])
	assert.InDelta(t, 3, rec["corner_count"], 0)

	before := buf.Len()
	Get(WithMuted(ctx, true)).Error("should not appear")
	assert.Equal(t, before, buf.Len())
}

func TestTee(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer

	logger := slog.New(Tee(
		slog.NewJSONHandler(&first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&second, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)).With("k", "v")

	logger.Info("info only reaches the first handler")
	assert.Contains(t, first.String(), `"k":"v"`)
	assert.Empty(t, second.String())

	logger.Warn("warn reaches both")
	assert.Contains(t, second.String(), "warn reaches both")
}

func TestConfigureLoggingFromEnv(t *testing.T) { //nolint:paralleltest
	ctx := envutil.WithEnvOverride(t.Context(), "LOG_OUTPUT", "nowhere")

	_, err := ConfigureLogging(ctx, "test")
	require.ErrorIs(t, err, ErrInvalidLogOutput)

	var buf bytes.Buffer

	ctx = envutil.WithEnvOverride(t.Context(), "LOG_JSON", "true")
	ctx = envutil.WithEnvOverride(ctx, "LOG_LEVEL", "warn")

	logger, err := ConfigureLogging(ctx, "env-test", WithOutput(&buf))
	require.NoError(t, err)

	logger.Info("filtered")
	assert.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Equal(t, "env-test", lastRecord(t, &buf)["subsystem"])
}
