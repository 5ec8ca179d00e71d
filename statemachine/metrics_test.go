package statemachine

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// Each test uses its own workflow label so the shared collectors can be read
// without resetting them.
func TestDispatchMetrics(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	machine := New("lamp_metrics", lamp(off{}), lampTransition, WithTracing(false))

	machine.Dispatch(ctx, press{})
	machine.Dispatch(ctx, dim{Level: 1})
	machine.Dispatch(ctx, ping{})
	machine.Dispatch(ctx, ping{})

	assert.InDelta(t, 1, testutil.ToFloat64(
		dispatchTotal.WithLabelValues("lamp_metrics", "off", "press", "state_and_commands")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(
		dispatchTotal.WithLabelValues("lamp_metrics", "on", "dim", "state")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(
		dispatchTotal.WithLabelValues("lamp_metrics", "on", "ping", "commands")), 0)

	assert.InDelta(t, 1, testutil.ToFloat64(transitionTotal.WithLabelValues("lamp_metrics", "off", "on")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(transitionTotal.WithLabelValues("lamp_metrics", "on", "on")), 0,
		"structurally equal states are not counted as transitions")

	assert.InDelta(t, 1, testutil.ToFloat64(commandsTotal.WithLabelValues("lamp_metrics", "click")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(commandsTotal.WithLabelValues("lamp_metrics", "beep")), 0)
}

func TestMetricsDisabled(t *testing.T) {
	t.Parallel()

	machine := New("lamp_no_metrics", lamp(off{}), lampTransition, WithMetrics(false), WithTracing(false))
	machine.Dispatch(t.Context(), press{})

	assert.InDelta(t, 0, testutil.ToFloat64(
		dispatchTotal.WithLabelValues("lamp_no_metrics", "off", "press", "state_and_commands")), 0)
}

func TestSanitizeWorkflow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", sanitizeWorkflow(""))
	assert.Equal(t, "floorplan", sanitizeWorkflow("floorplan"))
}
