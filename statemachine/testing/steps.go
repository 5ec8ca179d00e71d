package testing

import (
	"fmt"
	"testing"

	"github.com/amp-labs/arflow/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Step is one row of a transition table test.
type Step[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant] struct {
	Name  string
	From  S
	Event E
	Want  statemachine.Result[S, C]
}

// RunSteps evaluates every step against the transition function and compares
// the full result: kind, state and commands.
func RunSteps[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	t *testing.T, transition statemachine.TransitionFunc[S, E, C], steps []Step[S, E, C],
) {
	t.Helper()

	for _, step := range steps {
		name := step.Name
		if name == "" {
			name = fmt.Sprintf("%s+%s", step.From.Name(), step.Event.Name())
		}

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			AssertResult(t, step.Want, transition(step.From, step.Event))
		})
	}
}

// AssertResult compares two results field by field.
func AssertResult[S statemachine.StateVariant, C statemachine.Variant](
	t *testing.T, expected, actual statemachine.Result[S, C],
) {
	t.Helper()

	require.Equal(t, expected.Kind(), actual.Kind(), "result kind")

	expectedState, _ := expected.State()
	actualState, _ := actual.State()

	assert.Equal(t, expectedState, actualState, "result state")
	assert.Equal(t, expected.Commands(), actual.Commands(), "result commands")
}

// Pair names a (state, event) combination by variant names.
type Pair struct {
	State string
	Event string
}

// AssertTotality probes every declared (state, event) pair of the catalog.
// Pairs not listed as handled must resolve to NoUpdate and, dispatched on a
// live machine, must not publish anything.
func AssertTotality[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	t *testing.T, catalog statemachine.Catalog[S, E, C], handled ...Pair,
) {
	t.Helper()

	known := make(map[Pair]bool, len(handled))
	for _, p := range handled {
		known[p] = true
	}

	for _, state := range catalog.States {
		for _, event := range catalog.Events {
			pair := Pair{State: state.Name(), Event: event.Name()}
			if known[pair] {
				continue
			}

			result := catalog.Evaluate(state, event)
			if !assert.True(t, result.IsNoUpdate(), "%s + %s should be a no-op, got %s",
				pair.State, pair.Event, result.Kind()) {
				continue
			}

			tm := NewTestMachineAt(t, catalog, state)
			assert.Empty(t, tm.Send(event), "%s + %s emitted commands", pair.State, pair.Event)
			assert.Equal(t, state, tm.State(), "%s + %s changed state", pair.State, pair.Event)
			tm.AssertNothingPublished()
		}
	}
}
