// Package testing provides testing utilities for workflow state machines.
//
//nolint:varnamelen // Short names idiomatic
package testing

import (
	"context"
	"slices"
	"sync"
	"testing"

	"github.com/amp-labs/arflow/statemachine"
	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMachine wraps a Machine and records every dispatch, publication and
// command so that tests can assert on them afterwards.
type TestMachine[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant] struct {
	*statemachine.Machine[S, E, C]

	t *testing.T

	mu        sync.Mutex
	traces    []statemachine.Trace
	published []S
	commands  []C
}

// NewTestMachine creates a recording machine in the catalog's initial state.
func NewTestMachine[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	t *testing.T, catalog statemachine.Catalog[S, E, C], opts ...statemachine.Option,
) *TestMachine[S, E, C] {
	t.Helper()

	require.NoError(t, catalog.Validate(), "invalid catalog")

	return NewTestMachineAt(t, catalog, catalog.Initial, opts...)
}

// NewTestMachineAt creates a recording machine in an arbitrary state.
func NewTestMachineAt[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	t *testing.T, catalog statemachine.Catalog[S, E, C], initial S, opts ...statemachine.Option,
) *TestMachine[S, E, C] {
	t.Helper()

	tm := &TestMachine[S, E, C]{t: t}

	base := []statemachine.Option{
		statemachine.WithLogger(statemachine.NewSlogLogger(slogt.New(t))),
		statemachine.WithDebugTrace(true),
		statemachine.WithMetrics(false),
		statemachine.WithTracing(false),
		statemachine.WithTraceHook(tm.record),
	}

	tm.Machine = statemachine.New(catalog.Workflow, initial, catalog.Transition, append(base, opts...)...)
	tm.Subscribe(func(state S) {
		tm.mu.Lock()
		defer tm.mu.Unlock()

		tm.published = append(tm.published, state)
	})

	return tm
}

func (tm *TestMachine[S, E, C]) record(_ context.Context, trace statemachine.Trace) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.traces = append(tm.traces, trace)
}

// Send dispatches the events in order and returns all emitted commands.
func (tm *TestMachine[S, E, C]) Send(events ...E) []C {
	var out []C

	for _, event := range events {
		cmds := tm.Dispatch(tm.t.Context(), event)

		tm.mu.Lock()
		tm.commands = append(tm.commands, cmds...)
		tm.mu.Unlock()

		out = append(out, cmds...)
	}

	return out
}

// Traces returns every recorded dispatch.
func (tm *TestMachine[S, E, C]) Traces() []statemachine.Trace {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return slices.Clone(tm.traces)
}

// Published returns every state delivered to observers.
func (tm *TestMachine[S, E, C]) Published() []S {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return slices.Clone(tm.published)
}

// Commands returns every command emitted through Send.
func (tm *TestMachine[S, E, C]) Commands() []C {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	return slices.Clone(tm.commands)
}

// AssertState asserts the current state.
func (tm *TestMachine[S, E, C]) AssertState(expected S) {
	tm.t.Helper()

	assert.Equal(tm.t, expected, tm.State(), "unexpected current state")
}

// AssertStateVisited asserts that a state with the given name was entered.
func (tm *TestMachine[S, E, C]) AssertStateVisited(name string) {
	tm.t.Helper()

	tm.Assert(StateWasVisited(name))
}

// AssertTransitionTaken asserts that a dispatch moved from one named state
// to another.
func (tm *TestMachine[S, E, C]) AssertTransitionTaken(from, to string) {
	tm.t.Helper()

	tm.Assert(TransitionWasTaken(from, to))
}

// AssertCommands asserts every command emitted so far, in order.
func (tm *TestMachine[S, E, C]) AssertCommands(expected ...C) {
	tm.t.Helper()

	assert.Equal(tm.t, expected, tm.Commands(), "unexpected commands")
}

// AssertNothingPublished asserts that no observer was notified.
func (tm *TestMachine[S, E, C]) AssertNothingPublished() {
	tm.t.Helper()

	assert.Empty(tm.t, tm.Published(), "expected no published states")
}

// Assert runs matchers against the recorded traces.
func (tm *TestMachine[S, E, C]) Assert(matchers ...Matcher) {
	tm.t.Helper()

	for _, m := range matchers {
		ok, err := m.Match(tm)
		assert.True(tm.t, ok, "%s: %v", m.Description(), err)
	}
}
