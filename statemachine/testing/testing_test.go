package testing

import (
	"testing"

	"github.com/amp-labs/arflow/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type turnstileState interface {
	statemachine.Variant
	turnstile()
}

type (
	locked   struct{}
	unlocked struct{ coins int }
)

func (locked) Name() string   { return "locked" }
func (unlocked) Name() string { return "unlocked" }
func (locked) turnstile()     {}
func (unlocked) turnstile()   {}

type event string

func (e event) Name() string { return string(e) }

type command string

func (c command) Name() string { return string(c) }

const (
	coin event = "coin"
	push event = "push"
	kick event = "kick"
)

func turnstileTransition(state turnstileState, ev event) statemachine.Result[turnstileState, command] {
	switch s := state.(type) {
	case locked:
		if ev == coin {
			return statemachine.ToStateAndEmit[turnstileState](unlocked{coins: 1}, command("release"))
		}
	case unlocked:
		switch ev {
		case coin:
			return statemachine.ToState[turnstileState, command](unlocked{coins: s.coins + 1})
		case push:
			return statemachine.ToStateAndEmit[turnstileState](locked{}, command("lock"))
		}
	}

	return statemachine.NoUpdate[turnstileState, command]()
}

func turnstileCatalog() statemachine.Catalog[turnstileState, event, command] {
	return statemachine.Catalog[turnstileState, event, command]{
		Workflow:   "turnstile",
		Initial:    locked{},
		States:     []turnstileState{locked{}, unlocked{coins: 1}},
		Events:     []event{coin, push, kick},
		Transition: turnstileTransition,
	}
}

func TestTestMachine(t *testing.T) {
	t.Parallel()

	tm := NewTestMachine(t, turnstileCatalog())

	cmds := tm.Send(push, coin, coin, push)

	assert.Equal(t, []command{"release", "lock"}, cmds)
	tm.AssertState(locked{})
	tm.AssertCommands("release", "lock")
	tm.AssertStateVisited("unlocked")
	tm.AssertTransitionTaken("locked", "unlocked")
	tm.AssertTransitionTaken("unlocked", "locked")
	tm.Assert(
		CommandWasEmitted("release"),
		EventWasIgnored("locked", "push"),
		All(StateWasVisited("locked"), StateWasVisited("unlocked")),
		Any(StateWasVisited("missing"), CommandWasEmitted("lock")),
	)

	assert.Equal(t, []turnstileState{unlocked{coins: 1}, unlocked{coins: 2}, locked{}}, tm.Published())
	require.Len(t, tm.Traces(), 4)
	assert.Equal(t, statemachine.KindNoUpdate, tm.Traces()[0].Kind)
}

func TestMatchersFail(t *testing.T) {
	t.Parallel()

	tm := NewTestMachine(t, turnstileCatalog())

	ok, err := StateWasVisited("unlocked").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrNoExecutionTrace)

	tm.Send(coin)

	ok, err = TransitionWasTaken("unlocked", "locked").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrTransitionNotTaken)

	ok, err = CommandWasEmitted("lock").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrCommandNotEmitted)

	ok, err = EventWasIgnored("locked", "coin").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrUnexpectedUpdate)

	ok, err = EventWasIgnoredOnce("locked", "coin").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrEventNotIgnored)

	ok, err = Any(StateWasVisited("missing")).Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrNoMatchersPassed)
}

func TestEventWasIgnoredOnce(t *testing.T) {
	t.Parallel()

	tm := NewTestMachine(t, turnstileCatalog())

	ok, err := EventWasIgnoredOnce("unlocked", "coin").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrNoExecutionTrace)

	// unlocked + push is taken once and then ignored in locked.
	tm.Send(coin, push, push, coin, push)

	tm.Assert(EventWasIgnoredOnce("locked", "push"))

	ok, err = EventWasIgnored("unlocked", "push").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrUnexpectedUpdate)

	ok, err = EventWasIgnoredOnce("unlocked", "push").Match(tm)
	assert.False(t, ok)
	require.ErrorIs(t, err, ErrEventNotIgnored)
}

func TestRunSteps(t *testing.T) {
	t.Parallel()

	RunSteps(t, turnstileTransition, []Step[turnstileState, event, command]{
		{
			From:  locked{},
			Event: coin,
			Want:  statemachine.ToStateAndEmit[turnstileState](unlocked{coins: 1}, command("release")),
		},
		{
			Name:  "extra coin",
			From:  unlocked{coins: 1},
			Event: coin,
			Want:  statemachine.ToState[turnstileState, command](unlocked{coins: 2}),
		},
		{
			From:  locked{},
			Event: push,
			Want:  statemachine.NoUpdate[turnstileState, command](),
		},
	})
}

func TestAssertTotality(t *testing.T) {
	t.Parallel()

	AssertTotality(t, turnstileCatalog(),
		Pair{State: "locked", Event: "coin"},
		Pair{State: "unlocked", Event: "coin"},
		Pair{State: "unlocked", Event: "push"},
	)
}

func TestRecorder(t *testing.T) {
	t.Parallel()

	machine := turnstileCatalog().Machine(statemachine.WithMetrics(false))
	rec := Record[turnstileState](machine)

	machine.Dispatch(t.Context(), coin)
	machine.Dispatch(t.Context(), kick)

	assert.Equal(t, 1, rec.Len())

	rec.Stop()
	machine.Dispatch(t.Context(), push)

	assert.Equal(t, []turnstileState{unlocked{coins: 1}}, rec.States())
}
