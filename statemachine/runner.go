package statemachine

import "context"

// Runner is the shared core of the workflow façades. It dispatches events on
// a Machine and hands each resulting command, in order, to perform on the
// same turn. A command that triggers a nested Send runs that dispatch to
// completion before the remaining commands of the outer Send are performed.
type Runner[S StateVariant, E Variant, C Variant] struct {
	machine *Machine[S, E, C]
	perform func(ctx context.Context, cmd C)
}

// NewRunner couples a machine with the function that performs its commands.
// A nil perform drops every command.
func NewRunner[S StateVariant, E Variant, C Variant](
	machine *Machine[S, E, C],
	perform func(ctx context.Context, cmd C),
) *Runner[S, E, C] {
	if perform == nil {
		perform = func(context.Context, C) {}
	}

	return &Runner[S, E, C]{
		machine: machine,
		perform: perform,
	}
}

// Send dispatches the event and performs the resulting commands. The
// commands are also returned for callers that want to inspect them.
func (r *Runner[S, E, C]) Send(ctx context.Context, event E) []C {
	if ctx == nil {
		ctx = context.Background()
	}

	commands := r.machine.Dispatch(ctx, event)

	for _, cmd := range commands {
		r.perform(ctx, cmd)
	}

	return commands
}

// Machine returns the underlying engine.
func (r *Runner[S, E, C]) Machine() *Machine[S, E, C] {
	return r.machine
}

// State returns the machine's current state.
func (r *Runner[S, E, C]) State() S {
	return r.machine.State()
}

// Subscribe registers an observer on the machine's state stream.
func (r *Runner[S, E, C]) Subscribe(fn func(S)) func() {
	return r.machine.Subscribe(fn)
}
