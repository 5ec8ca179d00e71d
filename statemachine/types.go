package statemachine

// Variant is implemented by every state, event and command of a workflow.
// Name returns the variant name without its payload and is used for metric
// labels, traces and diagrams.
type Variant interface {
	Name() string
}

// StateVariant is the constraint for workflow states. States are compared
// with ==, so every concrete variant must be a comparable value type.
type StateVariant interface {
	comparable
	Variant
}

// TransitionFunc computes the outcome of an event in a state. It must be pure:
// no side effects, no hidden state, and a NoUpdate result for every pair it
// does not explicitly handle.
type TransitionFunc[S StateVariant, E Variant, C Variant] func(state S, event E) Result[S, C]

// ResultKind identifies which of the four transition shapes a Result has.
type ResultKind int

const (
	// KindNoUpdate means the event is not meaningful in the current state.
	KindNoUpdate ResultKind = iota
	// KindState means the state changes and no commands run.
	KindState
	// KindCommands means the state is unchanged but commands must run.
	KindCommands
	// KindStateAndCommands means both the state changes and commands run.
	KindStateAndCommands
)

func (k ResultKind) String() string {
	switch k {
	case KindNoUpdate:
		return "no_update"
	case KindState:
		return "state"
	case KindCommands:
		return "commands"
	case KindStateAndCommands:
		return "state_and_commands"
	default:
		return "unknown"
	}
}

// Result is the value returned by a TransitionFunc.
type Result[S StateVariant, C Variant] struct {
	kind     ResultKind
	state    S
	commands []C
}

// NoUpdate leaves both the state and the command list untouched.
func NoUpdate[S StateVariant, C Variant]() Result[S, C] {
	return Result[S, C]{kind: KindNoUpdate}
}

// ToState moves to the given state without emitting commands.
func ToState[S StateVariant, C Variant](state S) Result[S, C] {
	return Result[S, C]{kind: KindState, state: state}
}

// Emit keeps the current state and emits the given commands.
// With no commands it degrades to NoUpdate.
func Emit[S StateVariant, C Variant](commands ...C) Result[S, C] {
	if len(commands) == 0 {
		return NoUpdate[S, C]()
	}

	return Result[S, C]{kind: KindCommands, commands: commands}
}

// ToStateAndEmit moves to the given state and emits the given commands.
// With no commands it degrades to ToState.
func ToStateAndEmit[S StateVariant, C Variant](state S, commands ...C) Result[S, C] {
	if len(commands) == 0 {
		return ToState[S, C](state)
	}

	return Result[S, C]{kind: KindStateAndCommands, state: state, commands: commands}
}

// Kind reports the shape of the result.
func (r Result[S, C]) Kind() ResultKind {
	return r.kind
}

// State returns the new state, if the result carries one.
func (r Result[S, C]) State() (S, bool) {
	return r.state, r.kind == KindState || r.kind == KindStateAndCommands
}

// Commands returns the commands to run, in order. The slice is a copy.
func (r Result[S, C]) Commands() []C {
	if len(r.commands) == 0 {
		return nil
	}

	out := make([]C, len(r.commands))
	copy(out, r.commands)

	return out
}

// IsNoUpdate is shorthand for Kind() == KindNoUpdate.
func (r Result[S, C]) IsNoUpdate() bool {
	return r.kind == KindNoUpdate
}

// Observable is anything that publishes state changes. Machines and the
// workflow façades built on them satisfy it.
type Observable[S StateVariant] interface {
	State() S
	Subscribe(fn func(S)) (unsubscribe func())
}

// nameOf returns the variant name, guarding against nil interface values.
func nameOf(v Variant) string {
	if v == nil {
		return "<nil>"
	}

	return v.Name()
}
