package statemachine

import "errors"

// Catalog errors. The engine itself never returns errors: unhandled and
// guard-rejected events resolve to NoUpdate and missing handlers drop
// commands. Errors only appear when a workflow's declaration is inspected.
var (
	// ErrWorkflowNameRequired indicates that a catalog has no workflow name.
	ErrWorkflowNameRequired = errors.New("workflow name is required")
	// ErrTransitionRequired indicates that a catalog has no transition function.
	ErrTransitionRequired = errors.New("transition function is required")
	// ErrNoStates indicates that a catalog declares no states.
	ErrNoStates = errors.New("at least one state is required")
	// ErrNoEvents indicates that a catalog declares no events.
	ErrNoEvents = errors.New("at least one event is required")
	// ErrInitialStateNotDeclared indicates that the initial state is not among the declared states.
	ErrInitialStateNotDeclared = errors.New("initial state is not declared")
)

// Graph document errors.
var (
	// ErrDuplicateStateName indicates that a document declares a state twice.
	ErrDuplicateStateName = errors.New("duplicate state name")
	// ErrIncompleteTransition indicates a transition without from, event or to.
	ErrIncompleteTransition = errors.New("transition requires from, event and to")
	// ErrUnknownResultKind indicates an effect name that is not a ResultKind.
	ErrUnknownResultKind = errors.New("unknown result kind")
)
