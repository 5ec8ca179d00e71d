package statemachine

import (
	"fmt"
	"slices"
)

// Catalog declares the vocabulary of a workflow so that its transition table
// can be probed without running a session: validated, drawn and exhaustively
// tested. States and Events hold one or more representative values per
// variant; variants with payloads may appear several times.
type Catalog[S StateVariant, E Variant, C Variant] struct {
	Workflow   string
	Initial    S
	States     []S
	Events     []E
	Transition TransitionFunc[S, E, C]
}

// Edge is one probed (state, event) pair that did not resolve to NoUpdate.
type Edge[S StateVariant, E Variant, C Variant] struct {
	From   S
	Event  E
	Result Result[S, C]
}

// To returns the state the edge leads to; for command-only edges that is From.
func (e Edge[S, E, C]) To() S {
	if to, ok := e.Result.State(); ok {
		return to
	}

	return e.From
}

// Validate checks that the catalog is usable for probing.
func (c Catalog[S, E, C]) Validate() error {
	if c.Workflow == "" {
		return ErrWorkflowNameRequired
	}

	if c.Transition == nil {
		return fmt.Errorf("%w: %s", ErrTransitionRequired, c.Workflow)
	}

	if len(c.States) == 0 {
		return fmt.Errorf("%w: %s", ErrNoStates, c.Workflow)
	}

	if len(c.Events) == 0 {
		return fmt.Errorf("%w: %s", ErrNoEvents, c.Workflow)
	}

	if !slices.Contains(c.StateNames(), nameOf(c.Initial)) {
		return fmt.Errorf("%w: %s", ErrInitialStateNotDeclared, nameOf(c.Initial))
	}

	return nil
}

// Evaluate runs the transition function once.
func (c Catalog[S, E, C]) Evaluate(state S, event E) Result[S, C] {
	return c.Transition(state, event)
}

// Edges probes every declared (state, event) pair and returns those that do
// not resolve to NoUpdate, in declaration order.
func (c Catalog[S, E, C]) Edges() []Edge[S, E, C] {
	var edges []Edge[S, E, C]

	for _, state := range c.States {
		for _, event := range c.Events {
			result := c.Transition(state, event)
			if result.IsNoUpdate() {
				continue
			}

			edges = append(edges, Edge[S, E, C]{From: state, Event: event, Result: result})
		}
	}

	return edges
}

// StateNames returns the distinct declared state variant names, in order.
func (c Catalog[S, E, C]) StateNames() []string {
	return distinctNames(c.States)
}

// EventNames returns the distinct declared event variant names, in order.
func (c Catalog[S, E, C]) EventNames() []string {
	return distinctNames(c.Events)
}

// Machine builds a fresh machine in the catalog's initial state.
func (c Catalog[S, E, C]) Machine(opts ...Option) *Machine[S, E, C] {
	return New(c.Workflow, c.Initial, c.Transition, opts...)
}

func distinctNames[V Variant](values []V) []string {
	seen := make(map[string]bool, len(values))
	names := make([]string, 0, len(values))

	for _, v := range values {
		name := nameOf(v)
		if seen[name] {
			continue
		}

		seen[name] = true

		names = append(names, name)
	}

	return names
}

// Graph is the name-level projection of a Catalog: payloads are dropped and
// edges that only differ by payload are merged.
type Graph struct {
	Workflow string
	Initial  string
	States   []string
	Events   []string
	Edges    []GraphEdge
}

// GraphEdge is a probed transition between variant names.
type GraphEdge struct {
	From     string
	Event    string
	To       string
	Kind     ResultKind
	Commands []string
}

// Graph probes the catalog and returns its name-level projection.
func (c Catalog[S, E, C]) Graph() Graph {
	graph := Graph{
		Workflow: c.Workflow,
		Initial:  nameOf(c.Initial),
		States:   c.StateNames(),
		Events:   c.EventNames(),
	}

	seen := make(map[string]bool)

	for _, edge := range c.Edges() {
		ge := GraphEdge{
			From:     nameOf(edge.From),
			Event:    nameOf(edge.Event),
			To:       nameOf(edge.To()),
			Kind:     edge.Result.Kind(),
			Commands: commandNames(edge.Result.Commands()),
		}

		key := fmt.Sprintf("%s|%s|%s|%d|%v", ge.From, ge.Event, ge.To, ge.Kind, ge.Commands)
		if seen[key] {
			continue
		}

		seen[key] = true

		graph.Edges = append(graph.Edges, ge)
	}

	return graph
}

// Outgoing returns the edges leaving the named state.
func (g Graph) Outgoing(state string) []GraphEdge {
	var out []GraphEdge

	for _, edge := range g.Edges {
		if edge.From == state {
			out = append(out, edge)
		}
	}

	return out
}

// HasState reports whether the named state is declared.
func (g Graph) HasState(state string) bool {
	return slices.Contains(g.States, state)
}
