// Package visualizer generates Mermaid state diagrams from workflow catalogs.
package visualizer

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"facette.io/natsort"
	"github.com/amp-labs/arflow/statemachine"
)

// Visualizer errors.
var (
	ErrNoInitialState = errors.New("graph must have an initial state")
	ErrBadDirection   = errors.New("unsupported diagram direction")
)

var directions = []string{"TB", "BT", "LR", "RL"}

// GenerateMermaid converts a catalog to a Mermaid state diagram.
func GenerateMermaid[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	catalog statemachine.Catalog[S, E, C],
) (string, error) {
	return GenerateMermaidWithOptions(catalog, DefaultOptions())
}

// GenerateMermaidWithOptions converts a catalog with custom options.
func GenerateMermaidWithOptions[S statemachine.StateVariant, E statemachine.Variant, C statemachine.Variant](
	catalog statemachine.Catalog[S, E, C], opts Options,
) (string, error) {
	if err := catalog.Validate(); err != nil {
		return "", fmt.Errorf("failed to probe catalog: %w", err)
	}

	return GenerateMermaidFromGraph(catalog.Graph(), opts)
}

// GenerateMermaidFromGraph renders an already probed graph.
func GenerateMermaidFromGraph(graph statemachine.Graph, opts Options) (string, error) {
	if graph.Initial == "" {
		return "", ErrNoInitialState
	}

	direction := opts.Direction
	if direction == "" {
		direction = "TB"
	}

	if !slices.Contains(directions, direction) {
		return "", fmt.Errorf("%w: %q", ErrBadDirection, direction)
	}

	var sb strings.Builder

	// Header
	sb.WriteString("```mermaid\n")

	if opts.Theme != "" && opts.Theme != "default" {
		sb.WriteString(fmt.Sprintf("%%%%{init: {'theme': '%s'}}%%%%\n", opts.Theme))
	}

	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("    direction %s\n", direction))

	// Initial state marker
	sb.WriteString(fmt.Sprintf("    [*] --> %s\n", graph.Initial))

	highlightMap := make(map[string]bool)
	for _, state := range opts.HighlightPath {
		highlightMap[state] = true
	}

	for _, state := range graph.States {
		if highlightMap[state] {
			sb.WriteString(fmt.Sprintf("    class %s highlighted\n", state))
		}

		for _, edge := range visibleEdges(graph.Outgoing(state), opts) {
			sb.WriteString(fmt.Sprintf("    %s --> %s%s\n", edge.From, edge.To, label(edge, opts)))
		}
	}

	sb.WriteString("\n")
	sb.WriteString("    classDef highlighted fill:#fff9c4,stroke:#f57f17,stroke-width:3px\n")

	sb.WriteString("```\n")

	return sb.String(), nil
}

// visibleEdges filters the edges of one state and orders them naturally by
// target then event, so "placing_corners" edges sort by their numeric payloads.
func visibleEdges(edges []statemachine.GraphEdge, opts Options) []statemachine.GraphEdge {
	out := make([]statemachine.GraphEdge, 0, len(edges))

	for _, edge := range edges {
		if slices.Contains(opts.HideEvents, edge.Event) {
			continue
		}

		if edge.To == edge.From && !opts.ShowSelfLoops {
			continue
		}

		out = append(out, edge)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].To != out[j].To {
			return natsort.Compare(out[i].To, out[j].To)
		}

		return natsort.Compare(out[i].Event, out[j].Event)
	})

	return out
}

func label(edge statemachine.GraphEdge, opts Options) string {
	var parts []string

	if opts.ShowEvents {
		parts = append(parts, edge.Event)
	}

	if opts.ShowCommands && len(edge.Commands) > 0 {
		parts = append(parts, "/ "+strings.Join(edge.Commands, ", "))
	}

	if len(parts) == 0 {
		return ""
	}

	return ": " + strings.Join(parts, " ")
}
