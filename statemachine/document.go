package statemachine

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a Graph. Exported workflow graphs can
// be reviewed, diffed and validated without the Go types that produced them.
type Document struct {
	Workflow    string               `json:"workflow"    yaml:"workflow"`
	Initial     string               `json:"initial"     yaml:"initial"`
	States      []string             `json:"states"      yaml:"states"`
	Events      []string             `json:"events"      yaml:"events"`
	Transitions []TransitionDocument `json:"transitions" yaml:"transitions"`
}

// TransitionDocument is one serialized graph edge.
type TransitionDocument struct {
	From     string   `json:"from"               yaml:"from"`
	Event    string   `json:"event"              yaml:"event"`
	To       string   `json:"to"                 yaml:"to"`
	Effect   string   `json:"effect"             yaml:"effect"`
	Commands []string `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// Document converts the graph to its serialized form.
func (g Graph) Document() Document {
	doc := Document{
		Workflow:    g.Workflow,
		Initial:     g.Initial,
		States:      g.States,
		Events:      g.Events,
		Transitions: make([]TransitionDocument, 0, len(g.Edges)),
	}

	for _, edge := range g.Edges {
		doc.Transitions = append(doc.Transitions, TransitionDocument{
			From:     edge.From,
			Event:    edge.Event,
			To:       edge.To,
			Effect:   edge.Kind.String(),
			Commands: edge.Commands,
		})
	}

	return doc
}

// MarshalGraph renders the graph as YAML.
func MarshalGraph(g Graph) ([]byte, error) {
	data, err := yaml.Marshal(g.Document())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal graph %s: %w", g.Workflow, err)
	}

	return data, nil
}

// LoadGraph reads a YAML graph document from disk.
func LoadGraph(path string) (Graph, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return Graph{}, fmt.Errorf("failed to read graph file %q: %w", path, err)
	}

	return LoadGraphFromBytes(data)
}

// LoadGraphFromFS reads a YAML graph document from a filesystem.
func LoadGraphFromFS(fsys fs.FS, path string) (Graph, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Graph{}, fmt.Errorf("failed to read graph from FS: %w", err)
	}

	return LoadGraphFromBytes(data)
}

// LoadGraphFromBytes parses a YAML graph document. Only the document's shape
// is checked here; whether the graph is sound is the validator's job.
func LoadGraphFromBytes(data []byte) (Graph, error) {
	var doc Document

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return Graph{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return doc.Graph()
}

// Graph converts the document back into a Graph.
func (d Document) Graph() (Graph, error) {
	if d.Workflow == "" {
		return Graph{}, ErrWorkflowNameRequired
	}

	if len(d.States) == 0 {
		return Graph{}, fmt.Errorf("%w: %s", ErrNoStates, d.Workflow)
	}

	seen := make(map[string]bool, len(d.States))

	for _, state := range d.States {
		if seen[state] {
			return Graph{}, fmt.Errorf("%w: %s", ErrDuplicateStateName, state)
		}

		seen[state] = true
	}

	if !seen[d.Initial] {
		return Graph{}, fmt.Errorf("%w: %q", ErrInitialStateNotDeclared, d.Initial)
	}

	graph := Graph{
		Workflow: d.Workflow,
		Initial:  d.Initial,
		States:   d.States,
		Events:   d.Events,
		Edges:    make([]GraphEdge, 0, len(d.Transitions)),
	}

	for i, tr := range d.Transitions {
		if tr.From == "" || tr.Event == "" || tr.To == "" {
			return Graph{}, fmt.Errorf("transition %d: %w", i, ErrIncompleteTransition)
		}

		kind, err := ParseResultKind(tr.Effect)
		if err != nil {
			return Graph{}, fmt.Errorf("transition %d: %w", i, err)
		}

		graph.Edges = append(graph.Edges, GraphEdge{
			From:     tr.From,
			Event:    tr.Event,
			To:       tr.To,
			Kind:     kind,
			Commands: tr.Commands,
		})
	}

	return graph, nil
}

// ParseResultKind is the inverse of ResultKind.String.
func ParseResultKind(s string) (ResultKind, error) {
	for _, kind := range []ResultKind{KindNoUpdate, KindState, KindCommands, KindStateAndCommands} {
		if kind.String() == s {
			return kind, nil
		}
	}

	return KindNoUpdate, fmt.Errorf("%w: %q", ErrUnknownResultKind, s)
}
