package statemachine

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphRoundTrip(t *testing.T) {
	t.Parallel()

	graph := lampCatalog().Graph()

	data, err := MarshalGraph(graph)
	require.NoError(t, err)

	assert.Contains(t, string(data), "workflow: lamp")
	assert.Contains(t, string(data), "effect: state_and_commands")

	loaded, err := LoadGraphFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, graph, loaded)
}

func TestLoadGraphFromDisk(t *testing.T) {
	t.Parallel()

	data, err := MarshalGraph(lampCatalog().Graph())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lamp.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	graph, err := LoadGraph(path)
	require.NoError(t, err)
	assert.Equal(t, "lamp", graph.Workflow)

	_, err = LoadGraph(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadGraphFromFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"graphs/door.yaml": {Data: []byte(`
workflow: door
initial: closed
states: [closed, open]
events: [push]
transitions:
  - {from: closed, event: push, to: open, effect: state_and_commands, commands: [creak]}
  - {from: open, event: push, to: closed, effect: state}
`)},
	}

	graph, err := LoadGraphFromFS(fsys, "graphs/door.yaml")
	require.NoError(t, err)

	assert.Equal(t, []GraphEdge{
		{From: "closed", Event: "push", To: "open", Kind: KindStateAndCommands, Commands: []string{"creak"}},
		{From: "open", Event: "push", To: "closed", Kind: KindState},
	}, graph.Edges)
}

func TestLoadGraphErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
		want error
	}{
		{
			name: "no workflow",
			yaml: "initial: a\nstates: [a]\n",
			want: ErrWorkflowNameRequired,
		},
		{
			name: "no states",
			yaml: "workflow: w\ninitial: a\n",
			want: ErrNoStates,
		},
		{
			name: "duplicate state",
			yaml: "workflow: w\ninitial: a\nstates: [a, a]\n",
			want: ErrDuplicateStateName,
		},
		{
			name: "undeclared initial",
			yaml: "workflow: w\ninitial: b\nstates: [a]\n",
			want: ErrInitialStateNotDeclared,
		},
		{
			name: "incomplete transition",
			yaml: "workflow: w\ninitial: a\nstates: [a]\ntransitions:\n  - {from: a, to: a, effect: state}\n",
			want: ErrIncompleteTransition,
		},
		{
			name: "unknown effect",
			yaml: "workflow: w\ninitial: a\nstates: [a]\ntransitions:\n  - {from: a, event: e, to: a, effect: teleport}\n",
			want: ErrUnknownResultKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadGraphFromBytes([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadGraphInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadGraphFromBytes([]byte("workflow: [unterminated"))
	assert.Error(t, err)
}

func TestParseResultKind(t *testing.T) {
	t.Parallel()

	for _, kind := range []ResultKind{KindNoUpdate, KindState, KindCommands, KindStateAndCommands} {
		parsed, err := ParseResultKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}
