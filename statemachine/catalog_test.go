package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(c *Catalog[lamp, input, effect])
		want   error
	}{
		{name: "valid", modify: func(*Catalog[lamp, input, effect]) {}},
		{
			name:   "missing workflow",
			modify: func(c *Catalog[lamp, input, effect]) { c.Workflow = "" },
			want:   ErrWorkflowNameRequired,
		},
		{
			name:   "missing transition",
			modify: func(c *Catalog[lamp, input, effect]) { c.Transition = nil },
			want:   ErrTransitionRequired,
		},
		{
			name:   "no states",
			modify: func(c *Catalog[lamp, input, effect]) { c.States = nil },
			want:   ErrNoStates,
		},
		{
			name:   "no events",
			modify: func(c *Catalog[lamp, input, effect]) { c.Events = nil },
			want:   ErrNoEvents,
		},
		{
			name:   "undeclared initial state",
			modify: func(c *Catalog[lamp, input, effect]) { c.States = []lamp{on{Level: 1}} },
			want:   ErrInitialStateNotDeclared,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := lampCatalog()
			tt.modify(&catalog)

			err := catalog.Validate()
			if tt.want == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCatalogNames(t *testing.T) {
	t.Parallel()

	catalog := lampCatalog()

	assert.Equal(t, []string{"off", "on"}, catalog.StateNames())
	assert.Equal(t, []string{"press", "dim", "ping"}, catalog.EventNames())
}

func TestCatalogEdges(t *testing.T) {
	t.Parallel()

	edges := lampCatalog().Edges()

	// off: press, ping. on{1} and on{5}: press, dim x2, ping.
	require.Len(t, edges, 10)

	first := edges[0]
	assert.Equal(t, lamp(off{}), first.From)
	assert.Equal(t, input(press{}), first.Event)
	assert.Equal(t, lamp(on{Level: 1}), first.To())

	stay := edges[1]
	assert.Equal(t, lamp(off{}), stay.To(), "command-only edges stay put")
}

func TestCatalogGraph(t *testing.T) {
	t.Parallel()

	graph := lampCatalog().Graph()

	assert.Equal(t, "lamp", graph.Workflow)
	assert.Equal(t, "off", graph.Initial)
	assert.True(t, graph.HasState("on"))
	assert.False(t, graph.HasState("broken"))

	assert.Equal(t, []GraphEdge{
		{From: "off", Event: "press", To: "on", Kind: KindStateAndCommands, Commands: []string{"click"}},
		{From: "off", Event: "ping", To: "off", Kind: KindCommands, Commands: []string{"beep"}},
	}, graph.Outgoing("off"))

	// Payload-only differences collapse into one edge per shape.
	assert.Equal(t, []GraphEdge{
		{From: "on", Event: "press", To: "off", Kind: KindState},
		{From: "on", Event: "dim", To: "on", Kind: KindState},
		{From: "on", Event: "ping", To: "on", Kind: KindCommands, Commands: []string{"beep"}},
	}, graph.Outgoing("on"))
}

func TestCatalogMachine(t *testing.T) {
	t.Parallel()

	machine := lampCatalog().Machine(WithMetrics(false), WithTracing(false))

	assert.Equal(t, "lamp", machine.Workflow())
	assert.Equal(t, lamp(off{}), machine.State())
}
