package visualizer

// Options configures the visualization output.
type Options struct {
	// ShowEvents labels transitions with the event that triggers them
	ShowEvents bool

	// ShowCommands appends the emitted commands to transition labels
	ShowCommands bool

	// ShowSelfLoops draws transitions that keep the state variant, such as
	// command-only reactions and payload updates
	ShowSelfLoops bool

	// HideEvents drops every transition triggered by one of these events,
	// typically "reset" which would otherwise connect every state
	HideEvents []string

	// Direction controls diagram flow: "TB", "BT", "LR" or "RL"
	Direction string

	// HighlightPath highlights a specific state path through the diagram
	HighlightPath []string

	// Theme controls the color scheme: "default", "dark", "forest", "neutral"
	Theme string
}

// DefaultOptions returns sensible defaults for visualization.
func DefaultOptions() Options {
	return Options{
		ShowEvents:    true,
		ShowCommands:  true,
		ShowSelfLoops: true,
		Direction:     "TB",
		Theme:         "default",
	}
}

// WithShowEvents enables/disables event labels.
func (o Options) WithShowEvents(show bool) Options {
	o.ShowEvents = show

	return o
}

// WithShowCommands enables/disables command labels.
func (o Options) WithShowCommands(show bool) Options {
	o.ShowCommands = show

	return o
}

// WithShowSelfLoops enables/disables self-loop transitions.
func (o Options) WithShowSelfLoops(show bool) Options {
	o.ShowSelfLoops = show

	return o
}

// WithHideEvents sets the events whose transitions are not drawn.
func (o Options) WithHideEvents(events ...string) Options {
	o.HideEvents = events

	return o
}

// WithDirection sets the diagram direction.
func (o Options) WithDirection(direction string) Options {
	o.Direction = direction

	return o
}

// WithHighlightPath sets states to highlight.
func (o Options) WithHighlightPath(path []string) Options {
	o.HighlightPath = path

	return o
}

// WithTheme sets the color theme.
func (o Options) WithTheme(theme string) Options {
	o.Theme = theme

	return o
}
