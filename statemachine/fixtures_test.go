package statemachine

// A dimmable lamp: the smallest workflow that exercises all four result
// shapes.

type lamp interface {
	Variant
	isLamp()
}

type (
	off struct{}
	// on carries the brightness level.
	on struct {
		Level int
	}
)

func (off) Name() string { return "off" }
func (on) Name() string  { return "on" }

func (off) isLamp() {}
func (on) isLamp()  {}

type input interface {
	Variant
	isInput()
}

type (
	press struct{}
	// dim sets the brightness level.
	dim struct {
		Level int
	}
	ping struct{}
)

func (press) Name() string { return "press" }
func (dim) Name() string   { return "dim" }
func (ping) Name() string  { return "ping" }

func (press) isInput() {}
func (dim) isInput()   {}
func (ping) isInput()  {}

type effect string

func (e effect) Name() string { return string(e) }

const (
	beep  effect = "beep"
	click effect = "click"
)

func lampTransition(state lamp, event input) Result[lamp, effect] {
	switch s := state.(type) {
	case off:
		if _, ok := event.(press); ok {
			return ToStateAndEmit[lamp](on{Level: 1}, click)
		}
	case on:
		switch ev := event.(type) {
		case press:
			return ToState[lamp, effect](off{})
		case dim:
			if ev.Level == s.Level {
				return ToState[lamp, effect](s)
			}

			return ToState[lamp, effect](on(ev))
		}
	}

	if _, ok := event.(ping); ok {
		return Emit[lamp](beep)
	}

	return NoUpdate[lamp, effect]()
}

func lampCatalog() Catalog[lamp, input, effect] {
	return Catalog[lamp, input, effect]{
		Workflow:   "lamp",
		Initial:    off{},
		States:     []lamp{off{}, on{Level: 1}, on{Level: 5}},
		Events:     []input{press{}, dim{Level: 1}, dim{Level: 5}, ping{}},
		Transition: lampTransition,
	}
}

func newLamp(opts ...Option) *Machine[lamp, input, effect] {
	return New("lamp", lamp(off{}), lampTransition, append([]Option{
		WithMetrics(false),
		WithTracing(false),
	}, opts...)...)
}
