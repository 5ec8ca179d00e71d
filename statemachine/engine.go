package statemachine

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Machine is the generic workflow engine. It owns the current state of one
// workflow instance and applies a TransitionFunc to every dispatched event.
//
// Dispatch must be driven from a single logical execution context. State,
// Subscribe and Watch may be used from any goroutine.
type Machine[S StateVariant, E Variant, C Variant] struct {
	workflow   string
	transition TransitionFunc[S, E, C]
	opts       options

	mu        sync.RWMutex
	current   S
	observers []*observer[S]
	nextID    uint64

	// Owned by the dispatching context.
	publishing bool
	deferred   []deferredEvent[E]
}

type observer[S StateVariant] struct {
	id uint64
	fn func(S)
}

type deferredEvent[E Variant] struct {
	ctx   context.Context //nolint:containedctx // carried until the queued event is processed
	event E
}

// New creates a machine in the given initial state. No commands are emitted
// and nothing is published at construction.
func New[S StateVariant, E Variant, C Variant](
	workflow string,
	initial S,
	transition TransitionFunc[S, E, C],
	opts ...Option,
) *Machine[S, E, C] {
	machine := &Machine[S, E, C]{
		workflow:   workflow,
		transition: transition,
		opts:       defaultOptions(),
		current:    initial,
	}

	for _, opt := range opts {
		opt(&machine.opts)
	}

	if machine.opts.logger == nil {
		machine.opts.logger = NewDefaultLogger()
	}

	return machine
}

// Workflow returns the workflow name the machine was created with.
func (m *Machine[S, E, C]) Workflow() string {
	return m.workflow
}

// State returns the most recently committed state.
func (m *Machine[S, E, C]) State() S {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// Subscribe registers fn to be called with every new state. It is only called
// when a dispatch commits a state that differs from the previous one, and
// always after the commit. The returned function removes the subscription.
func (m *Machine[S, E, C]) Subscribe(fn func(S)) func() {
	m.mu.Lock()
	m.nextID++
	obs := &observer[S]{id: m.nextID, fn: fn}
	m.observers = append(m.observers, obs)
	m.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()

			for i, o := range m.observers {
				if o.id == obs.id {
					m.observers = append(m.observers[:i:i], m.observers[i+1:]...)

					break
				}
			}
		})
	}
}

// Watch returns a channel carrying every published state. Sends never block
// the machine: when the buffer is full the state is dropped. The channel is
// closed once ctx is done.
func (m *Machine[S, E, C]) Watch(ctx context.Context, size int) <-chan S {
	if size < 1 {
		size = 1
	}

	out := make(chan S, size)

	var (
		mu     sync.Mutex
		closed bool
	)

	unsubscribe := m.Subscribe(func(state S) {
		mu.Lock()
		defer mu.Unlock()

		if closed {
			return
		}

		select {
		case out <- state:
		default:
			m.opts.logger.Dropped(ctx, m.workflow, nameOf(state))
		}
	})

	go func() {
		<-ctx.Done()
		unsubscribe()

		mu.Lock()
		defer mu.Unlock()

		closed = true

		close(out)
	}()

	return out
}

// Dispatch applies the event to the current state and returns the commands
// the transition produced, in order.
//
// A dispatch issued by an observer while a state is being published is
// queued; it runs once the in-flight dispatch has finished and its commands
// are appended to the in-flight dispatch's result.
func (m *Machine[S, E, C]) Dispatch(ctx context.Context, event E) []C {
	if ctx == nil {
		ctx = context.Background()
	}

	if m.publishing {
		m.deferred = append(m.deferred, deferredEvent[E]{ctx: ctx, event: event})

		return nil
	}

	commands := m.step(ctx, event)

	for len(m.deferred) > 0 {
		next := m.deferred[0]
		m.deferred = m.deferred[1:]

		commands = append(commands, m.step(next.ctx, next.event)...)
	}

	return commands
}

// step evaluates a single event: transition, commit, publish.
func (m *Machine[S, E, C]) step(ctx context.Context, event E) []C {
	started := time.Now()

	from := m.State()

	ctx, span := startDispatchSpan(ctx, m.opts.tracing, m.workflow, nameOf(from), nameOf(event))
	defer span.End()

	result := m.transition(from, event)
	to, hasState := result.State()
	changed := hasState && to != from

	if hasState {
		m.mu.Lock()
		m.current = to
		m.mu.Unlock()
	} else {
		to = from
	}

	commands := result.Commands()

	trace := Trace{
		Workflow: m.workflow,
		From:     nameOf(from),
		Event:    nameOf(event),
		To:       nameOf(to),
		Kind:     result.Kind(),
		Changed:  changed,
		Commands: commandNames(commands),
	}

	if m.opts.debugTrace || len(m.opts.hooks) > 0 {
		trace.Detail = describe(from, event, to)
	}

	span.SetAttributes(
		attribute.String("to_state", trace.To),
		attribute.String("outcome", trace.Kind.String()),
		attribute.Bool("changed", changed),
		attribute.StringSlice("commands", trace.Commands),
	)
	span.SetStatus(codes.Ok, trace.Kind.String())

	if m.opts.debugTrace {
		m.opts.logger.Transition(ctx, trace)
	}

	for _, hook := range m.opts.hooks {
		hook(ctx, trace)
	}

	if m.opts.metrics {
		recordDispatch(trace, time.Since(started))
	}

	if changed {
		m.publish(to)
	}

	return commands
}

// publish delivers the committed state to a snapshot of the observer list.
func (m *Machine[S, E, C]) publish(state S) {
	m.mu.RLock()
	observers := make([]*observer[S], len(m.observers))
	copy(observers, m.observers)
	m.mu.RUnlock()

	m.publishing = true
	defer func() { m.publishing = false }()

	for _, obs := range observers {
		obs.fn(state)
	}
}

func commandNames[C Variant](commands []C) []string {
	if len(commands) == 0 {
		return nil
	}

	names := make([]string, len(commands))
	for i, cmd := range commands {
		names[i] = nameOf(cmd)
	}

	return names
}
