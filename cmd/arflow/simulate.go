package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amp-labs/arflow/analytics"
	"github.com/amp-labs/arflow/cli"
	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/mainloop"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
	"github.com/manifoldco/promptui"
)

var (
	// ErrUnknownStep is returned for scripted steps that name no action.
	ErrUnknownStep = errors.New("unknown step")
	// ErrBadStepValue is returned when a scripted step carries an unusable value.
	ErrBadStepValue = errors.New("bad step value")
)

const quitChoice = "Quit"

type argKind int

const (
	argNone argKind = iota
	argInt
	argFloat
	argBool
	argColor
)

// value is the input an action was invoked with.
type value struct {
	number float64
	flag   bool
	color  paint.Color
}

// action is one user or sensor input the simulator can feed a workflow.
// event is the variant name it dispatches, used to decide whether the
// action does anything in the current state.
type action struct {
	key   string
	event string
	label string
	arg   argKind
	min   float64
	max   float64
	do    func(ctx context.Context, v value)
}

// simulation is a running workflow session behind a uniform surface.
type simulation struct {
	name    string
	actions []action
	state   func() statemachine.Variant
	tracker *analytics.Tracker
}

// simEnv carries what every workflow simulator needs.
type simEnv struct {
	ctx     context.Context //nolint:containedctx // session context for background completions
	cfg     config.Config
	colors  *paint.Catalog
	bg      *background
	machine []statemachine.Option
	track   []analytics.Option
}

// background runs simulated sensor work on the loop's pool and tracks
// completions that have not been delivered yet.
type background struct {
	loop  *mainloop.Loop
	delay time.Duration
	wg    sync.WaitGroup
}

// after waits for the configured delay off the loop, then runs then on it.
// A completion the loop will never run is released as soon as that is known.
func (b *background) after(ctx context.Context, then func()) {
	var once sync.Once

	b.wg.Add(1)
	release := func() { once.Do(b.wg.Done) }

	err := b.loop.Go(ctx, func(ctx context.Context) {
		select {
		case <-time.After(b.delay):
		case <-ctx.Done():
		}

		if ctx.Err() != nil {
			release()
		}
	}, func() {
		defer release()

		then()
	})
	if err != nil {
		release()
		logger.Get(ctx).Warn("background capture not started", "error", err)
	}
}

// settle blocks until every scheduled completion ran or was dropped.
func (b *background) settle(ctx context.Context) error {
	done := make(chan struct{})

	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-b.loop.Done():
		return mainloop.ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

type simOptions struct {
	steps   []string
	delay   time.Duration
	session string
}

func (a *app) simulate(ctx context.Context, wf workflow, cfg config.Config, opts simOptions) error {
	colors, err := paint.DefaultCatalog()
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	loop := mainloop.New(runCtx)

	done := make(chan error, 1)

	go func() {
		done <- loop.Run(runCtx)
	}()

	defer func() {
		cancel()
		loop.Stop()
		<-done
	}()

	env := &simEnv{
		ctx:    logger.WithWorkflow(runCtx, wf.name),
		cfg:    cfg,
		colors: colors,
		bg:     &background{loop: loop, delay: opts.delay},
		machine: []statemachine.Option{
			statemachine.WithTraceHook(a.printTrace),
			statemachine.WithTracing(a.tracing),
		},
	}

	if opts.session != "" {
		env.track = append(env.track, analytics.WithSession(opts.session))
	}

	var sim *simulation

	if err := loop.Do(runCtx, func() { sim = wf.simulate(env) }); err != nil {
		return err
	}

	defer sim.tracker.Stop()

	if len(opts.steps) > 0 {
		err = a.runSteps(env, loop, sim, opts.steps)
	} else {
		err = a.interact(env, loop, sim)
	}

	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(a.out, "session %s: %d screens viewed, ended on %s\n",
		sim.tracker.Session(), sim.tracker.Views(), sim.tracker.Last())

	return nil
}

// printTrace prints every dispatch except in-place payload updates, which
// sensors produce in bursts.
func (a *app) printTrace(_ context.Context, trace statemachine.Trace) {
	if trace.Kind == statemachine.KindState && trace.From == trace.To {
		return
	}

	line := fmt.Sprintf("%s (%s)", trace.Detail, trace.Kind)
	if len(trace.Commands) > 0 {
		line += " => " + strings.Join(trace.Commands, ", ")
	}

	_, _ = fmt.Fprintln(a.out, line)
}

func (a *app) printScreen(sim *simulation) {
	state := sim.state()

	_, _ = fmt.Fprintln(a.out, cli.Banner(cli.DefaultWidth, analytics.Title(state.Name()), fmt.Sprintf("%+v", state)))
}

// perform runs the action on the loop and waits for the background work it
// started.
func perform(env *simEnv, loop *mainloop.Loop, act action, v value) error {
	if err := loop.Do(env.ctx, func() { act.do(env.ctx, v) }); err != nil {
		return err
	}

	return env.bg.settle(env.ctx)
}

func (a *app) runSteps(env *simEnv, loop *mainloop.Loop, sim *simulation, steps []string) error {
	a.printScreen(sim)

	for _, step := range steps {
		act, v, err := parseStep(sim, env.colors, step)
		if err != nil {
			return err
		}

		if err := perform(env, loop, act, v); err != nil {
			return err
		}

		a.printScreen(sim)
	}

	return nil
}

func (a *app) interact(env *simEnv, loop *mainloop.Loop, sim *simulation) error {
	graph, err := registry[sim.name].graph(env.cfg)
	if err != nil {
		return err
	}

	for {
		a.printScreen(sim)

		offered := available(graph, sim)
		labels := make([]string, 0, len(offered)+1)

		for _, act := range offered {
			labels = append(labels, act.label)
		}

		labels = append(labels, quitChoice)

		idx, err := a.term.Select("What happens next", labels...)
		if err != nil {
			return ignoreInterrupt(err)
		}

		if idx == len(offered) {
			return nil
		}

		v, err := a.ask(env.colors, offered[idx])
		if err != nil {
			return ignoreInterrupt(err)
		}

		if err := perform(env, loop, offered[idx], v); err != nil {
			return err
		}
	}
}

func ignoreInterrupt(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return nil
	}

	return err
}

// available returns the actions whose event does something in the current
// state.
func available(graph statemachine.Graph, sim *simulation) []action {
	live := make(map[string]bool)
	for _, edge := range graph.Outgoing(sim.state().Name()) {
		live[edge.Event] = true
	}

	var out []action

	for _, act := range sim.actions {
		if live[act.event] {
			out = append(out, act)
		}
	}

	return out
}

func (a *app) ask(colors *paint.Catalog, act action) (value, error) {
	switch act.arg {
	case argNone:
		return value{}, nil
	case argInt:
		n, err := a.term.PromptInt(act.label, int(act.min), int(act.max))

		return value{number: float64(n)}, err
	case argFloat:
		f, err := a.term.PromptFloat(act.label, act.min, act.max)

		return value{number: f}, err
	case argBool:
		ok, err := a.term.PromptConfirm(act.label)

		return value{flag: ok}, err
	case argColor:
		choices := make([]string, 0, colors.Len())
		for _, c := range colors.Colors() {
			choices = append(choices, c.String())
		}

		idx, err := a.term.Select("Color", choices...)
		if err != nil {
			return value{}, err
		}

		return value{color: colors.Colors()[idx]}, nil
	default:
		return value{}, nil
	}
}

// parseStep resolves "key" or "key=value" against the simulation's actions.
func parseStep(sim *simulation, colors *paint.Catalog, step string) (action, value, error) {
	key, raw, hasValue := strings.Cut(strings.TrimSpace(step), "=")

	var act action

	found := false

	for _, candidate := range sim.actions {
		if candidate.key == key {
			act, found = candidate, true

			break
		}
	}

	if !found {
		return action{}, value{}, fmt.Errorf("%w: %q for %s", ErrUnknownStep, key, sim.name)
	}

	v, err := parseValue(act, colors, raw, hasValue)
	if err != nil {
		return action{}, value{}, fmt.Errorf("%w: %s: %w", ErrBadStepValue, step, err)
	}

	return act, v, nil
}

func parseValue(act action, colors *paint.Catalog, raw string, hasValue bool) (value, error) {
	switch act.arg {
	case argNone:
		return value{}, nil
	case argInt, argFloat:
		if !hasValue {
			return value{number: act.min}, nil
		}

		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return value{}, err
		}

		if act.arg == argInt && f != float64(int(f)) {
			return value{}, fmt.Errorf("%s is not an integer", raw) //nolint:err113
		}

		return value{number: f}, nil
	case argBool:
		if !hasValue {
			return value{flag: true}, nil
		}

		b, err := strconv.ParseBool(raw)

		return value{flag: b}, err
	case argColor:
		if !hasValue {
			return value{color: colors.Colors()[0]}, nil
		}

		c, ok := colors.Lookup(raw)
		if !ok {
			return value{}, fmt.Errorf("no color %q in the catalog", raw) //nolint:err113
		}

		return value{color: c}, nil
	default:
		return value{}, nil
	}
}

// stateOf adapts a typed getter to the simulation surface.
func stateOf[S statemachine.Variant](get func() S) func() statemachine.Variant {
	return func() statemachine.Variant { return get() }
}
