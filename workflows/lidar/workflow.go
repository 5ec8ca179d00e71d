package lidar

import (
	"context"
	"sync"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Workflow is the lidar façade. Commands are performed on the registered
// Handler before each method returns.
type Workflow struct {
	runner *statemachine.Runner[State, Event, Command]

	mu      sync.RWMutex
	handler Handler
}

type settings struct {
	handler Handler
	config  config.Config
	machine []statemachine.Option
}

// Option configures a Workflow.
type Option func(*settings)

// WithHandler sets the command handler. Without one, commands are dropped.
func WithHandler(h Handler) Option {
	return func(s *settings) {
		s.handler = h
	}
}

// WithConfig overrides the default configuration. Only the debug settings
// apply to this workflow.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.config = cfg
	}
}

// WithMachineOptions passes options through to the underlying machine.
func WithMachineOptions(opts ...statemachine.Option) Option {
	return func(s *settings) {
		s.machine = append(s.machine, opts...)
	}
}

// New starts a lidar session in the tutorial.
func New(opts ...Option) *Workflow {
	s := settings{config: config.Default()}

	for _, opt := range opts {
		opt(&s)
	}

	machineOpts := append([]statemachine.Option{
		statemachine.WithDebugTrace(s.config.Debug.Trace),
	}, s.machine...)

	w := &Workflow{}
	w.SetHandler(s.handler)

	machine := statemachine.New(Name, State(Tutorial{}), Transition, machineOpts...)
	w.runner = statemachine.NewRunner(machine, w.perform)

	return w
}

// SetHandler replaces the command handler. A nil handler drops commands.
func (w *Workflow) SetHandler(h Handler) {
	if h == nil {
		h = NopHandler{}
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.handler = h
}

func (w *Workflow) perform(ctx context.Context, cmd Command) {
	w.mu.RLock()
	h := w.handler
	w.mu.RUnlock()

	cmd.apply(ctx, h)
}

// State returns the current screen.
func (w *Workflow) State() State {
	return w.runner.State()
}

// Subscribe registers fn for every screen change.
func (w *Workflow) Subscribe(fn func(State)) func() {
	return w.runner.Subscribe(fn)
}

// Machine exposes the engine for diagnostics and analytics.
func (w *Workflow) Machine() *statemachine.Machine[State, Event, Command] {
	return w.runner.Machine()
}

// Send dispatches an arbitrary event and performs its commands.
func (w *Workflow) Send(ctx context.Context, event Event) []Command {
	if ctx == nil {
		ctx = context.Background()
	}

	return w.runner.Send(logger.WithWorkflow(ctx, Name), event)
}

// TutorialFinished dismisses the tutorial and starts the first capture.
func (w *Workflow) TutorialFinished(ctx context.Context) {
	w.Send(ctx, TutorialDone{})
}

// PlanesDetected reports the running plane count from the scanner.
func (w *Workflow) PlanesDetected(ctx context.Context, count int) {
	w.Send(ctx, PlanesDetected{Count: count})
}

// TapWall selects a wall. While scanning it is ignored until a plane exists.
func (w *Workflow) TapWall(ctx context.Context) {
	w.Send(ctx, WallTapped{})
}

// SelectColor applies a paint color.
func (w *Workflow) SelectColor(ctx context.Context, color paint.Color) {
	w.Send(ctx, ColorSelected{Color: color})
}

// ShowOcclusionWizard opens the occlusion wizard.
func (w *Workflow) ShowOcclusionWizard(ctx context.Context) {
	w.Send(ctx, OcclusionWizardShown{})
}

// HideOcclusionWizard closes the occlusion wizard.
func (w *Workflow) HideOcclusionWizard(ctx context.Context) {
	w.Send(ctx, OcclusionWizardHidden{})
}

// ShowLidarOcclusionWizard opens the lidar occlusion wizard.
func (w *Workflow) ShowLidarOcclusionWizard(ctx context.Context) {
	w.Send(ctx, LidarOcclusionWizardShown{})
}

// HideLidarOcclusionWizard closes the lidar occlusion wizard.
func (w *Workflow) HideLidarOcclusionWizard(ctx context.Context) {
	w.Send(ctx, LidarOcclusionWizardHidden{})
}

// Reset clears the scene and restarts scanning. Ignored in the tutorial.
func (w *Workflow) Reset(ctx context.Context) {
	w.Send(ctx, Reset{})
}
