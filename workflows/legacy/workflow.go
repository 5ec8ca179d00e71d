package legacy

import (
	"context"
	"sync"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Workflow is the swatch façade.
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

// WithConfig overrides the default tuning.
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

// New starts a swatch session in the tutorial.
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

	machine := statemachine.New(Name, State(Tutorial{}), Transition(s.config.Legacy), machineOpts...)
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

func (w *Workflow) currentHandler() Handler {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.handler
}

func (w *Workflow) perform(ctx context.Context, cmd Command) {
	cmd.apply(ctx, w.currentHandler())
}

// State returns the current screen.
func (w *Workflow) State() State {
	return w.runner.State()
}

// Subscribe registers fn for every screen change. Steady angle samples
// change the state payload, so observers see one update per sample while
// the wall is being placed.
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

// DeviceAngleUpdated feeds one motion sample, in degrees.
func (w *Workflow) DeviceAngleUpdated(ctx context.Context, angle float64) {
	w.Send(ctx, DeviceAngleUpdated{Angle: angle})
}

// CornerMeasured records the latest corner reading.
func (w *Workflow) CornerMeasured(ctx context.Context, distance, angle optional.Value[float64]) {
	w.Send(ctx, CornerMeasured{Distance: distance, Angle: angle})
}

// PlaceCorner is ignored until both distance and angle have been measured.
func (w *Workflow) PlaceCorner(ctx context.Context) {
	w.Send(ctx, CornerPlaced{})
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

// Reset clears the scene and restarts wall placement.
func (w *Workflow) Reset(ctx context.Context) {
	w.Send(ctx, Reset{})
}
