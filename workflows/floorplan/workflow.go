package floorplan

import (
	"context"
	"sync"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Workflow is the floorplan façade. Each method turns a UI or sensor input
// into an event, dispatches it and performs the resulting commands on the
// registered Handler before returning.
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

// New starts a floorplan session in the tutorial.
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

	machine := statemachine.New(Name, State(Tutorial{}), Transition(s.config.Floorplan), machineOpts...)
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

// ScanFinished reports that the floor scan completed.
func (w *Workflow) ScanFinished(ctx context.Context) {
	w.Send(ctx, ScanFinished{})
}

// CornerCountUpdated reports how many corners are placed.
func (w *Workflow) CornerCountUpdated(ctx context.Context, count int) {
	w.Send(ctx, CornerCountUpdated{Count: count})
}

// FinishedPlacingCorners is ignored until enough corners have been placed.
func (w *Workflow) FinishedPlacingCorners(ctx context.Context, closedShape bool) {
	w.Send(ctx, CornersFinished{ClosedShape: closedShape})
}

// SetHeight confirms the wall height.
func (w *Workflow) SetHeight(ctx context.Context) {
	w.Send(ctx, HeightSet{})
}

// SelectSecondaryColor picks the color for the walls.
func (w *Workflow) SelectSecondaryColor(ctx context.Context, color paint.Color) {
	w.Send(ctx, SecondaryColorSelected{Color: color})
}

// PaintFirstWall reports that the first wall has been painted.
func (w *Workflow) PaintFirstWall(ctx context.Context) {
	w.Send(ctx, FirstWallPainted{})
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

// Reset clears the scene and returns to the tutorial.
func (w *Workflow) Reset(ctx context.Context) {
	w.Send(ctx, Reset{})
}
