package legacy

import (
	"context"
	"testing"

	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
	smtesting "github.com/amp-labs/arflow/statemachine/testing"
	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	NopHandler

	performed []Command
}

func (h *recordingHandler) StartWallDetection(context.Context) {
	h.performed = append(h.performed, StartWallDetection{})
}

func (h *recordingHandler) PlaceWall(context.Context) {
	h.performed = append(h.performed, PlaceWall{})
}

func (h *recordingHandler) PlaceCorner(_ context.Context, index int, distance, angle float64) {
	h.performed = append(h.performed, PlaceCorner{Index: index, Distance: distance, Angle: angle})
}

func (h *recordingHandler) ApplyColor(_ context.Context, color paint.Color) {
	h.performed = append(h.performed, ApplyColor{Color: color})
}

func (h *recordingHandler) SceneReset(context.Context) {
	h.performed = append(h.performed, SceneReset{})
}

func TestSwatchSession(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	handler := &recordingHandler{}
	w := New(WithHandler(handler), WithMachineOptions(statemachine.WithMetrics(false)))

	w.TutorialFinished(ctx)

	for range 121 {
		w.DeviceAngleUpdated(ctx, 1.5)
	}

	assert.Equal(t, State(PlacingFirstCorner{}), w.State())

	w.PlaceCorner(ctx)
	assert.Equal(t, State(PlacingFirstCorner{}), w.State(), "corner without measurement is ignored")

	w.CornerMeasured(ctx, optional.Some(2.0), optional.Some(10.0))
	w.PlaceCorner(ctx)
	w.CornerMeasured(ctx, optional.Some(3.0), optional.Some(80.0))
	w.PlaceCorner(ctx)
	w.SelectColor(ctx, linen)
	w.ShowOcclusionWizard(ctx)
	w.HideOcclusionWizard(ctx)
	w.ShowLidarOcclusionWizard(ctx)
	w.HideLidarOcclusionWizard(ctx)

	assert.Equal(t, State(FullUI{}), w.State())
	assert.Equal(t, []Command{
		StartWallDetection{},
		PlaceWall{},
		PlaceCorner{Index: 1, Distance: 2, Angle: 10},
		PlaceCorner{Index: 2, Distance: 3, Angle: 80},
		ApplyColor{Color: linen},
	}, handler.performed)

	w.Reset(ctx)
	assert.Equal(t, State(PlacingWall{}), w.State())
	assert.Equal(t, SceneReset{}, handler.performed[len(handler.performed)-1])
}

func TestSteadySamplesArePublished(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	w := New(WithMachineOptions(statemachine.WithMetrics(false)))
	w.TutorialFinished(ctx)

	rec := smtesting.Record[State](w)

	w.DeviceAngleUpdated(ctx, 1)
	w.DeviceAngleUpdated(ctx, 20)
	w.DeviceAngleUpdated(ctx, 20)

	// The second tilted sample is structurally equal to the first.
	assert.Equal(t, []State{
		PlacingWall{SteadyCount: 1, Angle: 1},
		PlacingWall{SteadyCount: 0, Angle: 20},
	}, rec.States())
}

func TestResetIgnoredInTutorial(t *testing.T) {
	t.Parallel()

	handler := &recordingHandler{}
	w := New(WithHandler(handler), WithMachineOptions(statemachine.WithMetrics(false)))

	w.Reset(t.Context())

	assert.Equal(t, State(Tutorial{}), w.State())
	assert.Empty(t, handler.performed)
}
