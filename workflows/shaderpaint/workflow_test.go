package shaderpaint

import (
	"context"
	"testing"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	NopHandler

	colors     []paint.Color
	painted    []paint.Color
	tolerances []float64
	resets     int
}

func (h *recordingHandler) SetShaderColor(_ context.Context, color paint.Color) {
	h.colors = append(h.colors, color)
}

func (h *recordingHandler) PaintSurface(_ context.Context, color paint.Color) {
	h.painted = append(h.painted, color)
}

func (h *recordingHandler) SetTolerance(_ context.Context, tolerance float64) {
	h.tolerances = append(h.tolerances, tolerance)
}

func (h *recordingHandler) SceneReset(context.Context) {
	h.resets++
}

func newTestWorkflow(opts ...Option) *Workflow {
	return New(append([]Option{
		WithMachineOptions(statemachine.WithMetrics(false), statemachine.WithTracing(false)),
	}, opts...)...)
}

func TestPaintingThroughWizard(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	handler := &recordingHandler{}
	w := newTestWorkflow(WithHandler(handler))

	w.TutorialFinished(ctx)
	w.SurfaceDetected(ctx)
	w.SelectColor(ctx, naval)
	w.TapSurface(ctx)
	w.ShowOcclusionWizard(ctx)
	w.TapSurface(ctx)
	w.HideOcclusionWizard(ctx)
	w.TapSurface(ctx)

	assert.Equal(t, State(Painting{Color: naval}), w.State())
	assert.Equal(t, []paint.Color{naval}, handler.colors)
	assert.Equal(t, []paint.Color{naval, naval}, handler.painted, "taps inside the wizard are ignored")
}

func TestTolerance(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	cfg := config.Default()
	cfg.ShaderPaint.DefaultTolerance = 0.4

	handler := &recordingHandler{}
	w := newTestWorkflow(WithHandler(handler), WithConfig(cfg))

	w.SetTolerance(ctx, 0.9)
	require.Empty(t, handler.tolerances, "tolerance is ignored before painting")

	w.TutorialFinished(ctx)
	w.SurfaceDetected(ctx)
	w.SelectColor(ctx, linen)
	w.SetTolerance(ctx, 0.9)
	w.SetTolerance(ctx, 3)
	w.ResetTolerance(ctx)

	assert.Equal(t, []float64{0.9, 1, 0.4}, handler.tolerances)
}

func TestResetKeepsNoColor(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	handler := &recordingHandler{}
	w := newTestWorkflow(WithHandler(handler))

	w.TutorialFinished(ctx)
	w.SurfaceDetected(ctx)
	w.SelectColor(ctx, linen)
	w.ShowLidarOcclusionWizard(ctx)
	w.Reset(ctx)

	assert.Equal(t, State(Scanning{}), w.State())
	assert.Equal(t, 1, handler.resets)
}
