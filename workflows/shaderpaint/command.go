package shaderpaint

import (
	"context"

	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Command is the closed set of outbound intents.
type Command interface {
	statemachine.Variant
	apply(ctx context.Context, h Handler)
}

type (
	// StartScan starts surface detection.
	StartScan struct{}

	// SetShaderColor switches the color the shader paints with.
	SetShaderColor struct {
		Color paint.Color
	}

	// PaintSurface paints the tapped surface.
	PaintSurface struct {
		Color paint.Color
	}

	// SetTolerance sets the shader's color tolerance, always within [0, 1].
	SetTolerance struct {
		Tolerance float64
	}

	// ShowOcclusionWizard presents the occlusion wizard.
	ShowOcclusionWizard struct{}

	// ShowLidarOcclusionWizard presents the lidar occlusion wizard.
	ShowLidarOcclusionWizard struct{}

	// SceneReset removes every anchor and painted surface from the scene.
	SceneReset struct{}
)

func (StartScan) Name() string                { return "start_scan" }
func (SetShaderColor) Name() string           { return "set_shader_color" }
func (PaintSurface) Name() string             { return "paint_surface" }
func (SetTolerance) Name() string             { return "set_tolerance" }
func (ShowOcclusionWizard) Name() string      { return "show_occlusion_wizard" }
func (ShowLidarOcclusionWizard) Name() string { return "show_lidar_occlusion_wizard" }
func (SceneReset) Name() string               { return "scene_reset" }

func (StartScan) apply(ctx context.Context, h Handler)           { h.StartScan(ctx) }
func (c SetShaderColor) apply(ctx context.Context, h Handler)    { h.SetShaderColor(ctx, c.Color) }
func (c PaintSurface) apply(ctx context.Context, h Handler)      { h.PaintSurface(ctx, c.Color) }
func (c SetTolerance) apply(ctx context.Context, h Handler)      { h.SetTolerance(ctx, c.Tolerance) }
func (ShowOcclusionWizard) apply(ctx context.Context, h Handler) { h.ShowOcclusionWizard(ctx) }

func (ShowLidarOcclusionWizard) apply(ctx context.Context, h Handler) {
	h.ShowLidarOcclusionWizard(ctx)
}

func (SceneReset) apply(ctx context.Context, h Handler) { h.SceneReset(ctx) }
