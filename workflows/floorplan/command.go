package floorplan

import (
	"context"
	"time"

	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Command is the closed set of outbound intents. Each variant is performed by
// the matching Handler method.
type Command interface {
	statemachine.Variant
	apply(ctx context.Context, h Handler)
}

type (
	// StartScan starts the floor scan, giving up after Timeout.
	StartScan struct {
		Timeout time.Duration
	}

	// FinishPlacingCorners closes the floor outline. ClosedShape is passed
	// through from the corners-finished event.
	FinishPlacingCorners struct {
		ClosedShape bool
	}

	// FinishCeilingHeight locks the ceiling height.
	FinishCeilingHeight struct{}

	// SelectSecondaryColor applies the color to the walls.
	SelectSecondaryColor struct {
		Color paint.Color
	}

	// ShowOcclusionWizard presents the occlusion wizard.
	ShowOcclusionWizard struct{}

	// ShowLidarOcclusionWizard presents the lidar occlusion wizard.
	ShowLidarOcclusionWizard struct{}

	// SceneReset removes every anchor and painted surface from the scene.
	SceneReset struct{}
)

func (StartScan) Name() string                { return "start_scan" }
func (FinishPlacingCorners) Name() string     { return "finish_placing_corners" }
func (FinishCeilingHeight) Name() string      { return "finish_ceiling_height" }
func (SelectSecondaryColor) Name() string     { return "select_secondary_color" }
func (ShowOcclusionWizard) Name() string      { return "show_occlusion_wizard" }
func (ShowLidarOcclusionWizard) Name() string { return "show_lidar_occlusion_wizard" }
func (SceneReset) Name() string               { return "scene_reset" }

func (c StartScan) apply(ctx context.Context, h Handler) { h.StartScan(ctx, c.Timeout) }

func (c FinishPlacingCorners) apply(ctx context.Context, h Handler) {
	h.FinishPlacingCorners(ctx, c.ClosedShape)
}

func (FinishCeilingHeight) apply(ctx context.Context, h Handler) { h.FinishCeilingHeight(ctx) }

func (c SelectSecondaryColor) apply(ctx context.Context, h Handler) {
	h.SelectSecondaryColor(ctx, c.Color)
}

func (ShowOcclusionWizard) apply(ctx context.Context, h Handler) { h.ShowOcclusionWizard(ctx) }

func (ShowLidarOcclusionWizard) apply(ctx context.Context, h Handler) {
	h.ShowLidarOcclusionWizard(ctx)
}

func (SceneReset) apply(ctx context.Context, h Handler) { h.SceneReset(ctx) }
