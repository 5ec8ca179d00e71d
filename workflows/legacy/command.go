package legacy

import (
	"context"

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
	// StartWallDetection starts streaming device angle samples.
	StartWallDetection struct{}

	// PlaceWall anchors the wall once the device has been held steady.
	PlaceWall struct{}

	// PlaceCorner anchors corner Index (1 or 2) with its final measurement.
	PlaceCorner struct {
		Index    int
		Distance float64
		Angle    float64
	}

	// ApplyColor paints the swatch.
	ApplyColor struct {
		Color paint.Color
	}

	// ShowOcclusionWizard presents the occlusion wizard.
	ShowOcclusionWizard struct{}

	// ShowLidarOcclusionWizard presents the lidar occlusion wizard.
	ShowLidarOcclusionWizard struct{}

	// SceneReset removes every anchor and painted surface from the scene.
	SceneReset struct{}
)

func (StartWallDetection) Name() string       { return "start_wall_detection" }
func (PlaceWall) Name() string                { return "place_wall" }
func (PlaceCorner) Name() string              { return "place_corner" }
func (ApplyColor) Name() string               { return "apply_color" }
func (ShowOcclusionWizard) Name() string      { return "show_occlusion_wizard" }
func (ShowLidarOcclusionWizard) Name() string { return "show_lidar_occlusion_wizard" }
func (SceneReset) Name() string               { return "scene_reset" }

func (StartWallDetection) apply(ctx context.Context, h Handler) { h.StartWallDetection(ctx) }
func (PlaceWall) apply(ctx context.Context, h Handler)          { h.PlaceWall(ctx) }

func (c PlaceCorner) apply(ctx context.Context, h Handler) {
	h.PlaceCorner(ctx, c.Index, c.Distance, c.Angle)
}

func (c ApplyColor) apply(ctx context.Context, h Handler) { h.ApplyColor(ctx, c.Color) }

func (ShowOcclusionWizard) apply(ctx context.Context, h Handler) { h.ShowOcclusionWizard(ctx) }

func (ShowLidarOcclusionWizard) apply(ctx context.Context, h Handler) {
	h.ShowLidarOcclusionWizard(ctx)
}

func (SceneReset) apply(ctx context.Context, h Handler) { h.SceneReset(ctx) }
