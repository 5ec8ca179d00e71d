package lidar

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
	// StartLidarScan starts lidar plane detection.
	StartLidarScan struct{}

	// SelectWall selects the wall under the user's last tap.
	SelectWall struct{}

	// PaintWall paints the selected wall.
	PaintWall struct {
		Color paint.Color
	}

	// ShowOcclusionWizard presents the occlusion wizard.
	ShowOcclusionWizard struct{}

	// ShowLidarOcclusionWizard presents the lidar occlusion wizard.
	ShowLidarOcclusionWizard struct{}

	// SceneReset removes every anchor and painted surface from the scene.
	SceneReset struct{}
)

func (StartLidarScan) Name() string           { return "start_lidar_scan" }
func (SelectWall) Name() string               { return "select_wall" }
func (PaintWall) Name() string                { return "paint_wall" }
func (ShowOcclusionWizard) Name() string      { return "show_occlusion_wizard" }
func (ShowLidarOcclusionWizard) Name() string { return "show_lidar_occlusion_wizard" }
func (SceneReset) Name() string               { return "scene_reset" }

func (StartLidarScan) apply(ctx context.Context, h Handler)      { h.StartLidarScan(ctx) }
func (SelectWall) apply(ctx context.Context, h Handler)          { h.SelectWall(ctx) }
func (c PaintWall) apply(ctx context.Context, h Handler)         { h.PaintWall(ctx, c.Color) }
func (ShowOcclusionWizard) apply(ctx context.Context, h Handler) { h.ShowOcclusionWizard(ctx) }

func (ShowLidarOcclusionWizard) apply(ctx context.Context, h Handler) {
	h.ShowLidarOcclusionWizard(ctx)
}

func (SceneReset) apply(ctx context.Context, h Handler) { h.SceneReset(ctx) }
