package roomplan

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
	// StartRoomCapture starts a room capture session.
	StartRoomCapture struct{}

	// StopRoomCapture ends the capture and processes the room.
	StopRoomCapture struct{}

	// ShowScanReview presents the captured room for review.
	ShowScanReview struct{}

	// HideScanReview dismisses the scan review.
	HideScanReview struct{}

	// PaintWalls paints every captured wall.
	PaintWalls struct {
		Color paint.Color
	}

	// ShowOcclusionWizard presents the occlusion wizard.
	ShowOcclusionWizard struct{}

	// ShowLidarOcclusionWizard presents the lidar occlusion wizard.
	ShowLidarOcclusionWizard struct{}

	// SceneReset removes every anchor and painted surface from the scene.
	SceneReset struct{}
)

func (StartRoomCapture) Name() string         { return "start_room_capture" }
func (StopRoomCapture) Name() string          { return "stop_room_capture" }
func (ShowScanReview) Name() string           { return "show_scan_review" }
func (HideScanReview) Name() string           { return "hide_scan_review" }
func (PaintWalls) Name() string               { return "paint_walls" }
func (ShowOcclusionWizard) Name() string      { return "show_occlusion_wizard" }
func (ShowLidarOcclusionWizard) Name() string { return "show_lidar_occlusion_wizard" }
func (SceneReset) Name() string               { return "scene_reset" }

func (StartRoomCapture) apply(ctx context.Context, h Handler)    { h.StartRoomCapture(ctx) }
func (StopRoomCapture) apply(ctx context.Context, h Handler)     { h.StopRoomCapture(ctx) }
func (ShowScanReview) apply(ctx context.Context, h Handler)      { h.ShowScanReview(ctx) }
func (HideScanReview) apply(ctx context.Context, h Handler)      { h.HideScanReview(ctx) }
func (c PaintWalls) apply(ctx context.Context, h Handler)        { h.PaintWalls(ctx, c.Color) }
func (ShowOcclusionWizard) apply(ctx context.Context, h Handler) { h.ShowOcclusionWizard(ctx) }

func (ShowLidarOcclusionWizard) apply(ctx context.Context, h Handler) {
	h.ShowLidarOcclusionWizard(ctx)
}

func (SceneReset) apply(ctx context.Context, h Handler) { h.SceneReset(ctx) }
