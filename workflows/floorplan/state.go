// Package floorplan implements the corner-placement AR workflow: the user
// scans the room, places the floor corners, sets the ceiling height and then
// paints the walls.
package floorplan

import "github.com/amp-labs/arflow/statemachine"

// Name identifies the workflow in logs, metrics and diagrams.
const Name = "floorplan"

// State is the closed set of floorplan screens.
type State interface {
	statemachine.Variant
	floorplanState()
}

type (
	// Tutorial is the initial onboarding screen.
	Tutorial struct{}

	// Scanning waits for the AR session to find the floor.
	Scanning struct{}

	// PlacingCorners tracks how many corners the user has placed so far.
	PlacingCorners struct {
		Count int
	}

	// SettingHeight lets the user drag the ceiling into place.
	SettingHeight struct{}

	// PickingColor shows the palette before the first wall is painted.
	PickingColor struct{}

	// PaintingFirstWall waits for the first paint tap.
	PaintingFirstWall struct{}

	// FullUI is the steady painting screen.
	FullUI struct{}

	// OcclusionWizard is the camera-occlusion helper overlay.
	OcclusionWizard struct{}

	// LidarOcclusionWizard is the lidar-based occlusion helper overlay.
	LidarOcclusionWizard struct{}
)

func (Tutorial) Name() string             { return "tutorial" }
func (Scanning) Name() string             { return "scanning" }
func (PlacingCorners) Name() string       { return "placing_corners" }
func (SettingHeight) Name() string        { return "setting_height" }
func (PickingColor) Name() string         { return "picking_color" }
func (PaintingFirstWall) Name() string    { return "painting_first_wall" }
func (FullUI) Name() string               { return "full_ui" }
func (OcclusionWizard) Name() string      { return "occlusion_wizard" }
func (LidarOcclusionWizard) Name() string { return "lidar_occlusion_wizard" }

func (Tutorial) floorplanState()             {}
func (Scanning) floorplanState()             {}
func (PlacingCorners) floorplanState()       {}
func (SettingHeight) floorplanState()        {}
func (PickingColor) floorplanState()         {}
func (PaintingFirstWall) floorplanState()    {}
func (FullUI) floorplanState()               {}
func (OcclusionWizard) floorplanState()      {}
func (LidarOcclusionWizard) floorplanState() {}
