// Package lidar implements the plane-detection workflow for lidar devices:
// the user scans until walls are detected, taps a wall and paints it.
package lidar

import "github.com/amp-labs/arflow/statemachine"

// Name identifies the workflow in logs, metrics and diagrams.
const Name = "lidar"

// State is the closed set of lidar screens.
type State interface {
	statemachine.Variant
	lidarState()
}

type (
	// Tutorial is the initial onboarding screen.
	Tutorial struct{}

	// Scanning tracks how many vertical planes have been detected.
	Scanning struct {
		Planes int
	}

	// PickingColor shows the palette before anything is painted.
	PickingColor struct{}

	// FullUI is the steady painting screen.
	FullUI struct{}

	// OcclusionWizard is the camera-occlusion helper overlay.
	OcclusionWizard struct{}

	// LidarOcclusionWizard is the lidar-based occlusion helper overlay.
	LidarOcclusionWizard struct{}
)

func (Tutorial) Name() string             { return "tutorial" }
func (Scanning) Name() string             { return "scanning" }
func (PickingColor) Name() string         { return "picking_color" }
func (FullUI) Name() string               { return "full_ui" }
func (OcclusionWizard) Name() string      { return "occlusion_wizard" }
func (LidarOcclusionWizard) Name() string { return "lidar_occlusion_wizard" }

func (Tutorial) lidarState()             {}
func (Scanning) lidarState()             {}
func (PickingColor) lidarState()         {}
func (FullUI) lidarState()               {}
func (OcclusionWizard) lidarState()      {}
func (LidarOcclusionWizard) lidarState() {}
