// Package roomplan implements the room-capture workflow: the device scans the
// whole room, the captured model is processed and reviewed, then painted.
package roomplan

import "github.com/amp-labs/arflow/statemachine"

// Name identifies the workflow in logs, metrics and diagrams.
const Name = "roomplan"

// State is the closed set of roomplan screens.
type State interface {
	statemachine.Variant
	roomplanState()
}

type (
	// Tutorial is the initial onboarding screen.
	Tutorial struct{}

	// Scanning carries the live capture progress shown to the user.
	Scanning struct {
		WallCount   int
		TotalLength float64
	}

	// Processing waits while the captured room is built.
	Processing struct{}

	// Reviewing shows the captured room. FirstTime is set when the review
	// follows a fresh capture rather than a request from the full UI.
	Reviewing struct {
		FirstTime bool
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
func (Processing) Name() string           { return "processing" }
func (Reviewing) Name() string            { return "reviewing" }
func (PickingColor) Name() string         { return "picking_color" }
func (FullUI) Name() string               { return "full_ui" }
func (OcclusionWizard) Name() string      { return "occlusion_wizard" }
func (LidarOcclusionWizard) Name() string { return "lidar_occlusion_wizard" }

func (Tutorial) roomplanState()             {}
func (Scanning) roomplanState()             {}
func (Processing) roomplanState()           {}
func (Reviewing) roomplanState()            {}
func (PickingColor) roomplanState()         {}
func (FullUI) roomplanState()               {}
func (OcclusionWizard) roomplanState()      {}
func (LidarOcclusionWizard) roomplanState() {}
