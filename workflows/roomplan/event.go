package roomplan

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Event is the closed set of inputs the roomplan workflow reacts to.
type Event interface {
	statemachine.Variant
	roomplanEvent()
}

type (
	// TutorialDone is sent when the user dismisses the tutorial.
	TutorialDone struct{}

	// ScanProgress is reported by the capture session as walls are found.
	ScanProgress struct {
		WallCount   int
		TotalLength float64
	}

	// DoneScanning stops the room capture.
	DoneScanning struct{}

	// ScanProcessed reports whether the captured room could be built.
	ScanProcessed struct {
		OK bool
	}

	// ReviewAccepted accepts the processed room.
	ReviewAccepted struct{}

	// ReviewRequested reopens the scan review from the full UI.
	ReviewRequested struct{}

	// ColorSelected carries the color for every wall of the room.
	ColorSelected struct {
		Color paint.Color
	}

	// OcclusionWizardShown opens the occlusion wizard over the current screen.
	OcclusionWizardShown struct{}

	// OcclusionWizardHidden closes the occlusion wizard.
	OcclusionWizardHidden struct{}

	// LidarOcclusionWizardShown opens the lidar occlusion wizard over the current screen.
	LidarOcclusionWizardShown struct{}

	// LidarOcclusionWizardHidden closes the lidar occlusion wizard.
	LidarOcclusionWizardHidden struct{}

	// Reset clears the scene and restarts the workflow.
	Reset struct{}
)

func (TutorialDone) Name() string               { return "tutorial_done" }
func (ScanProgress) Name() string               { return "scan_progress" }
func (DoneScanning) Name() string               { return "done_scanning" }
func (ScanProcessed) Name() string              { return "scan_processed" }
func (ReviewAccepted) Name() string             { return "review_accepted" }
func (ReviewRequested) Name() string            { return "review_requested" }
func (ColorSelected) Name() string              { return "color_selected" }
func (OcclusionWizardShown) Name() string       { return "occlusion_wizard_shown" }
func (OcclusionWizardHidden) Name() string      { return "occlusion_wizard_hidden" }
func (LidarOcclusionWizardShown) Name() string  { return "lidar_occlusion_wizard_shown" }
func (LidarOcclusionWizardHidden) Name() string { return "lidar_occlusion_wizard_hidden" }
func (Reset) Name() string                      { return "reset" }

func (TutorialDone) roomplanEvent()               {}
func (ScanProgress) roomplanEvent()               {}
func (DoneScanning) roomplanEvent()               {}
func (ScanProcessed) roomplanEvent()              {}
func (ReviewAccepted) roomplanEvent()             {}
func (ReviewRequested) roomplanEvent()            {}
func (ColorSelected) roomplanEvent()              {}
func (OcclusionWizardShown) roomplanEvent()       {}
func (OcclusionWizardHidden) roomplanEvent()      {}
func (LidarOcclusionWizardShown) roomplanEvent()  {}
func (LidarOcclusionWizardHidden) roomplanEvent() {}
func (Reset) roomplanEvent()                      {}
