package lidar

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Event is the closed set of inputs the lidar workflow reacts to.
type Event interface {
	statemachine.Variant
	lidarEvent()
}

type (
	// TutorialDone is sent when the user dismisses the tutorial.
	TutorialDone struct{}

	// PlanesDetected reports the number of vertical planes found so far.
	PlanesDetected struct {
		Count int
	}

	// WallTapped selects the wall under the reticle.
	WallTapped struct{}

	// ColorSelected carries the color for the selected wall.
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
func (PlanesDetected) Name() string             { return "planes_detected" }
func (WallTapped) Name() string                 { return "wall_tapped" }
func (ColorSelected) Name() string              { return "color_selected" }
func (OcclusionWizardShown) Name() string       { return "occlusion_wizard_shown" }
func (OcclusionWizardHidden) Name() string      { return "occlusion_wizard_hidden" }
func (LidarOcclusionWizardShown) Name() string  { return "lidar_occlusion_wizard_shown" }
func (LidarOcclusionWizardHidden) Name() string { return "lidar_occlusion_wizard_hidden" }
func (Reset) Name() string                      { return "reset" }

func (TutorialDone) lidarEvent()               {}
func (PlanesDetected) lidarEvent()             {}
func (WallTapped) lidarEvent()                 {}
func (ColorSelected) lidarEvent()              {}
func (OcclusionWizardShown) lidarEvent()       {}
func (OcclusionWizardHidden) lidarEvent()      {}
func (LidarOcclusionWizardShown) lidarEvent()  {}
func (LidarOcclusionWizardHidden) lidarEvent() {}
func (Reset) lidarEvent()                      {}
