package legacy

import (
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Event is the closed set of inputs the swatch workflow reacts to.
type Event interface {
	statemachine.Variant
	legacyEvent()
}

type (
	// TutorialDone is sent when the user dismisses the tutorial.
	TutorialDone struct{}

	// DeviceAngleUpdated is a motion sensor sample, in degrees from the wall
	// plane.
	DeviceAngleUpdated struct {
		Angle float64
	}

	// CornerMeasured is the latest corner reading. Either value may be
	// missing while tracking is poor.
	CornerMeasured struct {
		Distance optional.Value[float64]
		Angle    optional.Value[float64]
	}

	// CornerPlaced confirms the current corner measurement.
	CornerPlaced struct{}

	// ColorSelected carries the chosen swatch color.
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
func (DeviceAngleUpdated) Name() string         { return "device_angle_updated" }
func (CornerMeasured) Name() string             { return "corner_measured" }
func (CornerPlaced) Name() string               { return "corner_placed" }
func (ColorSelected) Name() string              { return "color_selected" }
func (OcclusionWizardShown) Name() string       { return "occlusion_wizard_shown" }
func (OcclusionWizardHidden) Name() string      { return "occlusion_wizard_hidden" }
func (LidarOcclusionWizardShown) Name() string  { return "lidar_occlusion_wizard_shown" }
func (LidarOcclusionWizardHidden) Name() string { return "lidar_occlusion_wizard_hidden" }
func (Reset) Name() string                      { return "reset" }

func (TutorialDone) legacyEvent()               {}
func (DeviceAngleUpdated) legacyEvent()         {}
func (CornerMeasured) legacyEvent()             {}
func (CornerPlaced) legacyEvent()               {}
func (ColorSelected) legacyEvent()              {}
func (OcclusionWizardShown) legacyEvent()       {}
func (OcclusionWizardHidden) legacyEvent()      {}
func (LidarOcclusionWizardShown) legacyEvent()  {}
func (LidarOcclusionWizardHidden) legacyEvent() {}
func (Reset) legacyEvent()                      {}
