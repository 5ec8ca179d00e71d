package shaderpaint

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Event is the closed set of inputs the shaderpaint workflow reacts to.
type Event interface {
	statemachine.Variant
	shaderpaintEvent()
}

type (
	// TutorialDone is sent when the user dismisses the tutorial.
	TutorialDone struct{}

	// SurfaceDetected is sent when a paintable surface is found.
	SurfaceDetected struct{}

	// ColorSelected switches the shader color.
	ColorSelected struct {
		Color paint.Color
	}

	// SurfaceTapped paints the surface under the reticle.
	SurfaceTapped struct{}

	// ToleranceChanged carries the raw slider value. It is clamped to [0, 1]
	// before it reaches the shader.
	ToleranceChanged struct {
		Tolerance float64
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
func (SurfaceDetected) Name() string            { return "surface_detected" }
func (ColorSelected) Name() string              { return "color_selected" }
func (SurfaceTapped) Name() string              { return "surface_tapped" }
func (ToleranceChanged) Name() string           { return "tolerance_changed" }
func (OcclusionWizardShown) Name() string       { return "occlusion_wizard_shown" }
func (OcclusionWizardHidden) Name() string      { return "occlusion_wizard_hidden" }
func (LidarOcclusionWizardShown) Name() string  { return "lidar_occlusion_wizard_shown" }
func (LidarOcclusionWizardHidden) Name() string { return "lidar_occlusion_wizard_hidden" }
func (Reset) Name() string                      { return "reset" }

func (TutorialDone) shaderpaintEvent()               {}
func (SurfaceDetected) shaderpaintEvent()            {}
func (ColorSelected) shaderpaintEvent()              {}
func (SurfaceTapped) shaderpaintEvent()              {}
func (ToleranceChanged) shaderpaintEvent()           {}
func (OcclusionWizardShown) shaderpaintEvent()       {}
func (OcclusionWizardHidden) shaderpaintEvent()      {}
func (LidarOcclusionWizardShown) shaderpaintEvent()  {}
func (LidarOcclusionWizardHidden) shaderpaintEvent() {}
func (Reset) shaderpaintEvent()                      {}
