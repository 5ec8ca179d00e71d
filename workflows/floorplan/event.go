package floorplan

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Event is the closed set of inputs the floorplan workflow reacts to.
type Event interface {
	statemachine.Variant
	floorplanEvent()
}

type (
	// TutorialDone is sent when the user dismisses the tutorial.
	TutorialDone struct{}

	// ScanFinished is sent when the floor scan completes.
	ScanFinished struct{}

	// CornerCountUpdated reports the number of corners currently placed.
	CornerCountUpdated struct {
		Count int
	}

	// CornersFinished asks to stop placing corners. ClosedShape reports
	// whether the last corner snapped onto the first one.
	CornersFinished struct {
		ClosedShape bool
	}

	// HeightSet confirms the wall height.
	HeightSet struct{}

	// SecondaryColorSelected carries the color picked for the walls.
	SecondaryColorSelected struct {
		Color paint.Color
	}

	// FirstWallPainted is sent after the first wall receives its color.
	FirstWallPainted struct{}

	// OcclusionWizardShown opens the occlusion wizard over the current screen.
	OcclusionWizardShown struct{}

	// OcclusionWizardHidden closes the occlusion wizard.
	OcclusionWizardHidden struct{}

	// LidarOcclusionWizardShown opens the lidar occlusion wizard over the current screen.
	LidarOcclusionWizardShown struct{}

	// LidarOcclusionWizardHidden closes the lidar occlusion wizard.
	LidarOcclusionWizardHidden struct{}

	// Reset clears the scene and restarts from the tutorial.
	Reset struct{}
)

func (TutorialDone) Name() string               { return "tutorial_done" }
func (ScanFinished) Name() string               { return "scan_finished" }
func (CornerCountUpdated) Name() string         { return "corner_count_updated" }
func (CornersFinished) Name() string            { return "corners_finished" }
func (HeightSet) Name() string                  { return "height_set" }
func (SecondaryColorSelected) Name() string     { return "secondary_color_selected" }
func (FirstWallPainted) Name() string           { return "first_wall_painted" }
func (OcclusionWizardShown) Name() string       { return "occlusion_wizard_shown" }
func (OcclusionWizardHidden) Name() string      { return "occlusion_wizard_hidden" }
func (LidarOcclusionWizardShown) Name() string  { return "lidar_occlusion_wizard_shown" }
func (LidarOcclusionWizardHidden) Name() string { return "lidar_occlusion_wizard_hidden" }
func (Reset) Name() string                      { return "reset" }

func (TutorialDone) floorplanEvent()               {}
func (ScanFinished) floorplanEvent()               {}
func (CornerCountUpdated) floorplanEvent()         {}
func (CornersFinished) floorplanEvent()            {}
func (HeightSet) floorplanEvent()                  {}
func (SecondaryColorSelected) floorplanEvent()     {}
func (FirstWallPainted) floorplanEvent()           {}
func (OcclusionWizardShown) floorplanEvent()       {}
func (OcclusionWizardHidden) floorplanEvent()      {}
func (LidarOcclusionWizardShown) floorplanEvent()  {}
func (LidarOcclusionWizardHidden) floorplanEvent() {}
func (Reset) floorplanEvent()                      {}
