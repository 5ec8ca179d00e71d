// Package legacy implements the swatch workflow for devices without scene
// reconstruction: the user holds the phone against the wall until it is
// steady, then measures two corners by hand.
package legacy

import (
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/statemachine"
)

// Name identifies the workflow in logs, metrics and diagrams.
const Name = "legacy"

// State is the closed set of swatch screens.
type State interface {
	statemachine.Variant
	legacyState()
}

type (
	// Tutorial is the initial onboarding screen.
	Tutorial struct{}

	// PlacingWall counts consecutive steady angle samples.
	PlacingWall struct {
		SteadyCount int
		Angle       float64
	}

	// PlacingFirstCorner holds the latest measurement of the first corner.
	PlacingFirstCorner struct {
		Distance optional.Value[float64]
		Angle    optional.Value[float64]
	}

	// PlacingSecondCorner holds the latest measurement of the second corner.
	PlacingSecondCorner struct {
		Distance optional.Value[float64]
		Angle    optional.Value[float64]
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
func (PlacingWall) Name() string          { return "placing_wall" }
func (PlacingFirstCorner) Name() string   { return "placing_first_corner" }
func (PlacingSecondCorner) Name() string  { return "placing_second_corner" }
func (PickingColor) Name() string         { return "picking_color" }
func (FullUI) Name() string               { return "full_ui" }
func (OcclusionWizard) Name() string      { return "occlusion_wizard" }
func (LidarOcclusionWizard) Name() string { return "lidar_occlusion_wizard" }

func (Tutorial) legacyState()             {}
func (PlacingWall) legacyState()          {}
func (PlacingFirstCorner) legacyState()   {}
func (PlacingSecondCorner) legacyState()  {}
func (PickingColor) legacyState()         {}
func (FullUI) legacyState()               {}
func (OcclusionWizard) legacyState()      {}
func (LidarOcclusionWizard) legacyState() {}
