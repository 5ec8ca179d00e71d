// Package shaderpaint implements the shader-based painting workflow. Once a
// surface is detected the chosen color stays applied, and the occlusion
// wizards remember it so painting resumes with the same color.
package shaderpaint

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

// Name identifies the workflow in logs, metrics and diagrams.
const Name = "shaderpaint"

// State is the closed set of shaderpaint screens.
type State interface {
	statemachine.Variant
	shaderpaintState()
}

type (
	// Tutorial is the initial onboarding screen.
	Tutorial struct{}

	// Scanning waits for the AR session to find a surface.
	Scanning struct{}

	// PickingColor shows the palette before anything is painted.
	PickingColor struct{}

	// Painting keeps the active shader color.
	Painting struct {
		Color paint.Color
	}

	// OcclusionWizard remembers the color to resume with.
	OcclusionWizard struct {
		Color paint.Color
	}

	// LidarOcclusionWizard remembers the color to resume with.
	LidarOcclusionWizard struct {
		Color paint.Color
	}
)

func (Tutorial) Name() string             { return "tutorial" }
func (Scanning) Name() string             { return "scanning" }
func (PickingColor) Name() string         { return "picking_color" }
func (Painting) Name() string             { return "painting" }
func (OcclusionWizard) Name() string      { return "occlusion_wizard" }
func (LidarOcclusionWizard) Name() string { return "lidar_occlusion_wizard" }

func (Tutorial) shaderpaintState()             {}
func (Scanning) shaderpaintState()             {}
func (PickingColor) shaderpaintState()         {}
func (Painting) shaderpaintState()             {}
func (OcclusionWizard) shaderpaintState()      {}
func (LidarOcclusionWizard) shaderpaintState() {}
