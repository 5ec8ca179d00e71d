package shaderpaint

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

var sampleColor = paint.Color{ID: "sample", Name: "Sample", Hex: "#808080"}

// States lists every state variant. Color-carrying states use one sample
// color.
func States() []State {
	return []State{
		Tutorial{},
		Scanning{},
		PickingColor{},
		Painting{Color: sampleColor},
		OcclusionWizard{Color: sampleColor},
		LidarOcclusionWizard{Color: sampleColor},
	}
}

// Events lists every event variant with representative payloads, including
// out-of-range tolerances.
func Events() []Event {
	return []Event{
		TutorialDone{},
		SurfaceDetected{},
		ColorSelected{Color: sampleColor},
		SurfaceTapped{},
		ToleranceChanged{Tolerance: 0.25},
		ToleranceChanged{Tolerance: 1.5},
		OcclusionWizardShown{},
		OcclusionWizardHidden{},
		LidarOcclusionWizardShown{},
		LidarOcclusionWizardHidden{},
		Reset{},
	}
}

// Catalog describes the shaderpaint workflow for validation and diagrams.
func Catalog() statemachine.Catalog[State, Event, Command] {
	return statemachine.Catalog[State, Event, Command]{
		Workflow:   Name,
		Initial:    Tutorial{},
		States:     States(),
		Events:     Events(),
		Transition: Transition,
	}
}
