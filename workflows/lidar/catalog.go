package lidar

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

var sampleColor = paint.Color{ID: "sample", Name: "Sample", Hex: "#808080"}

// States lists every state variant, scanning both before and after the first
// plane is found.
func States() []State {
	return []State{
		Tutorial{},
		Scanning{Planes: 0},
		Scanning{Planes: 2},
		PickingColor{},
		FullUI{},
		OcclusionWizard{},
		LidarOcclusionWizard{},
	}
}

// Events lists every event variant with representative payloads.
func Events() []Event {
	return []Event{
		TutorialDone{},
		PlanesDetected{Count: 0},
		PlanesDetected{Count: 2},
		WallTapped{},
		ColorSelected{Color: sampleColor},
		OcclusionWizardShown{},
		OcclusionWizardHidden{},
		LidarOcclusionWizardShown{},
		LidarOcclusionWizardHidden{},
		Reset{},
	}
}

// Catalog describes the lidar workflow for validation and diagrams.
func Catalog() statemachine.Catalog[State, Event, Command] {
	return statemachine.Catalog[State, Event, Command]{
		Workflow:   Name,
		Initial:    Tutorial{},
		States:     States(),
		Events:     Events(),
		Transition: Transition,
	}
}
