package roomplan

import (
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

var sampleColor = paint.Color{ID: "sample", Name: "Sample", Hex: "#808080"}

// States lists every state variant, including both review flavors.
func States() []State {
	return []State{
		Tutorial{},
		Scanning{},
		Scanning{WallCount: 4, TotalLength: 14.2},
		Processing{},
		Reviewing{FirstTime: true},
		Reviewing{FirstTime: false},
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
		ScanProgress{WallCount: 2, TotalLength: 6.5},
		DoneScanning{},
		ScanProcessed{OK: true},
		ScanProcessed{OK: false},
		ReviewAccepted{},
		ReviewRequested{},
		ColorSelected{Color: sampleColor},
		OcclusionWizardShown{},
		OcclusionWizardHidden{},
		LidarOcclusionWizardShown{},
		LidarOcclusionWizardHidden{},
		Reset{},
	}
}

// Catalog describes the roomplan workflow for validation and diagrams.
func Catalog() statemachine.Catalog[State, Event, Command] {
	return statemachine.Catalog[State, Event, Command]{
		Workflow:   Name,
		Initial:    Tutorial{},
		States:     States(),
		Events:     Events(),
		Transition: Transition,
	}
}
