package floorplan

import (
	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

var sampleColor = paint.Color{ID: "sample", Name: "Sample", Hex: "#808080"}

// States lists every state variant, with payloads on both sides of the
// corner guard.
func States() []State {
	return []State{
		Tutorial{},
		Scanning{},
		PlacingCorners{Count: 0},
		PlacingCorners{Count: 1},
		PlacingCorners{Count: 2},
		PlacingCorners{Count: 3},
		SettingHeight{},
		PickingColor{},
		PaintingFirstWall{},
		FullUI{},
		OcclusionWizard{},
		LidarOcclusionWizard{},
	}
}

// Events lists every event variant with representative payloads.
func Events() []Event {
	return []Event{
		TutorialDone{},
		ScanFinished{},
		CornerCountUpdated{Count: 0},
		CornerCountUpdated{Count: 3},
		CornersFinished{ClosedShape: false},
		CornersFinished{ClosedShape: true},
		HeightSet{},
		SecondaryColorSelected{Color: sampleColor},
		FirstWallPainted{},
		OcclusionWizardShown{},
		OcclusionWizardHidden{},
		LidarOcclusionWizardShown{},
		LidarOcclusionWizardHidden{},
		Reset{},
	}
}

// Catalog describes the floorplan workflow for validation and diagrams.
func Catalog(cfg config.Floorplan) statemachine.Catalog[State, Event, Command] {
	return statemachine.Catalog[State, Event, Command]{
		Workflow:   Name,
		Initial:    Tutorial{},
		States:     States(),
		Events:     Events(),
		Transition: Transition(cfg),
	}
}
