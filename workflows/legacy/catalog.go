package legacy

import (
	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/paint"
	"github.com/amp-labs/arflow/statemachine"
)

var sampleColor = paint.Color{ID: "sample", Name: "Sample", Hex: "#808080"}

func measured(distance, angle float64) (optional.Value[float64], optional.Value[float64]) {
	return optional.Some(distance), optional.Some(angle)
}

// States lists every state variant, with corner states both unmeasured and
// measured, and a wall count about to cross the default steadiness limit.
func States() []State {
	d, a := measured(1.5, 30)

	return []State{
		Tutorial{},
		PlacingWall{},
		PlacingWall{SteadyCount: 120, Angle: 1},
		PlacingFirstCorner{},
		PlacingFirstCorner{Distance: d, Angle: a},
		PlacingSecondCorner{},
		PlacingSecondCorner{Distance: d, Angle: a},
		PickingColor{},
		FullUI{},
		OcclusionWizard{},
		LidarOcclusionWizard{},
	}
}

// Events lists every event variant with representative payloads.
func Events() []Event {
	d, a := measured(2, 45)

	return []Event{
		TutorialDone{},
		DeviceAngleUpdated{Angle: 2},
		DeviceAngleUpdated{Angle: 12},
		CornerMeasured{Distance: d, Angle: a},
		CornerMeasured{Distance: d},
		CornerPlaced{},
		ColorSelected{Color: sampleColor},
		OcclusionWizardShown{},
		OcclusionWizardHidden{},
		LidarOcclusionWizardShown{},
		LidarOcclusionWizardHidden{},
		Reset{},
	}
}

// Catalog describes the swatch workflow for validation and diagrams.
func Catalog(cfg config.Legacy) statemachine.Catalog[State, Event, Command] {
	return statemachine.Catalog[State, Event, Command]{
		Workflow:   Name,
		Initial:    Tutorial{},
		States:     States(),
		Events:     Events(),
		Transition: Transition(cfg),
	}
}
