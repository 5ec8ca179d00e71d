package lidar

import "github.com/amp-labs/arflow/statemachine"

// Result is the outcome of one lidar transition.
type Result = statemachine.Result[State, Command]

// Transition is the lidar transition table.
func Transition(state State, event Event) Result {
	if _, ok := event.(Reset); ok {
		if _, inTutorial := state.(Tutorial); inTutorial {
			return noUpdate()
		}

		return toStateAndEmit(Scanning{Planes: 0}, SceneReset{})
	}

	switch s := state.(type) {
	case Tutorial:
		if _, ok := event.(TutorialDone); ok {
			return toStateAndEmit(Scanning{Planes: 0}, StartLidarScan{})
		}
	case Scanning:
		switch ev := event.(type) {
		case PlanesDetected:
			return toState(Scanning{Planes: ev.Count})
		case WallTapped:
			// A tap means nothing until at least one wall exists.
			if s.Planes >= 1 {
				return toStateAndEmit(PickingColor{}, SelectWall{})
			}
		}
	case PickingColor:
		if ev, ok := event.(ColorSelected); ok {
			return toStateAndEmit(FullUI{}, PaintWall(ev))
		}
	case FullUI:
		switch ev := event.(type) {
		case WallTapped:
			return emit(SelectWall{})
		case ColorSelected:
			return emit(PaintWall(ev))
		case OcclusionWizardShown:
			return toStateAndEmit(OcclusionWizard{}, ShowOcclusionWizard{})
		case LidarOcclusionWizardShown:
			return toStateAndEmit(LidarOcclusionWizard{}, ShowLidarOcclusionWizard{})
		}
	case OcclusionWizard:
		if _, ok := event.(OcclusionWizardHidden); ok {
			return toState(FullUI{})
		}
	case LidarOcclusionWizard:
		if _, ok := event.(LidarOcclusionWizardHidden); ok {
			return toState(FullUI{})
		}
	}

	return noUpdate()
}

func noUpdate() Result {
	return statemachine.NoUpdate[State, Command]()
}

func toState(state State) Result {
	return statemachine.ToState[State, Command](state)
}

func emit(commands ...Command) Result {
	return statemachine.Emit[State](commands...)
}

func toStateAndEmit(state State, commands ...Command) Result {
	return statemachine.ToStateAndEmit(state, commands...)
}
