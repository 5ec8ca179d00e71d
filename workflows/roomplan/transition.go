package roomplan

import "github.com/amp-labs/arflow/statemachine"

// Result is the outcome of one roomplan transition.
type Result = statemachine.Result[State, Command]

// Transition is the roomplan transition table.
func Transition(state State, event Event) Result {
	if _, ok := event.(Reset); ok {
		if _, inTutorial := state.(Tutorial); inTutorial {
			return noUpdate()
		}

		return toStateAndEmit(Scanning{}, SceneReset{})
	}

	switch s := state.(type) {
	case Tutorial:
		if _, ok := event.(TutorialDone); ok {
			return toStateAndEmit(Scanning{}, StartRoomCapture{})
		}
	case Scanning:
		switch ev := event.(type) {
		case ScanProgress:
			return toState(Scanning(ev))
		case DoneScanning:
			return toStateAndEmit(Processing{}, StopRoomCapture{})
		}
	case Processing:
		if ev, ok := event.(ScanProcessed); ok {
			if !ev.OK {
				return toStateAndEmit(Scanning{}, StartRoomCapture{})
			}

			return toStateAndEmit(Reviewing{FirstTime: true}, ShowScanReview{})
		}
	case Reviewing:
		if _, ok := event.(ReviewAccepted); ok {
			if s.FirstTime {
				return toStateAndEmit(PickingColor{}, HideScanReview{})
			}

			return toStateAndEmit(FullUI{}, HideScanReview{})
		}
	case PickingColor:
		if ev, ok := event.(ColorSelected); ok {
			return toStateAndEmit(FullUI{}, PaintWalls(ev))
		}
	case FullUI:
		switch ev := event.(type) {
		case ColorSelected:
			return emit(PaintWalls(ev))
		case ReviewRequested:
			return toStateAndEmit(Reviewing{FirstTime: false}, ShowScanReview{})
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
