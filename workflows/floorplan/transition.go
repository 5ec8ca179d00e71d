package floorplan

import (
	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/statemachine"
)

// Result is the outcome of one floorplan transition.
type Result = statemachine.Result[State, Command]

// Transition returns the floorplan transition table tuned by cfg.
func Transition(cfg config.Floorplan) statemachine.TransitionFunc[State, Event, Command] {
	return func(state State, event Event) Result {
		// Reset wins over every other rule, from every state.
		if _, ok := event.(Reset); ok {
			return toStateAndEmit(Tutorial{}, SceneReset{})
		}

		switch s := state.(type) {
		case Tutorial:
			if _, ok := event.(TutorialDone); ok {
				return toStateAndEmit(Scanning{}, StartScan{Timeout: cfg.ScanTimeout})
			}
		case Scanning:
			if _, ok := event.(ScanFinished); ok {
				return toState(PlacingCorners{Count: 0})
			}
		case PlacingCorners:
			return placingCorners(cfg, s, event)
		case SettingHeight:
			if _, ok := event.(HeightSet); ok {
				return toStateAndEmit(PickingColor{}, FinishCeilingHeight{})
			}
		case PickingColor:
			if ev, ok := event.(SecondaryColorSelected); ok {
				return toStateAndEmit(PaintingFirstWall{}, SelectSecondaryColor(ev))
			}
		case PaintingFirstWall:
			if _, ok := event.(FirstWallPainted); ok {
				return toState(FullUI{})
			}
		case FullUI:
			return fullUI(event)
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
}

func placingCorners(cfg config.Floorplan, state PlacingCorners, event Event) Result {
	switch ev := event.(type) {
	case CornerCountUpdated:
		return toState(PlacingCorners{Count: ev.Count})
	case CornersFinished:
		if state.Count < cfg.MinCorners {
			return noUpdate()
		}

		return toStateAndEmit(SettingHeight{}, FinishPlacingCorners(ev))
	default:
		return noUpdate()
	}
}

func fullUI(event Event) Result {
	switch ev := event.(type) {
	case SecondaryColorSelected:
		return emit(SelectSecondaryColor(ev))
	case OcclusionWizardShown:
		return toStateAndEmit(OcclusionWizard{}, ShowOcclusionWizard{})
	case LidarOcclusionWizardShown:
		return toStateAndEmit(LidarOcclusionWizard{}, ShowLidarOcclusionWizard{})
	default:
		return noUpdate()
	}
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
