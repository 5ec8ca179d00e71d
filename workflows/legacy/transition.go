package legacy

import (
	"math"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/statemachine"
)

// Result is the outcome of one swatch transition.
type Result = statemachine.Result[State, Command]

// Transition returns the swatch transition table tuned by cfg.
func Transition(cfg config.Legacy) statemachine.TransitionFunc[State, Event, Command] {
	return func(state State, event Event) Result {
		// Reset wins over every other rule; the tutorial has nothing to reset.
		if _, ok := event.(Reset); ok {
			if _, inTutorial := state.(Tutorial); inTutorial {
				return noUpdate()
			}

			return toStateAndEmit(PlacingWall{}, SceneReset{})
		}

		switch s := state.(type) {
		case Tutorial:
			if _, ok := event.(TutorialDone); ok {
				return toStateAndEmit(PlacingWall{}, StartWallDetection{})
			}
		case PlacingWall:
			return placingWall(cfg, s, event)
		case PlacingFirstCorner:
			return placingFirstCorner(s, event)
		case PlacingSecondCorner:
			return placingSecondCorner(s, event)
		case PickingColor:
			if ev, ok := event.(ColorSelected); ok {
				return toStateAndEmit(FullUI{}, ApplyColor(ev))
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

// placingWall debounces the angle sensor: any sample beyond the threshold
// restarts the count, and the wall is placed once the count exceeds the
// configured number of steady samples.
func placingWall(cfg config.Legacy, state PlacingWall, event Event) Result {
	ev, ok := event.(DeviceAngleUpdated)
	if !ok {
		return noUpdate()
	}

	// An unreadable sample restarts the count and keeps the last known angle.
	if math.IsNaN(ev.Angle) {
		return toState(PlacingWall{SteadyCount: 0, Angle: state.Angle})
	}

	if math.Abs(ev.Angle) > cfg.AngleThreshold {
		return toState(PlacingWall{SteadyCount: 0, Angle: ev.Angle})
	}

	count := state.SteadyCount + 1
	if count > cfg.SteadySamples {
		return toStateAndEmit(PlacingFirstCorner{}, PlaceWall{})
	}

	return toState(PlacingWall{SteadyCount: count, Angle: ev.Angle})
}

func placingFirstCorner(state PlacingFirstCorner, event Event) Result {
	switch ev := event.(type) {
	case CornerMeasured:
		return toState(PlacingFirstCorner(ev))
	case CornerPlaced:
		distance, angle, ok := optional.Both(state.Distance, state.Angle)
		if !ok {
			return noUpdate()
		}

		return toStateAndEmit(PlacingSecondCorner{}, PlaceCorner{Index: 1, Distance: distance, Angle: angle})
	default:
		return noUpdate()
	}
}

func placingSecondCorner(state PlacingSecondCorner, event Event) Result {
	switch ev := event.(type) {
	case CornerMeasured:
		return toState(PlacingSecondCorner(ev))
	case CornerPlaced:
		distance, angle, ok := optional.Both(state.Distance, state.Angle)
		if !ok {
			return noUpdate()
		}

		return toStateAndEmit(PickingColor{}, PlaceCorner{Index: 2, Distance: distance, Angle: angle})
	default:
		return noUpdate()
	}
}

func fullUI(event Event) Result {
	switch ev := event.(type) {
	case ColorSelected:
		return emit(ApplyColor(ev))
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
