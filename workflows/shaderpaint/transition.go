package shaderpaint

import "github.com/amp-labs/arflow/statemachine"

// Result is the outcome of one shaderpaint transition.
type Result = statemachine.Result[State, Command]

// Transition is the shaderpaint transition table.
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
			return toStateAndEmit(Scanning{}, StartScan{})
		}
	case Scanning:
		if _, ok := event.(SurfaceDetected); ok {
			return toState(PickingColor{})
		}
	case PickingColor:
		if ev, ok := event.(ColorSelected); ok {
			return toStateAndEmit(Painting(ev), SetShaderColor(ev))
		}
	case Painting:
		return painting(s, event)
	case OcclusionWizard:
		if _, ok := event.(OcclusionWizardHidden); ok {
			return toState(Painting(s))
		}
	case LidarOcclusionWizard:
		if _, ok := event.(LidarOcclusionWizardHidden); ok {
			return toState(Painting(s))
		}
	}

	return noUpdate()
}

func painting(s Painting, event Event) Result {
	switch ev := event.(type) {
	case ColorSelected:
		return toStateAndEmit(Painting(ev), SetShaderColor(ev))
	case SurfaceTapped:
		return emit(PaintSurface(s))
	case ToleranceChanged:
		return emit(SetTolerance{Tolerance: clampTolerance(ev.Tolerance)})
	case OcclusionWizardShown:
		return toStateAndEmit(OcclusionWizard(s), ShowOcclusionWizard{})
	case LidarOcclusionWizardShown:
		return toStateAndEmit(LidarOcclusionWizard(s), ShowLidarOcclusionWizard{})
	default:
		return noUpdate()
	}
}

// clampTolerance maps any input, NaN included, into [0, 1].
func clampTolerance(t float64) float64 {
	switch {
	case t >= 1:
		return 1
	case t >= 0:
		return t
	default:
		return 0
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
