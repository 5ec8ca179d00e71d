package legacy

import (
	"math"
	"testing"

	"github.com/amp-labs/arflow/config"
	"github.com/amp-labs/arflow/optional"
	"github.com/amp-labs/arflow/paint"
	smtesting "github.com/amp-labs/arflow/statemachine/testing"
	"github.com/amp-labs/arflow/statemachine/validator"
	"github.com/stretchr/testify/assert"
)

type step = smtesting.Step[State, Event, Command]

var linen = paint.Color{ID: "sw-6372", Name: "Linen", Hex: "#E9E0CF"}

func TestDebounce(t *testing.T) {
	t.Parallel()

	smtesting.RunSteps(t, Transition(config.Default().Legacy), []step{
		{
			Name:  "steady sample counts up to the limit",
			From:  PlacingWall{SteadyCount: 119, Angle: 2.0},
			Event: DeviceAngleUpdated{Angle: 3.0},
			Want:  toState(PlacingWall{SteadyCount: 120, Angle: 3.0}),
		},
		{
			Name:  "sample past the limit places the wall",
			From:  PlacingWall{SteadyCount: 120, Angle: 3.0},
			Event: DeviceAngleUpdated{Angle: 3.0},
			Want: toStateAndEmit(
				PlacingFirstCorner{Distance: optional.None[float64](), Angle: optional.None[float64]()},
				PlaceWall{},
			),
		},
		{
			Name:  "tilted sample restarts the count",
			From:  PlacingWall{SteadyCount: 5, Angle: 1.0},
			Event: DeviceAngleUpdated{Angle: 10.0},
			Want:  toState(PlacingWall{SteadyCount: 0, Angle: 10.0}),
		},
		{
			Name:  "negative tilt restarts the count",
			From:  PlacingWall{SteadyCount: 50, Angle: 1.0},
			Event: DeviceAngleUpdated{Angle: -8.5},
			Want:  toState(PlacingWall{SteadyCount: 0, Angle: -8.5}),
		},
		{
			Name:  "threshold itself is steady",
			From:  PlacingWall{SteadyCount: 0, Angle: 0},
			Event: DeviceAngleUpdated{Angle: 8.0},
			Want:  toState(PlacingWall{SteadyCount: 1, Angle: 8.0}),
		},
		{
			Name:  "unreadable sample restarts the count",
			From:  PlacingWall{SteadyCount: 5, Angle: 1.0},
			Event: DeviceAngleUpdated{Angle: math.NaN()},
			Want:  toState(PlacingWall{SteadyCount: 0, Angle: 1.0}),
		},
		{
			Name:  "unreadable sample at the limit does not place the wall",
			From:  PlacingWall{SteadyCount: 120, Angle: 3.0},
			Event: DeviceAngleUpdated{Angle: math.NaN()},
			Want:  toState(PlacingWall{SteadyCount: 0, Angle: 3.0}),
		},
	})
}

func TestDebounceIgnoresUnreadableSamples(t *testing.T) {
	t.Parallel()

	tm := smtesting.NewTestMachineAt(t, Catalog(config.Default().Legacy), State(PlacingWall{SteadyCount: 5, Angle: 1.0}))

	for range 200 {
		tm.Send(DeviceAngleUpdated{Angle: math.NaN()})
	}

	tm.AssertState(PlacingWall{SteadyCount: 0, Angle: 1.0})
	tm.AssertCommands()
	assert.Equal(t, []State{PlacingWall{SteadyCount: 0, Angle: 1.0}}, tm.Published())
}

func TestDebounceSequence(t *testing.T) {
	t.Parallel()

	tm := smtesting.NewTestMachineAt(t, Catalog(config.Default().Legacy), State(PlacingWall{SteadyCount: 119, Angle: 2.0}))

	tm.Send(DeviceAngleUpdated{Angle: 3.0})
	tm.AssertState(PlacingWall{SteadyCount: 120, Angle: 3.0})
	tm.AssertCommands()

	tm.Send(DeviceAngleUpdated{Angle: 3.0})
	tm.AssertState(PlacingFirstCorner{})
	tm.AssertCommands(PlaceWall{})
}

func TestDebounceFollowsConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Legacy{AngleThreshold: 2, SteadySamples: 3}
	tm := smtesting.NewTestMachineAt(t, Catalog(cfg), State(PlacingWall{}))

	tm.Send(
		DeviceAngleUpdated{Angle: 1},
		DeviceAngleUpdated{Angle: 3},
		DeviceAngleUpdated{Angle: 1},
		DeviceAngleUpdated{Angle: 1},
		DeviceAngleUpdated{Angle: 1},
	)
	tm.AssertState(PlacingWall{SteadyCount: 3, Angle: 1})

	tm.Send(DeviceAngleUpdated{Angle: 0.5})
	tm.AssertState(PlacingFirstCorner{})
}

func TestCornerPlacement(t *testing.T) {
	t.Parallel()

	d, a := optional.Some(1.25), optional.Some(88.0)

	smtesting.RunSteps(t, Transition(config.Default().Legacy), []step{
		{
			Name:  "first measurement",
			From:  PlacingFirstCorner{},
			Event: CornerMeasured{Distance: d, Angle: a},
			Want:  toState(PlacingFirstCorner{Distance: d, Angle: a}),
		},
		{
			Name:  "measurement lost",
			From:  PlacingFirstCorner{Distance: d, Angle: a},
			Event: CornerMeasured{Distance: d},
			Want:  toState(PlacingFirstCorner{Distance: d}),
		},
		{
			Name:  "first corner without angle",
			From:  PlacingFirstCorner{Distance: d},
			Event: CornerPlaced{},
			Want:  noUpdate(),
		},
		{
			Name:  "first corner",
			From:  PlacingFirstCorner{Distance: d, Angle: a},
			Event: CornerPlaced{},
			Want:  toStateAndEmit(PlacingSecondCorner{}, PlaceCorner{Index: 1, Distance: 1.25, Angle: 88}),
		},
		{
			Name:  "second measurement",
			From:  PlacingSecondCorner{},
			Event: CornerMeasured{Distance: d, Angle: a},
			Want:  toState(PlacingSecondCorner{Distance: d, Angle: a}),
		},
		{
			Name:  "second corner without measurement",
			From:  PlacingSecondCorner{},
			Event: CornerPlaced{},
			Want:  noUpdate(),
		},
		{
			Name:  "second corner",
			From:  PlacingSecondCorner{Distance: d, Angle: a},
			Event: CornerPlaced{},
			Want:  toStateAndEmit(PickingColor{}, PlaceCorner{Index: 2, Distance: 1.25, Angle: 88}),
		},
		{
			From:  PickingColor{},
			Event: ColorSelected{Color: linen},
			Want:  toStateAndEmit(FullUI{}, ApplyColor{Color: linen}),
		},
		{
			Name:  "recolor",
			From:  FullUI{},
			Event: ColorSelected{Color: linen},
			Want:  emit(ApplyColor{Color: linen}),
		},
		{
			From:  Tutorial{},
			Event: TutorialDone{},
			Want:  toStateAndEmit(PlacingWall{}, StartWallDetection{}),
		},
		{
			From:  FullUI{},
			Event: OcclusionWizardShown{},
			Want:  toStateAndEmit(OcclusionWizard{}, ShowOcclusionWizard{}),
		},
		{From: OcclusionWizard{}, Event: OcclusionWizardHidden{}, Want: toState(FullUI{})},
		{
			From:  FullUI{},
			Event: LidarOcclusionWizardShown{},
			Want:  toStateAndEmit(LidarOcclusionWizard{}, ShowLidarOcclusionWizard{}),
		},
		{From: LidarOcclusionWizard{}, Event: LidarOcclusionWizardHidden{}, Want: toState(FullUI{})},
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	transition := Transition(config.Default().Legacy)

	for _, state := range States() {
		t.Run(state.Name(), func(t *testing.T) {
			t.Parallel()

			result := transition(state, Reset{})

			if _, ok := state.(Tutorial); ok {
				assert.True(t, result.IsNoUpdate())

				return
			}

			smtesting.AssertResult(t, toStateAndEmit(PlacingWall{}, SceneReset{}), result)
		})
	}
}

func TestTotality(t *testing.T) {
	t.Parallel()

	handled := []smtesting.Pair{
		{State: "tutorial", Event: "tutorial_done"},
		{State: "placing_wall", Event: "device_angle_updated"},
		{State: "placing_first_corner", Event: "corner_measured"},
		{State: "placing_first_corner", Event: "corner_placed"},
		{State: "placing_second_corner", Event: "corner_measured"},
		{State: "placing_second_corner", Event: "corner_placed"},
		{State: "picking_color", Event: "color_selected"},
		{State: "full_ui", Event: "color_selected"},
		{State: "full_ui", Event: "occlusion_wizard_shown"},
		{State: "full_ui", Event: "lidar_occlusion_wizard_shown"},
		{State: "occlusion_wizard", Event: "occlusion_wizard_hidden"},
		{State: "lidar_occlusion_wizard", Event: "lidar_occlusion_wizard_hidden"},
	}

	catalog := Catalog(config.Default().Legacy)

	for _, name := range catalog.StateNames() {
		if name != "tutorial" {
			handled = append(handled, smtesting.Pair{State: name, Event: "reset"})
		}
	}

	smtesting.AssertTotality(t, catalog, handled...)
}

func TestCatalogValidates(t *testing.T) {
	t.Parallel()

	result := validator.Validate(Catalog(config.Default().Legacy))

	assert.True(t, result.Valid, result.String())
	assert.False(t, result.HasWarnings(), result.String())
}
