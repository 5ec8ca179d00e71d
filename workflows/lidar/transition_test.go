package lidar

import (
	"testing"

	"github.com/amp-labs/arflow/paint"
	smtesting "github.com/amp-labs/arflow/statemachine/testing"
	"github.com/amp-labs/arflow/statemachine/validator"
	"github.com/stretchr/testify/assert"
)

type step = smtesting.Step[State, Event, Command]

var naval = paint.Color{ID: "sw-6244", Name: "Naval", Hex: "#2F3D4C", Family: "blue"}

func TestTransitions(t *testing.T) {
	t.Parallel()

	smtesting.RunSteps(t, Transition, []step{
		{
			From:  Tutorial{},
			Event: TutorialDone{},
			Want:  toStateAndEmit(Scanning{Planes: 0}, StartLidarScan{}),
		},
		{
			Name:  "planes detected",
			From:  Scanning{Planes: 0},
			Event: PlanesDetected{Count: 3},
			Want:  toState(Scanning{Planes: 3}),
		},
		{
			Name:  "planes lost",
			From:  Scanning{Planes: 3},
			Event: PlanesDetected{Count: 0},
			Want:  toState(Scanning{Planes: 0}),
		},
		{
			Name:  "tap without planes",
			From:  Scanning{Planes: 0},
			Event: WallTapped{},
			Want:  noUpdate(),
		},
		{
			Name:  "tap with one plane",
			From:  Scanning{Planes: 1},
			Event: WallTapped{},
			Want:  toStateAndEmit(PickingColor{}, SelectWall{}),
		},
		{
			From:  PickingColor{},
			Event: ColorSelected{Color: naval},
			Want:  toStateAndEmit(FullUI{}, PaintWall{Color: naval}),
		},
		{
			Name:  "tap another wall",
			From:  FullUI{},
			Event: WallTapped{},
			Want:  emit(SelectWall{}),
		},
		{
			Name:  "repaint",
			From:  FullUI{},
			Event: ColorSelected{Color: naval},
			Want:  emit(PaintWall{Color: naval}),
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
		{
			Name:  "wizard ignores taps",
			From:  OcclusionWizard{},
			Event: WallTapped{},
			Want:  noUpdate(),
		},
	})
}

func TestReset(t *testing.T) {
	t.Parallel()

	for _, state := range States() {
		t.Run(state.Name(), func(t *testing.T) {
			t.Parallel()

			result := Transition(state, Reset{})

			if _, ok := state.(Tutorial); ok {
				assert.True(t, result.IsNoUpdate())

				return
			}

			smtesting.AssertResult(t, toStateAndEmit(Scanning{Planes: 0}, SceneReset{}), result)
		})
	}
}

func TestTotality(t *testing.T) {
	t.Parallel()

	handled := []smtesting.Pair{
		{State: "tutorial", Event: "tutorial_done"},
		{State: "scanning", Event: "planes_detected"},
		{State: "scanning", Event: "wall_tapped"},
		{State: "picking_color", Event: "color_selected"},
		{State: "full_ui", Event: "wall_tapped"},
		{State: "full_ui", Event: "color_selected"},
		{State: "full_ui", Event: "occlusion_wizard_shown"},
		{State: "full_ui", Event: "lidar_occlusion_wizard_shown"},
		{State: "occlusion_wizard", Event: "occlusion_wizard_hidden"},
		{State: "lidar_occlusion_wizard", Event: "lidar_occlusion_wizard_hidden"},
	}

	catalog := Catalog()

	for _, name := range catalog.StateNames() {
		if name != "tutorial" {
			handled = append(handled, smtesting.Pair{State: name, Event: "reset"})
		}
	}

	smtesting.AssertTotality(t, catalog, handled...)
}

func TestCatalogValidates(t *testing.T) {
	t.Parallel()

	result := validator.Validate(Catalog())

	assert.True(t, result.Valid, result.String())
	assert.False(t, result.HasWarnings(), result.String())
}

func TestScanSequence(t *testing.T) {
	t.Parallel()

	tm := smtesting.NewTestMachine(t, Catalog())

	tm.Send(TutorialDone{}, WallTapped{})
	tm.AssertState(Scanning{Planes: 0})
	tm.Assert(smtesting.EventWasIgnored("scanning", "wall_tapped"))

	tm.Send(PlanesDetected{Count: 1}, WallTapped{}, ColorSelected{Color: naval})

	tm.AssertState(FullUI{})
	tm.AssertCommands(StartLidarScan{}, SelectWall{}, PaintWall{Color: naval})
	tm.Assert(
		smtesting.StateWasVisited("picking_color"),
		smtesting.CommandWasEmitted("select_wall"),
	)
}
