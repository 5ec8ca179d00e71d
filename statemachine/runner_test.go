package statemachine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunnerPerformsCommandsInOrder(t *testing.T) {
	t.Parallel()

	var performed []effect

	runner := NewRunner(newLamp(), func(_ context.Context, cmd effect) {
		performed = append(performed, cmd)
	})

	assert.Equal(t, []effect{click}, runner.Send(t.Context(), press{}))
	runner.Send(t.Context(), ping{})

	assert.Equal(t, []effect{click, beep}, performed)
	assert.Equal(t, lamp(on{Level: 1}), runner.State())
}

func TestRunnerNilPerform(t *testing.T) {
	t.Parallel()

	runner := NewRunner(newLamp(), nil)

	assert.NotPanics(t, func() {
		runner.Send(t.Context(), press{})
	})
	assert.Equal(t, lamp(on{Level: 1}), runner.Machine().State())
}

func TestRunnerCommandSeesCommittedState(t *testing.T) {
	t.Parallel()

	var runner *Runner[lamp, input, effect]

	var seen lamp

	runner = NewRunner(newLamp(), func(context.Context, effect) {
		seen = runner.State()
	})

	runner.Send(t.Context(), press{})

	assert.Equal(t, lamp(on{Level: 1}), seen)
}

func TestRunnerNestedSendRunsDepthFirst(t *testing.T) {
	t.Parallel()

	var (
		runner *Runner[lamp, input, effect]
		log    []string
	)

	runner = NewRunner(newLamp(), func(ctx context.Context, cmd effect) {
		log = append(log, "perform "+cmd.Name())

		if cmd == click {
			runner.Send(ctx, ping{})
			log = append(log, "nested done")
		}
	})

	var observed []lamp

	runner.Subscribe(func(s lamp) { observed = append(observed, s) })
	runner.Send(t.Context(), press{})

	assert.Equal(t, []string{"perform click", "perform beep", "nested done"}, log)
	assert.Equal(t, []lamp{on{Level: 1}}, observed)
}
