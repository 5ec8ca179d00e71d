package statemachine

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
)

func TestDebugTraceLogsEveryDispatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	machine := newLamp(WithDebugTrace(true), WithLogger(NewSlogLogger(log)))

	machine.Dispatch(t.Context(), press{})
	machine.Dispatch(t.Context(), dim{Level: 9})

	out := buf.String()
	assert.Contains(t, out, "msg=Dispatch")
	assert.Contains(t, out, "from=off event=press to=on effect=state_and_commands changed=true")
	assert.Contains(t, out, "commands=[click]")
	assert.Contains(t, out, `detail="on{Level:1} + dim{Level:9} -> on{Level:9}"`)
}

func TestNoTraceWithoutDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	machine := newLamp(WithLogger(NewSlogLogger(log)))

	machine.Dispatch(t.Context(), press{})

	assert.Empty(t, buf.String())
}

func TestDroppedWatchUpdateIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	log := slog.New(slog.NewTextHandler(&buf, nil))
	machine := newLamp(WithLogger(NewSlogLogger(log)))

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	machine.Watch(ctx, 1)
	machine.Dispatch(ctx, press{})
	machine.Dispatch(ctx, press{})

	assert.Contains(t, buf.String(), "Watcher lagging")
	assert.Contains(t, buf.String(), "state=off")
}

func TestDefaultLoggerResolvesFromContext(t *testing.T) {
	t.Parallel()

	l := NewDefaultLogger()

	assert.NotNil(t, l.get(t.Context()))
	assert.NotPanics(t, func() {
		l.Transition(t.Context(), Trace{Workflow: "lamp", From: "off", Event: "press", To: "on"})
	})
}

func TestSlogtLogger(t *testing.T) {
	t.Parallel()

	machine := newLamp(WithDebugTrace(true), WithLogger(NewSlogLogger(slogt.New(t))))

	assert.Equal(t, []effect{click}, machine.Dispatch(t.Context(), press{}))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "off{} + press{} -> on{Level:2}", describe(off{}, press{}, on{Level: 2}))
	assert.Equal(t, "<nil> + press{} -> 3", describe(nil, press{}, 3))
}
