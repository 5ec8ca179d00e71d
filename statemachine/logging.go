package statemachine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amp-labs/arflow/logger"
)

// Trace describes one dispatched event: the state it arrived in, the state it
// left the machine in, and the commands it produced.
type Trace struct {
	Workflow string
	From     string
	Event    string
	To       string
	Kind     ResultKind
	Changed  bool
	Commands []string

	// Detail renders the full (state, event) -> state triple including
	// payloads. Only filled when a debug trace or a hook is installed.
	Detail string
}

// Logger provides logging hooks for machine execution.
type Logger interface {
	Transition(ctx context.Context, trace Trace)
	Dropped(ctx context.Context, workflow string, state string)
}

// DefaultLogger implements Logger using slog. When no logger is pinned it
// resolves one from the context on every call.
type DefaultLogger struct {
	logger *slog.Logger
}

// NewDefaultLogger creates a logger that resolves from the context.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{}
}

// NewSlogLogger creates a logger that always writes to the given slog logger.
func NewSlogLogger(l *slog.Logger) *DefaultLogger {
	return &DefaultLogger{logger: l}
}

func (l *DefaultLogger) get(ctx context.Context) *slog.Logger {
	if l.logger != nil {
		return l.logger
	}

	return logger.Get(ctx)
}

func (l *DefaultLogger) Transition(ctx context.Context, trace Trace) {
	fields := []any{
		"workflow", trace.Workflow,
		"from", trace.From,
		"event", trace.Event,
		"to", trace.To,
		"effect", trace.Kind.String(),
		"changed", trace.Changed,
	}

	if len(trace.Commands) > 0 {
		fields = append(fields, "commands", trace.Commands)
	}

	if trace.Detail != "" {
		fields = append(fields, "detail", trace.Detail)
	}

	if traceID, spanID := extractTraceContext(ctx); traceID != "" {
		fields = append(fields, "trace_id", traceID, "span_id", spanID)
	}

	l.get(ctx).DebugContext(ctx, "Dispatch", fields...)
}

func (l *DefaultLogger) Dropped(ctx context.Context, workflow string, state string) {
	l.get(ctx).WarnContext(ctx, "Watcher lagging, state update dropped",
		"workflow", workflow,
		"state", state,
	)
}

// describe renders a transition with payloads, e.g.
// "placing_corners{Count:1} + finish_placing_corners{ClosedShape:false} -> placing_corners{Count:1}".
func describe(from, event, to any) string {
	return fmt.Sprintf("%s + %s -> %s", render(from), render(event), render(to))
}

func render(v any) string {
	named, ok := v.(Variant)
	if !ok || named == nil {
		return fmt.Sprintf("%v", v)
	}

	return fmt.Sprintf("%s%+v", named.Name(), v)
}
