package statemachine

import "context"

// TraceHook receives a Trace for every dispatched event, whether or not the
// debug trace is enabled.
type TraceHook func(ctx context.Context, trace Trace)

type options struct {
	logger     Logger
	debugTrace bool
	metrics    bool
	tracing    bool
	hooks      []TraceHook
}

func defaultOptions() options {
	return options{
		metrics: true,
		tracing: true,
	}
}

// Option configures a Machine.
type Option func(*options)

// WithLogger sets the logger used for debug traces and dropped watch updates.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebugTrace enables logging of every (state, event) -> effect triple.
// It never changes transition outcomes.
func WithDebugTrace(enabled bool) Option {
	return func(o *options) {
		o.debugTrace = enabled
	}
}

// WithTraceHook adds a hook called after every dispatched event.
func WithTraceHook(hook TraceHook) Option {
	return func(o *options) {
		if hook != nil {
			o.hooks = append(o.hooks, hook)
		}
	}
}

// WithMetrics enables or disables prometheus instrumentation. Enabled by default.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		o.metrics = enabled
	}
}

// WithTracing enables or disables the per-dispatch OpenTelemetry span.
// Enabled by default; without a configured tracer provider the spans are no-ops.
func WithTracing(enabled bool) Option {
	return func(o *options) {
		o.tracing = enabled
	}
}
