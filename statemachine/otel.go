package statemachine

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "github.com/amp-labs/arflow/statemachine"

// startDispatchSpan creates the span covering one dispatched event. It uses
// the global tracer provider configured by the telemetry package. When
// tracing is disabled a non-recording span is returned.
// The caller is responsible for calling span.End().
//
//nolint:spancheck // Span lifecycle managed by caller
func startDispatchSpan(
	ctx context.Context,
	enabled bool,
	workflow string,
	state string,
	event string,
) (context.Context, trace.Span) {
	if !enabled {
		return ctx, noop.Span{}
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "statemachine.dispatch")
	span.SetAttributes(
		attribute.String("workflow", workflow),
		attribute.String("from_state", state),
		attribute.String("event", event),
	)

	return ctx, span
}

// extractTraceContext returns trace and span ids for log correlation.
func extractTraceContext(ctx context.Context) (traceID, spanID string) {
	span := trace.SpanFromContext(ctx)
	if span.SpanContext().IsValid() {
		spanCtx := span.SpanContext()

		return spanCtx.TraceID().String(), spanCtx.SpanID().String()
	}

	return "", ""
}
