package triplog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// NewEvent builds an Event stamped with the current time and with the
// trace/span IDs of the active OpenTelemetry span in ctx, if any. Unit
// tests without tracing get empty IDs, which the repository stores as-is.
func NewEvent(ctx context.Context, sessionID string, kind EventKind, step, detail string) *Event {
	e := &Event{
		SessionID: sessionID,
		Kind:      kind,
		Step:      step,
		Detail:    detail,
		At:        time.Now(),
	}

	if sc := trace.SpanFromContext(ctx).SpanContext(); sc.IsValid() {
		e.TraceID = sc.TraceID().String()
		e.SpanID = sc.SpanID().String()
	}

	return e
}
