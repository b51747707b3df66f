// Package triplog records what happened during a shopping trip.
//
// Every noteworthy transition — an item landing in the cart, each step of
// the payment pipeline — is appended as an immutable event keyed by the
// session ID. The log serves observability (each row carries the OTel
// trace/span IDs of the request that produced it) and lets a receipt be
// reconstructed after the session itself is gone.
package triplog

import "time"

// EventKind classifies a trip log row.
type EventKind string

const (
	KindItemAdded       EventKind = "ITEM_ADDED"
	KindCheckoutStarted EventKind = "CHECKOUT_STARTED"
	KindStepDone        EventKind = "STEP_DONE"
	KindCompensating    EventKind = "COMPENSATING"
	KindCompleted       EventKind = "COMPLETED"
	KindFailed          EventKind = "FAILED"
)

// Event is a single row in the trip_events table.
type Event struct {
	// SessionID joins the event with the trolley session that produced it.
	SessionID string

	// Kind is the transition being recorded.
	Kind EventKind

	// Step names the checkout step for STEP_DONE/COMPENSATING rows, or the
	// product for ITEM_ADDED rows.
	Step string

	// Detail is free-form JSON context: the narration for item events,
	// the error message for failures.
	Detail string

	// TraceID and SpanID link the row to the distributed trace that was
	// active when it was written. Empty when no span was recorded.
	TraceID string
	SpanID  string

	// At is the wall-clock time of the transition.
	At time.Time
}
