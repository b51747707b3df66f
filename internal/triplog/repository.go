package triplog

import "context"

// Repository is the port for persisting trip events. The HTTP layer and
// the checkout orchestrator depend on this abstraction, not on SQLite,
// so tests can substitute an in-memory recorder.
type Repository interface {
	// Save appends one event. The log is append-only; rows are never
	// updated or deleted.
	Save(ctx context.Context, e *Event) error
}
