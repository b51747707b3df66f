// Package checkout runs the payment pipeline that finalizes a trip.
//
// The pipeline is a sequence of compensating steps: if a later step fails,
// the effects of every earlier step are undone in reverse order, so the
// shopper is never charged for a trip that did not complete. Each state
// transition is appended to the trip log.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pragadeesh891/trolley/internal/triplog"
)

// Step is a single unit of work in the pipeline. Every step must be able
// to undo its own effects.
type Step interface {
	Name() string
	Execute(ctx context.Context) error
	Compensate(ctx context.Context) error
}

// Orchestrator executes steps sequentially and compensates on failure.
type Orchestrator struct {
	sessionID string
	steps     []Step
	log       triplog.Repository // nil-safe: transitions are not persisted if nil
}

// NewOrchestrator builds a pipeline for one session. log may be nil.
func NewOrchestrator(sessionID string, steps []Step, log triplog.Repository) *Orchestrator {
	return &Orchestrator{sessionID: sessionID, steps: steps, log: log}
}

// Run executes the steps in order. On the first failure it compensates all
// previously successful steps (LIFO) and returns the step's error.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.record(ctx, triplog.KindCheckoutStarted, "", "")

	var done []Step
	for _, step := range o.steps {
		if err := step.Execute(ctx); err != nil {
			slog.ErrorContext(ctx, "checkout step failed, rolling back",
				"session_id", o.sessionID, "step", step.Name(), "error", err)
			o.record(ctx, triplog.KindFailed, step.Name(), err.Error())
			o.rollback(ctx, done)
			return fmt.Errorf("checkout step %s: %w", step.Name(), err)
		}
		o.record(ctx, triplog.KindStepDone, step.Name(), "")
		done = append(done, step)
	}

	o.record(ctx, triplog.KindCompleted, "", "")
	return nil
}

func (o *Orchestrator) rollback(ctx context.Context, steps []Step) {
	for i := len(steps) - 1; i >= 0; i-- {
		step := steps[i]
		o.record(ctx, triplog.KindCompensating, step.Name(), "")
		if err := step.Compensate(ctx); err != nil {
			slog.ErrorContext(ctx, "CRITICAL: compensation failed",
				"session_id", o.sessionID, "step", step.Name(), "error", err)
		}
	}
}

func (o *Orchestrator) record(ctx context.Context, kind triplog.EventKind, step, detail string) {
	if o.log == nil {
		return
	}
	e := triplog.NewEvent(ctx, o.sessionID, kind, step, detail)
	if err := o.log.Save(ctx, e); err != nil {
		slog.WarnContext(ctx, "failed to persist trip event",
			"session_id", o.sessionID, "kind", kind, "error", err)
	}
}
