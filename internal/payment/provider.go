// Package payment defines the boundary to the external payment processor.
// The core only supplies an amount and receives an opaque intent; it never
// interprets provider-specific responses.
package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// ErrDeclined is returned when the processor refuses the charge.
var ErrDeclined = errors.New("payment declined")

// Intent is the confirmation token handed back by the processor. The
// client secret is what the front-end uses to finish the card flow.
type Intent struct {
	ID           string  `json:"intent_id"`
	ClientSecret string  `json:"client_secret"`
	Amount       float64 `json:"amount"`
}

// Provider creates and refunds payment intents.
type Provider interface {
	CreateIntent(ctx context.Context, sessionID string, amount float64) (Intent, error)
	Refund(ctx context.Context, intentID string) error
}

// InMemory is a stand-in processor for the demo store. It declines charges
// above a configurable limit so the compensation path can be exercised
// without a real card network.
type InMemory struct {
	limit float64

	mu      sync.Mutex
	intents map[string]Intent
}

// NewInMemory creates a provider that declines amounts above limit.
// A limit of zero or less means no limit.
func NewInMemory(limit float64) *InMemory {
	return &InMemory{limit: limit, intents: make(map[string]Intent)}
}

func (p *InMemory) CreateIntent(ctx context.Context, sessionID string, amount float64) (Intent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if amount <= 0 {
		return Intent{}, fmt.Errorf("create intent for %s: amount %g must be positive", sessionID, amount)
	}
	if p.limit > 0 && amount > p.limit {
		slog.WarnContext(ctx, "charge declined", "session_id", sessionID, "amount", amount, "limit", p.limit)
		return Intent{}, fmt.Errorf("amount %g exceeds limit %g: %w", amount, p.limit, ErrDeclined)
	}

	in := Intent{
		ID:           uuid.NewString(),
		ClientSecret: "secret_" + uuid.NewString(),
		Amount:       amount,
	}
	p.intents[in.ID] = in

	slog.InfoContext(ctx, "charge successful", "session_id", sessionID, "intent_id", in.ID, "amount", amount)
	return in, nil
}

// Refund voids an intent. Refunding an unknown intent is logged and
// swallowed, matching how processors treat already-voided intents.
func (p *InMemory) Refund(ctx context.Context, intentID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	in, ok := p.intents[intentID]
	if !ok {
		slog.WarnContext(ctx, "no intent to refund", "intent_id", intentID)
		return nil
	}

	delete(p.intents, intentID)
	slog.InfoContext(ctx, "refunded", "intent_id", intentID, "amount", in.Amount)
	return nil
}
