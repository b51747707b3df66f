package payment

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pragadeesh891/trolley/internal/pkg/cache"
)

// idempotencyTTL bounds how long a retried charge returns the cached
// intent. Long enough to cover client retries, short enough that keys
// do not accumulate.
const idempotencyTTL = 24 * time.Hour

// Idempotent wraps a Provider so that CreateIntent calls carrying the same
// idempotency key return the intent created by the first call instead of
// charging again. Calls without a key pass straight through.
type Idempotent struct {
	inner Provider
	cache cache.Cache
}

// NewIdempotent builds the wrapper. cache may not be nil; callers without
// Redis should use the inner provider directly.
func NewIdempotent(inner Provider, c cache.Cache) *Idempotent {
	return &Idempotent{inner: inner, cache: c}
}

// CreateIntentWithKey is CreateIntent plus the client-supplied idempotency
// key from the x-idempotency-key header.
func (p *Idempotent) CreateIntentWithKey(ctx context.Context, sessionID, idempKey string, amount float64) (Intent, error) {
	if idempKey == "" {
		return p.inner.CreateIntent(ctx, sessionID, amount)
	}

	key := p.cache.Key("charge", idempKey)

	if cached, err := p.cache.Get(ctx, key); err != nil {
		// A cache outage must not block payments; fall through and charge.
		slog.WarnContext(ctx, "idempotency cache unavailable", "error", err)
	} else if cached != "" {
		var in Intent
		if err := json.Unmarshal([]byte(cached), &in); err == nil {
			slog.InfoContext(ctx, "replaying cached intent", "session_id", sessionID, "intent_id", in.ID)
			return in, nil
		}
	}

	in, err := p.inner.CreateIntent(ctx, sessionID, amount)
	if err != nil {
		return Intent{}, err
	}

	if raw, err := json.Marshal(in); err == nil {
		if err := p.cache.Set(ctx, key, string(raw), idempotencyTTL); err != nil {
			slog.WarnContext(ctx, "failed to cache intent", "intent_id", in.ID, "error", err)
		}
	}

	return in, nil
}

// CreateIntent satisfies Provider for callers that have no key.
func (p *Idempotent) CreateIntent(ctx context.Context, sessionID string, amount float64) (Intent, error) {
	return p.inner.CreateIntent(ctx, sessionID, amount)
}

// Refund passes through to the wrapped provider.
func (p *Idempotent) Refund(ctx context.Context, intentID string) error {
	return p.inner.Refund(ctx, intentID)
}
