// Package middlewares carries the chi middleware specific to trolleyd.
package middlewares

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// HeaderXIdempotencyKey is the header shoppers' clients send to make
// checkout retries safe.
const HeaderXIdempotencyKey = "x-idempotency-key"

// ctxKey is unexported so context values cannot collide with keys from
// other packages.
type ctxKey string

const (
	ctxKeyRequestID      ctxKey = "request_id"
	ctxKeyIdempotencyKey ctxKey = "idempotency_key"
)

// AttachRequestMetadata copies the chi request ID and the idempotency key
// header into typed context values so handlers and the payment layer can
// read them without touching the request.
func AttachRequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ctxKeyRequestID, middleware.GetReqID(r.Context()))
		ctx = context.WithValue(ctx, ctxKeyIdempotencyKey, r.Header.Get(HeaderXIdempotencyKey))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestID returns the request ID stored by AttachRequestMetadata.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID).(string)
	return id
}

// IdempotencyKey returns the idempotency key stored by
// AttachRequestMetadata; empty when the client sent none.
func IdempotencyKey(ctx context.Context) string {
	key, _ := ctx.Value(ctxKeyIdempotencyKey).(string)
	return key
}
