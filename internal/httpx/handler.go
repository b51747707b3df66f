// Package httpx is the single HTTP surface of trolleyd. All endpoints the
// original trolley firmware spread over several backend entry points are
// served here by one handler.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pragadeesh891/trolley/internal/assist"
	"github.com/pragadeesh891/trolley/internal/cart"
	"github.com/pragadeesh891/trolley/internal/checkout"
	"github.com/pragadeesh891/trolley/internal/httpx/middlewares"
	"github.com/pragadeesh891/trolley/internal/inventory"
	"github.com/pragadeesh891/trolley/internal/payment"
	"github.com/pragadeesh891/trolley/internal/receipt"
	"github.com/pragadeesh891/trolley/internal/session"
	"github.com/pragadeesh891/trolley/internal/store"
	"github.com/pragadeesh891/trolley/internal/triplog"
)

// Handler serves every trolley endpoint.
type Handler struct {
	catalog  *store.Catalog
	registry *session.Registry

	provider payment.Provider
	idem     *payment.Idempotent // nil when no idempotency cache is configured
	receipts receipt.Sender
	tripLog  triplog.Repository // nil-safe: events are simply not persisted

	translator assist.Translator
	detector   assist.Detector
	classifier assist.Classifier
	responder  *assist.Responder
}

// NewHandler wires the handler with its collaborators. idem and tripLog
// may be nil.
func NewHandler(
	catalog *store.Catalog,
	registry *session.Registry,
	provider payment.Provider,
	idem *payment.Idempotent,
	receipts receipt.Sender,
	tripLog triplog.Repository,
	translator assist.Translator,
	detector assist.Detector,
	classifier assist.Classifier,
	responder *assist.Responder,
) *Handler {
	return &Handler{
		catalog:    catalog,
		registry:   registry,
		provider:   provider,
		idem:       idem,
		receipts:   receipts,
		tripLog:    tripLog,
		translator: translator,
		detector:   detector,
		classifier: classifier,
		responder:  responder,
	}
}

// Pair validates the trolley pairing code and starts a session.
func (h *Handler) Pair(w http.ResponseWriter, r *http.Request) {
	var req PairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	p, err := h.registry.Pair(req.Code)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_code", "Invalid code")
		return
	}

	slog.InfoContext(r.Context(), "trolley paired",
		"request_id", middlewares.RequestID(r.Context()), "session_id", p.SessionID)

	writeJSON(w, http.StatusCreated, PairResponse{
		SessionID: p.SessionID,
		TrolleyID: p.TrolleyID,
		Battery:   p.Battery,
	})
}

// AddItem adds a product to the cart by name or barcode and returns the
// narration: route, line total and running total.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be positive")
		return
	}

	name := req.Product
	if name == "" && req.Barcode != "" {
		p, found := h.catalog.ByBarcode(req.Barcode)
		if !found {
			writeError(w, http.StatusNotFound, "unknown_barcode", "Barcode not recognized")
			return
		}
		name = p.Name
	}
	if name == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "product or barcode is required")
		return
	}

	n, err := s.AddToCart(name, req.Quantity)
	switch {
	case errors.Is(err, store.ErrUnknownProduct):
		writeError(w, http.StatusNotFound, "unknown_product", "Product not found")
		return
	case errors.Is(err, inventory.ErrOutOfStock):
		writeError(w, http.StatusConflict, "out_of_stock", "Not enough stock")
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	h.recordTrip(r, s, n)
	writeJSON(w, http.StatusOK, n)
}

// GetSession returns the cart contents, total and trolley position.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, SessionResponse{
		SessionID: s.ID,
		Entries:   s.Entries(),
		Total:     s.Total(),
		Position:  s.Position(),
	})
}

// EndSession unpairs the trolley. Session state is discarded; the trip log
// keeps the audit trail.
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	h.registry.End(s.ID)
	w.WriteHeader(http.StatusNoContent)
}

// GetBill returns the itemized receipt lines.
func (h *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, BillResponse{
		SessionID: s.ID,
		Lines:     s.Bill(),
		Total:     s.Total(),
	})
}

// Checkout runs the payment pipeline for the session total. The total
// itself is a pure read; the session survives a declined payment and the
// endpoint may be retried with the same idempotency key.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	var req CheckoutRequest
	if r.Body != nil {
		// An empty body is a checkout without a receipt address.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	total := s.Total()
	if total <= 0 {
		writeError(w, http.StatusConflict, "empty_cart", "nothing to pay")
		return
	}

	payStep := checkout.NewPaymentStep(h.provider, h.chargeFunc(), s.ID, total)
	steps := []checkout.Step{
		payStep,
		checkout.NewReceiptStep(h.receipts, req.Email, s.Bill()),
	}

	if err := checkout.NewOrchestrator(s.ID, steps, h.tripLog).Run(r.Context()); err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			writeError(w, http.StatusPaymentRequired, "payment_declined", err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, "checkout_failed", err.Error())
		return
	}

	in := payStep.Intent()
	writeJSON(w, http.StatusOK, CheckoutResponse{
		Total:        total,
		IntentID:     in.ID,
		ClientSecret: in.ClientSecret,
	})
}

// chargeFunc binds the request's idempotency key when a cache is
// configured, otherwise charges directly.
func (h *Handler) chargeFunc() checkout.ChargeFunc {
	if h.idem == nil {
		return nil // PaymentStep falls back to provider.CreateIntent
	}
	return func(ctx context.Context, sessionID string, amount float64) (payment.Intent, error) {
		return h.idem.CreateIntentWithKey(ctx, sessionID, middlewares.IdempotencyKey(ctx), amount)
	}
}

// Barcode resolves a scanned code to a product and its brand list.
func (h *Handler) Barcode(w http.ResponseWriter, r *http.Request) {
	var req BarcodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	p, found := h.catalog.ByBarcode(req.Code)
	if !found {
		writeJSON(w, http.StatusOK, BarcodeResponse{Success: false, Error: "Unknown barcode"})
		return
	}

	writeJSON(w, http.StatusOK, BarcodeResponse{
		Success: true,
		Product: p.Name,
		Brands:  p.Brands,
	})
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// session resolves the {id} URL parameter, writing the error response on
// failure.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*cart.Session, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "session_id_required", "")
		return nil, false
	}
	s, err := h.registry.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session_not_found", err.Error())
		return nil, false
	}
	return s, true
}

func (h *Handler) recordTrip(r *http.Request, s *cart.Session, n cart.Narration) {
	if h.tripLog == nil {
		return
	}
	detail, _ := json.Marshal(n)
	e := triplog.NewEvent(r.Context(), s.ID, triplog.KindItemAdded, n.Product, string(detail))
	if err := h.tripLog.Save(r.Context(), e); err != nil {
		slog.WarnContext(r.Context(), "failed to persist trip event", "session_id", s.ID, "error", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}
