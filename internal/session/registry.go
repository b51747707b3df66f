// Package session manages the set of live trolley sessions behind the
// pairing handshake. It replaces the process-global cart the demo hardware
// used, so several trolleys can shop concurrently against one ledger.
package session

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pragadeesh891/trolley/internal/cart"
	"github.com/pragadeesh891/trolley/internal/inventory"
	"github.com/pragadeesh891/trolley/internal/store"
)

var (
	// ErrInvalidPairCode is returned when the pairing code printed on the
	// trolley does not match.
	ErrInvalidPairCode = errors.New("invalid pair code")

	// ErrSessionNotFound is returned for unknown or already-ended sessions.
	ErrSessionNotFound = errors.New("session not found")
)

// Pairing is the result of a successful pair handshake.
type Pairing struct {
	SessionID string
	TrolleyID int
	Battery   int
}

// Registry hands out sessions against valid pair codes and resolves
// session IDs on subsequent requests.
type Registry struct {
	catalog  *store.Catalog
	ledger   *inventory.Ledger
	pairCode string

	mu       sync.RWMutex
	sessions map[string]*cart.Session
}

// NewRegistry creates an empty registry. pairCode is the code stamped on
// the physical trolleys; the demo fleet accepts a single shared code.
func NewRegistry(catalog *store.Catalog, ledger *inventory.Ledger, pairCode string) *Registry {
	return &Registry{
		catalog:  catalog,
		ledger:   ledger,
		pairCode: strings.ToUpper(pairCode),
		sessions: make(map[string]*cart.Session),
	}
}

// Pair validates the code and starts a fresh session at the entrance.
func (r *Registry) Pair(code string) (Pairing, error) {
	if strings.ToUpper(strings.TrimSpace(code)) != r.pairCode {
		return Pairing{}, ErrInvalidPairCode
	}

	id := uuid.NewString()
	s := cart.NewSession(id, r.catalog, r.ledger)

	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()

	return Pairing{SessionID: id, TrolleyID: 1234, Battery: 94}, nil
}

// Get resolves a session ID.
func (r *Registry) Get(id string) (*cart.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// End removes a session. Session state is not persisted anywhere; ending
// the trip destroys it.
func (r *Registry) End(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}
