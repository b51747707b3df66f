// Package cart owns the state of one shopping trip: the purchased entries,
// the running total and the trolley's current grid position.
package cart

import (
	"fmt"
	"sync"

	"github.com/pragadeesh891/trolley/internal/inventory"
	"github.com/pragadeesh891/trolley/internal/nav"
	"github.com/pragadeesh891/trolley/internal/store"
)

// Entry is one completed add-to-cart purchase. Entries are immutable once
// appended; their order is the purchase order.
type Entry struct {
	Product   string  `json:"product"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Narration is the observable result of a successful add-to-cart: the route
// the trolley should take plus the money totals, rendered for whichever
// presentation layer is active (console, speech, JSON).
type Narration struct {
	Product      string     `json:"product"`
	Quantity     int        `json:"quantity"`
	Route        []nav.Move `json:"route"`
	LineTotal    float64    `json:"line_total"`
	RunningTotal float64    `json:"running_total"`
	Position     store.Cell `json:"position"`
	Message      string     `json:"message"`
}

// Session is the per-trolley unit of state. Each session is independent;
// its own mutex serializes add-to-cart calls while the shared ledger
// guards cross-session stock.
type Session struct {
	ID string

	catalog *store.Catalog
	ledger  *inventory.Ledger

	mu       sync.Mutex
	entries  []Entry
	total    float64
	position store.Cell
}

// NewSession starts an empty session at the store entrance.
func NewSession(id string, catalog *store.Catalog, ledger *inventory.Ledger) *Session {
	return &Session{
		ID:       id,
		catalog:  catalog,
		ledger:   ledger,
		position: catalog.Entrance(),
	}
}

// AddToCart resolves the product, reserves stock, routes the trolley from
// its current position to the shelf and appends the purchase.
//
// The operation is all-or-nothing: a failure to resolve or reserve leaves
// the entry list, the running total and the position untouched.
func (s *Session) AddToCart(name string, qty int) (Narration, error) {
	p, err := s.catalog.Product(name)
	if err != nil {
		return Narration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lineTotal, err := s.ledger.Reserve(p.Name, qty)
	if err != nil {
		return Narration{}, err
	}

	route := nav.ShortestPath(s.catalog.Grid(), s.position, p.Cell)

	// The trolley "arrives" immediately for narration purposes; there is
	// no partial-path state.
	s.position = p.Cell
	s.entries = append(s.entries, Entry{Product: p.Name, Quantity: qty, LineTotal: lineTotal})
	s.total += lineTotal

	return Narration{
		Product:      p.Name,
		Quantity:     qty,
		Route:        route,
		LineTotal:    lineTotal,
		RunningTotal: s.total,
		Position:     s.position,
		Message: fmt.Sprintf("Added %d %s. Navigate %s. Subtotal rupees %g. Current total rupees %g.",
			qty, p.Name, nav.Describe(route), lineTotal, s.total),
	}, nil
}

// Total is the pure checkout read: the sum of all line totals. It can be
// queried repeatedly while an external payment confirmation is pending.
func (s *Session) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.total
}

// Entries returns a copy of the purchase list in purchase order.
func (s *Session) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Position returns the trolley's current grid cell.
func (s *Session) Position() store.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// Bill renders the itemized receipt lines followed by the grand total.
func (s *Session) Bill() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, len(s.entries)+1)
	for _, e := range s.entries {
		lines = append(lines, fmt.Sprintf("%-22s %d pcs  ₹%g", e.Product, e.Quantity, e.LineTotal))
	}
	lines = append(lines, fmt.Sprintf("TOTAL: ₹%g", s.total))
	return lines
}
