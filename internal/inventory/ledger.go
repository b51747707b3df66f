// Package inventory is the authoritative stock and pricing source.
//
// All sessions share one Ledger; the reserve path (check stock, decrement,
// price) runs as a single critical section so that two concurrent reserves
// for the same product can never jointly oversell it.
package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pragadeesh891/trolley/internal/store"
)

var (
	// ErrUnknownProduct mirrors the catalog error so callers can match on
	// one sentinel regardless of which layer rejected the name.
	ErrUnknownProduct = store.ErrUnknownProduct

	// ErrOutOfStock is returned when a reserve asks for more units than
	// remain on the shelf.
	ErrOutOfStock = errors.New("not enough stock")
)

type item struct {
	price float64
	stock int
}

// Ledger tracks remaining stock per product. Prices are fixed at
// construction; only stock moves.
type Ledger struct {
	mu    sync.Mutex
	items map[string]*item
}

// NewLedger seeds the ledger with the opening stock of every catalog product.
func NewLedger(catalog *store.Catalog) *Ledger {
	l := &Ledger{items: make(map[string]*item)}
	for _, p := range catalog.Products() {
		l.items[p.Name] = &item{price: p.Price, stock: p.Stock}
	}
	return l
}

// Reserve atomically checks stock, decrements it by qty and returns the
// line total (unit price × qty). On ErrUnknownProduct or ErrOutOfStock the
// ledger is left unchanged. Stock never goes negative: the bound is checked
// before the mutation, never repaired after.
func (l *Ledger) Reserve(name string, qty int) (float64, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("reserve %q: quantity must be positive", name)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.items[name]
	if !ok {
		return 0, fmt.Errorf("reserve %q: %w", name, ErrUnknownProduct)
	}
	if qty > it.stock {
		return 0, fmt.Errorf("reserve %d of %q with %d left: %w", qty, name, it.stock, ErrOutOfStock)
	}

	it.stock -= qty
	return it.price * float64(qty), nil
}

// Release returns qty units of a product to the shelf. It is the
// compensation for Reserve when a later step of an operation fails.
// Releasing an unknown product is a no-op.
func (l *Ledger) Release(name string, qty int) {
	if qty <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if it, ok := l.items[name]; ok {
		it.stock += qty
	}
}

// Stock reports the remaining units of a product.
func (l *Ledger) Stock(name string) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, ok := l.items[name]
	if !ok {
		return 0, fmt.Errorf("stock %q: %w", name, ErrUnknownProduct)
	}
	return it.stock, nil
}
