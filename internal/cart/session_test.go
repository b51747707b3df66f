package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragadeesh891/trolley/internal/inventory"
	"github.com/pragadeesh891/trolley/internal/nav"
	"github.com/pragadeesh891/trolley/internal/store"
)

func newTestSession(t *testing.T) (*Session, *inventory.Ledger) {
	t.Helper()
	catalog := store.DefaultCatalog()
	ledger := inventory.NewLedger(catalog)
	return NewSession("test-session", catalog, ledger), ledger
}

func TestAddToCartMilkScenario(t *testing.T) {
	s, ledger := newTestSession(t)

	// Entrance (0,0), milk at (1,1), price 50, stock 60.
	n, err := s.AddToCart("milk", 2)
	require.NoError(t, err)

	assert.Len(t, n.Route, 2)
	assert.Equal(t, 100.0, n.LineTotal)
	assert.Equal(t, 100.0, n.RunningTotal)
	assert.Equal(t, store.Cell{Row: 1, Col: 1}, s.Position())

	stock, err := ledger.Stock("milk")
	require.NoError(t, err)
	assert.Equal(t, 58, stock)

	assert.Equal(t, "Added 2 milk. Navigate right → down. Subtotal rupees 100. Current total rupees 100.", n.Message)
}

func TestAddToCartSecondLegRoutesFromNewPosition(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.AddToCart("milk", 2)
	require.NoError(t, err)

	// From (1,1) to juice at (0,2): Manhattan distance 2.
	n, err := s.AddToCart("juice", 1)
	require.NoError(t, err)

	assert.Len(t, n.Route, 2)
	assert.Equal(t, 80.0, n.LineTotal)
	assert.Equal(t, 180.0, n.RunningTotal)
	assert.Equal(t, store.Cell{Row: 0, Col: 2}, s.Position())
}

func TestAddToCartUnknownProductLeavesSessionUnchanged(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.AddToCart("nonexistent", 1)
	require.ErrorIs(t, err, store.ErrUnknownProduct)

	assert.Empty(t, s.Entries())
	assert.Zero(t, s.Total())
	assert.Equal(t, store.DefaultEntrance, s.Position())
}

func TestAddToCartOutOfStockLeavesSessionUnchanged(t *testing.T) {
	s, ledger := newTestSession(t)

	_, err := s.AddToCart("milk", 1000)
	require.ErrorIs(t, err, inventory.ErrOutOfStock)

	assert.Empty(t, s.Entries())
	assert.Zero(t, s.Total())
	assert.Equal(t, store.DefaultEntrance, s.Position())

	stock, _ := ledger.Stock("milk")
	assert.Equal(t, 60, stock)
}

func TestAddToCartSameCellHasEmptyRoute(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.AddToCart("milk", 1)
	require.NoError(t, err)

	n, err := s.AddToCart("milk", 1)
	require.NoError(t, err)
	assert.Empty(t, n.Route)
	assert.Contains(t, n.Message, "you are already there")
}

func TestEntriesAreAppendOnlyAndCopied(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.AddToCart("milk", 2)
	require.NoError(t, err)
	_, err = s.AddToCart("juice", 1)
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Product: "milk", Quantity: 2, LineTotal: 100}, entries[0])
	assert.Equal(t, Entry{Product: "juice", Quantity: 1, LineTotal: 80}, entries[1])

	// Mutating the copy must not touch the session.
	entries[0].Quantity = 99
	assert.Equal(t, 2, s.Entries()[0].Quantity)
}

func TestBill(t *testing.T) {
	s, _ := newTestSession(t)

	_, err := s.AddToCart("milk", 2)
	require.NoError(t, err)

	lines := s.Bill()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "milk")
	assert.Contains(t, lines[0], "2 pcs")
	assert.Equal(t, "TOTAL: ₹100", lines[1])
}

func TestNarrationRouteMatchesRouter(t *testing.T) {
	s, _ := newTestSession(t)

	n, err := s.AddToCart("bakery", 1)
	require.NoError(t, err)

	want := nav.ShortestPath(store.DefaultGrid, store.DefaultEntrance, store.Cell{Row: 2, Col: 2})
	assert.Equal(t, want, n.Route)
}
