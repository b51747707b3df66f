package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragadeesh891/trolley/internal/inventory"
	"github.com/pragadeesh891/trolley/internal/store"
)

func newTestRegistry() *Registry {
	catalog := store.DefaultCatalog()
	return NewRegistry(catalog, inventory.NewLedger(catalog), "SC1234")
}

func TestPairAcceptsCodeCaseInsensitively(t *testing.T) {
	r := newTestRegistry()

	p, err := r.Pair("sc1234")
	require.NoError(t, err)
	assert.NotEmpty(t, p.SessionID)
	assert.Equal(t, 1234, p.TrolleyID)
	assert.Equal(t, 94, p.Battery)

	s, err := r.Get(p.SessionID)
	require.NoError(t, err)
	assert.Equal(t, store.DefaultEntrance, s.Position())
}

func TestPairRejectsWrongCode(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Pair("WRONG")
	assert.ErrorIs(t, err, ErrInvalidPairCode)
}

func TestSessionsAreIndependentButShareStock(t *testing.T) {
	r := newTestRegistry()

	p1, err := r.Pair("SC1234")
	require.NoError(t, err)
	p2, err := r.Pair("SC1234")
	require.NoError(t, err)
	require.NotEqual(t, p1.SessionID, p2.SessionID)

	s1, _ := r.Get(p1.SessionID)
	s2, _ := r.Get(p2.SessionID)

	_, err = s1.AddToCart("shampoo", 15) // stock 20
	require.NoError(t, err)

	// The second trolley sees the shared ledger.
	_, err = s2.AddToCart("shampoo", 10)
	assert.ErrorIs(t, err, inventory.ErrOutOfStock)
	assert.Zero(t, s2.Total())
}

func TestEndDestroysSession(t *testing.T) {
	r := newTestRegistry()

	p, err := r.Pair("SC1234")
	require.NoError(t, err)

	r.End(p.SessionID)
	_, err = r.Get(p.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
