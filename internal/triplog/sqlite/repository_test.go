package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pragadeesh891/trolley/internal/triplog"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "trip.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndQueryBySession(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	events := []*triplog.Event{
		triplog.NewEvent(ctx, "s1", triplog.KindItemAdded, "milk", `{"quantity":2}`),
		triplog.NewEvent(ctx, "s1", triplog.KindCheckoutStarted, "", ""),
		triplog.NewEvent(ctx, "s2", triplog.KindItemAdded, "juice", ""),
		triplog.NewEvent(ctx, "s1", triplog.KindCompleted, "", ""),
	}
	for _, e := range events {
		require.NoError(t, repo.Save(ctx, e))
	}

	got, err := repo.BySession(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, got, 3)

	// Append order is preserved.
	assert.Equal(t, triplog.KindItemAdded, got[0].Kind)
	assert.Equal(t, "milk", got[0].Step)
	assert.Equal(t, `{"quantity":2}`, got[0].Detail)
	assert.Equal(t, triplog.KindCheckoutStarted, got[1].Kind)
	assert.Equal(t, triplog.KindCompleted, got[2].Kind)

	// Timestamps survive the TEXT round trip.
	assert.False(t, got[0].At.IsZero())
}

func TestBySessionUnknownSessionIsEmpty(t *testing.T) {
	repo := openTestRepo(t)

	got, err := repo.BySession(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trip.db")

	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Save(context.Background(),
		triplog.NewEvent(context.Background(), "s1", triplog.KindItemAdded, "milk", "")))
	require.NoError(t, first.Close())

	// Reopening applies the schema again without clobbering rows.
	second, err := Open(path)
	require.NoError(t, err)
	defer second.Close()

	got, err := second.BySession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
