package metadata

import (
	"context"
	"testing"

	"github.com/nicograef/jotti/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repositories(t *testing.T) map[string]Repository {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Repository{
		"sqlite": NewSQLiteRepository(db),
		"memory": NewMemoryRepository(),
	}
}

func TestRepository_PutThenGet(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Put(ctx, "JOTTI_TOKEN", "a.b.c"))

			v, ok, err := r.Get(ctx, "JOTTI_TOKEN")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "a.b.c", v)
		})
	}
}

func TestRepository_GetMissing(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := r.Get(context.Background(), "absent")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestRepository_PutOverwrites(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Put(ctx, "k", "old"))
			require.NoError(t, r.Put(ctx, "k", "new"))

			v, _, err := r.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "new", v)
		})
	}
}

func TestRepository_DeleteIsIdempotent(t *testing.T) {
	for name, r := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, r.Put(ctx, "k", "v"))
			require.NoError(t, r.Delete(ctx, "k"))
			require.NoError(t, r.Delete(ctx, "k"))

			_, ok, err := r.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestSQLiteRepository_ClosedDB(t *testing.T) {
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	r := NewSQLiteRepository(db)
	require.NoError(t, db.Close())

	_, _, err = r.Get(context.Background(), "k")
	require.Error(t, err)
	require.Error(t, r.Put(context.Background(), "k", "v"))
	require.Error(t, r.Delete(context.Background(), "k"))
}
