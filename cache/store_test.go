package cache

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryFresh(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := Entry{CachedAt: now.Add(-10 * time.Minute)}

	assert.True(t, entry.Fresh(now, time.Hour))
	assert.False(t, entry.Fresh(now, 10*time.Minute), "age equal to ttl is stale")
	assert.False(t, entry.Fresh(now, time.Minute))
}

func exerciseStore(t *testing.T, store Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "econ_inflation_v1")
	require.NoError(t, err)
	assert.False(t, ok)

	first := Entry{Payload: json.RawMessage(`{"v":1}`), CachedAt: time.UnixMilli(1700000000000).UTC()}
	require.NoError(t, store.Set(ctx, "econ_inflation_v1", first))

	got, ok, err := store.Get(ctx, "econ_inflation_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":1}`, string(got.Payload))
	assert.True(t, first.CachedAt.Equal(got.CachedAt))

	second := Entry{Payload: json.RawMessage(`{"v":2}`), CachedAt: first.CachedAt.Add(time.Hour)}
	require.NoError(t, store.Set(ctx, "econ_inflation_v1", second))

	got, ok, err = store.Get(ctx, "econ_inflation_v1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(got.Payload))
	assert.True(t, second.CachedAt.Equal(got.CachedAt))

	_, ok, err = store.Get(ctx, "econ_gdp_v1")
	require.NoError(t, err)
	assert.False(t, ok, "keys are independent")
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "econ_debt_v1", Entry{Payload: json.RawMessage(`[1]`), CachedAt: time.Now()}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	_, ok, err := reopened.Get(ctx, "econ_debt_v1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewSQLiteStoreRequiresPath(t *testing.T) {
	_, err := NewSQLiteStore("")
	assert.Error(t, err)
}
