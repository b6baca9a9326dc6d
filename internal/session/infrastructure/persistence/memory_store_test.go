package persistence

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/vocalis/internal/session/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SetGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", domain.KeyOutgoingIntent, `{"name":"BuyIntent"}`))

	value, err := store.Get(ctx, "sess-1", domain.KeyOutgoingIntent)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"BuyIntent"}`, value)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "sess-1", "nope")
	assert.ErrorIs(t, err, domain.ErrAttributeNotFound)
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", "k", "v1"))
	require.NoError(t, store.Set(ctx, "sess-2", "k", "v2"))

	v1, err := store.Get(ctx, "sess-1", "k")
	require.NoError(t, err)
	v2, err := store.Get(ctx, "sess-2", "k")
	require.NoError(t, err)
	assert.Equal(t, "v1", v1)
	assert.Equal(t, "v2", v2)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sess-1", "k", "v"))
	require.NoError(t, store.Delete(ctx, "sess-1", "k"))

	_, err := store.Get(ctx, "sess-1", "k")
	assert.ErrorIs(t, err, domain.ErrAttributeNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "sess-1", "k"))
	assert.NoError(t, store.Delete(ctx, "other", "k"))
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store, err := NewSQLiteStore(t.TempDir() + "/attrs.db")
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "sess-1", domain.KeyOutgoingIntent, `{"name":"RefundIntent"}`))

	value, err := store.Get(ctx, "sess-1", domain.KeyOutgoingIntent)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"RefundIntent"}`, value)

	// Upsert overwrites.
	require.NoError(t, store.Set(ctx, "sess-1", domain.KeyOutgoingIntent, `{"name":"BuyIntent"}`))
	value, err = store.Get(ctx, "sess-1", domain.KeyOutgoingIntent)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"BuyIntent"}`, value)

	require.NoError(t, store.Delete(ctx, "sess-1", domain.KeyOutgoingIntent))
	_, err = store.Get(ctx, "sess-1", domain.KeyOutgoingIntent)
	assert.ErrorIs(t, err, domain.ErrAttributeNotFound)
}
