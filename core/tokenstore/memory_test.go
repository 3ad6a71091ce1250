package tokenstore_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcticwolves/clubkit/core/tokenstore"
)

func TestMemory_GetEmpty(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewMemory()

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)
}

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := tokenstore.NewMemory()

	require.NoError(t, store.Set(ctx, "token-1"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", token)

	// Set overwrites the slot.
	require.NoError(t, store.Set(ctx, "token-2"))
	token, err = store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-2", token)
}

func TestMemory_SetEmpty(t *testing.T) {
	t.Parallel()

	err := tokenstore.NewMemory().Set(context.Background(), "")
	assert.ErrorIs(t, err, tokenstore.ErrEmptyToken)
}

func TestMemory_DeleteIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := tokenstore.NewMemory()

	require.NoError(t, store.Set(ctx, "token"))
	require.NoError(t, store.Delete(ctx))

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)

	// Deleting an empty slot is not an error.
	require.NoError(t, store.Delete(ctx))
}

func TestMemory_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := tokenstore.NewMemory()
	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Set(ctx, "token"), context.Canceled)
	assert.ErrorIs(t, store.Delete(ctx), context.Canceled)
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := tokenstore.NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = store.Set(ctx, "token")
		}()
		go func() {
			defer wg.Done()
			_, _ = store.Get(ctx)
		}()
		go func() {
			defer wg.Done()
			_ = store.Delete(ctx)
		}()
	}
	wg.Wait()
}
