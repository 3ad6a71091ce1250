package tokenstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcticwolves/clubkit/core/tokenstore"
)

// fakeRedis covers the three commands the store issues. The embedded
// interface satisfies the rest of redis.Cmdable.
type fakeRedis struct {
	redis.Cmdable

	data    map[string]string
	lastTTL time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string]string)}
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	val, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(val, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = value.(string)
	f.lastTTL = expiration
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.data[key]; ok {
			delete(f.data, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedis_GetMissing(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewRedis(newFakeRedis())

	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)
}

func TestRedis_SetGetDelete(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewRedis(newFakeRedis())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "wolfpack-key"))

	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wolfpack-key", token)

	require.NoError(t, store.Delete(ctx))

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, tokenstore.ErrNotFound)
}

func TestRedis_SetEmptyToken(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewRedis(newFakeRedis())
	assert.ErrorIs(t, store.Set(context.Background(), ""), tokenstore.ErrEmptyToken)
}

func TestRedis_KeyAndTTLOptions(t *testing.T) {
	t.Parallel()

	fake := newFakeRedis()
	store := tokenstore.NewRedis(fake,
		tokenstore.WithRedisKey("kiosk:token"),
		tokenstore.WithRedisTTL(time.Hour),
	)

	require.NoError(t, store.Set(context.Background(), "wolfpack-key"))
	assert.Equal(t, "wolfpack-key", fake.data["kiosk:token"])
	assert.Equal(t, time.Hour, fake.lastTTL)
}

func TestRedis_DeleteIdempotent(t *testing.T) {
	t.Parallel()

	store := tokenstore.NewRedis(newFakeRedis())
	require.NoError(t, store.Delete(context.Background()))
}
