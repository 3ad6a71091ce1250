package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/arcticwolves/clubkit/integration/database/redis"
)

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{})
	assert.ErrorIs(t, err, redis.ErrEmptyConnectionURL)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL: "http://not-a-redis-url",
	})
	assert.ErrorIs(t, err, redis.ErrParseConnectionURL)
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	// Reserved TEST-NET address: nothing listens there.
	_, err := redis.Connect(context.Background(), redis.Config{
		ConnectionURL:  "redis://192.0.2.1:6379/0",
		RetryAttempts:  1,
		ConnectTimeout: time.Second,
	})
	assert.ErrorIs(t, err, redis.ErrNotReady)
}
