package tokenstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultRedisKey namespaces the token slot in a shared Redis instance.
const defaultRedisKey = "clubkit:auth_token"

// Redis stores the token in a Redis key, letting several processes share one
// authenticated club account (point-of-sale terminals, front-desk kiosks).
type Redis struct {
	client redis.Cmdable
	key    string
	ttl    time.Duration
}

// RedisOption configures the Redis store.
type RedisOption func(*Redis)

// WithRedisKey overrides the Redis key holding the token.
func WithRedisKey(key string) RedisOption {
	return func(r *Redis) {
		if key != "" {
			r.key = key
		}
	}
}

// WithRedisTTL sets an expiration on the stored token. Zero (the default)
// keeps the token until it is deleted.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		if ttl > 0 {
			r.ttl = ttl
		}
	}
}

// NewRedis creates a Redis-backed token store using the given client.
func NewRedis(client redis.Cmdable, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		key:    defaultRedisKey,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Redis) Get(ctx context.Context) (string, error) {
	token, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get token from redis: %w", err)
	}
	return token, nil
}

func (r *Redis) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := r.client.Set(ctx, r.key, token, r.ttl).Err(); err != nil {
		return errors.Join(ErrStoreToken, err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key).Err(); err != nil {
		return fmt.Errorf("delete token from redis: %w", err)
	}
	return nil
}
