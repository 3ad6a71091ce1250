package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Connect creates a Redis client from the config and verifies connectivity
// with a ping before returning it. Transient failures are retried up to
// RetryAttempts times with RetryInterval between attempts.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrParseConnectionURL, err)
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	client := redis.NewClient(opts)

	attempts := cfg.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var pingErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				_ = client.Close()
				return nil, errors.Join(ErrNotReady, ctx.Err())
			case <-time.After(cfg.RetryInterval):
			}
		}
		if pingErr = client.Ping(ctx).Err(); pingErr == nil {
			return client, nil
		}
	}

	_ = client.Close()
	return nil, errors.Join(ErrNotReady, pingErr)
}

// Healthcheck returns a probe function that pings Redis. Suitable for
// readiness endpoints.
func Healthcheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
