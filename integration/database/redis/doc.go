// Package redis provides Redis client initialization and health checking
// for shared-token deployments of the SDK.
//
// It wraps the go-redis client with URL validation, retry logic, and a
// connection-verifying ping, so kiosk and front-desk processes fail fast on
// misconfiguration instead of at first use.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	store := tokenstore.NewRedis(client)
//
// Healthcheck returns a probe function suitable for readiness endpoints:
//
//	check := redis.Healthcheck(client)
//	if err := check(ctx); err != nil {
//		// redis unreachable
//	}
package redis
