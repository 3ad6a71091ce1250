package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when the connection URL is empty.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")
	// ErrParseConnectionURL is returned when the connection URL cannot be parsed.
	ErrParseConnectionURL = errors.New("failed to parse redis connection string")
	// ErrNotReady is returned when redis does not become reachable within
	// the configured retry budget.
	ErrNotReady = errors.New("redis did not become ready within the given time period")
	// ErrHealthcheckFailed is returned by the health check probe on ping failure.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")
)
