package apiclient

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingBaseURL is returned when the client is created without a base URL.
	ErrMissingBaseURL = errors.New("base URL is required")
	// ErrInvalidBaseURL is returned when the base URL cannot be parsed.
	ErrInvalidBaseURL = errors.New("invalid base URL")
	// ErrRequestFailed wraps transport-level failures (DNS, connect, timeout)
	// where no HTTP response was received.
	ErrRequestFailed = errors.New("request failed")
	// ErrDecodeResponse is returned when a 2xx response body cannot be decoded.
	ErrDecodeResponse = errors.New("failed to decode response")
	// ErrEncodeRequest is returned when the request body cannot be encoded.
	ErrEncodeRequest = errors.New("failed to encode request body")
)

// Error is a backend-rejected request: the server responded with a non-2xx
// status. Message carries the error or message field from the response body,
// or the HTTP status text when the body was not parseable.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}
