package tokenstore

import "errors"

var (
	// ErrNotFound is returned by Get when no token is stored.
	ErrNotFound = errors.New("token not found")
	// ErrInvalidSecret is returned when the encryption secret is too short.
	ErrInvalidSecret = errors.New("secret must be at least 32 bytes")
	// ErrEmptyToken is returned by Set when the token is empty.
	ErrEmptyToken = errors.New("token must not be empty")
	// ErrDecryptToken is returned when a stored token cannot be decrypted,
	// typically after a secret rotation or file corruption.
	ErrDecryptToken = errors.New("failed to decrypt stored token")
	// ErrStoreToken is returned when persisting a token fails.
	ErrStoreToken = errors.New("failed to store token")
)
