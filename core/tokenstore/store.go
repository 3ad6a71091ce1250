package tokenstore

import "context"

// Store defines the single-slot persistence interface for the bearer token.
// Implementations must handle concurrent access safely.
type Store interface {
	// Get returns the stored token or ErrNotFound when the slot is empty.
	Get(ctx context.Context) (string, error)
	// Set overwrites the slot with the given token.
	Set(ctx context.Context, token string) error
	// Delete empties the slot. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error
}
