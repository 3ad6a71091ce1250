// Package tokenstore persists the single opaque bearer token issued by the
// Arctic Wolves backend after authentication.
//
// The store is a one-slot cell: Set overwrites any previous token, Get
// returns ErrNotFound when the slot is empty, and Delete is idempotent.
// The session manager is the only writer; the API client reads the slot
// before every request to attach the Authorization header.
//
// # Backends
//
// Three implementations are provided:
//
//   - Memory: mutex-guarded in-process storage for tests and short-lived
//     processes.
//   - File: AES-256-GCM encrypted file storage for desktop and CLI clients.
//     The encryption key is derived from an application secret via HKDF.
//   - Redis: shared storage for kiosk and front-desk deployments where
//     several processes serve the same club account.
//
// # Usage
//
//	store, err := tokenstore.NewFile("/var/lib/clubkit/token", secret)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := store.Set(ctx, apiKey); err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := store.Get(ctx)
//	if errors.Is(err, tokenstore.ErrNotFound) {
//		// not signed in
//	}
package tokenstore
