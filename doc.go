// Package clubkit is the Go client SDK for the Arctic Wolves club backend.
//
// The SDK is organized by concern:
//
//   - core/session: authentication state machine and session manager
//   - core/roles: role-based section access resolution
//   - core/apiclient: authenticated JSON HTTP client with typed envelopes
//   - core/club: typed services for the club REST API
//   - core/tokenstore: pluggable API token persistence (memory, file, redis)
//   - core/config: environment-based configuration loading
//   - core/logger: slog-based structured logging helpers
//   - integration/database/redis: redis connection bootstrap for shared deployments
//   - pkg/greeting: time-of-day salutations for dashboard headers
//
// A typical client wires the pieces together like this:
//
//	store, _ := tokenstore.NewFile(path, secret)
//	api, _ := apiclient.New(baseURL, apiclient.WithTokenSource(store))
//	svc := club.New(api)
//	mgr, _ := session.New(svc.Auth, store)
//
//	if err := mgr.Restore(ctx); err != nil {
//		// only ErrOperationInFlight; a failed restore lands on signed-out
//	}
package clubkit
