// Package session holds the client-local authentication state machine and
// the operations that drive it.
//
// # State Machine
//
// The session has four logical states derived from its attributes:
//
//   - Restoring: initial state while the stored token is being validated
//   - SignedOut: no authenticated user
//   - AwaitingSecondFactor: password accepted, one-time code outstanding
//   - SignedIn: authenticated user present
//
// An orthogonal busy flag (IsLoading) overlays any state while an operation
// is outstanding. All mutation is funneled through Reduce, a pure function
// of (state, action); there are no ad hoc field writes.
//
// # Manager
//
// Manager sequences backend calls, token persistence, and reducer dispatch.
// It exposes four operations:
//
//	mgr, err := session.New(authAPI, store)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	mgr.Restore(ctx)                      // once at startup, never fails
//	err = mgr.SignIn(ctx, credentials)    // surfaces backend errors
//	err = mgr.Verify2FA(ctx, code)        // surfaces backend errors
//	mgr.SignOut(ctx)                      // best-effort, never fails
//
// Within one operation the token store write always happens before the
// corresponding state dispatch, so observers never see a signed-in state
// before the token is durably stored. Overlapping mutating operations are
// rejected with ErrOperationInFlight rather than left to race.
package session
