package session

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/arcticwolves/clubkit/core/logger"
	"github.com/arcticwolves/clubkit/core/tokenstore"
)

// LoginResult is the normalized outcome of a login or second-factor call.
// Token is empty when the backend did not issue a new one.
type LoginResult struct {
	User        *User
	Token       string
	Requires2FA bool
}

// AuthAPI is the backend contract the manager drives. The core/club package
// provides the production implementation.
type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (LoginResult, error)
	VerifySecondFactor(ctx context.Context, userID int64, code string) (LoginResult, error)
	CurrentUser(ctx context.Context) (User, error)
	Logout(ctx context.Context) error
}

// Manager owns the single session state instance and sequences backend
// calls, token persistence, and reducer dispatch. All mutation goes through
// dispatch; consumers read snapshots via State.
type Manager struct {
	api    AuthAPI
	tokens tokenstore.Store
	log    *slog.Logger

	mu       sync.RWMutex
	state    State
	onChange func(State)

	// busy rejects overlapping operations; the presentation layer is
	// expected to serialize calls, but nothing enforces that convention.
	busy atomic.Bool
}

// Option configures the manager.
type Option func(*Manager)

// WithLogger sets the logger for session events.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// WithOnChange registers a callback invoked with a snapshot after every
// state transition. The callback runs synchronously on the dispatching
// goroutine and must not call back into the manager's mutating operations.
func WithOnChange(fn func(State)) Option {
	return func(m *Manager) {
		m.onChange = fn
	}
}

// New creates a session manager in the restoring state.
func New(api AuthAPI, tokens tokenstore.Store, opts ...Option) (*Manager, error) {
	if api == nil {
		return nil, ErrMissingAuthAPI
	}
	if tokens == nil {
		return nil, ErrMissingTokenStore
	}

	m := &Manager{
		api:    api,
		tokens: tokens,
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		state:  Initial(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// State returns a snapshot of the current session state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Restore validates any stored token against the backend and settles the
// session into SignedIn or SignedOut. Invoked once at startup. Failures are
// swallowed and resolve to SignedOut: restore is best-effort and must never
// leave the session ambiguous. The only returned error is
// ErrOperationInFlight when another operation is outstanding.
func (m *Manager) Restore(ctx context.Context) error {
	if !m.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer m.busy.Store(false)

	if _, err := m.tokens.Get(ctx); err != nil {
		m.log.DebugContext(ctx, "no stored token to restore",
			logger.Component("session"),
			logger.Event("restore"),
		)
		m.dispatch(RestoreToken{})
		return nil
	}

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		// Expired token or unreachable backend both resolve to signed out.
		m.log.DebugContext(ctx, "stored token rejected",
			logger.Component("session"),
			logger.Event("restore"),
			logger.Error(err),
		)
		m.dispatch(RestoreToken{})
		return nil
	}

	m.log.InfoContext(ctx, "session restored",
		logger.Component("session"),
		logger.Event("restore"),
		logger.UserID(user.ID),
	)
	m.dispatch(RestoreToken{User: &user})
	return nil
}

// SignIn authenticates with email and password. When the backend requires a
// second factor the session moves to AwaitingSecondFactor and the caller is
// expected to follow up with Verify2FA. Backend errors are surfaced to the
// caller for display; the busy flag is always cleared before returning an
// error.
func (m *Manager) SignIn(ctx context.Context, creds Credentials) error {
	if !m.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer m.busy.Store(false)

	m.dispatch(SetLoading{IsLoading: true})

	result, err := m.api.Login(ctx, creds)
	if err != nil {
		m.dispatch(SetLoading{IsLoading: false})
		return err
	}

	switch {
	case result.Requires2FA && result.User != nil:
		m.log.InfoContext(ctx, "second factor required",
			logger.Component("session"),
			logger.Event("sign_in"),
			logger.UserID(result.User.ID),
		)
		m.dispatch(Require2FA{UserID: result.User.ID})
		return nil
	case result.User != nil:
		return m.establish(ctx, result, "sign_in")
	default:
		m.dispatch(SetLoading{IsLoading: false})
		return ErrInvalidLoginResponse
	}
}

// Verify2FA confirms the one-time code for the pending sign-in. It fails
// synchronously with ErrNoPendingSecondFactor when no sign-in is awaiting a
// code.
func (m *Manager) Verify2FA(ctx context.Context, code string) error {
	if !m.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer m.busy.Store(false)

	state := m.State()
	if state.PendingUserID == nil {
		return ErrNoPendingSecondFactor
	}
	pendingUserID := *state.PendingUserID

	m.dispatch(SetLoading{IsLoading: true})

	result, err := m.api.VerifySecondFactor(ctx, pendingUserID, code)
	if err != nil {
		m.dispatch(SetLoading{IsLoading: false})
		return err
	}
	if result.User == nil {
		m.dispatch(SetLoading{IsLoading: false})
		return ErrInvalidSecondFactorResponse
	}

	return m.establish(ctx, result, "verify_2fa")
}

// SignOut logs out on the backend best-effort, erases the stored token
// unconditionally, and resets the session. It never fails from the caller's
// perspective; the only returned error is ErrOperationInFlight.
func (m *Manager) SignOut(ctx context.Context) error {
	if !m.busy.CompareAndSwap(false, true) {
		return ErrOperationInFlight
	}
	defer m.busy.Store(false)

	if err := m.api.Logout(ctx); err != nil {
		m.log.DebugContext(ctx, "backend logout failed",
			logger.Component("session"),
			logger.Event("sign_out"),
			logger.Error(err),
		)
	}

	if err := m.tokens.Delete(ctx); err != nil {
		m.log.WarnContext(ctx, "failed to erase stored token",
			logger.Component("session"),
			logger.Event("sign_out"),
			logger.Error(err),
		)
	}

	m.dispatch(SignOut{})
	return nil
}

// establish persists the token (when one was issued) and dispatches the
// sign-in. The store write happens before the dispatch so observers never
// see SignedIn without a durably stored token.
func (m *Manager) establish(ctx context.Context, result LoginResult, event string) error {
	if result.Token != "" {
		if err := m.tokens.Set(ctx, result.Token); err != nil {
			m.dispatch(SetLoading{IsLoading: false})
			return err
		}
	}

	m.log.InfoContext(ctx, "signed in",
		logger.Component("session"),
		logger.Event(event),
		logger.UserID(result.User.ID),
	)
	m.dispatch(SignIn{User: *result.User})
	return nil
}

func (m *Manager) dispatch(a Action) {
	m.mu.Lock()
	m.state = Reduce(m.state, a)
	snapshot := m.state
	notify := m.onChange
	m.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}
