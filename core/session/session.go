package session

import "github.com/arcticwolves/clubkit/core/roles"

// User is the identity record established on sign-in or restore. It is
// replaced wholesale, never mutated field by field.
type User struct {
	ID               int64        `json:"id"`
	Email            string       `json:"email"`
	FirstName        string       `json:"firstName"`
	LastName         string       `json:"lastName"`
	Role             roles.Role   `json:"role"`
	Roles            []roles.Role `json:"roles"`
	TwoFactorEnabled bool         `json:"is2FAEnabled"`
}

// Credentials are sent to the login endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Status is the logical state of the session.
type Status int

const (
	// StatusRestoring is the initial state while the stored token is validated.
	StatusRestoring Status = iota
	// StatusSignedOut means no authenticated user is present.
	StatusSignedOut
	// StatusAwaitingSecondFactor means the password was accepted and a
	// one-time code is outstanding.
	StatusAwaitingSecondFactor
	// StatusSignedIn means an authenticated user is present.
	StatusSignedIn
)

func (s Status) String() string {
	switch s {
	case StatusRestoring:
		return "restoring"
	case StatusSignedOut:
		return "signed_out"
	case StatusAwaitingSecondFactor:
		return "awaiting_second_factor"
	case StatusSignedIn:
		return "signed_in"
	default:
		return "unknown"
	}
}

// State is the authentication status of the running client. The zero value
// is a clean signed-out state; Initial returns the restoring state the
// manager starts from.
type State struct {
	User          *User
	IsLoading     bool
	IsSignedIn    bool
	IsRestoring   bool
	Requires2FA   bool
	PendingUserID *int64
}

// Initial returns the state at process start: restoring, no user.
func Initial() State {
	return State{IsLoading: true, IsRestoring: true}
}

// Status derives the logical state. IsLoading is an orthogonal busy flag and
// never changes the logical state; restoring is tracked explicitly so a
// loading signed-out session still reads as signed out.
func (s State) Status() Status {
	switch {
	case s.IsSignedIn:
		return StatusSignedIn
	case s.Requires2FA:
		return StatusAwaitingSecondFactor
	case s.IsRestoring:
		return StatusRestoring
	default:
		return StatusSignedOut
	}
}

// Action is a dispatched session transition. Exactly one transition is
// applied per action.
type Action interface {
	isAction()
}

// RestoreToken finishes the startup restore with the validated user, or nil
// when no valid session could be restored.
type RestoreToken struct {
	User *User
}

// SignIn establishes an authenticated session with the given user.
type SignIn struct {
	User User
}

// Require2FA parks the sign-in until the one-time code for the given user
// is verified.
type Require2FA struct {
	UserID int64
}

// SignOut resets the session to its initial signed-out state.
type SignOut struct{}

// SetLoading overlays the busy flag without changing the logical state.
type SetLoading struct {
	IsLoading bool
}

func (RestoreToken) isAction() {}
func (SignIn) isAction()       {}
func (Require2FA) isAction()   {}
func (SignOut) isAction()      {}
func (SetLoading) isAction()   {}

// Reduce applies a single action to the state and returns the next state.
// It is a pure function: no side effects, no I/O. Unknown actions return
// the state unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case RestoreToken:
		s.User = a.User
		s.IsSignedIn = a.User != nil
		s.IsLoading = false
		s.IsRestoring = false
		return s
	case SignIn:
		user := a.User
		s.User = &user
		s.IsSignedIn = true
		s.IsLoading = false
		s.IsRestoring = false
		s.Requires2FA = false
		s.PendingUserID = nil
		return s
	case Require2FA:
		userID := a.UserID
		s.Requires2FA = true
		s.PendingUserID = &userID
		s.IsLoading = false
		s.IsRestoring = false
		return s
	case SignOut:
		return State{}
	case SetLoading:
		s.IsLoading = a.IsLoading
		return s
	default:
		return s
	}
}
