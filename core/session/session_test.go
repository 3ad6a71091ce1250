package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcticwolves/clubkit/core/roles"
	"github.com/arcticwolves/clubkit/core/session"
)

func testUser() session.User {
	return session.User{
		ID:        42,
		Email:     "a@x.com",
		FirstName: "Ada",
		LastName:  "Wolfe",
		Role:      roles.RoleCoach,
		Roles:     []roles.Role{roles.RoleCoach},
	}
}

func TestInitial(t *testing.T) {
	t.Parallel()

	state := session.Initial()
	assert.True(t, state.IsLoading)
	assert.True(t, state.IsRestoring)
	assert.Nil(t, state.User)
	assert.False(t, state.IsSignedIn)
	assert.Equal(t, session.StatusRestoring, state.Status())
}

func TestReduce_RestoreToken(t *testing.T) {
	t.Parallel()

	t.Run("with user moves to signed in", func(t *testing.T) {
		t.Parallel()

		user := testUser()
		state := session.Reduce(session.Initial(), session.RestoreToken{User: &user})

		assert.True(t, state.IsSignedIn)
		assert.False(t, state.IsLoading)
		require.NotNil(t, state.User)
		assert.Equal(t, int64(42), state.User.ID)
		assert.Equal(t, session.StatusSignedIn, state.Status())
	})

	t.Run("without user moves to signed out", func(t *testing.T) {
		t.Parallel()

		state := session.Reduce(session.Initial(), session.RestoreToken{})

		assert.False(t, state.IsSignedIn)
		assert.False(t, state.IsLoading)
		assert.False(t, state.IsRestoring)
		assert.Nil(t, state.User)
		assert.Equal(t, session.StatusSignedOut, state.Status())
	})
}

func TestReduce_SignIn(t *testing.T) {
	t.Parallel()

	// Signing in from the awaiting-2FA state clears the pending factor.
	state := session.Reduce(session.Initial(), session.RestoreToken{})
	state = session.Reduce(state, session.Require2FA{UserID: 42})
	state = session.Reduce(state, session.SignIn{User: testUser()})

	assert.True(t, state.IsSignedIn)
	assert.False(t, state.IsLoading)
	assert.False(t, state.Requires2FA)
	assert.Nil(t, state.PendingUserID)
	require.NotNil(t, state.User)
	assert.Equal(t, "a@x.com", state.User.Email)
}

func TestReduce_Require2FA(t *testing.T) {
	t.Parallel()

	state := session.Reduce(session.Initial(), session.RestoreToken{})
	state = session.Reduce(state, session.SetLoading{IsLoading: true})
	state = session.Reduce(state, session.Require2FA{UserID: 42})

	assert.True(t, state.Requires2FA)
	require.NotNil(t, state.PendingUserID)
	assert.Equal(t, int64(42), *state.PendingUserID)
	assert.False(t, state.IsSignedIn)
	assert.False(t, state.IsLoading)
	assert.Equal(t, session.StatusAwaitingSecondFactor, state.Status())
}

func TestReduce_SignOut(t *testing.T) {
	t.Parallel()

	want := session.State{}

	// SIGN_OUT from any prior state yields the exact initial signed-out
	// state with the busy flag cleared.
	priors := map[string]session.State{
		"restoring": session.Initial(),
		"signed in": session.Reduce(session.Initial(), session.SignIn{User: testUser()}),
		"awaiting 2fa": session.Reduce(session.Initial(),
			session.Require2FA{UserID: 42}),
		"loading": session.Reduce(session.Initial(), session.SetLoading{IsLoading: true}),
	}

	for name, prior := range priors {
		prior := prior
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := session.Reduce(prior, session.SignOut{})
			assert.Equal(t, want, got)
			assert.Equal(t, session.StatusSignedOut, got.Status())
		})
	}
}

func TestReduce_SetLoading(t *testing.T) {
	t.Parallel()

	user := testUser()
	signedIn := session.Reduce(session.Initial(), session.RestoreToken{User: &user})

	busy := session.Reduce(signedIn, session.SetLoading{IsLoading: true})
	assert.True(t, busy.IsLoading)
	assert.Equal(t, session.StatusSignedIn, busy.Status(), "busy flag must not change the logical state")

	idle := session.Reduce(busy, session.SetLoading{IsLoading: false})
	assert.Equal(t, signedIn, idle)
}

func TestReduce_SetLoadingWhileSignedOut(t *testing.T) {
	t.Parallel()

	// A sign-in attempt sets the busy flag from the signed-out state. The
	// session must still read as signed out, not regress to restoring.
	signedOut := session.Reduce(session.Initial(), session.RestoreToken{})
	busy := session.Reduce(signedOut, session.SetLoading{IsLoading: true})

	assert.True(t, busy.IsLoading)
	assert.Equal(t, session.StatusSignedOut, busy.Status())
}

func TestReduce_Pure(t *testing.T) {
	t.Parallel()

	before := session.Initial()
	_ = session.Reduce(before, session.SignIn{User: testUser()})
	assert.Equal(t, session.Initial(), before, "Reduce must not mutate its input")
}

// TestReduce_Invariants drives the reducer through every action from a set
// of reachable states and checks the state invariants hold throughout.
func TestReduce_Invariants(t *testing.T) {
	t.Parallel()

	user := testUser()
	actions := []session.Action{
		session.RestoreToken{},
		session.RestoreToken{User: &user},
		session.SignIn{User: user},
		session.Require2FA{UserID: 42},
		session.SignOut{},
		session.SetLoading{IsLoading: true},
		session.SetLoading{IsLoading: false},
	}

	states := []session.State{session.Initial()}
	for depth := 0; depth < 3; depth++ {
		var next []session.State
		for _, s := range states {
			for _, a := range actions {
				got := session.Reduce(s, a)
				if got.IsSignedIn {
					require.NotNil(t, got.User, "signed in implies a user is present")
				}
				if got.Requires2FA {
					require.NotNil(t, got.PendingUserID, "awaiting 2FA implies a pending user id")
					require.False(t, got.IsSignedIn, "awaiting 2FA implies not signed in")
				}
				next = append(next, got)
			}
		}
		states = next
	}
}
