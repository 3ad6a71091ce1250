package club

import (
	"context"
	"net/http"
	"strings"

	"github.com/arcticwolves/clubkit/core/apiclient"
	"github.com/arcticwolves/clubkit/core/roles"
	"github.com/arcticwolves/clubkit/core/session"
)

// AuthService implements session.AuthAPI against the backend's auth
// endpoints. The backend returns login responses in a flat shape
// ({success, api_key, user, ...}) rather than the data envelope used by
// resource endpoints, so this service decodes them directly.
type AuthService struct {
	api *apiclient.Client
}

// NewAuthService creates the auth service.
func NewAuthService(api *apiclient.Client) *AuthService {
	return &AuthService{api: api}
}

// backendUser is the raw user object as the backend serializes it. Older
// endpoints return a single "name" field instead of first/last.
type backendUser struct {
	ID               int64  `json:"id"`
	Email            string `json:"email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	TwoFactorEnabled bool   `json:"is2FAEnabled"`
}

// toUser maps the backend user shape to the SDK identity record.
func (u backendUser) toUser() session.User {
	full := u.Name
	if u.FirstName != "" || u.LastName != "" {
		full = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	first, last := splitName(full)

	role := roles.Role(u.Role)
	if role == "" {
		role = roles.RoleAthlete
	}

	return session.User{
		ID:               u.ID,
		Email:            u.Email,
		FirstName:        first,
		LastName:         last,
		Role:             role,
		Roles:            []roles.Role{role},
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}

// splitName splits a "First Last" name string into first and last parts.
func splitName(name string) (string, string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// Login authenticates with email and password. A result with Requires2FA
// set means the caller must follow up with VerifySecondFactor; a result
// with a token means the session is fully established.
func (s *AuthService) Login(ctx context.Context, creds session.Credentials) (session.LoginResult, error) {
	var res struct {
		Success     bool         `json:"success"`
		APIKey      string       `json:"api_key"`
		User        *backendUser `json:"user"`
		Requires2FA bool         `json:"requires2FA"`
		Error       string       `json:"error"`
	}
	if err := s.api.Do(ctx, http.MethodPost, "/auth/login", creds, &res); err != nil {
		return session.LoginResult{}, err
	}
	if !res.Success {
		return session.LoginResult{}, rejection(res.Error, ErrLoginFailed)
	}

	if res.User == nil {
		// Success without a user payload; the session manager rejects it.
		return session.LoginResult{}, nil
	}

	user := res.User.toUser()
	if res.Requires2FA {
		return session.LoginResult{User: &user, Requires2FA: true}, nil
	}
	return session.LoginResult{User: &user, Token: res.APIKey}, nil
}

// VerifySecondFactor confirms the one-time code for the pending user.
func (s *AuthService) VerifySecondFactor(ctx context.Context, userID int64, code string) (session.LoginResult, error) {
	body := struct {
		UserID int64  `json:"userId"`
		Code   string `json:"code"`
	}{UserID: userID, Code: code}

	var res struct {
		Success bool         `json:"success"`
		Valid   bool         `json:"valid"`
		APIKey  string       `json:"api_key"`
		User    *backendUser `json:"user"`
		Error   string       `json:"error"`
	}
	if err := s.api.Do(ctx, http.MethodPost, "/auth/validate", body, &res); err != nil {
		return session.LoginResult{}, err
	}
	if !res.Success {
		return session.LoginResult{}, rejection(res.Error, ErrVerificationFailed)
	}

	if res.User == nil {
		return session.LoginResult{}, nil
	}

	user := res.User.toUser()
	return session.LoginResult{User: &user, Token: res.APIKey}, nil
}

// CurrentUser fetches the identity behind the stored token.
func (s *AuthService) CurrentUser(ctx context.Context) (session.User, error) {
	res, err := apiclient.Get[backendUser](ctx, s.api, "/users/me")
	if err != nil {
		return session.User{}, err
	}
	if !res.Success || res.Data.ID == 0 {
		return session.User{}, rejection(res.Error, ErrFetchUser)
	}
	return res.Data.toUser(), nil
}

// Logout invalidates the token on the backend. Callers treat failures as
// best-effort; the session manager erases the local token regardless.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.api.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}
