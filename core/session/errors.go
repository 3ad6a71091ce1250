package session

import "errors"

var (
	// ErrMissingAuthAPI is returned when the manager is created without a backend API.
	ErrMissingAuthAPI = errors.New("auth API is required")
	// ErrMissingTokenStore is returned when the manager is created without a token store.
	ErrMissingTokenStore = errors.New("token store is required")
	// ErrOperationInFlight is returned when a session operation is started
	// while another one is still outstanding.
	ErrOperationInFlight = errors.New("another session operation is in flight")
	// ErrNoPendingSecondFactor is returned by Verify2FA when no sign-in is
	// awaiting a second factor.
	ErrNoPendingSecondFactor = errors.New("no pending 2FA verification")
	// ErrInvalidLoginResponse is returned when the backend reports success
	// but the login payload lacks a user.
	ErrInvalidLoginResponse = errors.New("invalid login response")
	// ErrInvalidSecondFactorResponse is returned when the backend reports
	// success but the verification payload lacks a user.
	ErrInvalidSecondFactorResponse = errors.New("invalid 2FA response")
)
