package club

import "errors"

var (
	// ErrLoginFailed is the fallback when the backend rejects a login
	// without supplying a message.
	ErrLoginFailed = errors.New("login failed")
	// ErrVerificationFailed is the fallback when the backend rejects a
	// second-factor code without supplying a message.
	ErrVerificationFailed = errors.New("2FA verification failed")
	// ErrFetchUser is the fallback when the current-user endpoint fails
	// without supplying a message.
	ErrFetchUser = errors.New("failed to fetch user")
	// ErrRequestRejected is the fallback when a resource endpoint reports
	// success=false without supplying a message.
	ErrRequestRejected = errors.New("request rejected by backend")
)

// rejection turns an envelope error message into an error, falling back to
// the given sentinel when the backend supplied none.
func rejection(message string, fallback error) error {
	if message != "" {
		return errors.New(message)
	}
	return fallback
}
