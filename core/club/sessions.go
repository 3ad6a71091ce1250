package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// SessionsService accesses the training-session endpoints.
type SessionsService struct {
	api *apiclient.Client
}

// List returns all sessions visible to the authenticated user.
func (s *SessionsService) List(ctx context.Context) ([]Session, error) {
	return unwrapList(apiclient.Get[[]Session](ctx, s.api, "/sessions"))
}

// Get returns a single session by id.
func (s *SessionsService) Get(ctx context.Context, id int64) (Session, error) {
	return unwrap(apiclient.Get[Session](ctx, s.api, fmt.Sprintf("/sessions/%d", id)))
}

// Create schedules a new session.
func (s *SessionsService) Create(ctx context.Context, sess Session) (Session, error) {
	return unwrap(apiclient.Post[Session](ctx, s.api, "/sessions", sess))
}

// Update modifies an existing session.
func (s *SessionsService) Update(ctx context.Context, id int64, sess Session) (Session, error) {
	return unwrap(apiclient.Put[Session](ctx, s.api, fmt.Sprintf("/sessions/%d", id), sess))
}

// Delete removes a session.
func (s *SessionsService) Delete(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Delete[any](ctx, s.api, fmt.Sprintf("/sessions/%d", id)))
}

// Book reserves a spot in the session for the authenticated user.
func (s *SessionsService) Book(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Post[any](ctx, s.api, fmt.Sprintf("/sessions/%d/book", id), nil))
}

// Cancel releases the authenticated user's booking.
func (s *SessionsService) Cancel(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Post[any](ctx, s.api, fmt.Sprintf("/sessions/%d/cancel", id), nil))
}

// unwrap converts an envelope into its payload, translating success=false
// into an error carrying the backend message.
func unwrap[T any](res apiclient.Response[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if !res.Success {
		return zero, rejection(res.Error, ErrRequestRejected)
	}
	return res.Data, nil
}

// unwrapList is unwrap for slice payloads, normalizing a missing data field
// to an empty slice.
func unwrapList[T any](res apiclient.Response[[]T], err error) ([]T, error) {
	items, err := unwrap(res, err)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// unwrapEmpty is unwrap for endpoints whose payload carries no information.
func unwrapEmpty[T any](res apiclient.Response[T], err error) error {
	_, err = unwrap(res, err)
	return err
}
