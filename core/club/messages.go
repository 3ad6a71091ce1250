package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// MessagesService accesses the direct-message endpoints.
type MessagesService struct {
	api *apiclient.Client
}

func (s *MessagesService) List(ctx context.Context) ([]Message, error) {
	return unwrapList(apiclient.Get[[]Message](ctx, s.api, "/messages"))
}

func (s *MessagesService) Get(ctx context.Context, id int64) (Message, error) {
	return unwrap(apiclient.Get[Message](ctx, s.api, fmt.Sprintf("/messages/%d", id)))
}

func (s *MessagesService) Send(ctx context.Context, msg Message) (Message, error) {
	return unwrap(apiclient.Post[Message](ctx, s.api, "/messages", msg))
}

func (s *MessagesService) MarkRead(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Put[any](ctx, s.api, fmt.Sprintf("/messages/%d/read", id), nil))
}

// NotificationsService accesses the notification endpoints.
type NotificationsService struct {
	api *apiclient.Client
}

func (s *NotificationsService) List(ctx context.Context) ([]Notification, error) {
	return unwrapList(apiclient.Get[[]Notification](ctx, s.api, "/notifications"))
}

func (s *NotificationsService) MarkRead(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Put[any](ctx, s.api, fmt.Sprintf("/notifications/%d/read", id), nil))
}

func (s *NotificationsService) MarkAllRead(ctx context.Context) error {
	return unwrapEmpty(apiclient.Put[any](ctx, s.api, "/notifications/read-all", nil))
}
