package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// TeamsService accesses the team roster endpoints.
type TeamsService struct {
	api *apiclient.Client
}

func (s *TeamsService) List(ctx context.Context) ([]Team, error) {
	return unwrapList(apiclient.Get[[]Team](ctx, s.api, "/teams"))
}

func (s *TeamsService) Get(ctx context.Context, id int64) (Team, error) {
	return unwrap(apiclient.Get[Team](ctx, s.api, fmt.Sprintf("/teams/%d", id)))
}

func (s *TeamsService) Create(ctx context.Context, team Team) (Team, error) {
	return unwrap(apiclient.Post[Team](ctx, s.api, "/teams", team))
}

func (s *TeamsService) Update(ctx context.Context, id int64, team Team) (Team, error) {
	return unwrap(apiclient.Put[Team](ctx, s.api, fmt.Sprintf("/teams/%d", id), team))
}

func (s *TeamsService) Delete(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Delete[any](ctx, s.api, fmt.Sprintf("/teams/%d", id)))
}
