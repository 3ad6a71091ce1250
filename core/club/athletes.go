package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// AthletesService accesses the athlete roster endpoints.
type AthletesService struct {
	api *apiclient.Client
}

// List returns all athletes visible to the authenticated user.
func (s *AthletesService) List(ctx context.Context) ([]Athlete, error) {
	return unwrapList(apiclient.Get[[]Athlete](ctx, s.api, "/athletes"))
}

// Get returns a single athlete by id.
func (s *AthletesService) Get(ctx context.Context, id int64) (Athlete, error) {
	return unwrap(apiclient.Get[Athlete](ctx, s.api, fmt.Sprintf("/athletes/%d", id)))
}

// Create registers a new athlete.
func (s *AthletesService) Create(ctx context.Context, athlete Athlete) (Athlete, error) {
	return unwrap(apiclient.Post[Athlete](ctx, s.api, "/athletes", athlete))
}

// Update modifies an athlete record.
func (s *AthletesService) Update(ctx context.Context, id int64, athlete Athlete) (Athlete, error) {
	return unwrap(apiclient.Put[Athlete](ctx, s.api, fmt.Sprintf("/athletes/%d", id), athlete))
}
