package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// EvaluationsService accesses the athlete evaluation endpoints.
type EvaluationsService struct {
	api *apiclient.Client
}

func (s *EvaluationsService) List(ctx context.Context) ([]Evaluation, error) {
	return unwrapList(apiclient.Get[[]Evaluation](ctx, s.api, "/evaluations"))
}

func (s *EvaluationsService) Get(ctx context.Context, id int64) (Evaluation, error) {
	return unwrap(apiclient.Get[Evaluation](ctx, s.api, fmt.Sprintf("/evaluations/%d", id)))
}

func (s *EvaluationsService) Create(ctx context.Context, eval Evaluation) (Evaluation, error) {
	return unwrap(apiclient.Post[Evaluation](ctx, s.api, "/evaluations", eval))
}
