package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// DrillsService accesses the drill library endpoints.
type DrillsService struct {
	api *apiclient.Client
}

func (s *DrillsService) List(ctx context.Context) ([]Drill, error) {
	return unwrapList(apiclient.Get[[]Drill](ctx, s.api, "/drills"))
}

func (s *DrillsService) Get(ctx context.Context, id int64) (Drill, error) {
	return unwrap(apiclient.Get[Drill](ctx, s.api, fmt.Sprintf("/drills/%d", id)))
}

func (s *DrillsService) Create(ctx context.Context, drill Drill) (Drill, error) {
	return unwrap(apiclient.Post[Drill](ctx, s.api, "/drills", drill))
}

func (s *DrillsService) Update(ctx context.Context, id int64, drill Drill) (Drill, error) {
	return unwrap(apiclient.Put[Drill](ctx, s.api, fmt.Sprintf("/drills/%d", id), drill))
}

func (s *DrillsService) Delete(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Delete[any](ctx, s.api, fmt.Sprintf("/drills/%d", id)))
}

// PracticePlansService accesses the practice-plan endpoints.
type PracticePlansService struct {
	api *apiclient.Client
}

func (s *PracticePlansService) List(ctx context.Context) ([]PracticePlan, error) {
	return unwrapList(apiclient.Get[[]PracticePlan](ctx, s.api, "/practice-plans"))
}

func (s *PracticePlansService) Get(ctx context.Context, id int64) (PracticePlan, error) {
	return unwrap(apiclient.Get[PracticePlan](ctx, s.api, fmt.Sprintf("/practice-plans/%d", id)))
}

func (s *PracticePlansService) Create(ctx context.Context, plan PracticePlan) (PracticePlan, error) {
	return unwrap(apiclient.Post[PracticePlan](ctx, s.api, "/practice-plans", plan))
}

func (s *PracticePlansService) Update(ctx context.Context, id int64, plan PracticePlan) (PracticePlan, error) {
	return unwrap(apiclient.Put[PracticePlan](ctx, s.api, fmt.Sprintf("/practice-plans/%d", id), plan))
}

func (s *PracticePlansService) Delete(ctx context.Context, id int64) error {
	return unwrapEmpty(apiclient.Delete[any](ctx, s.api, fmt.Sprintf("/practice-plans/%d", id)))
}
