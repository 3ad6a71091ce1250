package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// GamePlansService manages the scheduled practices and games of a team.
type GamePlansService struct {
	api *apiclient.Client
}

// ListByTeam returns all game plans scheduled for the team.
func (s *GamePlansService) ListByTeam(ctx context.Context, teamID int64) ([]GamePlan, error) {
	return unwrapList(apiclient.Get[[]GamePlan](ctx, s.api, fmt.Sprintf("/teams/%d/game-plans", teamID)))
}

// Get returns a single game plan.
func (s *GamePlansService) Get(ctx context.Context, teamID, planID int64) (GamePlan, error) {
	return unwrap(apiclient.Get[GamePlan](ctx, s.api, fmt.Sprintf("/teams/%d/game-plans/%d", teamID, planID)))
}

// Create schedules a new practice or game.
func (s *GamePlansService) Create(ctx context.Context, teamID int64, plan GamePlan) (GamePlan, error) {
	return unwrap(apiclient.Post[GamePlan](ctx, s.api, fmt.Sprintf("/teams/%d/game-plans", teamID), plan))
}

// Update modifies a scheduled game plan.
func (s *GamePlansService) Update(ctx context.Context, teamID, planID int64, plan GamePlan) (GamePlan, error) {
	return unwrap(apiclient.Put[GamePlan](ctx, s.api, fmt.Sprintf("/teams/%d/game-plans/%d", teamID, planID), plan))
}

// Delete removes a game plan from the schedule.
func (s *GamePlansService) Delete(ctx context.Context, teamID, planID int64) error {
	return unwrapEmpty(apiclient.Delete[any](ctx, s.api, fmt.Sprintf("/teams/%d/game-plans/%d", teamID, planID)))
}
