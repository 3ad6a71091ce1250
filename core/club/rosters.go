package club

import (
	"context"
	"fmt"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// RostersService manages the player roster of a team. Roster entries are
// independent of club accounts until explicitly linked.
type RostersService struct {
	api *apiclient.Client
}

// ListByTeam returns all players on the team's roster.
func (s *RostersService) ListByTeam(ctx context.Context, teamID int64) ([]RosterPlayer, error) {
	return unwrapList(apiclient.Get[[]RosterPlayer](ctx, s.api, fmt.Sprintf("/teams/%d/roster", teamID)))
}

// Get returns a single roster player.
func (s *RostersService) Get(ctx context.Context, teamID, playerID int64) (RosterPlayer, error) {
	return unwrap(apiclient.Get[RosterPlayer](ctx, s.api, fmt.Sprintf("/teams/%d/roster/%d", teamID, playerID)))
}

// AddPlayer adds a player to the roster.
func (s *RostersService) AddPlayer(ctx context.Context, teamID int64, player RosterPlayer) (RosterPlayer, error) {
	return unwrap(apiclient.Post[RosterPlayer](ctx, s.api, fmt.Sprintf("/teams/%d/roster", teamID), player))
}

// UpdatePlayer modifies a roster player.
func (s *RostersService) UpdatePlayer(ctx context.Context, teamID, playerID int64, player RosterPlayer) (RosterPlayer, error) {
	return unwrap(apiclient.Put[RosterPlayer](ctx, s.api, fmt.Sprintf("/teams/%d/roster/%d", teamID, playerID), player))
}

// RemovePlayer removes a player from the roster.
func (s *RostersService) RemovePlayer(ctx context.Context, teamID, playerID int64) error {
	return unwrapEmpty(apiclient.Delete[any](ctx, s.api, fmt.Sprintf("/teams/%d/roster/%d", teamID, playerID)))
}

// LinkUser links a roster player to an existing club account.
func (s *RostersService) LinkUser(ctx context.Context, teamID, playerID, userID int64) (RosterPlayer, error) {
	body := map[string]int64{"userId": userID}
	return unwrap(apiclient.Post[RosterPlayer](ctx, s.api, fmt.Sprintf("/teams/%d/roster/%d/link", teamID, playerID), body))
}

// UnlinkUser detaches a roster player from their club account. The roster
// profile itself is preserved.
func (s *RostersService) UnlinkUser(ctx context.Context, teamID, playerID int64) (RosterPlayer, error) {
	return unwrap(apiclient.Post[RosterPlayer](ctx, s.api, fmt.Sprintf("/teams/%d/roster/%d/unlink", teamID, playerID), nil))
}
