package club

import (
	"context"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// DashboardService accesses the aggregate dashboard endpoints.
type DashboardService struct {
	api *apiclient.Client
}

// Stats returns the role-dependent counters for the home screen.
func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	return unwrap(apiclient.Get[DashboardStats](ctx, s.api, "/dashboard/stats"))
}

// Schedule returns the authenticated user's upcoming sessions.
func (s *DashboardService) Schedule(ctx context.Context) ([]Session, error) {
	return unwrapList(apiclient.Get[[]Session](ctx, s.api, "/dashboard/schedule"))
}
