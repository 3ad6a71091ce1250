package club

import (
	"context"
	"fmt"
	"maps"

	"github.com/arcticwolves/clubkit/core/apiclient"
)

// The remaining backend modules expose loosely shaped payloads whose fields
// vary by club configuration, so their services stay untyped like
// DashboardStats.

// ReportsService accesses the reporting endpoints.
type ReportsService struct {
	api *apiclient.Client
}

func (s *ReportsService) List(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/reports"))
}

// Generate requests a report of the given type. Extra parameters are merged
// into the request body alongside the type.
func (s *ReportsService) Generate(ctx context.Context, reportType string, params map[string]any) (map[string]any, error) {
	body := map[string]any{"type": reportType}
	maps.Copy(body, params)
	return unwrap(apiclient.Post[map[string]any](ctx, s.api, "/reports/generate", body))
}

// FinanceService accesses the finance and point-of-sale endpoints.
type FinanceService struct {
	api *apiclient.Client
}

func (s *FinanceService) Overview(ctx context.Context) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, "/finance/overview"))
}

func (s *FinanceService) Transactions(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/finance/transactions"))
}

func (s *FinanceService) Billing(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/finance/billing"))
}

// HRService accesses the staff administration endpoints.
type HRService struct {
	api *apiclient.Client
}

func (s *HRService) Payroll(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/hr/payroll"))
}

func (s *HRService) Contracts(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/hr/contracts"))
}

func (s *HRService) TimeTracking(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/hr/time-tracking"))
}

// HealthService accesses per-athlete nutrition and workout endpoints.
type HealthService struct {
	api *apiclient.Client
}

func (s *HealthService) Nutrition(ctx context.Context, athleteID int64) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, fmt.Sprintf("/health/nutrition/%d", athleteID)))
}

func (s *HealthService) Workouts(ctx context.Context, athleteID int64) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, fmt.Sprintf("/health/workouts/%d", athleteID)))
}

// VideoService accesses the video library endpoints.
type VideoService struct {
	api *apiclient.Client
}

func (s *VideoService) List(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/videos"))
}

func (s *VideoService) Get(ctx context.Context, id int64) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, fmt.Sprintf("/videos/%d", id)))
}

// ShopService accesses the club shop endpoints.
type ShopService struct {
	api *apiclient.Client
}

func (s *ShopService) Products(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/shop/products"))
}

func (s *ShopService) Categories(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/shop/categories"))
}

func (s *ShopService) Cart(ctx context.Context) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, "/shop/cart"))
}

func (s *ShopService) AddToCart(ctx context.Context, productID int64, quantity int) (map[string]any, error) {
	body := map[string]any{"productId": productID, "quantity": quantity}
	return unwrap(apiclient.Post[map[string]any](ctx, s.api, "/shop/cart", body))
}

// AdminService accesses the administration endpoints.
type AdminService struct {
	api *apiclient.Client
}

func (s *AdminService) Users(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/admin/users"))
}

func (s *AdminService) AuditLogs(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/admin/audit-logs"))
}

func (s *AdminService) SystemHealth(ctx context.Context) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, "/admin/system-health"))
}

func (s *AdminService) Permissions(ctx context.Context) ([]map[string]any, error) {
	return unwrapList(apiclient.Get[[]map[string]any](ctx, s.api, "/admin/permissions"))
}

func (s *AdminService) Settings(ctx context.Context) (map[string]any, error) {
	return unwrap(apiclient.Get[map[string]any](ctx, s.api, "/admin/settings"))
}

func (s *AdminService) UpdateSettings(ctx context.Context, settings map[string]any) (map[string]any, error) {
	return unwrap(apiclient.Put[map[string]any](ctx, s.api, "/admin/settings", settings))
}
