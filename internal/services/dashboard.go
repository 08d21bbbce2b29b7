package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

type DashboardAPI interface {
	GetDashboardSummary(ctx context.Context, token string) (*models.DashboardSummary, error)
}

// DashboardService proxies the admin console's summary numbers. The backend
// enforces authorization from the bearer token; the gateway only gates the
// route on the session role.
type DashboardService struct {
	client DashboardAPI
}

func NewDashboardService(client DashboardAPI) *DashboardService {
	return &DashboardService{client: client}
}

func (s *DashboardService) Summary(ctx context.Context, token string) (*models.DashboardSummary, error) {
	return s.client.GetDashboardSummary(ctx, token)
}
