package backend

import (
	"context"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

func (c *Client) GetDashboardSummary(ctx context.Context, token string) (*models.DashboardSummary, error) {

	var summary models.DashboardSummary

	err := c.do(ctx, http.MethodGet, "/api/dashboard/summary", nil, &summary, withBearer(token))
	if err != nil {
		return nil, err
	}

	return &summary, nil
}
