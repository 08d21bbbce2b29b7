package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

func (c *Client) Checkout(ctx context.Context, userID int64, draft *models.OrderDraft) (*models.Order, error) {

	var order models.Order

	err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/orders/checkout/%d", userID), draft, &order)
	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {

	var orders []models.Order

	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/user/%d", userID), nil, &orders)
	if err != nil {
		return nil, err
	}

	return orders, nil
}
