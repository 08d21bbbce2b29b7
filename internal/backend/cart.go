package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

func (c *Client) GetCart(ctx context.Context, userID int64) ([]models.LineItem, error) {

	var items []models.LineItem

	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/cart/%d", userID), nil, &items)
	if err != nil {
		return nil, err
	}

	return items, nil
}

type addToCartRequest struct {
	UserID    int64 `json:"userId"`
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

func (c *Client) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	req := addToCartRequest{UserID: userID, ProductID: productID, Quantity: quantity}

	return c.do(ctx, http.MethodPost, "/api/cart/add", req, nil)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (c *Client) UpdateQuantity(ctx context.Context, cartItemID int64, quantity int) error {
	req := updateQuantityRequest{Quantity: quantity}

	return c.do(ctx, http.MethodPut, fmt.Sprintf("/api/cart/%d/quantity", cartItemID), req, nil)
}

func (c *Client) RemoveItem(ctx context.Context, cartItemID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/cart/%d", cartItemID), nil, nil)
}
