package service

import (
	"context"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/cart"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/pricing"
)

// CartService serves the priced cart view. Each call mirrors the backend
// cart into a holder, applies the mutation through it and reprices the
// result, so the breakdown is recomputed on every cart change.
type CartService struct {
	api    cart.API
	policy pricing.Policy
}

func NewCartService(api cart.API, policy pricing.Policy) *CartService {
	return &CartService{api: api, policy: policy}
}

func (s *CartService) View(ctx context.Context, userID int64) (*models.CartView, error) {

	holder, err := s.loadHolder(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.view(holder), nil
}

func (s *CartService) AddItem(ctx context.Context, userID int64, req *models.AddItemRequest) (*models.CartView, error) {

	holder := cart.NewHolder(s.api, userID)

	if err := holder.Add(ctx, req.ProductID, req.Quantity); err != nil {
		return nil, err
	}

	return s.view(holder), nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int) (*models.CartView, error) {

	holder, err := s.loadHolder(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := holder.SetQuantity(ctx, itemID, quantity); err != nil {
		return nil, err
	}

	return s.view(holder), nil
}

// RemoveItem honors the storefront's confirmation affordance: an unconfirmed
// request leaves the cart untouched and just returns the current view.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int64, confirmed bool) (*models.CartView, error) {

	holder, err := s.loadHolder(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := holder.Remove(ctx, itemID, func() bool { return confirmed }); err != nil {
		return nil, err
	}

	return s.view(holder), nil
}

func (s *CartService) loadHolder(ctx context.Context, userID int64) (*cart.Holder, error) {

	holder := cart.NewHolder(s.api, userID)

	if err := holder.Load(ctx); err != nil {
		return nil, err
	}

	return holder, nil
}

func (s *CartService) view(holder *cart.Holder) *models.CartView {

	items := holder.Items()

	return &models.CartView{
		Items:     items,
		Breakdown: pricing.Breakdown(items, s.policy),
	}
}
