package service

import (
	"context"
	"sync"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/cart"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/checkout"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

// OrderAPI is the order slice of the backend client.
type OrderAPI interface {
	checkout.OrderAPI
	ListOrders(ctx context.Context, userID int64) ([]models.Order, error)
}

// CheckoutService keeps one submitter per user so the in-flight guard holds
// across requests: a double-submitted checkout from the same user is
// rejected even when the two requests land on different handler goroutines.
type CheckoutService struct {
	orders OrderAPI
	carts  cart.API

	mu         sync.Mutex
	submitters map[int64]*checkout.Submitter
}

func NewCheckoutService(orders OrderAPI, carts cart.API) *CheckoutService {
	return &CheckoutService{
		orders:     orders,
		carts:      carts,
		submitters: make(map[int64]*checkout.Submitter),
	}
}

func (s *CheckoutService) Submit(ctx context.Context, userID int64, form checkout.Form) (*models.Order, error) {

	holder := cart.NewHolder(s.carts, userID)

	if err := holder.Load(ctx); err != nil {
		return nil, err
	}

	return s.submitterFor(userID).Submit(ctx, form, holder)
}

func (s *CheckoutService) Orders(ctx context.Context, userID int64) ([]models.Order, error) {
	return s.orders.ListOrders(ctx, userID)
}

func (s *CheckoutService) submitterFor(userID int64) *checkout.Submitter {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submitters[userID]
	if !ok {
		sub = checkout.NewSubmitter(s.orders)
		s.submitters[userID] = sub
	}

	return sub
}
