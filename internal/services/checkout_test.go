package service_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/checkout"
	appErrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderAPI struct {
	mock.Mock
}

func (m *mockOrderAPI) Checkout(ctx context.Context, userID int64, draft *models.OrderDraft) (*models.Order, error) {
	args := m.Called(ctx, userID, draft)

	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderAPI) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	args := m.Called(ctx, userID)

	if orders := args.Get(0); orders != nil {
		return orders.([]models.Order), args.Error(1)
	}

	return nil, args.Error(1)
}

func checkoutForm() checkout.Form {
	return checkout.Form{
		FullName:        "Nguyen Van A",
		Email:           "a@b.com",
		Phone:           "0912345678",
		ShippingAddress: "1 Lang Ha, Ha Noi",
	}
}

func TestCheckoutSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		orders := new(mockOrderAPI)
		carts := new(mockCartAPI)

		carts.On("GetCart", ctx, int64(42)).Return(cartFixture(), nil).Once()
		orders.On("Checkout", ctx, int64(42), mock.Anything).
			Return(&models.Order{ID: 99, UserID: 42}, nil).Once()

		svc := service.NewCheckoutService(orders, carts)

		order, err := svc.Submit(ctx, 42, checkoutForm())

		require.NoError(t, err)
		assert.Equal(t, int64(99), order.ID)
		orders.AssertExpectations(t)
		carts.AssertExpectations(t)
	})

	t.Run("Empty Cart Rejected", func(t *testing.T) {
		orders := new(mockOrderAPI)
		carts := new(mockCartAPI)

		carts.On("GetCart", ctx, int64(42)).Return([]models.LineItem{}, nil).Once()

		svc := service.NewCheckoutService(orders, carts)

		_, err := svc.Submit(ctx, 42, checkoutForm())

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeEmptyCart, appErr.Code)
		orders.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cart Load Failure Surfaces Before Validation", func(t *testing.T) {
		orders := new(mockOrderAPI)
		carts := new(mockCartAPI)

		carts.On("GetCart", ctx, int64(42)).Return(nil, appErrors.TimeoutError("The store did not respond in time")).Once()

		svc := service.NewCheckoutService(orders, carts)

		_, err := svc.Submit(ctx, 42, checkoutForm())

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeTimeout, appErr.Code)
	})
}

func TestCheckoutOrders(t *testing.T) {
	ctx := context.Background()

	orders := new(mockOrderAPI)
	carts := new(mockCartAPI)

	history := []models.Order{{ID: 99, UserID: 42, Status: models.OrderStatusDelivered}}
	orders.On("ListOrders", ctx, int64(42)).Return(history, nil).Once()

	svc := service.NewCheckoutService(orders, carts)

	got, err := svc.Orders(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, history, got)
	orders.AssertExpectations(t)
}
