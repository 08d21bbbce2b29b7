package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/api/handlers"
	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/testutils"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderAPI struct {
	mock.Mock
}

func (m *mockOrderAPI) Checkout(ctx context.Context, userID int64, draft *models.OrderDraft) (*models.Order, error) {
	args := m.Called(ctx, userID, draft)

	if order, ok := args.Get(0).(*models.Order); ok {
		return order, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockOrderAPI) ListOrders(ctx context.Context, userID int64) ([]models.Order, error) {
	args := m.Called(ctx, userID)

	if orders, ok := args.Get(0).([]models.Order); ok {
		return orders, args.Error(1)
	}

	return nil, args.Error(1)
}

func setupCheckoutTest() (*mockOrderAPI, *mockCartAPI, *handlers.CheckoutHandler) {
	orderAPI := new(mockOrderAPI)
	cartAPI := new(mockCartAPI)
	checkoutService := service.NewCheckoutService(orderAPI, cartAPI)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)

	return orderAPI, cartAPI, checkoutHandler
}

func validCheckoutBody(t *testing.T) []byte {
	t.Helper()

	body, err := json.Marshal(models.CheckoutRequest{
		FullName:        "Nguyen Van A",
		Email:           "a@example.com",
		Phone:           "0912345678",
		ShippingAddress: "12 Ly Thuong Kiet, Hanoi",
	})
	require.NoError(t, err)

	return body
}

func TestSubmitCheckout(t *testing.T) {
	t.Run("Success - Order Placed", func(t *testing.T) {
		// Arrange
		orderAPI, cartAPI, checkoutHandler := setupCheckoutTest()
		req := testutils.CreateTestRequestWithSession("POST", "/api/v1/checkout", bytes.NewBuffer(validCheckoutBody(t)), 99, nil)
		recorder := httptest.NewRecorder()

		cartAPI.On("GetCart", mock.Anything, int64(99)).Return(sampleItems(), nil).Once()
		orderAPI.On("Checkout", mock.Anything, int64(99), mock.MatchedBy(func(draft *models.OrderDraft) bool {
			// the draft snapshots the discounted price shown to the user
			return len(draft.Items) == 1 && draft.Items[0].UnitPriceAtPurchase == 90000
		})).Return(&models.Order{ID: 501, UserID: 99, Status: models.OrderStatusPending}, nil).Once()

		// Act
		checkoutHandler.Submit()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp struct {
			Success bool         `json:"success"`
			Data    models.Order `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(501), resp.Data.ID)

		orderAPI.AssertExpectations(t)
		cartAPI.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Form Skips Backend", func(t *testing.T) {
		// Arrange
		orderAPI, cartAPI, checkoutHandler := setupCheckoutTest()
		body, _ := json.Marshal(models.CheckoutRequest{
			Email:           "not-an-email",
			Phone:           "123",
			ShippingAddress: "12 Ly Thuong Kiet, Hanoi",
		})
		req := testutils.CreateTestRequestWithSession("POST", "/api/v1/checkout", bytes.NewBuffer(body), 99, nil)
		recorder := httptest.NewRecorder()

		// Act
		checkoutHandler.Submit()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp *response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "Full name is required", resp.Error.Fields["fullName"].Message)
		assert.Equal(t, "Email is invalid", resp.Error.Fields["email"].Message)
		assert.Equal(t, "Phone number is invalid", resp.Error.Fields["phone"].Message)

		orderAPI.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
		cartAPI.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		// Arrange
		orderAPI, cartAPI, checkoutHandler := setupCheckoutTest()
		req := testutils.CreateTestRequestWithSession("POST", "/api/v1/checkout", bytes.NewBuffer(validCheckoutBody(t)), 99, nil)
		recorder := httptest.NewRecorder()

		cartAPI.On("GetCart", mock.Anything, int64(99)).Return([]models.LineItem{}, nil).Once()

		// Act
		checkoutHandler.Submit()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp *response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, apperrors.ErrCodeEmptyCart, resp.Error.Code)

		orderAPI.AssertNotCalled(t, "Checkout", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Backend Message Surfaced", func(t *testing.T) {
		// Arrange
		orderAPI, cartAPI, checkoutHandler := setupCheckoutTest()
		req := testutils.CreateTestRequestWithSession("POST", "/api/v1/checkout", bytes.NewBuffer(validCheckoutBody(t)), 99, nil)
		recorder := httptest.NewRecorder()

		cartAPI.On("GetCart", mock.Anything, int64(99)).Return(sampleItems(), nil).Once()
		orderAPI.On("Checkout", mock.Anything, int64(99), mock.Anything).
			Return(nil, apperrors.ServerError("Product out of stock")).Once()

		// Act
		checkoutHandler.Submit()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadGateway, recorder.Code)

		var resp *response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "Product out of stock", resp.Error.Message)
	})
}

func TestListOrders(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		orderAPI, _, checkoutHandler := setupCheckoutTest()
		req := testutils.CreateTestRequestWithSession("GET", "/api/v1/orders", nil, 99, nil)
		recorder := httptest.NewRecorder()

		orderAPI.On("ListOrders", mock.Anything, int64(99)).
			Return([]models.Order{{ID: 1, UserID: 99}}, nil).Once()

		// Act
		checkoutHandler.ListOrders()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		orderAPI.AssertExpectations(t)
	})
}
