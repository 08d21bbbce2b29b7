package cart_test

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/cart"
	appErrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) GetCart(ctx context.Context, userID int64) ([]models.LineItem, error) {
	args := m.Called(ctx, userID)

	if items := args.Get(0); items != nil {
		return items.([]models.LineItem), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAPI) AddToCart(ctx context.Context, userID, productID int64, quantity int) error {
	return m.Called(ctx, userID, productID, quantity).Error(0)
}

func (m *mockAPI) UpdateQuantity(ctx context.Context, cartItemID int64, quantity int) error {
	return m.Called(ctx, cartItemID, quantity).Error(0)
}

func (m *mockAPI) RemoveItem(ctx context.Context, cartItemID int64) error {
	return m.Called(ctx, cartItemID).Error(0)
}

func twoItems() []models.LineItem {
	return []models.LineItem{
		{ID: 1, Product: models.Product{ID: 10, UnitPrice: 100000, DiscountPercent: 10}, Quantity: 2},
		{ID: 2, Product: models.Product{ID: 20, UnitPrice: 50000}, Quantity: 1},
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(mockAPI)
		api.On("GetCart", ctx, int64(42)).Return(twoItems(), nil).Once()

		h := cart.NewHolder(api, 42)

		require.NoError(t, h.Load(ctx))
		assert.Len(t, h.Items(), 2)
		api.AssertExpectations(t)
	})

	t.Run("Failure - Empty List Surfaced", func(t *testing.T) {
		api := new(mockAPI)
		api.On("GetCart", ctx, int64(42)).Return(twoItems(), nil).Once()
		api.On("GetCart", ctx, int64(42)).Return(nil, appErrors.NetworkError("Could not reach the store")).Once()

		h := cart.NewHolder(api, 42)
		require.NoError(t, h.Load(ctx))

		err := h.Load(ctx)

		require.Error(t, err)
		assert.Empty(t, h.Items(), "a failed load must leave an empty mirror, not stale items")
		api.AssertExpectations(t)
	})
}

func TestSetQuantity(t *testing.T) {
	ctx := context.Background()

	newLoaded := func(t *testing.T) (*cart.Holder, *mockAPI) {
		t.Helper()

		api := new(mockAPI)
		api.On("GetCart", ctx, int64(42)).Return(twoItems(), nil).Once()

		h := cart.NewHolder(api, 42)
		require.NoError(t, h.Load(ctx))

		return h, api
	}

	t.Run("Success - Optimistic Update", func(t *testing.T) {
		h, api := newLoaded(t)
		api.On("UpdateQuantity", ctx, int64(1), 5).Return(nil).Once()

		require.NoError(t, h.SetQuantity(ctx, 1, 5))

		assert.Equal(t, 5, h.Items()[0].Quantity)
		api.AssertExpectations(t)
	})

	t.Run("Quantity Below One Is A No-Op", func(t *testing.T) {
		h, api := newLoaded(t)

		require.NoError(t, h.SetQuantity(ctx, 1, 0))
		require.NoError(t, h.SetQuantity(ctx, 1, -1))

		assert.Equal(t, 2, h.Items()[0].Quantity, "state must be unchanged")
		api.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rolls Back And Refetches", func(t *testing.T) {
		h, api := newLoaded(t)

		serverState := twoItems()
		serverState[0].Quantity = 3 // another device raced us

		api.On("UpdateQuantity", ctx, int64(1), 5).Return(appErrors.NetworkError("Could not reach the store")).Once()
		api.On("GetCart", ctx, int64(42)).Return(serverState, nil).Once()

		err := h.SetQuantity(ctx, 1, 5)

		require.Error(t, err)
		assert.Equal(t, 3, h.Items()[0].Quantity, "mirror must match the re-fetched backend state")
		api.AssertExpectations(t)
	})

	t.Run("Failure - Refetch Also Fails Keeps Reverted State", func(t *testing.T) {
		h, api := newLoaded(t)

		api.On("UpdateQuantity", ctx, int64(1), 5).Return(appErrors.TimeoutError("The store did not respond in time")).Once()
		api.On("GetCart", ctx, int64(42)).Return(nil, appErrors.TimeoutError("The store did not respond in time")).Once()

		err := h.SetQuantity(ctx, 1, 5)

		require.Error(t, err)
		assert.Equal(t, 2, h.Items()[0].Quantity, "reverted snapshot stands when reconciliation fails")
		api.AssertExpectations(t)
	})

	t.Run("Unknown Item", func(t *testing.T) {
		h, _ := newLoaded(t)

		err := h.SetQuantity(ctx, 999, 2)

		require.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()

	newLoaded := func(t *testing.T) (*cart.Holder, *mockAPI) {
		t.Helper()

		api := new(mockAPI)
		api.On("GetCart", ctx, int64(42)).Return(twoItems(), nil).Once()

		h := cart.NewHolder(api, 42)
		require.NoError(t, h.Load(ctx))

		return h, api
	}

	t.Run("Success", func(t *testing.T) {
		h, api := newLoaded(t)
		api.On("RemoveItem", ctx, int64(1)).Return(nil).Once()

		require.NoError(t, h.Remove(ctx, 1, func() bool { return true }))

		items := h.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(2), items[0].ID)
		api.AssertExpectations(t)
	})

	t.Run("Confirmation Declined Is A No-Op", func(t *testing.T) {
		h, api := newLoaded(t)

		require.NoError(t, h.Remove(ctx, 1, func() bool { return false }))

		assert.Len(t, h.Items(), 2)
		api.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything)
	})

	t.Run("Failure - Rolls Back", func(t *testing.T) {
		h, api := newLoaded(t)

		api.On("RemoveItem", ctx, int64(1)).Return(appErrors.NetworkError("Could not reach the store")).Once()
		api.On("GetCart", ctx, int64(42)).Return(nil, appErrors.NetworkError("Could not reach the store")).Once()

		err := h.Remove(ctx, 1, nil)

		require.Error(t, err)
		assert.Len(t, h.Items(), 2, "removal must be rolled back on failure")
		api.AssertExpectations(t)
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Reloads From Backend", func(t *testing.T) {
		api := new(mockAPI)
		api.On("AddToCart", ctx, int64(42), int64(10), 1).Return(nil).Once()
		api.On("GetCart", ctx, int64(42)).Return(twoItems(), nil).Once()

		h := cart.NewHolder(api, 42)

		require.NoError(t, h.Add(ctx, 10, 1))
		assert.Len(t, h.Items(), 2)
		api.AssertExpectations(t)
	})

	t.Run("Invalid Quantity", func(t *testing.T) {
		api := new(mockAPI)
		h := cart.NewHolder(api, 42)

		err := h.Add(ctx, 10, 0)

		require.Error(t, err)
		api.AssertNotCalled(t, "AddToCart", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	api := new(mockAPI)
	api.On("GetCart", ctx, int64(42)).Return(twoItems(), nil).Once()

	h := cart.NewHolder(api, 42)
	require.NoError(t, h.Load(ctx))

	h.Clear()

	assert.Empty(t, h.Items())
	api.AssertNotCalled(t, "RemoveItem", mock.Anything, mock.Anything)
}
