// Package cart mirrors the backend's authoritative cart for one user and
// keeps the mirror consistent through optimistic mutations.
package cart

import (
	"context"
	"sync"

	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

// API is the slice of the backend client the holder needs.
type API interface {
	GetCart(ctx context.Context, userID int64) ([]models.LineItem, error)
	AddToCart(ctx context.Context, userID, productID int64, quantity int) error
	UpdateQuantity(ctx context.Context, cartItemID int64, quantity int) error
	RemoveItem(ctx context.Context, cartItemID int64) error
}

// Holder applies mutations optimistically: local state changes first, then
// the backend call goes out, and a failed call reverts the snapshot and
// re-fetches best-effort. Concurrent edits from another device still resolve
// last-writer-wins at the backend.
type Holder struct {
	api    API
	userID int64

	mu    sync.Mutex
	items []models.LineItem
}

func NewHolder(api API, userID int64) *Holder {
	return &Holder{api: api, userID: userID}
}

func (h *Holder) UserID() int64 {
	return h.userID
}

// Load replaces the mirror with the backend's item list. On failure the
// mirror is emptied and the error surfaced; there is no retry.
func (h *Holder) Load(ctx context.Context) error {

	items, err := h.api.GetCart(ctx, h.userID)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		h.items = nil

		return err
	}

	h.items = items

	return nil
}

// Items returns a copy of the mirrored list.
func (h *Holder) Items() []models.LineItem {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.LineItem, len(h.items))
	copy(out, h.items)

	return out
}

func (h *Holder) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.items)
}

// SetQuantity changes an item's quantity. Quantities below 1 are a no-op.
func (h *Holder) SetQuantity(ctx context.Context, itemID int64, quantity int) error {

	if quantity < 1 {
		return nil
	}

	h.mu.Lock()

	idx := h.indexOf(itemID)
	if idx < 0 {
		h.mu.Unlock()

		return apperrors.NotFoundError("Item not found in the cart")
	}

	previous := h.items[idx].Quantity
	h.items[idx].Quantity = quantity

	h.mu.Unlock()

	if err := h.api.UpdateQuantity(ctx, itemID, quantity); err != nil {
		h.rollbackQuantity(ctx, itemID, previous)

		return err
	}

	return nil
}

// Add puts a product in the backend cart and reloads the mirror, since the
// backend assigns the line item its identity.
func (h *Holder) Add(ctx context.Context, productID int64, quantity int) error {

	if quantity < 1 {
		return apperrors.BadRequestError("Quantity must be at least 1")
	}

	if err := h.api.AddToCart(ctx, h.userID, productID, quantity); err != nil {
		return err
	}

	return h.Load(ctx)
}

// Remove deletes an item after the caller-supplied confirmation succeeds.
// A nil confirm means the caller already confirmed.
func (h *Holder) Remove(ctx context.Context, itemID int64, confirm func() bool) error {

	if confirm != nil && !confirm() {
		return nil
	}

	h.mu.Lock()

	idx := h.indexOf(itemID)
	if idx < 0 {
		h.mu.Unlock()

		return apperrors.NotFoundError("Item not found in the cart")
	}

	snapshot := make([]models.LineItem, len(h.items))
	copy(snapshot, h.items)

	h.items = append(h.items[:idx], h.items[idx+1:]...)

	h.mu.Unlock()

	if err := h.api.RemoveItem(ctx, itemID); err != nil {
		h.rollback(ctx, snapshot)

		return err
	}

	return nil
}

// Clear empties the local mirror only. The backend clears its side as part
// of checkout.
func (h *Holder) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.items = nil
}

// indexOf expects h.mu held.
func (h *Holder) indexOf(itemID int64) int {
	for i, item := range h.items {
		if item.ID == itemID {
			return i
		}
	}

	return -1
}

func (h *Holder) rollbackQuantity(ctx context.Context, itemID int64, quantity int) {

	h.mu.Lock()

	if idx := h.indexOf(itemID); idx >= 0 {
		h.items[idx].Quantity = quantity
	}

	h.mu.Unlock()

	h.refetch(ctx)
}

func (h *Holder) rollback(ctx context.Context, snapshot []models.LineItem) {
	h.mu.Lock()
	h.items = snapshot
	h.mu.Unlock()

	h.refetch(ctx)
}

// refetch reconciles the mirror with the backend after a failed mutation.
// Best effort: when the re-fetch also fails the reverted snapshot stands.
func (h *Holder) refetch(ctx context.Context) {

	items, err := h.api.GetCart(ctx, h.userID)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.items = items
	h.mu.Unlock()
}
