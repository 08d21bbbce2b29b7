package checkout

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/cart"
	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/pricing"
)

type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
)

func (s State) String() string {
	switch s {
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	}

	return "editing"
}

// OrderAPI is the slice of the backend client the submitter needs.
type OrderAPI interface {
	Checkout(ctx context.Context, userID int64, draft *models.OrderDraft) (*models.Order, error)
}

// Submitter runs one checkout at a time per user. A second submit while a
// request is outstanding is rejected outright, so a double-clicked button
// cannot place two orders.
type Submitter struct {
	api      OrderAPI
	inFlight atomic.Bool

	mu    sync.Mutex
	state State
}

func NewSubmitter(api OrderAPI) *Submitter {
	return &Submitter{api: api}
}

func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *Submitter) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// Submit validates the form, refuses an empty cart without touching the
// network, snapshots the prices the user saw and issues the order. On
// success the holder is cleared; on failure it is left intact for a retry.
func (s *Submitter) Submit(ctx context.Context, form Form, holder *cart.Holder) (*models.Order, error) {

	if !s.inFlight.CompareAndSwap(false, true) {
		return nil, apperrors.BadRequestError("A checkout is already in progress")
	}
	defer s.inFlight.Store(false)

	s.setState(StateValidating)

	if result := form.Validate(); !result.Valid {
		s.setState(StateEditing)

		return nil, invalidFormError(result)
	}

	items := holder.Items()

	if len(items) == 0 {
		s.setState(StateEditing)

		return nil, apperrors.EmptyCartError("Your cart is empty. Please add items before checking out.")
	}

	s.setState(StateSubmitting)

	order, err := s.api.Checkout(ctx, holder.UserID(), BuildDraft(form, items))
	if err != nil {
		s.setState(StateEditing)

		return nil, err
	}

	holder.Clear()
	s.setState(StateSucceeded)

	return order, nil
}

// BuildDraft captures the effective price shown to the user at submit time,
// so a later catalog price change cannot alter what they agreed to pay.
func BuildDraft(form Form, items []models.LineItem) *models.OrderDraft {

	draftItems := make([]models.OrderDraftItem, 0, len(items))

	for _, item := range items {
		draftItems = append(draftItems, models.OrderDraftItem{
			ProductID:           item.Product.ID,
			Quantity:            item.Quantity,
			UnitPriceAtPurchase: pricing.EffectivePrice(item.Product),
		})
	}

	return &models.OrderDraft{
		FullName:        form.FullName,
		Email:           form.Email,
		Phone:           form.Phone,
		ShippingAddress: form.ShippingAddress,
		Items:           draftItems,
	}
}

func invalidFormError(result ValidationResult) error {

	appErr := apperrors.ValidationError("Checkout form is invalid")

	for _, field := range []string{FieldFullName, FieldEmail, FieldPhone, FieldShippingAddress} {
		if fieldErr, ok := result.Errors[field]; ok {
			return appErr.WithDetail(fieldErr.Message)
		}
	}

	return appErr
}
