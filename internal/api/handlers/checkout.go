package handlers

import (
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/checkout"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
)

type CheckoutHandler struct {
	checkoutService *service.CheckoutService
}

func NewCheckoutHandler(checkoutService *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

func (h *CheckoutHandler) Submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		var req models.CheckoutRequest

		if err := decodeBody(w, r, &req); err != nil {
			return
		}

		form := checkout.Form{
			FullName:        req.FullName,
			Email:           req.Email,
			Phone:           req.Phone,
			ShippingAddress: req.ShippingAddress,
		}

		// Field errors get a dedicated shape so the storefront can highlight
		// each invalid input, not just the first failure.
		if result := form.Validate(); !result.Valid {
			slog.Warn("Checkout form rejected",
				slog.Int64("userId", entry.Session.UserID),
				slog.Int("fieldErrors", len(result.Errors)))
			metrics.RecordCheckout(metrics.OutcomeFailure)
			response.FieldErrors(w, result)
			return
		}

		order, err := h.checkoutService.Submit(r.Context(), entry.Session.UserID, form)

		if err != nil {
			slog.Error("Checkout failed",
				slog.Int64("userId", entry.Session.UserID),
				slog.String("error", err.Error()))
			metrics.RecordCheckout(metrics.OutcomeFailure)
			response.Error(w, err)
			return
		}

		metrics.RecordCheckout(metrics.OutcomeSuccess)
		slog.Info("Order placed", slog.Int64("userId", entry.Session.UserID), slog.Int64("orderId", order.ID))
		response.Success(w, http.StatusCreated, order)

	}
}

func (h *CheckoutHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		orders, err := h.checkoutService.Orders(r.Context(), entry.Session.UserID)

		if err != nil {
			slog.Error("Failed to list orders", slog.Int64("userId", entry.Session.UserID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, orders)

	}
}
