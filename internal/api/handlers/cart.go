package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/metrics"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

type CartHandler struct {
	cartService *service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		view, err := h.cartService.View(r.Context(), entry.Session.UserID)

		if err != nil {
			slog.Error("Failed to load cart", slog.Int64("userId", entry.Session.UserID), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, view)

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		var req models.AddItemRequest

		// Validate Input
		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		view, err := h.cartService.AddItem(r.Context(), entry.Session.UserID, &req)

		if err != nil {
			slog.Error("Failed to add cart item",
				slog.Int64("userId", entry.Session.UserID),
				slog.Int64("productId", req.ProductID),
				slog.String("error", err.Error()))
			metrics.RecordCartMutation("add", metrics.OutcomeFailure)
			response.Error(w, err)
			return
		}

		metrics.RecordCartMutation("add", metrics.OutcomeSuccess)
		slog.Info("Cart item added", slog.Int64("userId", entry.Session.UserID), slog.Int64("productId", req.ProductID))
		response.Success(w, http.StatusOK, view)

	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		itemID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req models.UpdateQuantityRequest

		if !parseAndValidate(w, r, &req, h.validator) {
			return
		}

		view, err := h.cartService.UpdateQuantity(r.Context(), entry.Session.UserID, itemID, req.Quantity)

		if err != nil {
			slog.Error("Failed to update cart quantity",
				slog.Int64("userId", entry.Session.UserID),
				slog.Int64("itemId", itemID),
				slog.String("error", err.Error()))
			metrics.RecordCartMutation("update_quantity", metrics.OutcomeFailure)
			response.Error(w, err)
			return
		}

		metrics.RecordCartMutation("update_quantity", metrics.OutcomeSuccess)
		response.Success(w, http.StatusOK, view)

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		itemID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		// removal must be explicitly confirmed by the storefront
		confirmed, err := strconv.ParseBool(r.URL.Query().Get("confirmed"))
		if err != nil {
			confirmed = false
		}

		view, err := h.cartService.RemoveItem(r.Context(), entry.Session.UserID, itemID, confirmed)

		if err != nil {
			slog.Error("Failed to remove cart item",
				slog.Int64("userId", entry.Session.UserID),
				slog.Int64("itemId", itemID),
				slog.String("error", err.Error()))
			metrics.RecordCartMutation("remove", metrics.OutcomeFailure)
			response.Error(w, err)
			return
		}

		metrics.RecordCartMutation("remove", metrics.OutcomeSuccess)
		slog.Info("Cart item removed", slog.Int64("userId", entry.Session.UserID), slog.Int64("itemId", itemID))
		response.Success(w, http.StatusOK, view)

	}
}
