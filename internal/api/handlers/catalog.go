package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
)

type CatalogHandler struct {
	catalogService *service.CatalogService
}

func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.catalogService.ListProducts(r.Context())

		if err != nil {
			slog.Error("Failed to list products", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)

	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		if slug == "" {
			response.Error(w, apperrors.BadRequestError("slug is required"))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), slug)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}

func (h *CatalogHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query := strings.TrimSpace(r.URL.Query().Get("q"))

		if query == "" {
			response.Error(w, apperrors.BadRequestError("Search query is required"))
			return
		}

		products, err := h.catalogService.SearchProducts(r.Context(), query)

		if err != nil {
			slog.Error("Product search failed", slog.String("query", query), slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)

	}
}

func (h *CatalogHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.ListCategories(r.Context())

		if err != nil {
			slog.Error("Failed to list categories", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, categories)

	}
}

func (h *CatalogHandler) ListBanners() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		banners, err := h.catalogService.ListBanners(r.Context())

		if err != nil {
			slog.Error("Failed to list banners", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, banners)

	}
}
