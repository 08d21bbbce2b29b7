package handlers

import (
	"log/slog"
	"net/http"

	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	service "github.com/aaravmahajanofficial/storefront-gateway/internal/services"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
)

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) ListPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		posts, err := h.postService.ListPosts(r.Context())

		if err != nil {
			slog.Error("Failed to list posts", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, posts)

	}
}

func (h *PostHandler) GetPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		slug := r.PathValue("slug")

		if slug == "" {
			response.Error(w, apperrors.BadRequestError("slug is required"))
			return
		}

		post, err := h.postService.GetPost(r.Context(), slug)

		if err != nil {
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, post)

	}
}
