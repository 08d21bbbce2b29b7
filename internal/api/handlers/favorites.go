package handlers

import (
	"log/slog"
	"net/http"

	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/favorites"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/utils/response"
)

type FavoritesHandler struct {
	toggler *favorites.Toggler
}

func NewFavoritesHandler(toggler *favorites.Toggler) *FavoritesHandler {
	return &FavoritesHandler{toggler: toggler}
}

func (h *FavoritesHandler) Toggle() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		entry, ok := sessionEntry(w, r)
		if !ok {
			return
		}

		kind, ok := favorites.ParseKind(r.PathValue("kind"))

		if !ok {
			response.Error(w, apperrors.BadRequestError("kind must be product or post"))
			return
		}

		entityID, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		ids, err := h.toggler.Toggle(r.Context(), entry.Session, entry.Token, kind, entityID)

		if err != nil {
			slog.Error("Failed to toggle favorite",
				slog.Int64("userId", entry.Session.UserID),
				slog.String("kind", string(kind)),
				slog.Int64("entityId", entityID),
				slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, map[string][]int64{"ids": ids})

	}
}
