package backend

import (
	"context"
	"net/http"

	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
)

type toggleFavoriteRequest struct {
	EntityID int64 `json:"id"`
}

type toggleFavoriteResponse struct {
	FavoriteProducts []int64 `json:"favoritesProduct"`
	FavoritePosts    []int64 `json:"favoritesPost"`
}

// ToggleFavorite flips one entity on the user's favorite list and returns the
// updated list. kind is the endpoint segment ("product" or "post"); the
// backend echoes the list matching it.
func (c *Client) ToggleFavorite(ctx context.Context, token, kind string, entityID int64) ([]int64, error) {

	var resp toggleFavoriteResponse

	err := c.do(ctx, http.MethodPost, "/api/user/favorites/"+kind, toggleFavoriteRequest{EntityID: entityID}, &resp, withBearer(token))
	if err != nil {
		return nil, err
	}

	switch kind {
	case "product":
		return resp.FavoriteProducts, nil
	case "post":
		return resp.FavoritePosts, nil
	}

	return nil, apperrors.BadRequestError("Unknown favorite kind: " + kind)
}
