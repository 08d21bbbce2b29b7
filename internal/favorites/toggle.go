// Package favorites is the one toggle implementation shared by products and
// posts; the entity kind only selects the backend endpoint and which list on
// the session gets refreshed.
package favorites

import (
	"context"
	"slices"

	apperrors "github.com/aaravmahajanofficial/storefront-gateway/internal/errors"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/session"
)

type Kind string

const (
	KindProduct Kind = "product"
	KindPost    Kind = "post"
)

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindProduct, KindPost:
		return Kind(s), true
	}

	return "", false
}

// API is the slice of the backend client the toggler needs.
type API interface {
	ToggleFavorite(ctx context.Context, token, kind string, entityID int64) ([]int64, error)
}

type Toggler struct {
	api API
}

func NewToggler(api API) *Toggler {
	return &Toggler{api: api}
}

// Toggle flips the entity on the user's list and mirrors the backend's
// updated list onto the session.
func (t *Toggler) Toggle(ctx context.Context, sess *session.Session, token string, kind Kind, entityID int64) ([]int64, error) {

	if sess == nil || token == "" {
		return nil, apperrors.UnauthorizedError("Please sign in to manage favorites")
	}

	ids, err := t.api.ToggleFavorite(ctx, token, string(kind), entityID)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindProduct:
		sess.FavoriteProducts = ids
	case KindPost:
		sess.FavoritePosts = ids
	}

	return ids, nil
}

func IsFavorite(sess *session.Session, kind Kind, entityID int64) bool {

	if sess == nil {
		return false
	}

	switch kind {
	case KindProduct:
		return slices.Contains(sess.FavoriteProducts, entityID)
	case KindPost:
		return slices.Contains(sess.FavoritePosts, entityID)
	}

	return false
}
