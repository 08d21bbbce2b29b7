package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {

	var posts []models.Post

	err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts)
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func (c *Client) GetPost(ctx context.Context, slug string) (*models.Post, error) {

	var post models.Post

	err := c.do(ctx, http.MethodGet, "/api/posts/"+url.PathEscape(slug), nil, &post)
	if err != nil {
		return nil, err
	}

	return &post, nil
}

// IncreasePostViews is fire-and-forget on the caller's side; a failed counter
// bump must not break the post view.
func (c *Client) IncreasePostViews(ctx context.Context, slug string) error {
	return c.do(ctx, http.MethodPost, "/api/posts/increase-views/"+url.PathEscape(slug), nil, nil)
}
