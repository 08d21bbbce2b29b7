package service

import (
	"context"
	"log/slog"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/cache"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/config"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
	"github.com/microcosm-cc/bluemonday"
)

type PostAPI interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
	IncreasePostViews(ctx context.Context, slug string) error
}

// PostService serves blog content. Post bodies are rich HTML written in the
// admin editor, so everything is sanitized before it leaves the gateway.
type PostService struct {
	client    PostAPI
	cache     cache.Cache
	cfg       *config.CacheConfig
	sanitizer *bluemonday.Policy
}

func NewPostService(client PostAPI, c cache.Cache, cfg *config.CacheConfig) *PostService {
	return &PostService{
		client:    client,
		cache:     c,
		cfg:       cfg,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {

	var posts []models.Post

	found, err := s.cache.Get(ctx, cache.PostsListKey, &posts)
	if err != nil {
		slog.Warn("Cache read failed", slog.String("key", cache.PostsListKey), slog.String("error", err.Error()))
	}

	if found {
		return posts, nil
	}

	posts, err = s.client.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Content = s.sanitizer.Sanitize(posts[i].Content)
	}

	if err := s.cache.Set(ctx, cache.PostsListKey, posts, s.cfg.PostTTL); err != nil {
		slog.Warn("Cache write failed", slog.String("key", cache.PostsListKey), slog.String("error", err.Error()))
	}

	return posts, nil
}

// GetPost returns the sanitized post and bumps its view counter. A failed
// bump is logged and swallowed; the reader still gets the post.
func (s *PostService) GetPost(ctx context.Context, slug string) (*models.Post, error) {

	key := cache.Key(cache.PostKeyPrefix, slug)

	var post models.Post

	found, err := s.cache.Get(ctx, key, &post)
	if err != nil {
		slog.Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
	}

	if !found {

		fetched, err := s.client.GetPost(ctx, slug)
		if err != nil {
			return nil, err
		}

		fetched.Content = s.sanitizer.Sanitize(fetched.Content)
		post = *fetched

		if err := s.cache.Set(ctx, key, post, s.cfg.PostTTL); err != nil {
			slog.Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	if err := s.client.IncreasePostViews(ctx, slug); err != nil {
		slog.Warn("View counter bump failed", slog.String("slug", slug), slog.String("error", err.Error()))
	}

	return &post, nil
}
