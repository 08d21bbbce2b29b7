package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/cache"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/config"
	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

// CatalogAPI is the catalog slice of the backend client.
type CatalogAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, slug string) (*models.Product, error)
	SearchProducts(ctx context.Context, query string) ([]models.Product, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListBanners(ctx context.Context) ([]models.Banner, error)
}

// CatalogService reads the catalog through a cache. Cache failures degrade
// to a backend read; they never fail the request.
type CatalogService struct {
	client CatalogAPI
	cache  cache.Cache
	cfg    *config.CacheConfig
}

func NewCatalogService(client CatalogAPI, c cache.Cache, cfg *config.CacheConfig) *CatalogService {
	return &CatalogService{client: client, cache: c, cfg: cfg}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	if s.cacheGet(ctx, cache.ProductsListKey, &products) {
		return products, nil
	}

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.ProductsListKey, products, s.cfg.ProductTTL)

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, slug string) (*models.Product, error) {

	key := cache.Key(cache.ProductKeyPrefix, slug)

	var product models.Product

	if s.cacheGet(ctx, key, &product) {
		return &product, nil
	}

	fetched, err := s.client.GetProduct(ctx, slug)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, fetched, s.cfg.ProductTTL)

	return fetched, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {

	key := cache.Key(cache.SearchKeyPrefix, query)

	var products []models.Product

	if s.cacheGet(ctx, key, &products) {
		return products, nil
	}

	products, err := s.client.SearchProducts(ctx, query)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, products, s.cfg.ProductTTL)

	return products, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {

	var categories []models.Category

	if s.cacheGet(ctx, cache.CategoryListKey, &categories) {
		return categories, nil
	}

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.CategoryListKey, categories, s.cfg.DefaultTTL)

	return categories, nil
}

func (s *CatalogService) ListBanners(ctx context.Context) ([]models.Banner, error) {

	var banners []models.Banner

	if s.cacheGet(ctx, cache.BannerListKey, &banners) {
		return banners, nil
	}

	banners, err := s.client.ListBanners(ctx)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, cache.BannerListKey, banners, s.cfg.BannerTTL)

	return banners, nil
}

func (s *CatalogService) cacheGet(ctx context.Context, key string, value any) bool {

	found, err := s.cache.Get(ctx, key, value)
	if err != nil {
		slog.Warn("Cache read failed", slog.String("key", key), slog.String("error", err.Error()))

		return false
	}

	return found
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {

	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		slog.Warn("Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
