package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/aaravmahajanofficial/storefront-gateway/internal/models"
)

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	err := c.do(ctx, http.MethodGet, "/api/products", nil, &products)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, slug string) (*models.Product, error) {

	var product models.Product

	err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(slug), nil, &product)
	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]models.Product, error) {

	var products []models.Product

	err := c.do(ctx, http.MethodGet, "/api/products/search?q="+url.QueryEscape(query), nil, &products)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {

	var categories []models.Category

	err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories)
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (c *Client) ListBanners(ctx context.Context) ([]models.Banner, error) {

	var banners []models.Banner

	err := c.do(ctx, http.MethodGet, "/api/banner", nil, &banners)
	if err != nil {
		return nil, err
	}

	return banners, nil
}
