package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

// CategoryListParams - фильтры GET /admin/categories.
type CategoryListParams struct {
	Query string `url:"q,omitempty"`
	Limit int    `url:"limit,omitempty"`
}

func (c *Client) ListCategories(ctx context.Context, params CategoryListParams) (*models.CategoryList, error) {
	var resp models.CategoryList
	if err := c.do(ctx, http.MethodGet, "/admin/categories", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListPublicCategories - публичный список /categories (его же видит мобильное приложение).
func (c *Client) ListPublicCategories(ctx context.Context) ([]models.Category, error) {
	var resp models.ListResponse[models.Category]
	if err := c.do(ctx, http.MethodGet, "/categories", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) CreateCategory(ctx context.Context, in models.CategoryInput) error {
	return c.do(ctx, http.MethodPost, "/admin/categories", nil, in, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, in models.CategoryInput) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPatch, "/admin/categories/"+escape(id), nil, in, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodDelete, "/admin/categories/"+escape(id), nil, nil, nil)
}
