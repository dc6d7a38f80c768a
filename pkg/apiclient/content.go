package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

// GetContent - GET /content/:slug. Несуществующая страница (404) возвращается
// пустой, чтобы админ мог создать её с нуля.
func (c *Client) GetContent(ctx context.Context, slug string) (*models.ContentPage, error) {
	if slug == "" {
		return nil, errEmptyID
	}
	page := models.ContentPage{Slug: slug}
	if err := c.do(ctx, http.MethodGet, "/content/"+escape(slug), nil, nil, &page); err != nil {
		if IsNotFound(err) {
			return &models.ContentPage{Slug: slug}, nil
		}
		return nil, err
	}
	if page.Slug == "" {
		page.Slug = slug
	}
	return &page, nil
}

func (c *Client) SaveContent(ctx context.Context, slug string, in models.ContentInput) error {
	if slug == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPut, "/admin/content/"+escape(slug), nil, in, nil)
}
