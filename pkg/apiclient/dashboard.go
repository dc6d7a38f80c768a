package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

// Dashboard - GET /admin/dashboard как есть, без дополнения.
func (c *Client) Dashboard(ctx context.Context) (*models.DashboardStats, error) {
	var resp models.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
