package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

// UserListParams - фильтры GET /admin/users.
type UserListParams struct {
	Query  string          `url:"q,omitempty"`
	Role   models.UserRole `url:"role,omitempty"`
	Limit  int             `url:"limit,omitempty"`
	Offset int             `url:"offset,omitempty"`
}

func (c *Client) ListUsers(ctx context.Context, params UserListParams) ([]models.Profile, error) {
	var resp models.ListResponse[models.Profile]
	if err := c.do(ctx, http.MethodGet, "/admin/users", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, in models.ProfileUpdate) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+escape(id), nil, in, nil)
}

func (c *Client) SetUserStatus(ctx context.Context, id string, status models.UserStatus) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPatch, "/admin/users/"+escape(id), nil, models.ProfileStatusUpdate{Status: status}, nil)
}

// DeleteUser удаляет профиль вместе с auth-пользователем.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodDelete, "/admin/users/"+escape(id), nil, nil, nil)
}
