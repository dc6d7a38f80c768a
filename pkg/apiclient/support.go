package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

func (c *Client) ListTickets(ctx context.Context) ([]models.SupportTicket, error) {
	var resp models.ListResponse[models.SupportTicket]
	if err := c.do(ctx, http.MethodGet, "/admin/support", nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// GetTicket возвращает обращение с контактами автора и перепиской.
func (c *Client) GetTicket(ctx context.Context, id string) (*models.SupportTicket, error) {
	if id == "" {
		return nil, errEmptyID
	}
	var ticket models.SupportTicket
	if err := c.do(ctx, http.MethodGet, "/admin/support/"+escape(id), nil, nil, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (c *Client) ReplyTicket(ctx context.Context, id, message string) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPost, "/admin/support/"+escape(id)+"/reply", nil, models.SupportReply{Message: message}, nil)
}
