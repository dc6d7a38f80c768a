package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

// EventListParams - фильтры GET /admin/events.
type EventListParams struct {
	Type    string `url:"type,omitempty"`
	ActorID string `url:"actorId,omitempty"`
	Limit   int    `url:"limit,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context, params EventListParams) (*models.EventList, error) {
	var resp models.EventList
	if err := c.do(ctx, http.MethodGet, "/admin/events", params, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
