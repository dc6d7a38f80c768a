package apiclient

import (
	"context"
	"net/http"

	"asimos_admin/internal/models"
)

const (
	// JobsPageSize - размер страницы при выгрузке всех вакансий.
	JobsPageSize = 200
	// DashboardJobPages и MapJobPages ограничивают число страниц выгрузки.
	DashboardJobPages = 25
	MapJobPages       = 40
)

// JobListParams - фильтры GET /admin/jobs.
type JobListParams struct {
	Query  string `url:"q,omitempty"`
	Limit  int    `url:"limit,omitempty"`
	Offset int    `url:"offset,omitempty"`
}

func (c *Client) ListJobs(ctx context.Context, params JobListParams) ([]models.Job, error) {
	var resp models.ListResponse[models.Job]
	if err := c.do(ctx, http.MethodGet, "/admin/jobs", params, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListAllJobs листает /admin/jobs страницами по JobsPageSize, пока не придёт
// неполная страница или не будет достигнут maxPages.
func (c *Client) ListAllJobs(ctx context.Context, q string, maxPages int) ([]models.Job, error) {
	if maxPages <= 0 {
		maxPages = 1
	}
	var all []models.Job
	offset := 0
	for page := 0; page < maxPages; page++ {
		items, err := c.ListJobs(ctx, JobListParams{Query: q, Limit: JobsPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		all = append(all, items...)
		if len(items) < JobsPageSize {
			break
		}
		offset += JobsPageSize
	}
	return all, nil
}

// GetJob - публичный GET /jobs/:id.
func (c *Client) GetJob(ctx context.Context, id string) (*models.JobDetail, error) {
	if id == "" {
		return nil, errEmptyID
	}
	var job models.JobDetail
	if err := c.do(ctx, http.MethodGet, "/jobs/"+escape(id), nil, nil, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (c *Client) CreateJob(ctx context.Context, in models.JobCreate) error {
	return c.do(ctx, http.MethodPost, "/admin/jobs", nil, in, nil)
}

func (c *Client) UpdateJob(ctx context.Context, id string, in models.JobUpdate) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPatch, "/admin/jobs/"+escape(id), nil, in, nil)
}

// SetJobStatus меняет только статус (одобрение, закрытие, повторное открытие).
func (c *Client) SetJobStatus(ctx context.Context, id string, status models.JobStatus) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodPatch, "/admin/jobs/"+escape(id), nil, models.JobStatusUpdate{Status: status}, nil)
}

func (c *Client) DeleteJob(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	return c.do(ctx, http.MethodDelete, "/admin/jobs/"+escape(id), nil, nil, nil)
}
