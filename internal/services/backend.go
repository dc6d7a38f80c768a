package services

import (
	"context"

	"asimos_admin/internal/models"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"
)

// Backend - методы REST API бэкенда, которыми пользуются сервисы.
// Реализуется *apiclient.Client.
type Backend interface {
	Login(ctx context.Context, email, password string) (string, error)
	RegisterEmployer(ctx context.Context, in models.EmployerRegistration) (models.ID, error)

	ListUsers(ctx context.Context, params apiclient.UserListParams) ([]models.Profile, error)
	UpdateUser(ctx context.Context, id string, in models.ProfileUpdate) error
	SetUserStatus(ctx context.Context, id string, status models.UserStatus) error
	DeleteUser(ctx context.Context, id string) error

	ListJobs(ctx context.Context, params apiclient.JobListParams) ([]models.Job, error)
	ListAllJobs(ctx context.Context, q string, maxPages int) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.JobDetail, error)
	CreateJob(ctx context.Context, in models.JobCreate) error
	UpdateJob(ctx context.Context, id string, in models.JobUpdate) error
	SetJobStatus(ctx context.Context, id string, status models.JobStatus) error
	DeleteJob(ctx context.Context, id string) error

	ListCategories(ctx context.Context, params apiclient.CategoryListParams) (*models.CategoryList, error)
	ListPublicCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, in models.CategoryInput) error
	UpdateCategory(ctx context.Context, id string, in models.CategoryInput) error
	DeleteCategory(ctx context.Context, id string) error

	ListEvents(ctx context.Context, params apiclient.EventListParams) (*models.EventList, error)
	Dashboard(ctx context.Context) (*models.DashboardStats, error)

	ListTickets(ctx context.Context) ([]models.SupportTicket, error)
	GetTicket(ctx context.Context, id string) (*models.SupportTicket, error)
	ReplyTicket(ctx context.Context, id, message string) error

	GetContent(ctx context.Context, slug string) (*models.ContentPage, error)
	SaveContent(ctx context.Context, slug string, in models.ContentInput) error
}

var _ Backend = (*apiclient.Client)(nil)

// validateForm проверяет форму и превращает первую ошибку в текст для баннера.
func validateForm(v *validator.Validator, form any, domain string) error {
	err := v.Validate(form)
	if err == nil {
		return nil
	}
	if vErr, ok := err.(*validator.ValidationError); ok {
		return apperrors.FormError(domain, vErr.First()).WithDetails(vErr.Errors)
	}
	return apperrors.InternalError(err)
}

// apiError оборачивает ошибку бэкенда; nil остаётся nil.
func apiError(err error, domain string) error {
	if err == nil {
		return nil
	}
	return apperrors.FromAPI(err, domain)
}
