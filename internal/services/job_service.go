package services

import (
	"context"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/validator"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

type JobService interface {
	List(ctx context.Context, q string) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.JobDetail, error)
	Create(ctx context.Context, form *dto.JobForm) error
	Update(ctx context.Context, id string, form *dto.JobEditForm) error
	Approve(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, form *dto.JobStatusForm) error
	Delete(ctx context.Context, id string) error
	FormMeta(ctx context.Context) dto.JobFormMeta
	RegisterEmployer(ctx context.Context, form *dto.EmployerForm) (models.ID, error)
}

type JobServiceImpl struct {
	api       Backend
	validator *validator.Validator
}

func NewJobService(api Backend, v *validator.Validator) JobService {
	return &JobServiceImpl{api: api, validator: v}
}

func (s *JobServiceImpl) List(ctx context.Context, q string) ([]models.Job, error) {
	start := time.Now()
	jobs, err := s.api.ListJobs(ctx, apiclient.JobListParams{
		Query: strings.TrimSpace(q),
		Limit: dto.JobsPageLimit,
	})
	logger.PageLog("jobs", len(jobs), time.Since(start), err)
	return jobs, apiError(err, "job")
}

func (s *JobServiceImpl) Get(ctx context.Context, id string) (*models.JobDetail, error) {
	job, err := s.api.GetJob(ctx, id)
	if err != nil {
		return nil, apiError(err, "job")
	}
	return job, nil
}

// Create проверяет заголовок, работодателя и точку на карте, затем создаёт
// открытую вакансию.
func (s *JobServiceImpl) Create(ctx context.Context, form *dto.JobForm) error {
	if err := validateForm(s.validator, form, "job"); err != nil {
		return err
	}
	if _, _, ok := form.Location(); !ok {
		return apperrors.FormError("job", form.LocationMessage())
	}
	if err := s.api.CreateJob(ctx, form.Payload()); err != nil {
		return apiError(err, "job")
	}
	logger.CtxInfo(ctx, "job created", "created_by", form.CreatedBy)
	return nil
}

func (s *JobServiceImpl) Update(ctx context.Context, id string, form *dto.JobEditForm) error {
	if err := validateForm(s.validator, form, "job"); err != nil {
		return err
	}
	if err := s.api.UpdateJob(ctx, id, form.Patch()); err != nil {
		return apiError(err, "job")
	}
	logger.CtxInfo(ctx, "job updated", "job_id", id)
	return nil
}

// Approve публикует вакансию, ожидающую модерации.
func (s *JobServiceImpl) Approve(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, &dto.JobStatusForm{Status: string(models.JobStatusOpen)})
}

func (s *JobServiceImpl) SetStatus(ctx context.Context, id string, form *dto.JobStatusForm) error {
	if err := validateForm(s.validator, form, "job"); err != nil {
		return err
	}
	if err := s.api.SetJobStatus(ctx, id, models.JobStatus(form.Status)); err != nil {
		return apiError(err, "job")
	}
	logger.CtxInfo(ctx, "job status changed", "job_id", id, "status", form.Status)
	return nil
}

func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteJob(ctx, id); err != nil {
		return apiError(err, "job")
	}
	logger.CtxInfo(ctx, "job deleted", "job_id", id)
	return nil
}

// FormMeta параллельно грузит работодателей и названия категорий.
// При любой ошибке оба списка остаются пустыми.
func (s *JobServiceImpl) FormMeta(ctx context.Context) dto.JobFormMeta {
	var (
		users      []models.Profile
		categories []models.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		users, err = lookupUsers(gctx, s.api)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.api.ListPublicCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.CtxWarn(ctx, "job form metadata unavailable", "error", err)
		return dto.JobFormMeta{}
	}
	return dto.JobFormMeta{
		Employers:  FilterEmployers(users),
		Categories: CategoryNames(categories),
	}
}

// RegisterEmployer создаёт работодателя и возвращает его id для формы вакансии.
func (s *JobServiceImpl) RegisterEmployer(ctx context.Context, form *dto.EmployerForm) (models.ID, error) {
	if err := validateForm(s.validator, form, "job"); err != nil {
		return "", err
	}
	id, err := s.api.RegisterEmployer(ctx, models.EmployerRegistration{
		Role:        models.UserRoleEmployer,
		FullName:    form.FullName,
		Email:       form.Email,
		Phone:       models.NullString(form.Phone),
		Password:    form.Password,
		CompanyName: models.NullString(form.CompanyName),
	})
	if err != nil {
		return "", apiError(err, "job")
	}
	logger.CtxInfo(ctx, "employer registered", "profile_id", id)
	return id, nil
}

// CategoryNames - названия категорий в порядке бэкенда.
func CategoryNames(categories []models.Category) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
