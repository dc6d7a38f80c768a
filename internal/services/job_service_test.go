package services_test

import (
	"context"
	"net/http"
	"testing"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formMessage(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok, "expected AppError, got %T", err)
	return appErr.Message
}

func TestJobCreate_ValidationOrder(t *testing.T) {
	svc, fb := newServices(t)
	ctx := context.Background()

	form := dto.NewJobForm()
	assert.Equal(t, "Başlıq boş ola bilməz", formMessage(t, svc.JobService.Create(ctx, &form)))

	form.Title = "Ofisiant"
	assert.Equal(t, "Elanı hansı işçi axtaran (employer) adına yaratmaq lazımdır?", formMessage(t, svc.JobService.Create(ctx, &form)))

	form.CreatedBy = "u-2"
	assert.Equal(t, "Lokasiya seçilməlidir (xəritədən seçin)", formMessage(t, svc.JobService.Create(ctx, &form)))

	form.LocationLat, form.LocationLng = "abc", "49.8"
	assert.Equal(t, "Lokasiya seçilməlidir (xəritədən seçin)", formMessage(t, svc.JobService.Create(ctx, &form)))

	assert.Empty(t, fb.RequestsTo(http.MethodPost, "/admin/jobs"))
}

func TestJobCreate_Payload(t *testing.T) {
	svc, fb := newServices(t)

	form := dto.NewJobForm()
	form.Title = "Ofisiant"
	form.CreatedBy = " u-2 "
	form.LocationLat, form.LocationLng = "40.3777", "49.892"
	form.Category = "Restoran"
	form.IsDaily = true

	require.NoError(t, svc.JobService.Create(context.Background(), &form))

	body := fb.LastRequest(t, http.MethodPost, "/admin/jobs").JSON(t)
	assert.Equal(t, "u-2", body["created_by"])
	assert.Equal(t, "open", body["status"])
	assert.Equal(t, 40.3777, body["location_lat"])
	assert.Equal(t, 49.892, body["location_lng"])
	assert.Equal(t, float64(500), body["notify_radius_m"])
	assert.Equal(t, "+994", body["whatsapp"])
	assert.Equal(t, "Restoran", body["category"])
	assert.Equal(t, true, body["is_daily"])
	assert.Nil(t, body["wage"])
	assert.Nil(t, body["contact_link"])
	assert.Nil(t, body["location_address"])
}

func TestJobCreate_BackendError(t *testing.T) {
	svc, fb := newServices(t)
	fb.Fail(http.MethodPost, "/admin/jobs", http.StatusBadRequest, "created_by must be employer", 1)

	form := dto.NewJobForm()
	form.Title, form.CreatedBy = "X", "u-1"
	form.LocationLat, form.LocationLng = "40", "49"

	assert.Equal(t, "created_by must be employer", formMessage(t, svc.JobService.Create(context.Background(), &form)))
}

func TestJobUpdate_NullsEmptyOptionals(t *testing.T) {
	svc, fb := newServices(t)
	jobs := fb.SeedJobs()

	form := dto.NewJobEditForm(jobs[0])
	assert.Equal(t, "500", form.NotifyRadiusM)
	assert.Equal(t, "+994", form.ContactPhone)
	form.Wage = ""
	form.NotifyRadiusM = ""

	require.NoError(t, svc.JobService.Update(context.Background(), "job-a", &form))

	body := fb.LastRequest(t, http.MethodPatch, "/admin/jobs/job-a").JSON(t)
	assert.Nil(t, body["wage"])
	assert.Nil(t, body["notify_radius_m"])
	assert.Equal(t, "open", body["status"])

	detail, err := svc.JobService.Get(context.Background(), "job-a")
	require.NoError(t, err)
	assert.Equal(t, "", detail.Wage.String())
}

func TestJobEditForm_Defaults(t *testing.T) {
	form := dto.NewJobEditForm(models.Job{ID: "job-x", Title: "Yeni"})
	assert.Equal(t, "open", form.Status)
	assert.Equal(t, "", form.NotifyRadiusM)
}

func TestJobStatusChanges(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedJobs()
	ctx := context.Background()

	require.NoError(t, svc.JobService.Approve(ctx, "job-b"))
	assert.Equal(t, map[string]any{"status": "open"}, fb.LastRequest(t, http.MethodPatch, "/admin/jobs/job-b").JSON(t))

	require.NoError(t, svc.JobService.SetStatus(ctx, "job-b", &dto.JobStatusForm{Status: "closed"}))
	assert.Equal(t, map[string]any{"status": "closed"}, fb.LastRequest(t, http.MethodPatch, "/admin/jobs/job-b").JSON(t))

	err := svc.JobService.SetStatus(ctx, "job-b", &dto.JobStatusForm{Status: "archived"})
	assert.Equal(t, "Status open, pending və ya closed olmalıdır", formMessage(t, err))
}

func TestJobDelete_NotFound(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedJobs()

	require.NoError(t, svc.JobService.Delete(context.Background(), "job-c"))
	err := svc.JobService.Delete(context.Background(), "job-c")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
	assert.Equal(t, "Job not found", appErr.Message)
}

func TestJobFormMeta(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedUsers()
	fb.SeedCategories()

	meta := svc.JobService.FormMeta(context.Background())
	require.Len(t, meta.Employers, 2)
	assert.Equal(t, "u-2", meta.Employers[0].ID.String())
	assert.Equal(t, "u-3", meta.Employers[1].ID.String(), "role is compared case-insensitively")
	assert.Equal(t, []string{"Restoran", "Mağaza", "Aşpaz", "Köhnə"}, meta.Categories)

	assert.Equal(t, "500", fb.LastRequest(t, http.MethodGet, "/admin/users").Query.Get("limit"))
}

func TestJobFormMeta_AnyFailureEmptiesBoth(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedUsers()
	fb.SeedCategories()
	fb.Fail(http.MethodGet, "/categories", http.StatusInternalServerError, "boom", 0)

	meta := svc.JobService.FormMeta(context.Background())
	assert.Empty(t, meta.Employers)
	assert.Empty(t, meta.Categories)
}

func TestRegisterEmployer(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedUsers()
	ctx := context.Background()

	_, err := svc.JobService.RegisterEmployer(ctx, &dto.EmployerForm{FullName: "Ali", Email: "ali@example.az"})
	assert.Equal(t, "Ad, Email və Şifrə mütləqdir", formMessage(t, err))

	id, err := svc.JobService.RegisterEmployer(ctx, &dto.EmployerForm{
		FullName:    "Ali Vəliyev",
		Email:       "ali@example.az",
		Password:    "pass123",
		CompanyName: "Ali MMC",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	body := fb.LastRequest(t, http.MethodPost, "/auth/register").JSON(t)
	assert.Equal(t, "employer", body["role"])
	assert.Equal(t, "Ali MMC", body["companyName"])
	assert.Nil(t, body["phone"])

	_, err = svc.JobService.RegisterEmployer(ctx, &dto.EmployerForm{FullName: "Dup", Email: "kamran@example.az", Password: "x"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeConflict, appErr.Code)
}
