package services_test

import (
	"context"
	"net/http"
	"testing"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_FullResponseIsUsedAsIs(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedDashboard()

	view, err := svc.DashboardService.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, view.UsersTotal)
	assert.Equal(t, 2, view.Seekers)
	assert.Equal(t, 2, view.Employers)
	assert.True(t, view.HasRoleData())
	assert.Len(t, view.JobsByCategory, 2)
	assert.True(t, view.HasJobsByDay())
	assert.Empty(t, fb.RequestsTo(http.MethodGet, "/admin/jobs"), "no fallback when series are present")
}

func TestDashboard_FallbackAggregation(t *testing.T) {
	svc, fb := newServices(t)
	fb.SeedJobs()
	fb.RawDashboard = `{"usersTotal":4,"seekersTotal":"3","employersTotal":1,"jobsTotal":4}`

	view, err := svc.DashboardService.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []models.NamedCount{
		{Name: "Restoran", Count: 2},
		{Name: "Digər", Count: 1},
		{Name: "Mağaza", Count: 1},
	}, view.JobsByCategory)
	assert.Equal(t, []models.DateCount{
		{Date: "2026-09-30", Count: 1},
		{Date: "2026-10-01", Count: 2},
		{Date: "2026-10-02", Count: 1},
	}, view.JobsByDay)

	// usersByRole нет - берутся итоги
	assert.Equal(t, 3, view.Seekers)
	assert.Equal(t, 1, view.Employers)
	assert.False(t, view.HasEventsByType())
}

func TestDashboard_FallbackFailureIsIgnored(t *testing.T) {
	svc, fb := newServices(t)
	fb.RawDashboard = `{"usersTotal":7}`
	fb.Fail(http.MethodGet, "/admin/jobs", http.StatusInternalServerError, "db down", 0)

	view, err := svc.DashboardService.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, view.UsersTotal)
	assert.Nil(t, view.JobsByCategory)
	assert.False(t, view.HasJobsByCategory())
}

func TestDashboard_Error(t *testing.T) {
	svc, fb := newServices(t)
	fb.Fail(http.MethodGet, "/admin/dashboard", http.StatusForbidden, "Admin only", 0)

	_, err := svc.DashboardService.Overview(context.Background())
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
	assert.Equal(t, "Admin only", appErr.Message)
}

func TestAggregateJobs_TopTenCategories(t *testing.T) {
	var jobs []models.Job
	for i := 0; i < 12; i++ {
		name := string(rune('A' + i))
		for k := 0; k <= i; k++ {
			jobs = append(jobs, models.Job{Category: name, CreatedAt: "2026-10-01"})
		}
	}

	categories, days := services.AggregateJobs(jobs)
	require.Len(t, categories, 10)
	assert.Equal(t, "L", categories[0].Name)
	assert.Equal(t, models.FlexInt(12), categories[0].Count)
	assert.Equal(t, "C", categories[9].Name)
	assert.Equal(t, []models.DateCount{{Date: "2026-10-01", Count: 78}}, days)
}

func TestAggregateJobs_SkipsEmptyDates(t *testing.T) {
	_, days := services.AggregateJobs([]models.Job{{Category: "X"}})
	assert.Empty(t, days)
}

func TestBuildDashboardView_LatestEventsCapped(t *testing.T) {
	events := make([]models.Event, 40)
	view := services.BuildDashboardView(&models.DashboardStats{LatestEvents: events})
	assert.Len(t, view.LatestEvents, 25)
	assert.False(t, view.HasRoleData())
}
