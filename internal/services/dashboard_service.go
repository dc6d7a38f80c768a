package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/models"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apiclient"
)

type DashboardService interface {
	Overview(ctx context.Context) (*dto.DashboardView, error)
}

type DashboardServiceImpl struct {
	api Backend
}

func NewDashboardService(api Backend) DashboardService {
	return &DashboardServiceImpl{api: api}
}

// Overview загружает /admin/dashboard. Если старый бэкенд не прислал серии
// по категориям или по дням, они считаются по списку вакансий.
func (s *DashboardServiceImpl) Overview(ctx context.Context) (*dto.DashboardView, error) {
	start := time.Now()
	stats, err := s.api.Dashboard(ctx)
	if err != nil {
		logger.PageLog("dashboard", 0, time.Since(start), err)
		return nil, apiError(err, "dashboard")
	}

	if stats.JobsByCategory == nil || stats.JobsByDay == nil {
		jobs, err := s.api.ListAllJobs(ctx, "", apiclient.DashboardJobPages)
		if err != nil {
			// резервная агрегация необязательна
			logger.CtxWarn(ctx, "dashboard fallback aggregation failed", "error", err)
		} else {
			stats.JobsByCategory, stats.JobsByDay = AggregateJobs(jobs)
		}
	}

	view := BuildDashboardView(stats)
	logger.PageLog("dashboard", len(view.LatestEvents), time.Since(start), nil)
	return view, nil
}

// AggregateJobs считает вакансии по категориям (top 10, по убыванию) и по дням
// (первые 10 символов created_at, по возрастанию даты).
func AggregateJobs(jobs []models.Job) ([]models.NamedCount, []models.DateCount) {
	byCat := make(map[string]int)
	var catOrder []string
	byDay := make(map[string]int)

	for _, j := range jobs {
		cat := strings.TrimSpace(j.Category)
		if cat == "" {
			cat = dto.FallbackCategory
		}
		if _, ok := byCat[cat]; !ok {
			catOrder = append(catOrder, cat)
		}
		byCat[cat]++

		if d := datePrefix(j.CreatedAt); d != "" {
			byDay[d]++
		}
	}

	categories := make([]models.NamedCount, 0, len(catOrder))
	for _, name := range catOrder {
		categories = append(categories, models.NamedCount{Name: name, Count: models.FlexInt(byCat[name])})
	}
	sort.SliceStable(categories, func(i, k int) bool {
		return categories[i].Count > categories[k].Count
	})
	if len(categories) > dto.TopCategoriesLimit {
		categories = categories[:dto.TopCategoriesLimit]
	}

	days := make([]models.DateCount, 0, len(byDay))
	for date, count := range byDay {
		days = append(days, models.DateCount{Date: date, Count: models.FlexInt(count)})
	}
	sort.Slice(days, func(i, k int) bool { return days[i].Date < days[k].Date })

	return categories, days
}

func datePrefix(createdAt string) string {
	r := []rune(createdAt)
	if len(r) > 10 {
		r = r[:10]
	}
	return string(r)
}

// BuildDashboardView переводит ответ бэкенда в показатели страницы.
// Распределение по ролям берётся из usersByRole, иначе из итогов.
func BuildDashboardView(stats *models.DashboardStats) *dto.DashboardView {
	view := &dto.DashboardView{
		UsersTotal:          flexValue(stats.UsersTotal),
		SeekersTotal:        flexValue(stats.SeekersTotal),
		EmployersTotal:      flexValue(stats.EmployersTotal),
		JobsTotal:           flexValue(stats.JobsTotal),
		JobsByCategory:      stats.JobsByCategory,
		JobsByDay:           stats.JobsByDay,
		EventsByType:        stats.EventsByType,
		LatestEvents:        stats.LatestEvents,
		EventsSetupRequired: stats.EventsSetupRequired,
	}

	var seeker, employer *models.FlexInt
	if stats.UsersByRole != nil {
		seeker, employer = stats.UsersByRole.Seeker, stats.UsersByRole.Employer
	}
	if seeker == nil {
		seeker = stats.SeekersTotal
	}
	if employer == nil {
		employer = stats.EmployersTotal
	}
	view.Seekers = flexValue(seeker)
	view.Employers = flexValue(employer)

	if len(view.LatestEvents) > dto.LatestEventsLimit {
		view.LatestEvents = view.LatestEvents[:dto.LatestEventsLimit]
	}
	return view
}

func flexValue(n *models.FlexInt) int {
	if n == nil {
		return 0
	}
	return n.Int()
}
