package dto

import "asimos_admin/internal/models"

// LatestEventsLimit - сколько последних событий показывает панель.
const LatestEventsLimit = 25

// TopCategoriesLimit - размер серии "вакансии по категориям".
const TopCategoriesLimit = 10

// FallbackCategory - категория для вакансий без категории.
const FallbackCategory = "Digər"

// DashboardView - показатели панели после резервной агрегации.
type DashboardView struct {
	UsersTotal     int
	SeekersTotal   int
	EmployersTotal int
	JobsTotal      int

	Seekers   int
	Employers int

	JobsByCategory []models.NamedCount
	JobsByDay      []models.DateCount
	EventsByType   []models.TypeCount
	LatestEvents   []models.Event

	EventsSetupRequired bool
}

// HasRoleData - есть хотя бы один пользователь в распределении по ролям.
func (v DashboardView) HasRoleData() bool {
	return v.Seekers+v.Employers > 0
}

func (v DashboardView) HasJobsByCategory() bool {
	for _, p := range v.JobsByCategory {
		if p.Count > 0 {
			return true
		}
	}
	return false
}

func (v DashboardView) HasJobsByDay() bool {
	for _, p := range v.JobsByDay {
		if p.Count > 0 {
			return true
		}
	}
	return false
}

func (v DashboardView) HasEventsByType() bool {
	for _, p := range v.EventsByType {
		if p.Count > 0 {
			return true
		}
	}
	return false
}
