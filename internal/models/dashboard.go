package models

// NamedCount - точка серии "jobsByCategory".
type NamedCount struct {
	Name  string  `json:"name"`
	Count FlexInt `json:"count"`
}

// DateCount - точка серии "jobsByDay".
type DateCount struct {
	Date  string  `json:"date"`
	Count FlexInt `json:"count"`
}

// TypeCount - точка серии "eventsByType".
type TypeCount struct {
	Type  string  `json:"type"`
	Count FlexInt `json:"count"`
}

// UsersByRole - распределение пользователей по ролям.
type UsersByRole struct {
	Seeker   *FlexInt `json:"seeker"`
	Employer *FlexInt `json:"employer"`
}

// DashboardStats - ответ GET /admin/dashboard. Все поля необязательны:
// nil-срез означает, что старый бэкенд поле не прислал.
type DashboardStats struct {
	UsersTotal          *FlexInt     `json:"usersTotal"`
	SeekersTotal        *FlexInt     `json:"seekersTotal"`
	EmployersTotal      *FlexInt     `json:"employersTotal"`
	JobsTotal           *FlexInt     `json:"jobsTotal"`
	UsersByRole         *UsersByRole `json:"usersByRole"`
	JobsByCategory      []NamedCount `json:"jobsByCategory"`
	JobsByDay           []DateCount  `json:"jobsByDay"`
	EventsByType        []TypeCount  `json:"eventsByType"`
	LatestEvents        []Event      `json:"latestEvents"`
	EventsSetupRequired bool         `json:"eventsSetupRequired"`
}
