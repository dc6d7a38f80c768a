package models

import "strings"

// DefaultNotifyRadiusM - радиус уведомлений для новых вакансий, в метрах.
const DefaultNotifyRadiusM = 500

// Job - вакансия в формате админского списка (/admin/jobs).
type Job struct {
	ID              ID         `json:"id"`
	Title           string     `json:"title"`
	Category        string     `json:"category"`
	Wage            FlexString `json:"wage"`
	Status          JobStatus  `json:"status"`
	IsDaily         bool       `json:"is_daily"`
	LocationLat     Coordinate `json:"location_lat"`
	LocationLng     Coordinate `json:"location_lng"`
	LocationAddress string     `json:"location_address"`
	Whatsapp        string     `json:"whatsapp"`
	ContactPhone    string     `json:"contact_phone"`
	ContactLink     string     `json:"contact_link"`
	Description     string     `json:"description"`
	NotifyRadiusM   FlexInt    `json:"notify_radius_m"`
	CreatedBy       ID         `json:"created_by"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at,omitempty"`
}

// HasLocation - обе координаты распознаны как конечные числа.
func (j Job) HasLocation() bool {
	return j.LocationLat.Valid && j.LocationLng.Valid
}

// CategoryKey - категория без пробелов по краям, для фильтров карты.
func (j Job) CategoryKey() string {
	return strings.TrimSpace(j.Category)
}

// JobCreate - POST /admin/jobs.
type JobCreate struct {
	CreatedBy       string     `json:"created_by"`
	Title           string     `json:"title"`
	Category        NullString `json:"category"`
	Wage            NullString `json:"wage"`
	Whatsapp        NullString `json:"whatsapp"`
	ContactPhone    NullString `json:"contact_phone"`
	ContactLink     NullString `json:"contact_link"`
	Description     string     `json:"description"`
	IsDaily         bool       `json:"is_daily"`
	NotifyRadiusM   NullInt    `json:"notify_radius_m"`
	LocationLat     Coordinate `json:"location_lat"`
	LocationLng     Coordinate `json:"location_lng"`
	LocationAddress NullString `json:"location_address"`
	Status          JobStatus  `json:"status"`
}

// JobUpdate - PATCH /admin/jobs/:id из формы редактирования.
type JobUpdate struct {
	Status          JobStatus  `json:"status"`
	Title           string     `json:"title"`
	Category        NullString `json:"category"`
	Wage            NullString `json:"wage"`
	Whatsapp        NullString `json:"whatsapp"`
	ContactPhone    NullString `json:"contact_phone"`
	ContactLink     NullString `json:"contact_link"`
	Description     string     `json:"description"`
	IsDaily         bool       `json:"is_daily"`
	NotifyRadiusM   NullInt    `json:"notify_radius_m"`
	LocationAddress NullString `json:"location_address"`
}

// JobStatusUpdate - PATCH только со статусом (одобрение, закрытие).
type JobStatusUpdate struct {
	Status JobStatus `json:"status"`
}

// JobLocation - вложенная локация публичного эндпоинта.
type JobLocation struct {
	Lat     Coordinate `json:"lat"`
	Lng     Coordinate `json:"lng"`
	Address string     `json:"address"`
}

// JobDetail - вакансия в формате публичного GET /jobs/:id (camelCase).
type JobDetail struct {
	ID           ID          `json:"id"`
	Title        string      `json:"title"`
	Category     string      `json:"category"`
	Wage         FlexString  `json:"wage"`
	Status       JobStatus   `json:"status"`
	JobType      string      `json:"jobType"`
	DurationDays FlexInt     `json:"durationDays"`
	IsDaily      bool        `json:"isDaily"`
	CreatedBy    ID          `json:"createdBy"`
	CreatedAt    string      `json:"createdAt"`
	ExpiresAt    string      `json:"expiresAt"`
	Description  string      `json:"description"`
	Phone        string      `json:"phone"`
	Whatsapp     string      `json:"whatsapp"`
	Link         string      `json:"link"`
	Voen         string      `json:"voen"`
	Location     JobLocation `json:"location"`
}

// HasLocation - карта на странице вакансии показывается только с ненулевыми координатами.
func (j JobDetail) HasLocation() bool {
	return j.Location.Lat.Valid && j.Location.Lng.Valid &&
		j.Location.Lat.Value != 0 && j.Location.Lng.Value != 0
}

// IsTemporary - временная работа с ограниченным сроком.
func (j JobDetail) IsTemporary() bool {
	return j.JobType == "temporary"
}
