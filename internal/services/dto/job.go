package dto

import (
	"strconv"
	"strings"

	"asimos_admin/internal/models"
)

// JobsPageLimit - размер списка на странице вакансий.
const JobsPageLimit = 50

// DefaultPhonePrefix - префикс телефонных полей новой вакансии.
const DefaultPhonePrefix = "+994"

// JobForm - создание вакансии. Порядок полей задаёт порядок проверок.
type JobForm struct {
	Title           string `form:"title" json:"title" validate:"notblank"`
	CreatedBy       string `form:"created_by" json:"created_by" validate:"notblank"`
	LocationLat     string `form:"location_lat" json:"location_lat" validate:"notblank"`
	LocationLng     string `form:"location_lng" json:"location_lng" validate:"notblank"`
	Category        string `form:"category" json:"category"`
	Wage            string `form:"wage" json:"wage"`
	Whatsapp        string `form:"whatsapp" json:"whatsapp"`
	ContactPhone    string `form:"contact_phone" json:"contact_phone"`
	ContactLink     string `form:"contact_link" json:"contact_link"`
	Description     string `form:"description" json:"description"`
	IsDaily         bool   `form:"is_daily" json:"is_daily"`
	NotifyRadiusM   string `form:"notify_radius_m" json:"notify_radius_m"`
	LocationAddress string `form:"location_address" json:"location_address"`
}

const msgJobLocation = "Lokasiya seçilməlidir (xəritədən seçin)"

func (JobForm) ValidationMessages() map[string]string {
	return map[string]string{
		"title":        "Başlıq boş ola bilməz",
		"created_by":   "Elanı hansı işçi axtaran (employer) adına yaratmaq lazımdır?",
		"location_lat": msgJobLocation,
		"location_lng": msgJobLocation,
	}
}

// LocationMessage - текст ошибки для нераспознанных координат.
func (JobForm) LocationMessage() string {
	return msgJobLocation
}

// NewJobForm - пустая форма с префиксами телефонов и радиусом по умолчанию.
func NewJobForm() JobForm {
	return JobForm{
		Whatsapp:      DefaultPhonePrefix,
		ContactPhone:  DefaultPhonePrefix,
		NotifyRadiusM: strconv.Itoa(models.DefaultNotifyRadiusM),
	}
}

// Location - координаты формы; ok == false, если хотя бы одна не число.
func (f JobForm) Location() (lat, lng models.Coordinate, ok bool) {
	lat = models.ParseCoordinate(f.LocationLat)
	lng = models.ParseCoordinate(f.LocationLng)
	return lat, lng, lat.Valid && lng.Valid
}

// Payload - тело POST /admin/jobs. Новая вакансия сразу открыта.
func (f JobForm) Payload() models.JobCreate {
	lat, lng, _ := f.Location()
	return models.JobCreate{
		CreatedBy:       strings.TrimSpace(f.CreatedBy),
		Title:           f.Title,
		Category:        models.NullString(f.Category),
		Wage:            models.NullString(f.Wage),
		Whatsapp:        models.NullString(f.Whatsapp),
		ContactPhone:    models.NullString(f.ContactPhone),
		ContactLink:     models.NullString(f.ContactLink),
		Description:     f.Description,
		IsDaily:         f.IsDaily,
		NotifyRadiusM:   models.ParseNullInt(f.NotifyRadiusM),
		LocationLat:     lat,
		LocationLng:     lng,
		LocationAddress: models.NullString(f.LocationAddress),
		Status:          models.JobStatusOpen,
	}
}

// JobEditForm - редактирование вакансии из списка.
type JobEditForm struct {
	Status          string `form:"status" json:"status" validate:"required,is-job-status"`
	Title           string `form:"title" json:"title"`
	Category        string `form:"category" json:"category"`
	Wage            string `form:"wage" json:"wage"`
	Whatsapp        string `form:"whatsapp" json:"whatsapp"`
	ContactPhone    string `form:"contact_phone" json:"contact_phone"`
	ContactLink     string `form:"contact_link" json:"contact_link"`
	Description     string `form:"description" json:"description"`
	IsDaily         bool   `form:"is_daily" json:"is_daily"`
	NotifyRadiusM   string `form:"notify_radius_m" json:"notify_radius_m"`
	LocationAddress string `form:"location_address" json:"location_address"`
}

// NewJobEditForm заполняет форму редактирования значениями вакансии.
func NewJobEditForm(j models.Job) JobEditForm {
	f := JobEditForm{
		Status:          string(j.Status),
		Title:           j.Title,
		Category:        j.Category,
		Wage:            j.Wage.String(),
		Whatsapp:        j.Whatsapp,
		ContactPhone:    j.ContactPhone,
		ContactLink:     j.ContactLink,
		Description:     j.Description,
		IsDaily:         j.IsDaily,
		LocationAddress: j.LocationAddress,
	}
	if f.Status == "" {
		f.Status = string(models.JobStatusOpen)
	}
	if f.ContactPhone == "" {
		f.ContactPhone = DefaultPhonePrefix
	}
	if j.NotifyRadiusM != 0 {
		f.NotifyRadiusM = strconv.Itoa(j.NotifyRadiusM.Int())
	}
	return f
}

// Patch - тело PATCH /admin/jobs/:id.
func (f JobEditForm) Patch() models.JobUpdate {
	return models.JobUpdate{
		Status:          models.JobStatus(f.Status),
		Title:           f.Title,
		Category:        models.NullString(f.Category),
		Wage:            models.NullString(f.Wage),
		Whatsapp:        models.NullString(f.Whatsapp),
		ContactPhone:    models.NullString(f.ContactPhone),
		ContactLink:     models.NullString(f.ContactLink),
		Description:     f.Description,
		IsDaily:         f.IsDaily,
		NotifyRadiusM:   models.ParseNullInt(f.NotifyRadiusM),
		LocationAddress: models.NullString(f.LocationAddress),
	}
}

type JobStatusForm struct {
	Status string `form:"status" json:"status" validate:"required,is-job-status"`
}

// JobFormMeta - справочники формы создания вакансии.
type JobFormMeta struct {
	Employers  []models.Profile
	Categories []string
}
