package helpers

import (
	"fmt"

	"asimos_admin/internal/models"

	"gorm.io/datatypes"
)

func boolPtr(v bool) *bool { return &v }

func flexPtr(v int) *models.FlexInt {
	n := models.FlexInt(v)
	return &n
}

// SeedUsers добавляет двух соискателей и двух работодателей.
func (fb *FakeBackend) SeedUsers() []models.Profile {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Users = append(fb.Users,
		models.Profile{ID: "u-1", FullName: "Aysel Məmmədova", Email: "aysel@example.az", Role: models.UserRoleSeeker, Phone: "+994501112233", Status: models.UserStatusActive},
		models.Profile{ID: "u-2", FullName: "Kamran Əliyev", Email: "kamran@example.az", Role: models.UserRoleEmployer, CompanyName: "Kamran MMC", Phone: "+994552223344", Status: models.UserStatusActive},
		models.Profile{ID: "u-3", FullName: "Nigar Həsənova", Email: "nigar@example.az", Role: "Employer", CompanyName: "Nigar Café", Status: models.UserStatusPending},
		models.Profile{ID: "u-4", FullName: "Rauf Quliyev", Email: "rauf@example.az", Role: models.UserRoleSeeker, Status: models.UserStatusSuspended},
	)
	return append([]models.Profile(nil), fb.Users...)
}

// SeedJobs добавляет вакансии с координатами, без координат и без категории.
func (fb *FakeBackend) SeedJobs() []models.Job {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Jobs = append(fb.Jobs,
		models.Job{ID: "job-a", Title: "Ofisiant", Category: "Restoran", Wage: "600", Status: models.JobStatusOpen,
			LocationLat: models.NewCoordinate(40.3777), LocationLng: models.NewCoordinate(49.892),
			LocationAddress: "Nizami küç., Səbail, Bakı, Azerbaijan", CreatedBy: "u-2", CreatedAt: "2026-10-01T09:00:00Z", NotifyRadiusM: 500},
		models.Job{ID: "job-b", Title: "Aşpaz", Category: " Restoran ", Wage: "900", Status: models.JobStatusPending,
			LocationLat: models.NewCoordinate(40.41), LocationLng: models.NewCoordinate(49.95),
			LocationAddress: "Nərimanov, Bakı", CreatedBy: "u-2", CreatedAt: "2026-10-02T10:30:00Z"},
		models.Job{ID: "job-c", Title: "Kuryer", Category: "", Status: models.JobStatusOpen,
			LocationAddress: "Gəncə", CreatedBy: "u-3", CreatedAt: "2026-10-01T18:00:00Z"},
		models.Job{ID: "job-d", Title: "Satıcı", Category: "Mağaza", Status: models.JobStatusClosed,
			LocationLat: models.NewCoordinate(40.68), LocationLng: models.NewCoordinate(46.36),
			LocationAddress: "Azərbaycan", CreatedBy: "u-3", CreatedAt: "2026-09-30T08:00:00Z", IsDaily: true},
	)
	return append([]models.Job(nil), fb.Jobs...)
}

// SeedManyJobs добавляет n однотипных вакансий (для проверки постраничной выгрузки).
func (fb *FakeBackend) SeedManyJobs(n int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := 0; i < n; i++ {
		fb.Jobs = append(fb.Jobs, models.Job{
			ID:              models.ID(fmt.Sprintf("bulk-%d", i)),
			Title:           fmt.Sprintf("Vakansiya %d", i),
			Category:        "Tikinti",
			Status:          models.JobStatusOpen,
			LocationAddress: "Sumqayıt",
			CreatedAt:       "2026-10-05T12:00:00Z",
		})
	}
}

// SeedCategories добавляет дерево: два корня, дочерние и сироту.
func (fb *FakeBackend) SeedCategories() []models.Category {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Categories = append(fb.Categories,
		models.Category{ID: "c-rest", Name: "Restoran", Slug: "restoran", Sort: 1, IsActive: boolPtr(true)},
		models.Category{ID: "c-shop", Name: "Mağaza", Slug: "magaza", Sort: 0, IsActive: boolPtr(true)},
		models.Category{ID: "c-cook", Name: "Aşpaz", Slug: "aspaz", Sort: 0, ParentID: "c-rest", IsActive: boolPtr(true)},
		models.Category{ID: "c-wait", Name: "Ofisiant", Slug: "ofisiant", Sort: 0, ParentID: "c-rest", IsActive: boolPtr(false)},
		models.Category{ID: "c-orphan", Name: "Köhnə", Slug: "kohne", Sort: 0, ParentID: "c-deleted"},
	)
	return append([]models.Category(nil), fb.Categories...)
}

// SeedEvents добавляет события разных типов.
func (fb *FakeBackend) SeedEvents() []models.Event {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Events = append(fb.Events,
		models.Event{ID: "e-1", Type: "auth_login", ActorID: "u-1", Metadata: datatypes.JSON(`{ "platform": "ios" }`), CreatedAt: "2026-10-05T08:00:00Z"},
		models.Event{ID: "e-2", Type: "job_create", ActorID: "u-2", Metadata: datatypes.JSON(`{"job_id":"job-a"}`), CreatedAt: "2026-10-05T09:00:00Z"},
		models.Event{ID: "e-3", Type: "auth_login", ActorID: "u-2", CreatedAt: "2026-10-05T10:00:00Z"},
	)
	return append([]models.Event(nil), fb.Events...)
}

// SeedDashboard задаёт полный ответ /admin/dashboard.
func (fb *FakeBackend) SeedDashboard() *models.DashboardStats {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Dashboard = &models.DashboardStats{
		UsersTotal:     flexPtr(4),
		SeekersTotal:   flexPtr(2),
		EmployersTotal: flexPtr(2),
		JobsTotal:      flexPtr(4),
		UsersByRole:    &models.UsersByRole{Seeker: flexPtr(2), Employer: flexPtr(2)},
		JobsByCategory: []models.NamedCount{{Name: "Restoran", Count: 2}, {Name: "Mağaza", Count: 1}},
		JobsByDay:      []models.DateCount{{Date: "2026-10-01", Count: 2}, {Date: "2026-10-02", Count: 1}},
		EventsByType:   []models.TypeCount{{Type: "auth_login", Count: 2}},
		LatestEvents:   []models.Event{{ID: "e-3", Type: "auth_login", ActorID: "u-2", CreatedAt: "2026-10-05T10:00:00Z"}},
	}
	return fb.Dashboard
}

// SeedTickets добавляет открытое обращение и обращение с ответом.
func (fb *FakeBackend) SeedTickets() []models.SupportTicket {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Tickets = append(fb.Tickets,
		models.SupportTicket{ID: "t-1", Subject: "Elan görünmür", Message: "Elanım siyahıda yoxdur", Status: models.TicketStatusOpen,
			Profiles: &models.TicketProfile{FullName: "Aysel Məmmədova", Email: "aysel@example.az", Phone: "+994501112233"}, CreatedAt: "2026-10-06T07:00:00Z"},
		models.SupportTicket{ID: "t-2", Subject: "Ödəniş", Message: "Sual", Status: models.TicketStatusReplied, CreatedAt: "2026-10-04T07:00:00Z",
			SupportMessages: []models.SupportMessage{{ID: "m-1", Message: "Salam, baxırıq", IsAdmin: true, CreatedAt: "2026-10-04T08:00:00Z"}}},
	)
	return append([]models.SupportTicket(nil), fb.Tickets...)
}

// SeedContent добавляет страницу правил; privacy остаётся отсутствующей.
func (fb *FakeBackend) SeedContent() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.Content[models.ContentSlugTerms] = models.ContentPage{Slug: models.ContentSlugTerms, Title: "İstifadə qaydaları", Body: "Qaydalar mətni"}
}
