package handlers

import (
	"context"
	"net/http"
	"strings"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/views"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

type jobEdit struct {
	ID    string
	Form  dto.JobEditForm
	Error string
	Back  string
}

// jobCreate - модальное окно новой вакансии и вложенное окно нового работодателя.
type jobCreate struct {
	Form   dto.JobForm
	Meta   dto.JobFormMeta
	Picker dto.PickerView
	Error  string

	EmployerOpen  bool
	Employer      dto.EmployerForm
	EmployerError string
}

type jobsData struct {
	Query  string
	Jobs   []models.Job
	Edit   *jobEdit
	Create *jobCreate
}

type jobDetailData struct {
	Job *models.JobDetail
}

func (h *JobHandler) RegisterRoutes(r gin.IRouter) {
	jobs := r.Group("/jobs")
	{
		jobs.GET("", h.ListJobs)
		jobs.POST("", h.CreateJob)
		jobs.POST("/employers", h.CreateEmployer)
		jobs.GET("/:id", h.GetJob)
		jobs.POST("/:id", h.UpdateJob)
		jobs.POST("/:id/approve", h.ApproveJob)
		jobs.POST("/:id/status", h.SetStatus)
		jobs.POST("/:id/delete", h.DeleteJob)
	}
}

// --- Список и модальные окна ---

func (h *JobHandler) ListJobs(c *gin.Context) {
	ctx := c.Request.Context()
	q := c.Query("q")
	data := &jobsData{Query: q}
	page := h.NewPage(c, "jobs", "Elanlar", data)

	jobs, err := h.jobService.List(ctx, q)
	if err != nil {
		h.RenderError(c, "jobs", page, err)
		return
	}
	data.Jobs = jobs

	if id := c.Query("edit"); id != "" {
		back := listURL("/jobs", q)
		job, ok := findJob(jobs, id)
		if !ok {
			views.Flash(c, views.ToastError, "Elan tapılmadı")
			c.Redirect(http.StatusSeeOther, back)
			return
		}
		data.Edit = &jobEdit{ID: id, Form: dto.NewJobEditForm(job), Back: back}
	}

	if ParseQueryFlag(c, "new") {
		form := dto.NewJobForm()
		form.CreatedBy = c.Query("created_by")
		data.Create = h.newCreate(ctx, form)
		data.Create.EmployerOpen = ParseQueryFlag(c, "employer")
	}

	h.Render(c, http.StatusOK, "jobs", page)
}

func (h *JobHandler) newCreate(ctx context.Context, form dto.JobForm) *jobCreate {
	return &jobCreate{
		Form:   form,
		Meta:   h.jobService.FormMeta(ctx),
		Picker: dto.NewPickerView(form.LocationLat, form.LocationLng),
	}
}

// renderJobs перерисовывает список с открытым окном и ошибкой формы.
func (h *JobHandler) renderJobs(c *gin.Context, status int, data *jobsData) {
	if jobs, err := h.jobService.List(c.Request.Context(), data.Query); err == nil {
		data.Jobs = jobs
	}
	h.Render(c, status, "jobs", h.NewPage(c, "jobs", "Elanlar", data))
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	var form dto.JobForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.jobService.Create(c.Request.Context(), &form)
	}
	if err == nil {
		h.Done(c, "/jobs", "Elan yaradıldı")
		return
	}

	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	create := h.newCreate(c.Request.Context(), form)
	create.Error = appErr.Message
	h.renderJobs(c, appErr.HTTPCode, &jobsData{Create: create})
}

// CreateEmployer - "+ Employer" из формы вакансии. После успеха форма
// вакансии открывается снова с выбранным новым работодателем.
func (h *JobHandler) CreateEmployer(c *gin.Context) {
	var form dto.EmployerForm
	err := h.BindForm(c, &form)
	var id models.ID
	if err == nil {
		id, err = h.jobService.RegisterEmployer(c.Request.Context(), &form)
	}
	if err == nil {
		target := "/jobs" + string(views.QueryString("new", "1", "created_by", id.String()))
		h.Done(c, target, "Employer yaradıldı")
		return
	}

	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	form.Password = ""
	create := h.newCreate(c.Request.Context(), dto.NewJobForm())
	create.EmployerOpen = true
	create.Employer = form
	create.EmployerError = appErr.Message
	h.renderJobs(c, appErr.HTTPCode, &jobsData{Create: create})
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	id := c.Param("id")
	back := BackURL(c, "/jobs")

	var form dto.JobEditForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.jobService.Update(c.Request.Context(), id, &form)
	}
	if err == nil {
		h.Done(c, back, "Elan yeniləndi")
		return
	}

	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	h.renderJobs(c, appErr.HTTPCode, &jobsData{
		Edit: &jobEdit{ID: id, Form: form, Error: appErr.Message, Back: back},
	})
}

// --- Детальная страница ---

func (h *JobHandler) GetJob(c *gin.Context) {
	data := &jobDetailData{}
	page := h.NewPage(c, "jobs", "Elan", data)

	job, err := h.jobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.RenderError(c, "job_detail", page, err)
		return
	}
	data.Job = job
	page.Title = job.Title
	page.AddCrumb(job.Title)
	h.Render(c, http.StatusOK, "job_detail", page)
}

// --- Изменение статуса и удаление ---

func (h *JobHandler) ApproveJob(c *gin.Context) {
	back := h.jobsBack(c)
	if err := h.jobService.Approve(c.Request.Context(), c.Param("id")); err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "Elan təsdiqləndi")
}

// SetStatus: форма детальной страницы присылает return=detail и
// возвращается на ту же страницу.
func (h *JobHandler) SetStatus(c *gin.Context) {
	id := c.Param("id")
	back := h.jobsBack(c)
	if c.PostForm("return") == "detail" {
		back = "/jobs/" + id
	}

	var form dto.JobStatusForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.jobService.SetStatus(c.Request.Context(), id, &form)
	}
	if err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "Status: "+models.JobStatus(form.Status).Label())
}

// DeleteJob всегда возвращает к списку: детальной страницы больше нет.
func (h *JobHandler) DeleteJob(c *gin.Context) {
	back := h.jobsBack(c)
	if err := h.jobService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "Elan silindi")
}

// jobsBack - список вакансий с поиском из Referer; детальная страница не подходит.
func (h *JobHandler) jobsBack(c *gin.Context) string {
	back := BackURL(c, "/jobs")
	if back == "/jobs" || strings.HasPrefix(back, "/jobs?") {
		return back
	}
	return "/jobs"
}

func findJob(jobs []models.Job, id string) (models.Job, bool) {
	for _, j := range jobs {
		if j.ID.String() == id {
			return j, true
		}
	}
	return models.Job{}, false
}
