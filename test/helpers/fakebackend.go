package helpers

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"asimos_admin/internal/models"
	"asimos_admin/pkg/apiclient"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
)

const (
	AdminEmail    = "admin@asimos.local"
	AdminPassword = "secret"
	AdminToken    = "test-admin-token"
)

// RecordedRequest - запрос, который получил фейковый бэкенд.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// JSON декодирует тело запроса в map.
func (r RecordedRequest) JSON(t *testing.T) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("тело запроса %s %s не JSON: %v", r.Method, r.Path, err)
	}
	return m
}

type failure struct {
	status    int
	body      string
	remaining int // 0 - бесконечно
}

// FakeBackend - REST API бэкенда Asimos в памяти (httptest + gin).
type FakeBackend struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
	failures map[string]*failure
	seq      int

	Token        string
	LoginNoToken bool

	Users      []models.Profile
	Jobs       []models.Job
	JobDetails map[string]models.JobDetail

	Categories              []models.Category
	CategoriesSetupRequired bool
	CategoriesHint          string

	Events              []models.Event
	EventsSetupRequired bool
	EventsHint          string

	Dashboard    *models.DashboardStats
	RawDashboard string

	Tickets []models.SupportTicket
	Content map[string]models.ContentPage

	GeocodeResults []map[string]any
	GeocodeStatus  int
}

// NewFakeBackend запускает фейковый бэкенд; он закрывается в t.Cleanup.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	fb := &FakeBackend{
		Token:      AdminToken,
		failures:   make(map[string]*failure),
		JobDetails: make(map[string]models.JobDetail),
		Content:    make(map[string]models.ContentPage),
	}
	fb.Server = httptest.NewServer(fb.router())
	t.Cleanup(fb.Server.Close)
	return fb
}

// URL - адрес фейкового бэкенда.
func (fb *FakeBackend) URL() string {
	return fb.Server.URL
}

// Client - клиент API с токеном администратора и быстрыми повторами.
func (fb *FakeBackend) Client(t *testing.T, opts ...apiclient.Option) *apiclient.Client {
	t.Helper()
	opts = append([]apiclient.Option{
		apiclient.WithTokenSource(apiclient.StaticToken(fb.Token)),
		apiclient.WithRetries(2, time.Millisecond),
	}, opts...)
	c, err := apiclient.New(fb.URL(), opts...)
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}
	return c
}

// Fail заставляет METHOD path отвечать status с телем {"error": message}.
// times == 0 - до вызова ClearFailures.
func (fb *FakeBackend) Fail(method, path string, status int, message string, times int) {
	body, _ := json.Marshal(map[string]string{"error": message})
	fb.FailRaw(method, path, status, string(body), times)
}

// FailRaw - как Fail, но с произвольным телом ответа.
func (fb *FakeBackend) FailRaw(method, path string, status int, body string, times int) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures[method+" "+path] = &failure{status: status, body: body, remaining: times}
}

func (fb *FakeBackend) ClearFailures() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.failures = make(map[string]*failure)
}

// Requests - копия всех полученных запросов.
func (fb *FakeBackend) Requests() []RecordedRequest {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]RecordedRequest(nil), fb.requests...)
}

// RequestsTo - запросы с данным методом и путём.
func (fb *FakeBackend) RequestsTo(method, path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range fb.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// LastRequest - последний запрос METHOD path; тест падает, если его не было.
func (fb *FakeBackend) LastRequest(t *testing.T, method, path string) RecordedRequest {
	t.Helper()
	reqs := fb.RequestsTo(method, path)
	if len(reqs) == 0 {
		t.Fatalf("фейковый бэкенд не получил %s %s", method, path)
	}
	return reqs[len(reqs)-1]
}

func (fb *FakeBackend) nextID(prefix string) string {
	fb.seq++
	return fmt.Sprintf("%s-%d", prefix, fb.seq)
}

// =========================================================================
// Маршруты
// =========================================================================

func (fb *FakeBackend) router() *gin.Engine {
	r := gin.New()
	r.Use(fb.record(), fb.injectFailures())

	r.POST("/admin/login", fb.login)
	r.POST("/auth/register", fb.register)
	r.GET("/categories", fb.publicCategories)
	r.GET("/content/:slug", fb.getContent)
	r.GET("/jobs/:id", fb.getJob)
	r.GET("/search", fb.geocode)

	admin := r.Group("/admin", fb.requireToken())
	{
		admin.GET("/users", fb.listUsers)
		admin.PATCH("/users/:id", fb.updateUser)
		admin.DELETE("/users/:id", fb.deleteUser)

		admin.GET("/jobs", fb.listJobs)
		admin.POST("/jobs", fb.createJob)
		admin.PATCH("/jobs/:id", fb.updateJob)
		admin.DELETE("/jobs/:id", fb.deleteJob)

		admin.GET("/categories", fb.listCategories)
		admin.POST("/categories", fb.createCategory)
		admin.PATCH("/categories/:id", fb.updateCategory)
		admin.DELETE("/categories/:id", fb.deleteCategory)

		admin.GET("/events", fb.listEvents)
		admin.GET("/dashboard", fb.dashboard)

		admin.GET("/support", fb.listTickets)
		admin.GET("/support/:id", fb.getTicket)
		admin.POST("/support/:id/reply", fb.replyTicket)

		admin.PUT("/content/:slug", fb.saveContent)
	}
	return r
}

func (fb *FakeBackend) record() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}
		fb.mu.Lock()
		fb.requests = append(fb.requests, RecordedRequest{
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Query:  c.Request.URL.Query(),
			Header: c.Request.Header.Clone(),
			Body:   body,
		})
		fb.mu.Unlock()
		c.Next()
	}
}

func (fb *FakeBackend) injectFailures() gin.HandlerFunc {
	return func(c *gin.Context) {
		fb.mu.Lock()
		key := c.Request.Method + " " + c.Request.URL.Path
		f, ok := fb.failures[key]
		if ok && f.remaining > 0 {
			f.remaining--
			if f.remaining == 0 {
				delete(fb.failures, key)
			}
		}
		fb.mu.Unlock()
		if ok {
			c.Data(f.status, "application/json", []byte(f.body))
			c.Abort()
			return
		}
		c.Next()
	}
}

func (fb *FakeBackend) requireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "Bearer "+fb.Token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func limitOffset(c *gin.Context, n int) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if offset > n {
		offset = n
	}
	end := n
	if limit > 0 && offset+limit < n {
		end = offset + limit
	}
	return offset, end
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// merge накладывает JSON-патч на значение dst.
func merge(dst any, patch []byte) error {
	current, err := json.Marshal(dst)
	if err != nil {
		return err
	}
	var fields map[string]any
	if err := json.Unmarshal(current, &fields); err != nil {
		return err
	}
	var changes map[string]any
	if err := json.Unmarshal(patch, &changes); err != nil {
		return err
	}
	for k, v := range changes {
		fields[k] = v
	}
	merged, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	// null в патче должен обнулять поле, а не оставлять старое значение
	v := reflect.ValueOf(dst).Elem()
	v.Set(reflect.Zero(v.Type()))
	return json.Unmarshal(merged, dst)
}

// ---- auth ----

func (fb *FakeBackend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	if req.Email != AdminEmail || req.Password != AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid login credentials"})
		return
	}
	if fb.LoginNoToken {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": fb.Token})
}

func (fb *FakeBackend) register(c *gin.Context) {
	var req models.EmployerRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, u := range fb.Users {
		if strings.EqualFold(u.Email, req.Email) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already registered"})
			return
		}
	}
	p := models.Profile{
		ID:          models.ID(fb.nextID("user")),
		FullName:    req.FullName,
		Email:       req.Email,
		Role:        req.Role,
		CompanyName: string(req.CompanyName),
		Phone:       string(req.Phone),
		Status:      models.UserStatusActive,
	}
	fb.Users = append(fb.Users, p)
	c.JSON(http.StatusCreated, gin.H{"profile": gin.H{"id": p.ID}})
}

// ---- users ----

func (fb *FakeBackend) listUsers(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	q, role := c.Query("q"), c.Query("role")
	items := []models.Profile{}
	for _, u := range fb.Users {
		if role != "" && string(u.Role) != role {
			continue
		}
		if q != "" && !containsFold(u.FullName+" "+u.CompanyName+" "+u.Phone, q) {
			continue
		}
		items = append(items, u)
	}
	from, to := limitOffset(c, len(items))
	c.JSON(http.StatusOK, gin.H{"items": items[from:to]})
}

func (fb *FakeBackend) updateUser(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Users {
		if fb.Users[i].ID.String() == c.Param("id") {
			if err := merge(&fb.Users[i], body); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"item": fb.Users[i]})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
}

func (fb *FakeBackend) deleteUser(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Users {
		if fb.Users[i].ID.String() == c.Param("id") {
			fb.Users = append(fb.Users[:i], fb.Users[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
}

// ---- jobs ----

func (fb *FakeBackend) listJobs(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	q := c.Query("q")
	items := []models.Job{}
	for _, j := range fb.Jobs {
		if q != "" && !containsFold(j.Title, q) {
			continue
		}
		items = append(items, j)
	}
	from, to := limitOffset(c, len(items))
	c.JSON(http.StatusOK, gin.H{"items": items[from:to]})
}

func (fb *FakeBackend) createJob(c *gin.Context) {
	var job models.Job
	if err := c.ShouldBindJSON(&job); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	job.ID = models.ID(fb.nextID("job"))
	job.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	fb.Jobs = append(fb.Jobs, job)
	c.JSON(http.StatusCreated, gin.H{"item": job})
}

func (fb *FakeBackend) updateJob(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Jobs {
		if fb.Jobs[i].ID.String() == c.Param("id") {
			if err := merge(&fb.Jobs[i], body); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if d, ok := fb.JobDetails[c.Param("id")]; ok {
				d.Status = fb.Jobs[i].Status
				fb.JobDetails[c.Param("id")] = d
			}
			c.JSON(http.StatusOK, gin.H{"item": fb.Jobs[i]})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
}

func (fb *FakeBackend) deleteJob(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Jobs {
		if fb.Jobs[i].ID.String() == c.Param("id") {
			fb.Jobs = append(fb.Jobs[:i], fb.Jobs[i+1:]...)
			delete(fb.JobDetails, c.Param("id"))
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
}

func (fb *FakeBackend) getJob(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	id := c.Param("id")
	if d, ok := fb.JobDetails[id]; ok {
		c.JSON(http.StatusOK, d)
		return
	}
	for _, j := range fb.Jobs {
		if j.ID.String() == id {
			c.JSON(http.StatusOK, DetailFromJob(j))
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
}

// DetailFromJob - вакансия в формате публичного эндпоинта.
func DetailFromJob(j models.Job) models.JobDetail {
	return models.JobDetail{
		ID:          j.ID,
		Title:       j.Title,
		Category:    j.Category,
		Wage:        j.Wage,
		Status:      j.Status,
		IsDaily:     j.IsDaily,
		CreatedBy:   j.CreatedBy,
		CreatedAt:   j.CreatedAt,
		Description: j.Description,
		Phone:       j.ContactPhone,
		Whatsapp:    j.Whatsapp,
		Link:        j.ContactLink,
		Location: models.JobLocation{
			Lat:     j.LocationLat,
			Lng:     j.LocationLng,
			Address: j.LocationAddress,
		},
	}
}

// ---- categories ----

func (fb *FakeBackend) listCategories(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.CategoriesSetupRequired {
		c.JSON(http.StatusOK, gin.H{"items": []models.Category{}, "categoriesSetupRequired": true, "hint": fb.CategoriesHint})
		return
	}
	q := c.Query("q")
	items := []models.Category{}
	for _, cat := range fb.Categories {
		if q != "" && !containsFold(cat.Name+" "+cat.Slug, q) {
			continue
		}
		items = append(items, cat)
	}
	from, to := limitOffset(c, len(items))
	c.JSON(http.StatusOK, gin.H{"items": items[from:to]})
}

func (fb *FakeBackend) publicCategories(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	items := []models.Category{}
	for _, cat := range fb.Categories {
		if cat.Active() {
			items = append(items, cat)
		}
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (fb *FakeBackend) createCategory(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	cat := models.Category{ID: models.ID(fb.nextID("cat"))}
	if err := merge(&cat, body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fb.Categories = append(fb.Categories, cat)
	c.JSON(http.StatusCreated, gin.H{"item": cat})
}

func (fb *FakeBackend) updateCategory(c *gin.Context) {
	body, _ := io.ReadAll(c.Request.Body)
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Categories {
		if fb.Categories[i].ID.String() == c.Param("id") {
			if err := merge(&fb.Categories[i], body); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"item": fb.Categories[i]})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
}

func (fb *FakeBackend) deleteCategory(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Categories {
		if fb.Categories[i].ID.String() == c.Param("id") {
			fb.Categories = append(fb.Categories[:i], fb.Categories[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
}

// ---- events / dashboard ----

func (fb *FakeBackend) listEvents(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.EventsSetupRequired {
		c.JSON(http.StatusOK, gin.H{"items": []models.Event{}, "eventsSetupRequired": true, "hint": fb.EventsHint})
		return
	}
	typ, actor := c.Query("type"), c.Query("actorId")
	items := []models.Event{}
	for _, e := range fb.Events {
		if typ != "" && e.Type != typ {
			continue
		}
		if actor != "" && e.ActorID.String() != actor {
			continue
		}
		items = append(items, e)
	}
	from, to := limitOffset(c, len(items))
	c.JSON(http.StatusOK, gin.H{"items": items[from:to]})
}

func (fb *FakeBackend) dashboard(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.RawDashboard != "" {
		c.Data(http.StatusOK, "application/json", []byte(fb.RawDashboard))
		return
	}
	if fb.Dashboard == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, fb.Dashboard)
}

// ---- support ----

func (fb *FakeBackend) listTickets(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	items := append([]models.SupportTicket{}, fb.Tickets...)
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (fb *FakeBackend) getTicket(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, t := range fb.Tickets {
		if t.ID.String() == c.Param("id") {
			c.JSON(http.StatusOK, t)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
}

func (fb *FakeBackend) replyTicket(c *gin.Context) {
	var req models.SupportReply
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for i := range fb.Tickets {
		if fb.Tickets[i].ID.String() == c.Param("id") {
			fb.Tickets[i].SupportMessages = append(fb.Tickets[i].SupportMessages, models.SupportMessage{
				ID:        models.ID(fb.nextID("msg")),
				Message:   req.Message,
				IsAdmin:   true,
				CreatedAt: time.Now().UTC().Format(time.RFC3339),
			})
			fb.Tickets[i].Status = models.TicketStatusReplied
			c.JSON(http.StatusOK, gin.H{"ok": true})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
}

// ---- content ----

func (fb *FakeBackend) getContent(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	page, ok := fb.Content[c.Param("slug")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Content not found"})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (fb *FakeBackend) saveContent(c *gin.Context) {
	var in models.ContentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	fb.mu.Lock()
	defer fb.mu.Unlock()
	slug := c.Param("slug")
	fb.Content[slug] = models.ContentPage{Slug: slug, Title: in.Title, Body: in.Body}
	c.JSON(http.StatusOK, fb.Content[slug])
}

// ---- geocoder ----

func (fb *FakeBackend) geocode(c *gin.Context) {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	if fb.GeocodeStatus != 0 && fb.GeocodeStatus != http.StatusOK {
		c.JSON(fb.GeocodeStatus, gin.H{"error": "geocoder unavailable"})
		return
	}
	results := fb.GeocodeResults
	if results == nil {
		results = []map[string]any{}
	}
	c.JSON(http.StatusOK, results)
}
