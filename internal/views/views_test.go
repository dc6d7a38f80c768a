package views_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard, "error")
}

func TestNewRenderer_ParsesAllPages(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)

	pages := r.Pages()
	sort.Strings(pages)
	assert.Equal(t, []string{
		"categories", "content", "dashboard", "events", "job_detail", "jobs",
		"login", "map", "support", "support_ticket", "users",
	}, pages)
}

func TestRender(t *testing.T) {
	r, err := views.NewRenderer()
	require.NoError(t, err)

	t.Run("Unknown template", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		r.Render(c, http.StatusOK, "nope", views.NewPage("dashboard", "X", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Flash from previous request is shown once", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/users/u-1", nil)
		views.Flash(c, views.ToastSuccess, "Saxlanıldı")
		views.Flash(c, views.ToastError, "<b>xəta</b>")
		flash := w.Result().Cookies()
		require.NotEmpty(t, flash)

		w = httptest.NewRecorder()
		c, _ = gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/login", nil)
		c.Request.AddCookie(flash[len(flash)-1])

		r.Render(c, http.StatusUnauthorized, "login", views.NewPage("login", "Giriş", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `toast toast-success`)
		assert.Contains(t, body, "Saxlanıldı")
		assert.Contains(t, body, "&lt;b&gt;xəta&lt;/b&gt;")
		assert.Contains(t, w.Header().Get("Set-Cookie"), views.FlashCookie+"=;")
	})
}

func TestPopFlash(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, views.PopFlash(c))
	assert.Empty(t, w.Header().Values("Set-Cookie"))

	c.Request.AddCookie(&http.Cookie{Name: views.FlashCookie, Value: "not-base64!"})
	assert.Empty(t, views.PopFlash(c))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15.10.2026 16:30", views.FormatDate("2026-10-15T12:30:00Z"))
	assert.Equal(t, "15.10.2026 16:30", views.FormatDate("2026-10-15T12:30:00.123456"))
	assert.Equal(t, "15.10.2026", views.FormatDay("2026-10-15T12:30:00Z"))
	assert.Equal(t, "-", views.FormatDate(""))
	assert.Equal(t, "dünən", views.FormatDate("dünən"))
}

func TestTextHelpers(t *testing.T) {
	assert.Equal(t, "Auth Login", views.Humanize("auth_login"))
	assert.Equal(t, "-", views.OrDash("  "))
	assert.Equal(t, "abc", views.OrDash("abc"))
	assert.Equal(t, "Bakı…", views.Truncate(4, "Bakı şəhəri"))
	assert.Equal(t, "Bakı", views.Truncate(4, "Bakı"))
}

func TestBarWidth(t *testing.T) {
	assert.Equal(t, 0, views.BarWidth(5, 0))
	assert.Equal(t, 0, views.BarWidth(0, 10))
	assert.Equal(t, 2, views.BarWidth(1, 1000))
	assert.Equal(t, 50, views.BarWidth(5, 10))
	assert.Equal(t, 100, views.BarWidth(10, 10))
}

func TestJSONData(t *testing.T) {
	js, err := views.JSONData(map[string]string{"title": "</script><b>"})
	require.NoError(t, err)
	assert.NotContains(t, string(js), "</script>")
	assert.True(t, strings.HasPrefix(string(js), "{"))
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "?q=a+b&role=admin", string(views.QueryString("role", "admin", "q", "a b", "status", "")))
	assert.Empty(t, string(views.QueryString("q", "")))
	assert.Empty(t, string(views.QueryString("odd")))
}

func TestNewPage(t *testing.T) {
	p := views.NewPage("jobs", "Elanlar", nil).AddCrumb("Ofisiant")
	require.Len(t, p.Breadcrumb, 3)
	assert.Equal(t, views.Crumb{Label: "Admin", Href: "/"}, p.Breadcrumb[0])
	assert.Equal(t, views.Crumb{Label: "Elanlar", Href: "/jobs"}, p.Breadcrumb[1])
	assert.Equal(t, "Ofisiant", p.Breadcrumb[2].Label)
	assert.Empty(t, p.Breadcrumb[2].Href)

	dash := views.NewPage("dashboard", "Dashboard", nil)
	assert.Len(t, dash.Breadcrumb, 1)
	assert.Len(t, dash.Nav(), len(views.Navigation))
}

func TestStatic(t *testing.T) {
	f, err := views.Static().Open("app.css")
	require.NoError(t, err)
	defer f.Close()
}
