package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsersPage(t *testing.T) {
	ts := newConsole(t)
	ts.Backend.SeedUsers()

	t.Run("List forwards search and role", func(t *testing.T) {
		resp := ts.Get(t, "/users?q=kamran&role=employer")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Body, "Kamran Əliyev")
		assert.NotContains(t, resp.Body, "Aysel Məmmədova")

		req := ts.Backend.LastRequest(t, http.MethodGet, "/admin/users")
		assert.Equal(t, "kamran", req.Query.Get("q"))
		assert.Equal(t, "employer", req.Query.Get("role"))
		assert.Equal(t, "50", req.Query.Get("limit"))
	})

	t.Run("Edit modal opens for listed user", func(t *testing.T) {
		resp := ts.Get(t, "/users?edit=u-2")
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Body, "Kamran MMC")
		assert.Contains(t, resp.Body, `action="/users/u-2"`)
	})

	t.Run("Edit of unknown user returns to list with toast", func(t *testing.T) {
		resp := ts.Get(t, "/users?edit=missing&q=a")
		requireRedirect(t, resp, "/users?q=a")

		page := followFlash(t, ts, resp)
		assert.Contains(t, page.Body, "İstifadəçi tapılmadı")
	})

	t.Run("Update writes every field and nulls empty company", func(t *testing.T) {
		resp := ts.PostFrom(t, "/users/u-2", "/users?q=kamran&edit=u-2", form(
			"role", "employer",
			"full_name", "Kamran Ə.",
			"company_name", "",
			"phone", "+994550000000",
		))
		requireRedirect(t, resp, "/users?q=kamran")

		body := ts.Backend.LastRequest(t, http.MethodPatch, "/admin/users/u-2").JSON(t)
		assert.Equal(t, "employer", body["role"])
		assert.Equal(t, "Kamran Ə.", body["full_name"])
		assert.Contains(t, body, "company_name")
		assert.Nil(t, body["company_name"])
		assert.Equal(t, "+994550000000", body["phone"])

		page := followFlash(t, ts, resp)
		assert.Contains(t, page.Body, "İstifadəçi yeniləndi")
	})

	t.Run("Update with invalid role keeps modal open", func(t *testing.T) {
		before := len(ts.Backend.RequestsTo(http.MethodPatch, "/admin/users/u-1"))
		resp := ts.Post(t, "/users/u-1", form("role", "root", "full_name", "X"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Body, "banner-error")
		assert.Contains(t, resp.Body, `action="/users/u-1"`)
		assert.Len(t, ts.Backend.RequestsTo(http.MethodPatch, "/admin/users/u-1"), before)
	})

	t.Run("Failed update redraws list with the same filter", func(t *testing.T) {
		resp := ts.PostFrom(t, "/users/u-2", "/users?q=kamran&role=employer&edit=u-2", form("role", "root", "full_name", "Kamran"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, resp.Body, `name="q" value="kamran"`)
		assert.Contains(t, resp.Body, `value="employer" selected`)
		assert.NotContains(t, resp.Body, "Aysel Məmmədova")

		req := ts.Backend.LastRequest(t, http.MethodGet, "/admin/users")
		assert.Equal(t, "kamran", req.Query.Get("q"))
		assert.Equal(t, "employer", req.Query.Get("role"))
	})

	t.Run("Status change sends only status", func(t *testing.T) {
		resp := ts.Post(t, "/users/u-4/status", form("status", "active"))
		requireRedirect(t, resp, "/users")

		body := ts.Backend.LastRequest(t, http.MethodPatch, "/admin/users/u-4").JSON(t)
		assert.Equal(t, map[string]any{"status": "active"}, body)
	})

	t.Run("Unknown status is rejected with toast", func(t *testing.T) {
		resp := ts.Post(t, "/users/u-4/status", form("status", "banned"))
		requireRedirect(t, resp, "/users")
		page := followFlash(t, ts, resp)
		assert.Contains(t, page.Body, "toast-error")
	})

	t.Run("Backend error becomes toast", func(t *testing.T) {
		ts.Backend.Fail(http.MethodDelete, "/admin/users/u-3", http.StatusConflict, "User has jobs", 1)
		resp := ts.Post(t, "/users/u-3/delete", nil)
		requireRedirect(t, resp, "/users")
		page := followFlash(t, ts, resp)
		assert.Contains(t, page.Body, "User has jobs")
	})

	t.Run("Delete removes user", func(t *testing.T) {
		resp := ts.Post(t, "/users/u-3/delete", nil)
		requireRedirect(t, resp, "/users")
		assert.NotEmpty(t, ts.Backend.RequestsTo(http.MethodDelete, "/admin/users/u-3"))

		page := ts.Get(t, "/users")
		assert.NotContains(t, page.Body, "Nigar Həsənova")
	})

	t.Run("List error renders banner", func(t *testing.T) {
		ts.Backend.Fail(http.MethodGet, "/admin/users", http.StatusInternalServerError, "db down", 1)
		resp := ts.Get(t, "/users")
		assert.GreaterOrEqual(t, resp.StatusCode, http.StatusInternalServerError)
		assert.Contains(t, resp.Body, "banner-error")
	})
}
