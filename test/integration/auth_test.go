package integration_test

import (
	"net/http"
	"testing"

	"asimos_admin/internal/auth"
	"asimos_admin/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	ts := newConsole(t)

	t.Run("Guarded page without token redirects to login", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodGet, "/jobs?q=cook", "", nil)
		requireRedirect(t, resp, "/login?from=%2Fjobs%3Fq%3Dcook")
	})

	t.Run("Dashboard without token redirects to bare login", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodGet, "/", "", nil)
		requireRedirect(t, resp, "/login")
	})

	t.Run("Login page renders form", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodGet, "/login?from=/users", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Body, `name="email"`)
		assert.Contains(t, resp.Body, `value="/users"`)
	})

	t.Run("Wrong password shows banner and keeps email", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodPost, "/login", "", form(
			"email", helpers.AdminEmail,
			"password", "wrong",
		))
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, resp.Body, "banner-error")
		assert.Contains(t, resp.Body, helpers.AdminEmail)
		assert.Nil(t, resp.Cookie(auth.CookieName))
	})

	t.Run("Empty fields are rejected before the backend is called", func(t *testing.T) {
		before := len(ts.Backend.RequestsTo(http.MethodPost, "/admin/login"))
		resp := ts.SendRequest(t, http.MethodPost, "/login", "", form("email", " ", "password", ""))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Len(t, ts.Backend.RequestsTo(http.MethodPost, "/admin/login"), before)
	})

	t.Run("Successful login sets HttpOnly cookie and follows from", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodPost, "/login", "", form(
			"email", helpers.AdminEmail,
			"password", helpers.AdminPassword,
			"from", "/jobs?q=x",
		))
		requireRedirect(t, resp, "/jobs?q=x")
		c := resp.Cookie(auth.CookieName)
		require.NotNil(t, c)
		assert.Equal(t, helpers.AdminToken, c.Value)
		assert.True(t, c.HttpOnly)
	})

	t.Run("External from is replaced by dashboard", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodPost, "/login", "", form(
			"email", helpers.AdminEmail,
			"password", helpers.AdminPassword,
			"from", "https://evil.example/",
		))
		requireRedirect(t, resp, "/")
	})

	t.Run("Login page with token goes straight to from", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodGet, "/login?from=/events", helpers.AdminToken, nil)
		requireRedirect(t, resp, "/events")
	})

	t.Run("Backend without token in response is a login error", func(t *testing.T) {
		ts.Backend.LoginNoToken = true
		defer func() { ts.Backend.LoginNoToken = false }()

		resp := ts.SendRequest(t, http.MethodPost, "/login", "", form(
			"email", helpers.AdminEmail,
			"password", helpers.AdminPassword,
		))
		assert.NotEqual(t, http.StatusSeeOther, resp.StatusCode)
		assert.Nil(t, resp.Cookie(auth.CookieName))
	})

	t.Run("Logout clears cookie", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodPost, "/logout", helpers.AdminToken, form())
		requireRedirect(t, resp, "/login")
		c := resp.Cookie(auth.CookieName)
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
		assert.Less(t, c.MaxAge, 0)
	})

	t.Run("Token rejected by backend clears cookie", func(t *testing.T) {
		resp := ts.SendRequest(t, http.MethodGet, "/users", "stale-token", nil)
		requireRedirect(t, resp, "/login?from=%2Fusers")
		c := resp.Cookie(auth.CookieName)
		require.NotNil(t, c)
		assert.Empty(t, c.Value)
	})

	t.Run("Unknown path goes to dashboard", func(t *testing.T) {
		resp := ts.Get(t, "/nope")
		requireRedirect(t, resp, "/")
	})
}
