package middleware_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"asimos_admin/internal/auth"
	"asimos_admin/internal/logger"
	"asimos_admin/internal/middleware"
	"asimos_admin/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitWithWriter("test", io.Discard, "error")
}

// clockChecker - проверка токена с фиксированным временем.
type clockChecker struct{ now time.Time }

func (c clockChecker) Usable(token string) bool            { return auth.Usable(token, c.now) }
func (c clockChecker) Inspect(token string) auth.TokenInfo { return auth.Inspect(token) }

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	claims := auth.Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwt.NewNumericDate(exp),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test"))
	require.NoError(t, err)
	return token
}

func TestSafeRedirect(t *testing.T) {
	cases := map[string]string{
		"":                       "/",
		"/jobs":                  "/jobs",
		"/jobs?q=a&edit=1":       "/jobs?q=a&edit=1",
		"jobs":                   "/",
		"//evil.example/x":       "/",
		"/\\evil.example":        "/",
		"https://evil.example/x": "/",
		"/login":                 "/",
		"/login/":                "/",
		"/logout":                "/",
		"  /users  ":             "/users",
	}
	for in, want := range cases {
		assert.Equal(t, want, middleware.SafeRedirect(in), "SafeRedirect(%q)", in)
	}
}

func guardedRouter(checker middleware.TokenChecker) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware())
	r.GET("/jobs", middleware.RequireToken(checker, middleware.CookieOptions{}), func(c *gin.Context) {
		info := middleware.AdminInfo(c)
		ctx := c.Request.Context()
		c.JSON(http.StatusOK, gin.H{
			"subject":  info.Subject,
			"token":    middleware.Token(c),
			"user_id":  logger.GetUserID(ctx),
			"ctx_key":  c.GetString(contextkeys.AdminTokenKey),
		})
	})
	return r
}

func TestRequireToken(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	r := guardedRouter(clockChecker{now: now})

	do := func(token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/jobs?q=x", nil)
		if token != "" {
			req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("No cookie", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?from=%2Fjobs%3Fq%3Dx", w.Header().Get("Location"))
		assert.Empty(t, w.Header().Values("Set-Cookie"))
	})

	t.Run("Expired JWT is cleared", func(t *testing.T) {
		w := do(signedToken(t, "admin-1", now.Add(-time.Minute)))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		setCookie := strings.Join(w.Header().Values("Set-Cookie"), "\n")
		assert.Contains(t, setCookie, auth.CookieName+"=;")
		assert.Contains(t, setCookie, "HttpOnly")
	})

	t.Run("Valid JWT passes with subject", func(t *testing.T) {
		token := signedToken(t, "admin-1", now.Add(time.Hour))
		w := do(token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"admin-1"`)
		assert.Contains(t, w.Body.String(), `"user_id":"admin-1"`)
		assert.Contains(t, w.Body.String(), `"ctx_key":"`+token+`"`)
	})

	t.Run("Opaque token passes", func(t *testing.T) {
		w := do("opaque-token")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"opaque-token"`)
	})
}

func TestCookieOptions(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	middleware.CookieOptions{Secure: true}.SetToken(c, "tok")

	setCookie := w.Header().Get("Set-Cookie")
	assert.Contains(t, setCookie, auth.CookieName+"=tok")
	assert.Contains(t, setCookie, "HttpOnly")
	assert.Contains(t, setCookie, "Secure")
	assert.Contains(t, setCookie, "SameSite=Lax")
	assert.Contains(t, setCookie, "Path=/")
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), middleware.SecurityHeaders())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, logger.GetRequestID(c.Request.Context()))
	})

	t.Run("Incoming id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", w.Body.String())
		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
		assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
	})

	t.Run("Oversized id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, strings.Repeat("x", 100))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Len(t, w.Body.String(), 36)
	})
}

func TestForwardRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://api.example/admin/users", nil)
	require.NoError(t, middleware.ForwardRequestID(context.Background(), req))
	assert.Empty(t, req.Header.Get(middleware.RequestIDHeader))

	ctx := logger.WithRequestID(context.Background(), "req-7")
	require.NoError(t, middleware.ForwardRequestID(ctx, req))
	assert.Equal(t, "req-7", req.Header.Get(middleware.RequestIDHeader))
}
