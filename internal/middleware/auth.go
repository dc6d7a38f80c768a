package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"asimos_admin/internal/auth"
	"asimos_admin/internal/logger"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath  = "/login"
	LogoutPath = "/logout"

	tokenCookieMaxAge = 7 * 24 * 60 * 60
)

// TokenChecker - проверка токена администратора (реализуется AuthService).
type TokenChecker interface {
	Usable(token string) bool
	Inspect(token string) auth.TokenInfo
}

// =========================================================================
// Cookie токена
// =========================================================================

// CookieOptions - атрибуты cookie консоли.
type CookieOptions struct {
	Secure bool
}

func (o CookieOptions) SetToken(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, tokenCookieMaxAge, "/", "", o.Secure, true)
}

func (o CookieOptions) ClearToken(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, "", -1, "/", "", o.Secure, true)
}

// Token - токен из cookie; пустая строка, если cookie нет.
func Token(c *gin.Context) string {
	token, err := c.Cookie(auth.CookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(token)
}

// =========================================================================
// Route guard
// =========================================================================

// RequireToken пропускает запрос только с действующим токеном. Без токена
// (или с просроченным JWT) - 303 на /login?from=<запрошенный путь>,
// просроченная cookie удаляется.
func RequireToken(checker TokenChecker, cookies CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := Token(c)
		if !checker.Usable(token) {
			if token != "" {
				logger.CtxInfo(c.Request.Context(), "admin token expired", "path", c.Request.URL.Path)
				cookies.ClearToken(c)
			}
			RedirectToLogin(c)
			return
		}

		info := checker.Inspect(token)
		ctx := apiclient.ContextWithToken(c.Request.Context(), token)
		if info.Subject != "" {
			ctx = logger.WithUserID(ctx, info.Subject)
		}
		c.Request = c.Request.WithContext(ctx)
		c.Set(contextkeys.AdminTokenKey, token)
		c.Set(contextkeys.AdminInfoKey, info)
		c.Next()
	}
}

// RedirectToLogin прерывает запрос и отправляет на логин с возвратом на текущую страницу.
func RedirectToLogin(c *gin.Context) {
	target := LoginPath
	if from := SafeRedirect(c.Request.URL.RequestURI()); from != "/" {
		target += "?from=" + url.QueryEscape(from)
	}
	c.Redirect(http.StatusSeeOther, target)
	c.Abort()
}

// AdminInfo - разобранный токен текущего запроса.
func AdminInfo(c *gin.Context) auth.TokenInfo {
	if v, ok := c.Get(contextkeys.AdminInfoKey); ok {
		if info, ok := v.(auth.TokenInfo); ok {
			return info
		}
	}
	return auth.TokenInfo{}
}

// SafeRedirect оставляет только локальный путь консоли. Абсолютные URL,
// "//host", логин и логаут заменяются на "/".
func SafeRedirect(from string) string {
	from = strings.TrimSpace(from)
	if from == "" || !strings.HasPrefix(from, "/") || strings.HasPrefix(from, "//") || strings.HasPrefix(from, "/\\") {
		return "/"
	}
	u, err := url.Parse(from)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "/"
	}
	switch strings.TrimRight(u.Path, "/") {
	case LoginPath, LogoutPath:
		return "/"
	}
	return u.RequestURI()
}
