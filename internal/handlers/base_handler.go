package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/middleware"
	"asimos_admin/internal/views"
	"asimos_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// ============================================================================
// 1. Базовая структура обработчика
// ============================================================================

type BaseHandler struct {
	renderer   *views.Renderer
	cookies    middleware.CookieOptions
	apiBaseURL string
}

func NewBaseHandler(renderer *views.Renderer, cookies middleware.CookieOptions, apiBaseURL string) *BaseHandler {
	return &BaseHandler{
		renderer:   renderer,
		cookies:    cookies,
		apiBaseURL: apiBaseURL,
	}
}

// ============================================================================
// 2. Отрисовка страниц
// ============================================================================

// NewPage - страница раздела key с данными текущего администратора.
func (h *BaseHandler) NewPage(c *gin.Context, key, title string, data any) *views.Page {
	page := views.NewPage(key, title, data)
	page.Admin = middleware.AdminInfo(c)
	page.APIBaseURL = h.apiBaseURL
	page.RequestID = logger.GetRequestID(c.Request.Context())
	c.Request = c.Request.WithContext(logger.WithPage(c.Request.Context(), key))
	return page
}

func (h *BaseHandler) Render(c *gin.Context, status int, name string, page *views.Page) {
	h.renderer.Render(c, status, name, page)
}

// ============================================================================
// 3. Привязка форм
// ============================================================================

// BindForm читает форму или query string. Проверку полей выполняют сервисы,
// поэтому здесь ошибка возможна только при неразборчивом теле запроса.
func (h *BaseHandler) BindForm(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to bind form", err, "path", c.Request.URL.Path)
		return apperrors.NewBadRequestError("Formanı oxumaq mümkün olmadı")
	}
	return nil
}

// ============================================================================
// 4. Обработчики ошибок (с контекстным логгированием)
// ============================================================================

// HandleServiceError логирует ошибку и возвращает текст для баннера.
// Если бэкенд отклонил токен, cookie удаляется, ответ - редирект на логин,
// а redirected == true: обработчик должен сразу вернуться.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) (appErr *apperrors.AppError, redirected bool) {
	ctx := c.Request.Context()

	if apperrors.IsUnauthorized(err) {
		logger.CtxWarn(ctx, "Backend rejected admin token", "path", c.Request.URL.Path)
		h.cookies.ClearToken(c)
		middleware.RedirectToLogin(c)
		return nil, true
	}

	appErr = apperrors.Normalize(err)
	if appErr.HTTPCode >= http.StatusInternalServerError {
		logger.CtxWithError(ctx, "Service error", err, "path", c.Request.URL.Path, "code", appErr.Code)
	} else {
		logger.CtxWarn(ctx, "Service error",
			"error", appErr.Message,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
	}
	return appErr, false
}

// RenderError отрисовывает страницу с баннером ошибки сервиса.
func (h *BaseHandler) RenderError(c *gin.Context, name string, page *views.Page, err error) {
	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	page.Error = appErr.Message
	h.Render(c, appErr.HTTPCode, name, page)
}

// ============================================================================
// 5. Редиректы после изменений
// ============================================================================

// Done - изменение прошло: тост success и возврат к списку.
func (h *BaseHandler) Done(c *gin.Context, target, message string) {
	views.Flash(c, views.ToastSuccess, message)
	c.Redirect(http.StatusSeeOther, target)
}

// Fail - изменение не прошло: тост с сообщением бэкенда и возврат к списку.
func (h *BaseHandler) Fail(c *gin.Context, target string, err error) {
	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	views.Flash(c, views.ToastError, appErr.Message)
	c.Redirect(http.StatusSeeOther, target)
}

// ============================================================================
// 6. Функции парсинга
// ============================================================================

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// ParseQueryFlag - флаг состояния модального окна (?new=1).
func ParseQueryFlag(c *gin.Context, key string) bool {
	return ParseQueryInt(c, key, 0) == 1
}

// modalParams - параметры открытого модального окна; при возврате на
// список после сохранения они отбрасываются.
var modalParams = []string{"edit", "new", "parent", "employer"}

// BackURL - страница, с которой пришла форма (Referer той же консоли),
// без параметров модальных окон. Иначе fallback.
func BackURL(c *gin.Context, fallback string) string {
	ref, err := url.Parse(c.Request.Referer())
	if err != nil || ref.Host != c.Request.Host {
		return fallback
	}
	q := ref.Query()
	for _, key := range modalParams {
		q.Del(key)
	}
	ref.RawQuery = q.Encode()
	back := middleware.SafeRedirect(ref.RequestURI())
	if back == "/" && ref.Path != "/" {
		return fallback
	}
	return back
}

// BackQuery - параметры адреса возврата: фильтры списка, который
// перерисовывается под окном с ошибкой формы.
func BackQuery(back string) url.Values {
	u, err := url.Parse(back)
	if err != nil {
		return url.Values{}
	}
	return u.Query()
}

// listURL - адрес списка с сохранённым поиском.
func listURL(base, q string) string {
	return base + string(views.QueryString("q", q))
}
