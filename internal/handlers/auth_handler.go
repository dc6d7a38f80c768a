package handlers

import (
	"net/http"

	"asimos_admin/internal/logger"
	"asimos_admin/internal/middleware"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// loginData - данные страницы входа.
type loginData struct {
	Form dto.LoginRequest
}

// RegisterRoutes регистрирует вход и выход. Эти маршруты вне route guard.
func (h *AuthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET(middleware.LoginPath, h.LoginPage)
	r.POST(middleware.LoginPath, h.Login)
	r.POST(middleware.LogoutPath, h.Logout)
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	from := middleware.SafeRedirect(c.Query("from"))
	if h.authService.Usable(middleware.Token(c)) {
		c.Redirect(http.StatusSeeOther, from)
		return
	}
	h.renderLogin(c, http.StatusOK, dto.LoginRequest{From: from}, "")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := h.BindForm(c, &req); err != nil {
		h.renderLogin(c, http.StatusBadRequest, req, apperrors.Normalize(err).Message)
		return
	}
	req.From = middleware.SafeRedirect(req.From)

	token, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		// 401 здесь - неверный пароль, а не просроченная сессия
		appErr := apperrors.Normalize(err)
		logger.CtxWarn(c.Request.Context(), "Admin login failed", "code", appErr.Code, "error", appErr.Message)
		req.Password = ""
		h.renderLogin(c, appErr.HTTPCode, req, appErr.Message)
		return
	}

	h.cookies.SetToken(c, token)
	c.Redirect(http.StatusSeeOther, req.From)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.ClearToken(c)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h *AuthHandler) renderLogin(c *gin.Context, status int, form dto.LoginRequest, message string) {
	page := h.NewPage(c, "login", "Giriş", loginData{Form: form})
	page.Error = message
	h.Render(c, status, "login", page)
}
