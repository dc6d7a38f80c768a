package handlers

import (
	"net/http"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/views"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

type userEdit struct {
	ID    string
	Form  dto.UserForm
	Error string
	Back  string
}

type usersData struct {
	Filter dto.UserFilter
	Users  []models.Profile
	Edit   *userEdit
}

func (h *UserHandler) RegisterRoutes(r gin.IRouter) {
	users := r.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("/:id", h.UpdateUser)
		users.POST("/:id/status", h.SetStatus)
		users.POST("/:id/delete", h.DeleteUser)
	}
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var filter dto.UserFilter
	_ = c.ShouldBindQuery(&filter)

	data := &usersData{Filter: filter}
	page := h.NewPage(c, "users", "İstifadəçilər", data)

	users, err := h.userService.List(c.Request.Context(), filter)
	if err != nil {
		h.RenderError(c, "users", page, err)
		return
	}
	data.Users = users

	if id := c.Query("edit"); id != "" {
		back := "/users" + string(views.QueryString("q", filter.Query, "role", filter.Role))
		user, ok := findProfile(users, id)
		if !ok {
			views.Flash(c, views.ToastError, "İstifadəçi tapılmadı")
			c.Redirect(http.StatusSeeOther, back)
			return
		}
		data.Edit = &userEdit{ID: id, Form: dto.NewUserForm(user), Back: back}
	}

	h.Render(c, http.StatusOK, "users", page)
}

func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	back := BackURL(c, "/users")

	var form dto.UserForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.userService.Update(c.Request.Context(), id, &form)
	}
	if err == nil {
		h.Done(c, back, "İstifadəçi yeniləndi")
		return
	}

	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	// форма остаётся открытой с введёнными значениями
	data := &usersData{Edit: &userEdit{ID: id, Form: form, Error: appErr.Message, Back: back}}
	query := BackQuery(back)
	filter := dto.UserFilter{Query: query.Get("q"), Role: query.Get("role")}
	data.Filter = filter
	if users, listErr := h.userService.List(c.Request.Context(), filter); listErr == nil {
		data.Users = users
	}
	h.Render(c, appErr.HTTPCode, "users", h.NewPage(c, "users", "İstifadəçilər", data))
}

func (h *UserHandler) SetStatus(c *gin.Context) {
	back := BackURL(c, "/users")

	var form dto.UserStatusForm
	if err := h.BindForm(c, &form); err != nil {
		h.Fail(c, back, err)
		return
	}
	if err := h.userService.SetStatus(c.Request.Context(), c.Param("id"), &form); err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "Status: "+models.UserStatus(form.Status).Label())
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	back := BackURL(c, "/users")
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "İstifadəçi silindi")
}

func findProfile(users []models.Profile, id string) (models.Profile, bool) {
	for _, u := range users {
		if u.ID.String() == id {
			return u, true
		}
	}
	return models.Profile{}, false
}
