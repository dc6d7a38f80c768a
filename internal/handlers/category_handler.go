package handlers

import (
	"net/http"

	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/views"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

// categoryModal - окно создания или редактирования категории.
type categoryModal struct {
	Form          dto.CategoryForm
	Error         string
	Back          string
	ParentOptions []dto.CategoryOption
}

type categoriesData struct {
	Query string
	Page  *dto.CategoryPage
	Form  *categoryModal
}

func (h *CategoryHandler) RegisterRoutes(r gin.IRouter) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.SaveCategory)
		categories.POST("/:id/delete", h.DeleteCategory)
	}
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	q := c.Query("q")
	data := &categoriesData{Query: q}
	page := h.NewPage(c, "categories", "Kateqoriyalar", data)

	list, err := h.categoryService.List(c.Request.Context(), q)
	if err != nil {
		h.RenderError(c, "categories", page, err)
		return
	}
	data.Page = list

	back := listURL("/categories", q)
	switch {
	case c.Query("edit") != "":
		category, ok := list.Find(c.Query("edit"))
		if !ok {
			views.Flash(c, views.ToastError, "Kateqoriya tapılmadı")
			c.Redirect(http.StatusSeeOther, back)
			return
		}
		data.Form = &categoryModal{Form: dto.EditCategoryForm(category), Back: back, ParentOptions: list.ParentOptions}
	case ParseQueryFlag(c, "new"):
		data.Form = &categoryModal{Form: dto.NewCategoryForm(c.Query("parent")), Back: back, ParentOptions: list.ParentOptions}
	}

	h.Render(c, http.StatusOK, "categories", page)
}

// SaveCategory создаёт категорию или обновляет её, если в форме есть id.
func (h *CategoryHandler) SaveCategory(c *gin.Context) {
	back := BackURL(c, "/categories")

	var form dto.CategoryForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.categoryService.Save(c.Request.Context(), &form)
	}
	if err == nil {
		message := "Kateqoriya yaradıldı"
		if form.IsEdit() {
			message = "Kateqoriya yeniləndi"
		}
		h.Done(c, back, message)
		return
	}

	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	data := &categoriesData{Query: BackQuery(back).Get("q"), Form: &categoryModal{Form: form, Error: appErr.Message, Back: back}}
	if list, listErr := h.categoryService.List(c.Request.Context(), data.Query); listErr == nil {
		data.Page = list
		data.Form.ParentOptions = list.ParentOptions
	}
	h.Render(c, appErr.HTTPCode, "categories", h.NewPage(c, "categories", "Kateqoriyalar", data))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	back := BackURL(c, "/categories")
	if err := h.categoryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "Kateqoriya silindi")
}
