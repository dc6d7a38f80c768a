package handlers

import (
	"net/http"
	"strings"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"
	"asimos_admin/internal/views"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	*BaseHandler
	contentService services.ContentService
}

func NewContentHandler(base *BaseHandler, contentService services.ContentService) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    base,
		contentService: contentService,
	}
}

type contentData struct {
	Slug string
	Page *models.ContentPage
}

func (h *ContentHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/content", h.GetContent)
	r.POST("/content", h.SaveContent)
}

func (h *ContentHandler) GetContent(c *gin.Context) {
	slug := strings.TrimSpace(c.Query("slug"))
	if slug == "" {
		slug = models.ContentSlugs[0]
	}
	data := &contentData{Slug: slug}
	page := h.NewPage(c, "content", "Məzmun", data)
	page.AddCrumb(models.ContentSlugLabel(slug))

	content, err := h.contentService.Load(c.Request.Context(), slug)
	if err != nil {
		h.RenderError(c, "content", page, err)
		return
	}
	data.Page = content
	h.Render(c, http.StatusOK, "content", page)
}

func (h *ContentHandler) SaveContent(c *gin.Context) {
	var form dto.ContentForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.contentService.Save(c.Request.Context(), &form)
	}
	back := "/content" + string(views.QueryString("slug", form.Slug))
	if err != nil {
		h.Fail(c, back, err)
		return
	}
	h.Done(c, back, "Yadda saxlanıldı")
}
