package handlers

import (
	"net/http"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

// RolePercent - доли ролей для полос "Rollar üzrə".
type RolePercent struct {
	Seekers   int
	Employers int
}

type dashboardData struct {
	View        *dto.DashboardView
	RolePercent RolePercent
	MaxCategory models.FlexInt
	MaxDay      models.FlexInt
	MaxEvent    models.FlexInt
}

func (h *DashboardHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Dashboard)
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	page := h.NewPage(c, "dashboard", "Dashboard", &dashboardData{})

	view, err := h.dashboardService.Overview(c.Request.Context())
	if err != nil {
		h.RenderError(c, "dashboard", page, err)
		return
	}

	page.Data = NewDashboardData(view)
	h.Render(c, http.StatusOK, "dashboard", page)
}

// NewDashboardData считает масштабы полос: самая длинная полоса серии - 100%.
func NewDashboardData(view *dto.DashboardView) *dashboardData {
	data := &dashboardData{View: view}
	if total := view.Seekers + view.Employers; total > 0 {
		data.RolePercent.Seekers = view.Seekers * 100 / total
		data.RolePercent.Employers = view.Employers * 100 / total
	}
	for _, p := range view.JobsByCategory {
		data.MaxCategory = max(data.MaxCategory, p.Count)
	}
	for _, p := range view.JobsByDay {
		data.MaxDay = max(data.MaxDay, p.Count)
	}
	for _, p := range view.EventsByType {
		data.MaxEvent = max(data.MaxEvent, p.Count)
	}
	return data
}
