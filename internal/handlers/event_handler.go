package handlers

import (
	"net/http"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	*BaseHandler
	eventService services.EventService
}

func NewEventHandler(base *BaseHandler, eventService services.EventService) *EventHandler {
	return &EventHandler{
		BaseHandler:  base,
		eventService: eventService,
	}
}

type eventsData struct {
	Filter dto.EventFilter
	List   *models.EventList
}

func (h *EventHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/events", h.ListEvents)
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	var filter dto.EventFilter
	_ = c.ShouldBindQuery(&filter)

	data := &eventsData{Filter: filter}
	page := h.NewPage(c, "events", "Proseslər", data)

	list, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.RenderError(c, "events", page, err)
		return
	}
	data.List = list
	h.Render(c, http.StatusOK, "events", page)
}
