package handlers

import (
	"net/http"

	"asimos_admin/internal/models"
	"asimos_admin/internal/services"
	"asimos_admin/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SupportHandler struct {
	*BaseHandler
	supportService services.SupportService
}

func NewSupportHandler(base *BaseHandler, supportService services.SupportService) *SupportHandler {
	return &SupportHandler{
		BaseHandler:    base,
		supportService: supportService,
	}
}

type supportData struct {
	Tickets []models.SupportTicket
}

type ticketData struct {
	ID         string
	Ticket     *models.SupportTicket
	Reply      dto.ReplyForm
	ReplyError string
}

func (h *SupportHandler) RegisterRoutes(r gin.IRouter) {
	support := r.Group("/support")
	{
		support.GET("", h.ListTickets)
		support.GET("/:id", h.GetTicket)
		support.POST("/:id/reply", h.Reply)
	}
}

func (h *SupportHandler) ListTickets(c *gin.Context) {
	data := &supportData{}
	page := h.NewPage(c, "support", "Dəstək", data)

	tickets, err := h.supportService.List(c.Request.Context())
	if err != nil {
		h.RenderError(c, "support", page, err)
		return
	}
	data.Tickets = tickets
	h.Render(c, http.StatusOK, "support", page)
}

func (h *SupportHandler) GetTicket(c *gin.Context) {
	data := &ticketData{ID: c.Param("id")}
	h.renderTicket(c, http.StatusOK, data)
}

// Reply отправляет ответ и возвращает на обращение; пустой ответ остаётся
// в форме с ошибкой.
func (h *SupportHandler) Reply(c *gin.Context) {
	id := c.Param("id")

	var form dto.ReplyForm
	err := h.BindForm(c, &form)
	if err == nil {
		err = h.supportService.Reply(c.Request.Context(), id, &form)
	}
	if err == nil {
		h.Done(c, "/support/"+id, "Cavab göndərildi")
		return
	}

	appErr, redirected := h.HandleServiceError(c, err)
	if redirected {
		return
	}
	h.renderTicket(c, appErr.HTTPCode, &ticketData{ID: id, Reply: form, ReplyError: appErr.Message})
}

func (h *SupportHandler) renderTicket(c *gin.Context, status int, data *ticketData) {
	page := h.NewPage(c, "support", "Müraciət", data)

	ticket, err := h.supportService.Get(c.Request.Context(), data.ID)
	if err != nil {
		h.RenderError(c, "support_ticket", page, err)
		return
	}
	data.Ticket = ticket
	if ticket.Subject != "" {
		page.Title = ticket.Subject
	}
	page.AddCrumb(page.Title)
	h.Render(c, status, "support_ticket", page)
}
