package handlers

import "github.com/gin-gonic/gin"

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler      *AuthHandler
	DashboardHandler *DashboardHandler
	UserHandler      *UserHandler
	JobHandler       *JobHandler
	CategoryHandler  *CategoryHandler
	EventHandler     *EventHandler
	MapHandler       *MapHandler
	ContentHandler   *ContentHandler
	SupportHandler   *SupportHandler
}

// PageHandler - раздел консоли, который сам регистрирует свои маршруты.
type PageHandler interface {
	RegisterRoutes(r gin.IRouter)
}

// Pages - разделы за route guard (все, кроме входа).
func (a *AppHandlers) Pages() []PageHandler {
	return []PageHandler{
		a.DashboardHandler,
		a.UserHandler,
		a.JobHandler,
		a.CategoryHandler,
		a.EventHandler,
		a.MapHandler,
		a.ContentHandler,
		a.SupportHandler,
	}
}
