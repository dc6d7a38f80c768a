package routes

import (
	"net/http"

	"asimos_admin/internal/handlers"
	"asimos_admin/internal/logger"
	"asimos_admin/internal/views"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует страницы консоли. Вход, выход и статика
// доступны без токена, остальные разделы - только за route guard.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	guard gin.HandlerFunc,
) {
	ginRouter.StaticFS("/static", views.Static())
	appHandlers.AuthHandler.RegisterRoutes(ginRouter)

	console := ginRouter.Group("/")
	console.Use(guard)
	for _, page := range appHandlers.Pages() {
		page.RegisterRoutes(console)
	}

	// неизвестные адреса ведут на dashboard
	ginRouter.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/")
	})

	logger.Info("Console routes registered", "pages", len(appHandlers.Pages()))
}
