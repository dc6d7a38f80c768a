package app

import (
	"fmt"
	"os"
	"time"

	"asimos_admin/internal/config"
	"asimos_admin/internal/handlers"
	"asimos_admin/internal/logger"
	"asimos_admin/internal/middleware"
	"asimos_admin/internal/routes"
	"asimos_admin/internal/services"
	"asimos_admin/internal/validator"
	"asimos_admin/internal/views"
	"asimos_admin/pkg/apiclient"
	"asimos_admin/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const retryBackoff = 300 * time.Millisecond

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.InitWithWriter(cfg.Server.Env, os.Stdout, cfg.Log.Level)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	client, err := NewAPIClient(cfg)
	if err != nil {
		logger.Fatal("Failed to create API client", "error", err)
	}
	logger.Info("API client ready", "base_url", client.BaseURL(), "timeout", cfg.APITimeout())

	ginRouter, err := SetupRouter(cfg, client)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	address := cfg.Address()
	logger.Info(fmt.Sprintf("🚀 Admin console starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// NewAPIClient - клиент бэкенда для консоли. Статического токена нет:
// route guard кладёт токен администратора в контекст запроса.
func NewAPIClient(cfg *config.Config) (*apiclient.Client, error) {
	return apiclient.New(cfg.API.BaseURL,
		apiclient.WithTimeout(cfg.APITimeout()),
		apiclient.WithRetries(cfg.API.Retries, retryBackoff),
		apiclient.WithRequestEditor(middleware.ForwardRequestID),
	)
}

func SetupRouter(cfg *config.Config, client *apiclient.Client) (*gin.Engine, error) {
	apperrors.SetDebug(cfg.Server.Env != "production")

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, err
	}

	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(cfg, client, validator.New())

	// 2. Инициализируем хэндлеры
	cookies := middleware.CookieOptions{Secure: cfg.Server.CookieSecure}
	appHandlers := initializeHandlers(serviceContainer, renderer, cookies, client.BaseURL())

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	guard := middleware.RequireToken(serviceContainer.AuthService, cookies)
	routes.RegisterRoutes(ginRouter, appHandlers, guard)

	return ginRouter, nil
}

func initializeHandlers(services *services.ServiceContainer, renderer *views.Renderer, cookies middleware.CookieOptions, apiBaseURL string) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(renderer, cookies, apiBaseURL)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		DashboardHandler: handlers.NewDashboardHandler(baseHandler, services.DashboardService),
		UserHandler:      handlers.NewUserHandler(baseHandler, services.UserService),
		JobHandler:       handlers.NewJobHandler(baseHandler, services.JobService),
		CategoryHandler:  handlers.NewCategoryHandler(baseHandler, services.CategoryService),
		EventHandler:     handlers.NewEventHandler(baseHandler, services.EventService),
		MapHandler:       handlers.NewMapHandler(baseHandler, services.MapService, services.GeocodeService),
		ContentHandler:   handlers.NewContentHandler(baseHandler, services.ContentService),
		SupportHandler:   handlers.NewSupportHandler(baseHandler, services.SupportService),
	}
}

func initializeGinRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeaders())
	return router
}
