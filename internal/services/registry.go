package services

import (
	"asimos_admin/internal/config"
	"asimos_admin/internal/validator"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService      AuthService
	DashboardService DashboardService
	UserService      UserService
	JobService       JobService
	CategoryService  CategoryService
	EventService     EventService
	MapService       MapService
	ContentService   ContentService
	SupportService   SupportService
	GeocodeService   GeocodeService
}

// NewServiceContainer собирает сервисы поверх клиента API бэкенда.
func NewServiceContainer(cfg *config.Config, api Backend, v *validator.Validator) *ServiceContainer {
	return &ServiceContainer{
		AuthService:      NewAuthService(api, v),
		DashboardService: NewDashboardService(api),
		UserService:      NewUserService(api, v),
		JobService:       NewJobService(api, v),
		CategoryService:  NewCategoryService(api, v),
		EventService:     NewEventService(api),
		MapService:       NewMapService(api),
		ContentService:   NewContentService(api, v),
		SupportService:   NewSupportService(api, v),
		GeocodeService:   NewGeocodeService(cfg.Geocoder.URL, cfg.Geocoder.UserAgent, cfg.GeocoderTimeout()),
	}
}
