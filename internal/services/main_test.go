package services_test

import (
	"io"
	"os"
	"testing"

	"asimos_admin/internal/config"
	"asimos_admin/internal/logger"
	"asimos_admin/internal/services"
	"asimos_admin/internal/validator"
	"asimos_admin/test/helpers"
)

func TestMain(m *testing.M) {
	logger.InitWithWriter("test", io.Discard, "error")
	os.Exit(m.Run())
}

// newServices собирает контейнер сервисов поверх фейкового бэкенда;
// геокодер смотрит на /search того же сервера.
func newServices(t *testing.T) (*services.ServiceContainer, *helpers.FakeBackend) {
	t.Helper()
	fb := helpers.NewFakeBackend(t)
	cfg := config.Default()
	cfg.Geocoder.URL = fb.URL() + "/search"
	return services.NewServiceContainer(cfg, fb.Client(t), validator.New()), fb
}
