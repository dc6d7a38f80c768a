package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"asimos_admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultGeocoderURL, cfg.Geocoder.URL)
	assert.Equal(t, 20*time.Second, cfg.APITimeout())
	assert.Equal(t, "0.0.0.0:4000", cfg.Address())
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 8080
  env: production
  cookie_secure: true
api:
  base_url: http://localhost:3000
  timeout_seconds: 5
  retries: 0
log:
  level: warn
`)
	t.Setenv("API_BASE_URL", "https://staging.example.az")
	t.Setenv("API_TIMEOUT", "7s")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Env)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, "https://staging.example.az", cfg.API.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.APITimeout())
	assert.Equal(t, 0, cfg.API.Retries)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]struct {
		yaml string
		env  map[string]string
	}{
		"Relative api url":  {yaml: "api:\n  base_url: /api\n"},
		"Unknown env":       {yaml: "server:\n  env: staging\n"},
		"Port out of range": {yaml: "server:\n  port: 70000\n"},
		"Bad port env":      {env: map[string]string{"SERVER_PORT": "http"}},
		"Bad cookie flag":   {env: map[string]string{"COOKIE_SECURE": "sometimes"}},
		"Broken yaml":       {yaml: "server: [\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeConfig(t, tc.yaml))
			assert.Error(t, err)
		})
	}
}

func TestTokenFilePath(t *testing.T) {
	cfg := config.Default()
	cfg.CLI.TokenFile = "/tmp/asimos-token.json"
	assert.Equal(t, "/tmp/asimos-token.json", cfg.TokenFilePath())

	cfg.CLI.TokenFile = ""
	assert.Equal(t, "token.json", filepath.Base(cfg.TokenFilePath()))
}
