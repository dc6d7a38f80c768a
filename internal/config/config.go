package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const (
	DefaultAPIBaseURL  = "https://asimos-backend.onrender.com"
	DefaultGeocoderURL = "https://nominatim.openstreetmap.org/search"
	DefaultConfigPath  = "config/config.yaml"
)

type Config struct {
	Server struct {
		Host         string `yaml:"host"`
		Port         int    `yaml:"port"`
		Env          string `yaml:"env"`
		CookieSecure bool   `yaml:"cookie_secure"`
	} `yaml:"server"`

	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		Retries        int    `yaml:"retries"`
	} `yaml:"api"`

	Geocoder struct {
		URL            string `yaml:"url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
		UserAgent      string `yaml:"user_agent"`
	} `yaml:"geocoder"`

	CLI struct {
		TokenFile string `yaml:"token_file"` // пусто - ~/.config/asimos/token.json
	} `yaml:"cli"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

var AppConfig *Config

// Default возвращает конфигурацию, с которой консоль работает без config.yaml.
func Default() *Config {
	var cfg Config
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 4000
	cfg.Server.Env = "development"
	cfg.API.BaseURL = DefaultAPIBaseURL
	cfg.API.TimeoutSeconds = 20
	cfg.API.Retries = 2
	cfg.Geocoder.URL = DefaultGeocoderURL
	cfg.Geocoder.TimeoutSeconds = 10
	cfg.Geocoder.UserAgent = "asimos-admin/1.0"
	return &cfg
}

// Load читает .env, затем YAML-файл (если он есть), затем переменные окружения.
// Пустой path - CONFIG_PATH или config/config.yaml.
func Load(path string) (*Config, error) {
	// .env необязателен
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := Default()
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// работаем на значениях по умолчанию
	default:
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("SERVER_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SERVER_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		c.Server.Env = v
	}
	if v := os.Getenv("API_TIMEOUT"); v != "" {
		secs, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("invalid API_TIMEOUT %q: %w", v, err)
		}
		c.API.TimeoutSeconds = secs
	}
	if v := os.Getenv("GEOCODER_URL"); v != "" {
		c.Geocoder.URL = v
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		secure, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid COOKIE_SECURE %q: %w", v, err)
		}
		c.Server.CookieSecure = secure
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ASIMOS_TOKEN_FILE"); v != "" {
		c.CLI.TokenFile = v
	}
	return nil
}

// parseSeconds принимает "20" или "20s".
func parseSeconds(v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}

// Validate проверяет, что с конфигурацией можно стартовать.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}
	switch c.Server.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("server.env %q must be development, production or test", c.Server.Env)
	}
	if err := validateHTTPURL("api.base_url", c.API.BaseURL); err != nil {
		return err
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive")
	}
	if c.API.Retries < 0 {
		return fmt.Errorf("api.retries must not be negative")
	}
	if err := validateHTTPURL("geocoder.url", c.Geocoder.URL); err != nil {
		return err
	}
	return nil
}

func validateHTTPURL(field, raw string) error {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s %q must be an absolute http(s) url", field, raw)
	}
	return nil
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c *Config) GeocoderTimeout() time.Duration {
	if c.Geocoder.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.Geocoder.TimeoutSeconds) * time.Second
}

func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// TokenFilePath - путь файла токена для CLI.
func (c *Config) TokenFilePath() string {
	if c.CLI.TokenFile != "" {
		return c.CLI.TokenFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "asimos", "token.json")
}

// LoadConfig загружает конфигурацию в AppConfig и завершает процесс при ошибке.
func LoadConfig() {
	cfg, err := Load("")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}
