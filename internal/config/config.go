package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Course data source / auth provider variants.
const (
	SourceStatic = "static"
	SourceAPI    = "api"

	ProviderMock = "mock"
	ProviderAPI  = "api"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Catalog struct {
		// Source selects where courses come from: "static" (bundled
		// dataset) or "api" (remote course API).
		Source         string `yaml:"source" env:"CATALOG_SOURCE"`
		APIBaseURL     string `yaml:"api_base_url" env:"CATALOG_API_BASE_URL"`
		RequestTimeout string `yaml:"request_timeout" env:"CATALOG_REQUEST_TIMEOUT"`
	} `yaml:"catalog"`

	Auth struct {
		// Provider selects the auth backend: "mock" (in-memory, issues
		// its own tokens) or "api" (remote auth API).
		Provider       string `yaml:"provider" env:"AUTH_PROVIDER"`
		APIBaseURL     string `yaml:"api_base_url" env:"AUTH_API_BASE_URL"`
		RequestTimeout string `yaml:"request_timeout" env:"AUTH_REQUEST_TIMEOUT"`
		JWTSecret      string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET"`
		TokenIssuer    string `yaml:"token_issuer" env:"AUTH_TOKEN_ISSUER"`
	} `yaml:"auth"`

	Session struct {
		// TokenTTL is the persisted auth-token cookie lifetime used when
		// the user checks "remember me".
		TokenTTL string `yaml:"token_ttl" env:"SESSION_TOKEN_TTL"`
		// PendingTTL is the verify-email cookie lifetime; it matches the
		// OTP validity window.
		PendingTTL string `yaml:"pending_ttl" env:"SESSION_PENDING_TTL"`
		// ResendCooldown is the client-facing OTP resend cooldown.
		ResendCooldown string `yaml:"resend_cooldown" env:"SESSION_RESEND_COOLDOWN"`
	} `yaml:"session"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from an optional .env file, a YAML file and
// environment variables, in that order of increasing precedence.
func LoadConfig(configPath string) (*Config, error) {
	// A missing .env is fine; explicit env vars still apply.
	_ = godotenv.Load()

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Catalog.Source = SourceStatic
	config.Catalog.RequestTimeout = "10s"

	config.Auth.Provider = ProviderMock
	config.Auth.RequestTimeout = "10s"
	config.Auth.TokenIssuer = "learnhub.app"

	config.Session.TokenTTL = "168h"  // 7 days
	config.Session.PendingTTL = "75s" // OTP validity window
	config.Session.ResendCooldown = "60s"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Catalog.Source {
	case SourceStatic:
	case SourceAPI:
		if config.Catalog.APIBaseURL == "" {
			return fmt.Errorf("catalog api_base_url is required when source is %q", SourceAPI)
		}
	default:
		return fmt.Errorf("unknown catalog source %q", config.Catalog.Source)
	}

	switch config.Auth.Provider {
	case ProviderMock:
		if config.Auth.JWTSecret == "" {
			return fmt.Errorf("auth jwt_secret is required when provider is %q", ProviderMock)
		}
	case ProviderAPI:
		if config.Auth.APIBaseURL == "" {
			return fmt.Errorf("auth api_base_url is required when provider is %q", ProviderAPI)
		}
	default:
		return fmt.Errorf("unknown auth provider %q", config.Auth.Provider)
	}

	for _, d := range []struct{ name, value string }{
		{"catalog request_timeout", config.Catalog.RequestTimeout},
		{"auth request_timeout", config.Auth.RequestTimeout},
		{"session token_ttl", config.Session.TokenTTL},
		{"session pending_ttl", config.Session.PendingTTL},
		{"session resend_cooldown", config.Session.ResendCooldown},
	} {
		if _, err := time.ParseDuration(d.value); err != nil {
			return fmt.Errorf("invalid %s format: %w", d.name, err)
		}
	}

	return nil
}

// IsProduction reports whether the server runs in production mode. Cookies
// are marked secure only in production.
func (c *Config) IsProduction() bool {
	return strings.ToLower(c.Server.Mode) == "production"
}
