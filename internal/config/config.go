package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	Port           string   `env:"PORT" envDefault:"8080"`
	Environment    string   `env:"ENVIRONMENT" envDefault:"production"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	AdminName      string   `env:"ADMIN_NAME" envDefault:"Thierry"`

	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"50"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`

	API API `envPrefix:"API_"`

	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`

	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// API describes the remote booking API the back-office reads from and writes to.
// Reads and writes share BaseURL.
type API struct {
	BaseURL            string        `env:"URL" envDefault:"http://localhost:5088"`
	ProvidersPath      string        `env:"PROVIDERS_PATH" envDefault:"/prestataires"`
	ProviderCreatePath string        `env:"PROVIDER_CREATE_PATH" envDefault:"/api/prestataire"`
	ActivitiesPath     string        `env:"ACTIVITIES_PATH" envDefault:"/activitees"`
	ActivityCreatePath string        `env:"ACTIVITY_CREATE_PATH" envDefault:"/activitees"`
	Timeout            time.Duration `env:"TIMEOUT" envDefault:"10s"`

	// Optional OAuth2 client-credentials grant for the remote API
	TokenURL     string   `env:"TOKEN_URL"`
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES" envSeparator:","`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.AllowedOrigins = trimAll(cfg.AllowedOrigins)
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadAPI loads only the remote API settings, for tools that do not serve HTTP
func LoadAPI() (*API, error) {
	_ = godotenv.Load()

	api := &API{}
	if err := env.ParseWithOptions(api, env.Options{Prefix: "API_"}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	api.BaseURL = strings.TrimRight(api.BaseURL, "/")

	if err := api.Validate(); err != nil {
		return nil, err
	}
	return api, nil
}

// Validate checks values that env parsing alone cannot
func (c *Config) Validate() error {
	if err := c.API.Validate(); err != nil {
		return err
	}
	if c.IsProduction() && c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required in production")
	}
	return nil
}

// Validate checks the remote API settings
func (a *API) Validate() error {
	if a.BaseURL == "" {
		return fmt.Errorf("API_URL is required")
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("API_TIMEOUT must be positive")
	}
	if a.TokenURL != "" && a.ClientID == "" {
		return fmt.Errorf("API_CLIENT_ID is required when API_TOKEN_URL is set")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// trimAll drops blanks and surrounding whitespace from a comma-split list
func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
