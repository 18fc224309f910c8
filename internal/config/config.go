package config

import (
	"fmt"
	"os"
	"time"

	"github.com/johndn/portfolio/internal/utils"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"API_PORT" envDefault:"8080"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`

	// Logging Configuration
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile       string `env:"LOG_FILE"`
	LogMaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	LogMaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
	LogRequests   bool   `env:"LOG_REQUESTS" envDefault:"false"`

	// Database Configuration
	DatabaseDriver string `env:"DATABASE_DRIVER" envDefault:"sqlite3"`
	DatabaseURL    string `env:"DATABASE_URL"`

	// Admin listing guard; empty leaves the listing open
	AdminToken string `env:"ADMIN_TOKEN"`

	// Contact form rate limit
	ContactRateRPS   float64 `env:"CONTACT_RATE_RPS" envDefault:"1"`
	ContactRateBurst int     `env:"CONTACT_RATE_BURST" envDefault:"5"`

	// Content catalog
	ContentFile           string        `env:"CONTENT_FILE" envDefault:"content/site.yaml"`
	ContentReloadInterval time.Duration `env:"CONTENT_RELOAD_INTERVAL" envDefault:"0s"`

	// Telegram notifications for new contact messages; both must be set
	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	// Telemetry Configuration
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	// Site identity used for page metadata
	Site utils.SiteConfig
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	envLocations := []string{".env"}

	// If ENV is set, try to load that specific file first
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}

	for _, loc := range envLocations {
		// godotenv.Load never overrides variables that are already set
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	return Parse()
}

// Parse reads the configuration from the current environment only
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.DatabaseDriver {
	case "postgres", "sqlite3":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", cfg.DatabaseDriver)
	}

	if cfg.DatabaseURL == "" && cfg.DatabaseDriver == "sqlite3" {
		cfg.DatabaseURL = "file:portfolio.db?cache=shared&_fk=1"
	}

	if cfg.LogFile == "" && cfg.IsProduction() {
		cfg.LogFile = "/app/logs/api.log"
	}

	cfg.Site = cfg.Site.WithDefaults()

	return cfg, nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
