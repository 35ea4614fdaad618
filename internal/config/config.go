package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes read-only configuration to the rest of the application.
// Handlers and modules depend on this interface so tests can pass a stub.
type Provider interface {
	GetAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetSessionBlockKey() string
	GetRelayProvider() string
	GetRelayEndpoint() string
	GetRelayAccessKey() string
	GetRelayTimeout() time.Duration
	GetWhatsAppNumber() string
	GetLeadStateTTL() time.Duration
	GetRateLimitPerMinute() int
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	AppBaseURL         string        `env:"APP_BASE_URL" envDefault:"https://example.com/"`
	SessionSecret      string        `env:"SESSION_SECRET" envDefault:"dev-session-secret-change-me"`
	SessionBlockKey    string        `env:"SESSION_BLOCK_KEY" envDefault:"dev-block-key-32-bytes-change-me"`
	RelayProvider      string        `env:"RELAY_PROVIDER" envDefault:"web3forms"`
	RelayEndpoint      string        `env:"RELAY_ENDPOINT" envDefault:"https://api.web3forms.com/submit"`
	RelayAccessKey     string        `env:"RELAY_ACCESS_KEY" envDefault:"af90736e-9a82-429d-9943-30b5852e908a"`
	RelayTimeout       time.Duration `env:"RELAY_TIMEOUT" envDefault:"10s"`
	WhatsAppNumber     string        `env:"WHATSAPP_NUMBER" envDefault:"79124530205"`
	LeadStateTTL       time.Duration `env:"LEAD_STATE_TTL" envDefault:"1h"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"debug"`
}

// New loads configuration from an optional .env file and the environment.
// It aborts the process when the configuration is unusable.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg, err := Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values that the application cannot run without.
func (c *Config) Validate() error {
	switch c.RelayProvider {
	case "web3forms":
		if strings.TrimSpace(c.RelayEndpoint) == "" || strings.TrimSpace(c.RelayAccessKey) == "" {
			return fmt.Errorf("relay provider is 'web3forms' but RELAY_ENDPOINT or RELAY_ACCESS_KEY is not set")
		}
	case "log":
	default:
		return fmt.Errorf("unknown relay provider: %s", c.RelayProvider)
	}
	if c.RelayTimeout <= 0 {
		return fmt.Errorf("RELAY_TIMEOUT must be positive, got %s", c.RelayTimeout)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive, got %d", c.RateLimitPerMinute)
	}
	if len(c.SessionSecret) < 16 {
		return fmt.Errorf("SESSION_SECRET must be at least 16 characters")
	}
	switch len(c.SessionBlockKey) {
	case 16, 24, 32:
	default:
		return fmt.Errorf("SESSION_BLOCK_KEY must be 16, 24 or 32 bytes, got %d", len(c.SessionBlockKey))
	}
	return nil
}

func (c *Config) GetAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// GetAppBaseURL returns the public URL of the site, always with a trailing slash.
func (c *Config) GetAppBaseURL() string {
	if strings.HasSuffix(c.AppBaseURL, "/") {
		return c.AppBaseURL
	}
	return c.AppBaseURL + "/"
}

func (c *Config) GetSessionSecret() string { return c.SessionSecret }
func (c *Config) GetSessionBlockKey() string { return c.SessionBlockKey }
func (c *Config) GetRelayProvider() string { return c.RelayProvider }
func (c *Config) GetRelayEndpoint() string { return c.RelayEndpoint }
func (c *Config) GetRelayAccessKey() string { return c.RelayAccessKey }
func (c *Config) GetRelayTimeout() time.Duration { return c.RelayTimeout }
func (c *Config) GetWhatsAppNumber() string { return c.WhatsAppNumber }
func (c *Config) GetLeadStateTTL() time.Duration { return c.LeadStateTTL }
func (c *Config) GetRateLimitPerMinute() int { return c.RateLimitPerMinute }
func (c *Config) GetLogFormat() string { return c.LogFormat }
func (c *Config) GetLogLevel() string { return c.LogLevel }
