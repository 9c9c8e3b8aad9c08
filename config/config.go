package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"weatherreport.app/errors"
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Weather  WeatherConfig  `split_words:"true"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// DatabaseConfig contains settings for the geography database. The default
// driver is an in-memory sqlite database seeded from the embedded dataset;
// postgres is available for shared deployments.
type DatabaseConfig struct {
	Driver   string `envconfig:"GEO_DB_DRIVER" default:"sqlite"`
	DSN      string `envconfig:"GEO_DB_DSN" default:"file::memory:?cache=shared"`
	Host     string `envconfig:"GEO_DB_HOST" default:"localhost"`
	Port     int    `envconfig:"GEO_DB_PORT" default:"5432"`
	User     string `envconfig:"GEO_DB_USER" default:"postgres"`
	Password string `envconfig:"GEO_DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"GEO_DB_NAME" default:"weatherreport"`
	SSLMode  string `envconfig:"GEO_DB_SSL_MODE" default:"disable"`
}

// GetDSN returns a formatted postgres connection string
func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// WeatherConfig contains settings for the external forecast service
type WeatherConfig struct {
	BaseURL        string        `envconfig:"WEATHER_BASE_URL" default:"https://api.open-meteo.com/v1/forecast"`
	RequestTimeout time.Duration `envconfig:"WEATHER_REQUEST_TIMEOUT" default:"10s"`
}

// LoadConfig loads and validates application configuration from environment variables
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

// ValidateSSLMode validates the SSL mode configuration
func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("GEO_DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

// Validate checks database configuration
func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case "sqlite":
		if d.DSN == "" {
			return errors.NewConfigurationError("GEO_DB_DSN cannot be empty for the sqlite driver", nil)
		}
	case "postgres":
		if d.Host == "" {
			return errors.NewConfigurationError("GEO_DB_HOST cannot be empty", nil)
		}
		if d.Port < 1 || d.Port > 65535 {
			return errors.NewConfigurationError("GEO_DB_PORT must be between 1 and 65535", nil)
		}
		if d.User == "" {
			return errors.NewConfigurationError("GEO_DB_USER cannot be empty", nil)
		}
		if d.Name == "" {
			return errors.NewConfigurationError("GEO_DB_NAME cannot be empty", nil)
		}
		if err := d.ValidateSSLMode(); err != nil {
			return err
		}
	default:
		return errors.NewConfigurationError("GEO_DB_DRIVER must be one of: sqlite, postgres", nil)
	}
	return nil
}

// Validate checks forecast service configuration
func (w *WeatherConfig) Validate() error {
	if w.BaseURL == "" {
		return errors.NewConfigurationError("WEATHER_BASE_URL cannot be empty", nil)
	}
	if !strings.HasPrefix(w.BaseURL, "http://") && !strings.HasPrefix(w.BaseURL, "https://") {
		return errors.NewConfigurationError("WEATHER_BASE_URL must start with http:// or https://", nil)
	}
	if w.RequestTimeout <= 0 {
		return errors.NewConfigurationError("WEATHER_REQUEST_TIMEOUT must be positive", nil)
	}
	return nil
}
