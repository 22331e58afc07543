package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port    string
	HubSpot HubSpotConfig
	CORS    CORSConfig
	Log     LogConfig

	RateLimitPerMinute int
	MetricsEnabled     bool
}

type HubSpotConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration // 0 means no client-side timeout
}

type CORSConfig struct {
	AllowedOrigin string // empty refuses every cross-origin request
}

type LogConfig struct {
	Level  string
	Format string // "json" or "text"
}

var ErrMissingAPIKey = errors.New("HUBSPOT_API_KEY is required")

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds the config from an already populated viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("HUBSPOT_BASE_URL", "https://api.hubapi.com")
	v.SetDefault("HUBSPOT_TIMEOUT", "0s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("RATE_LIMIT_PER_MINUTE", 0)
	v.SetDefault("METRICS_ENABLED", true)

	cfg := &Config{
		Port: v.GetString("PORT"),
		HubSpot: HubSpotConfig{
			APIKey:  v.GetString("HUBSPOT_API_KEY"),
			BaseURL: v.GetString("HUBSPOT_BASE_URL"),
			Timeout: v.GetDuration("HUBSPOT_TIMEOUT"),
		},
		CORS: CORSConfig{
			AllowedOrigin: v.GetString("ALLOWED_ORIGIN"),
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		RateLimitPerMinute: v.GetInt("RATE_LIMIT_PER_MINUTE"),
		MetricsEnabled:     v.GetBool("METRICS_ENABLED"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.HubSpot.APIKey == "" {
		return ErrMissingAPIKey
	}
	u, err := url.Parse(c.HubSpot.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("HUBSPOT_BASE_URL %q is not an absolute url", c.HubSpot.BaseURL)
	}
	if c.HubSpot.Timeout < 0 {
		return errors.New("HUBSPOT_TIMEOUT must not be negative")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
