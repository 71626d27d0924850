package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	CMS       CMSConfig
	Cache     CacheConfig
	Email     EmailConfig
	Search    SearchConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CMSConfig holds content API configuration
type CMSConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// EmailConfig holds email provider configuration
type EmailConfig struct {
	SendGridAPIKey string `mapstructure:"sendgrid_api_key"`
	FromAddress    string `mapstructure:"from_address"`
	InboxAddress   string `mapstructure:"inbox_address"`
}

// SearchConfig holds search aggregator configuration
type SearchConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
	MaxLimit     int `mapstructure:"max_limit"`
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/foodpulse/")

	v.SetEnvPrefix("FOODPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"https://foodpulse.example", "http://localhost:3000"})

	// CMS defaults
	v.SetDefault("cms.base_url", "https://content.foodpulse.example")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "5m")

	// Email defaults
	v.SetDefault("email.from_address", "no-reply@foodpulse.example")
	v.SetDefault("email.inbox_address", "hello@foodpulse.example")

	// Search defaults
	v.SetDefault("search.default_limit", 20)
	v.SetDefault("search.max_limit", 50)

	// Rate limit defaults
	v.SetDefault("ratelimit.requests_per_second", 10)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.CMS.APIKey == "" {
		return fmt.Errorf("CMS API key is required (set FOODPULSE_CMS_API_KEY)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("redis URL is required when cache type is 'redis'")
	}

	if config.Search.DefaultLimit > config.Search.MaxLimit {
		return fmt.Errorf("search default limit %d exceeds max limit %d", config.Search.DefaultLimit, config.Search.MaxLimit)
	}

	return nil
}
