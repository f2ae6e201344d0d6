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
	Catalog   CatalogConfig
	Recommend RecommendConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog snapshot configuration
type CatalogConfig struct {
	DataPath        string        `mapstructure:"data_path"`
	FPSPath         string        `mapstructure:"fps_path"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// RecommendConfig holds recommendation engine configuration
type RecommendConfig struct {
	Limit              int  `mapstructure:"limit"`
	EnableDebugReasons bool `mapstructure:"enable_debug_reasons"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
	Burst int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pcpick/")

	// Environment variable settings
	v.SetEnvPrefix("PCPICK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
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
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Catalog defaults
	v.SetDefault("catalog.data_path", "./data/pc_data.json")
	v.SetDefault("catalog.fps_path", "./data/fps_reference.json")
	v.SetDefault("catalog.refresh_interval", "3h")

	// Recommendation defaults
	v.SetDefault("recommend.limit", 6)
	v.SetDefault("recommend.enable_debug_reasons", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.DataPath == "" {
		return fmt.Errorf("catalog data path is required (set PCPICK_CATALOG_DATA_PATH)")
	}

	if config.Catalog.RefreshInterval < time.Minute {
		return fmt.Errorf("catalog refresh interval must be at least 1m, got: %s", config.Catalog.RefreshInterval)
	}

	if config.Recommend.Limit <= 0 {
		return fmt.Errorf("recommend limit must be positive, got: %d", config.Recommend.Limit)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("rate limit per IP must be positive, got: %d", config.RateLimit.PerIP)
	}

	return nil
}
