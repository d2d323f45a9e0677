// Package config loads and validates gateway configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Origin   OriginConfig   `mapstructure:"origin"`
	API      APIConfig      `mapstructure:"api"`
	Site     SiteConfig     `mapstructure:"site"`
	Crawlers CrawlersConfig `mapstructure:"crawlers"`
	Assets   AssetsConfig   `mapstructure:"assets"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port                   int `mapstructure:"port"`
	ReadTimeoutSeconds     int `mapstructure:"read_timeout_seconds"`
	WriteTimeoutSeconds    int `mapstructure:"write_timeout_seconds"`
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds"`
}

// OriginConfig points at the prerendered SPA origin the gateway fronts.
type OriginConfig struct {
	URL            string `mapstructure:"url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// APIConfig points at the catalog API used for entity lookups.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SiteConfig holds the public identity used when synthesizing metadata.
type SiteConfig struct {
	BaseURL      string `mapstructure:"base_url"`
	Name         string `mapstructure:"name"`
	DefaultImage string `mapstructure:"default_image"`
}

// CrawlersConfig overrides the built-in crawler User-Agent allow-list.
type CrawlersConfig struct {
	UserAgents []string `mapstructure:"user_agents"`
}

// AssetsConfig overrides the static-asset extension allow-list.
type AssetsConfig struct {
	Extensions []string `mapstructure:"extensions"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("EDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 30)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("origin.timeout_seconds", 10)
	v.SetDefault("api.base_url", "https://quran-apps.itqan.dev/api")
	v.SetDefault("api.timeout_seconds", 5)
	v.SetDefault("site.base_url", "https://quran-apps.itqan.dev")
	v.SetDefault("site.name", "Quran Apps Directory")
	v.SetDefault("site.default_image", "https://quran-apps.itqan.dev/assets/images/og-banner.png")
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Origin.URL == "" {
		return fmt.Errorf("origin.url is required")
	}
	if c.Origin.TimeoutSeconds <= 0 {
		return fmt.Errorf("origin.timeout_seconds must be > 0")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be > 0")
	}
	if c.Site.BaseURL == "" {
		return fmt.Errorf("site.base_url is required")
	}
	return nil
}

// OriginTimeout returns the origin fetch deadline as a duration.
func (c Config) OriginTimeout() time.Duration {
	return time.Duration(c.Origin.TimeoutSeconds) * time.Second
}

// APITimeout returns the catalog lookup deadline as a duration.
func (c Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
