// Package config loads engine configuration from the environment,
// 12-factor style, with development-friendly defaults.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all engine configuration.
type Config struct {
	Server    ServerConfig
	Desktop   DesktopConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// DesktopConfig holds desktop surface configuration. The viewport is
// the fallback before the renderer reports its real size.
type DesktopConfig struct {
	ViewportWidth  int    `envconfig:"VIEWPORT_WIDTH" default:"1920"`
	ViewportHeight int    `envconfig:"VIEWPORT_HEIGHT" default:"1080"`
	TopBar         int    `envconfig:"TOP_BAR_HEIGHT" default:"40"`
	SnapMargin     int    `envconfig:"SNAP_MARGIN" default:"50"`
	DockMargin     int    `envconfig:"DOCK_MARGIN" default:"100"`
	DockPinned     int    `envconfig:"DOCK_PINNED" default:"6"`
	ManifestDir    string `envconfig:"MANIFEST_DIR" default:""`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration. The global limit
// caps the whole engine; the per-client limit caps each renderer IP.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	GlobalRPS         int  `envconfig:"RATE_LIMIT_GLOBAL_RPS" default:"1000"`
	GlobalBurst       int  `envconfig:"RATE_LIMIT_GLOBAL_BURST" default:"2000"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8080",
			Host: "0.0.0.0",
		},
		Desktop: DesktopConfig{
			ViewportWidth:  1920,
			ViewportHeight: 1080,
			TopBar:         40,
			SnapMargin:     50,
			DockMargin:     100,
			DockPinned:     6,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			GlobalRPS:         1000,
			GlobalBurst:       2000,
			Enabled:           true,
		},
	}
}
