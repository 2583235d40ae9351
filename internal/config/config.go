// Package config builds the process configuration from the environment.
// The configuration is constructed once at startup and injected; nothing
// reads environment variables after that.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults.
const (
	DefaultPort      = 5000
	DefaultStaticDir = "dist"
)

// Config is the runtime configuration for the resume-builder server.
type Config struct {
	// Port the HTTP server listens on.
	Port int
	// DatabaseURL is the PostgreSQL connection string. Required.
	DatabaseURL string
	// GeminiAPIKey is the text-enhancement credential. Optional: absence
	// degrades enhancement to unavailable instead of failing startup.
	GeminiAPIKey string
	// Env is the execution mode; "production" enables static asset serving.
	Env string
	// StaticDir holds the built client assets served in production.
	StaticDir string
	// ShareBaseURL, when set, overrides the request host when building
	// share URLs (useful behind a proxy).
	ShareBaseURL string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         DefaultPort,
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		Env:          os.Getenv("APP_ENV"),
		StaticDir:    os.Getenv("STATIC_DIR"),
		ShareBaseURL: os.Getenv("SHARE_BASE_URL"),
	}

	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Port = port
	}
	if cfg.StaticDir == "" {
		cfg.StaticDir = DefaultStaticDir
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// Production reports whether built static assets should be served.
func (c *Config) Production() bool {
	return c.Env == "production"
}
