package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// EnvConfig mirrors Config for environment variables. Unset variables leave
// the corresponding setting alone.
type EnvConfig struct {
	BaseURL        string        `env:"MAKANSCAN_BASE_URL"`
	RequestTimeout time.Duration `env:"MAKANSCAN_REQUEST_TIMEOUT"`
	StoragePath    string        `env:"MAKANSCAN_STORAGE_PATH"`
	LogLevel       string        `env:"MAKANSCAN_LOG_LEVEL"`
	LogBackend     string        `env:"MAKANSCAN_LOG_BACKEND"`
}

// parseEnv overlays cfg from environ, or from the process environment when
// environ is nil.
func parseEnv(cfg *Config, environ map[string]string) error {
	var ec EnvConfig
	if err := env.Parse(&ec, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}

	if ec.BaseURL != "" {
		cfg.BaseURL = ec.BaseURL
	}
	if ec.RequestTimeout != 0 {
		cfg.RequestTimeout = ec.RequestTimeout
	}
	if ec.StoragePath != "" {
		cfg.StoragePath = ec.StoragePath
	}
	if ec.LogLevel != "" {
		cfg.LogLevel = ec.LogLevel
	}
	if ec.LogBackend != "" {
		cfg.LogBackend = ec.LogBackend
	}
	return nil
}
