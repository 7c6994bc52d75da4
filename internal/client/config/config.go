package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds runtime settings for the MakanScan client.
//
// Fields:
//   - BaseURL: backend API root, including the version prefix.
//   - RequestTimeout: upper bound for a single backend request.
//   - StoragePath: SQLite file holding the session (":memory:" for none).
//   - LogLevel: debug, info, warn or error.
//   - LogBackend: "slog" (text) or "zap" (JSON).
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	StoragePath    string
	LogLevel       string
	LogBackend     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:5000/api/v1"
	c.RequestTimeout = 30 * time.Second
	c.StoragePath = "makanscan.db"
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	if c.StoragePath == "" {
		return errors.New("storage path is empty")
	}
	return nil
}

// Load builds a Config from defaults, then the JSON file, then the
// environment, then flags in args. Later sources take precedence.
func Load(args []string, environ map[string]string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args, environ); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over the process arguments and environment.
func LoadConfig() (*Config, error) {
	return Load(os.Args[1:], nil)
}
