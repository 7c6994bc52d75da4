package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/makanscan/internal/flagx"
	"github.com/dmitrijs2005/makanscan/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent keys
// leave the corresponding setting alone.
type JsonConfig struct {
	BaseURL        *string         `json:"base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	StoragePath    *string         `json:"storage_path"`
	LogLevel       *string         `json:"log_level"`
	LogBackend     *string         `json:"log_backend"`
}

// parseJSON overlays cfg with the JSON file named by -c/-config, or by
// MAKANSCAN_CONFIG when no flag is given. No file means nothing to do.
func parseJSON(cfg *Config, args []string, environ map[string]string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		path = environ[flagx.ConfigEnv]
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if jc.BaseURL != nil {
		cfg.BaseURL = *jc.BaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.StoragePath != nil {
		cfg.StoragePath = *jc.StoragePath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogBackend != nil {
		cfg.LogBackend = *jc.LogBackend
	}
	return nil
}
