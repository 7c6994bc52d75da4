// Package config loads runtime configuration for the MakanScan client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c / -config, or MAKANSCAN_CONFIG.
//  3. Environment variables (MAKANSCAN_*).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds)
//	-s string   session storage path
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so they may be strings like "30s" or integer
// nanoseconds:
//
//	{
//	  "base_url": "http://127.0.0.1:5000/api/v1",
//	  "request_timeout": "30s",
//	  "storage_path": "makanscan.db",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
//
// # Environment
//
//	MAKANSCAN_BASE_URL, MAKANSCAN_REQUEST_TIMEOUT (e.g. "45s"),
//	MAKANSCAN_STORAGE_PATH, MAKANSCAN_LOG_LEVEL, MAKANSCAN_LOG_BACKEND
package config
