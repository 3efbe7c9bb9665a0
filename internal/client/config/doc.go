// Package config loads runtime configuration for the jotti terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: JOTTI_* variables, plus a .env file if one exists.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-d string   local database path
//	-l string   log level
//
// Environment
//
//	JOTTI_BASE_URL, JOTTI_REQUEST_TIMEOUT ("10s"), JOTTI_DB, JOTTI_LOG_LEVEL,
//	JOTTI_LOG_FORMAT, JOTTI_LOG_FILE, JOTTI_RATE_LIMIT, JOTTI_RATE_BURST,
//	JOTTI_SESSION_CHECK_INTERVAL, JOTTI_ONLINE_CHECK_INTERVAL
//
// # JSON schema
//
// Durations are strings like "3s" or integer nanoseconds:
//
//	{
//	  "base_url": "https://pos.example.com/api",
//	  "request_timeout": "10s",
//	  "database_path": "/var/lib/jotti/client.db",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "log_file": "/var/log/jotti.log",
//	  "rate_limit": 5,
//	  "rate_burst": 10,
//	  "session_check_interval": "30s",
//	  "online_check_interval": "5s"
//	}
package config
