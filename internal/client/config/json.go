package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nicograef/jotti/internal/flagx"
	"github.com/nicograef/jotti/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from "zero" so a file only overrides what it mentions.
type JsonConfig struct {
	BaseURL              *string         `json:"base_url"`
	RequestTimeout       *timex.Duration `json:"request_timeout"`
	DatabasePath         *string         `json:"database_path"`
	LogLevel             *string         `json:"log_level"`
	LogFormat            *string         `json:"log_format"`
	LogFile              *string         `json:"log_file"`
	RateLimit            *float64        `json:"rate_limit"`
	RateBurst            *int            `json:"rate_burst"`
	SessionCheckInterval *timex.Duration `json:"session_check_interval"`
	OnlineCheckInterval  *timex.Duration `json:"online_check_interval"`
}

// parseJSON overlays cfg with the file named by -c/-config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	jc.apply(cfg)
	return nil
}

func (jc JsonConfig) apply(cfg *Config) {
	setIf(&cfg.BaseURL, jc.BaseURL)
	setIf(&cfg.DatabasePath, jc.DatabasePath)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)
	setIf(&cfg.LogFile, jc.LogFile)
	setIf(&cfg.RateLimit, jc.RateLimit)
	setIf(&cfg.RateBurst, jc.RateBurst)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionCheckInterval != nil {
		cfg.SessionCheckInterval = jc.SessionCheckInterval.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
