package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// EnvFile is loaded, when present, before the JOTTI_* variables are read.
// Variables already set in the process environment take precedence.
var EnvFile = ".env"

const envPrefix = "JOTTI_"

// parseEnv overlays cfg with JOTTI_* environment variables.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", EnvFile, err)
	}

	if v, ok := lookup("BASE_URL"); ok {
		cfg.BaseURL = v
	}
	if v, ok := lookup("DB"); ok {
		cfg.DatabasePath = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		cfg.LogFile = v
	}

	var err error
	if cfg.RequestTimeout, err = durationEnv("REQUEST_TIMEOUT", cfg.RequestTimeout); err != nil {
		return err
	}
	if cfg.SessionCheckInterval, err = durationEnv("SESSION_CHECK_INTERVAL", cfg.SessionCheckInterval); err != nil {
		return err
	}
	if cfg.OnlineCheckInterval, err = durationEnv("ONLINE_CHECK_INTERVAL", cfg.OnlineCheckInterval); err != nil {
		return err
	}

	if v, ok := lookup("RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sRATE_LIMIT: %w", envPrefix, err)
		}
		cfg.RateLimit = f
	}
	if v, ok := lookup("RATE_BURST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sRATE_BURST: %w", envPrefix, err)
		}
		cfg.RateBurst = n
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func durationEnv(name string, fallback time.Duration) (time.Duration, error) {
	v, ok := lookup(name)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s%s: %w", envPrefix, name, err)
	}
	return d, nil
}
