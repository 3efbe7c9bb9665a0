package config

import "time"

// Config holds runtime settings for the jotti terminal client.
type Config struct {
	// BaseURL is where the REST backend is mounted, e.g. http://127.0.0.1:3000.
	BaseURL        string
	RequestTimeout time.Duration

	// DatabasePath is the SQLite file holding the session token.
	DatabasePath string

	LogLevel  string
	LogFormat string
	// LogFile receives log output; empty means stderr.
	LogFile string

	// RateLimit caps backend calls per second; 0 disables the limiter.
	RateLimit float64
	RateBurst int

	SessionCheckInterval time.Duration
	OnlineCheckInterval  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:3000"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "jotti.db"
	c.LogLevel = "info"
	c.LogFormat = "console"
	c.LogFile = ""
	c.RateLimit = 0
	c.RateBurst = 1
	c.SessionCheckInterval = 30 * time.Second
	c.OnlineCheckInterval = 5 * time.Second
}

// LoadConfig applies defaults, then the JSON file, then the environment
// (including a .env file), then command-line flags. Later sources win.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
