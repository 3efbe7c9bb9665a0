package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/nicograef/jotti/internal/flagx"
	"github.com/nicograef/jotti/internal/timex"
)

// parseFlags populates selected Config fields from command-line flags:
//
//	-a string   backend base URL
//	-t int      request timeout in seconds
//	-d string   path of the local database
//	-l string   log level
//
// Only these flags are looked at, so other loaders can share args.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("jotti", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "backend base URL")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(flagx.Pick(args, "-a", "-t", "-d", "-l")); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	if *timeout > 0 {
		cfg.RequestTimeout = timex.Seconds(*timeout)
	}
	return nil
}
