package logging

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatText    = "text"
)

var ErrUnknownFormat = errors.New("unknown log format")

// New builds a Logger for the given format and level name
// ("debug", "info", "warn", "error").
func New(w io.Writer, format, level string) (Logger, error) {
	var (
		l   Logger
		err error
	)

	switch format {
	case FormatConsole, "":
		l, err = newConsoleLogger(w, level)
	case FormatJSON:
		l, err = newJSONLogger(w, level)
	case FormatText:
		l, err = newTextLogger(w, level)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return l, nil
}

// Nop discards everything.
func Nop() Logger {
	return NewZerologLogger(zerolog.Nop())
}
