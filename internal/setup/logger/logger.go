package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds a JSON logger on stderr; stdout is reserved for answers.
func New(level string) zerolog.Logger {
	return build(os.Stderr, level)
}

// NewConsole is New with human readable output.
func NewConsole(level string) zerolog.Logger {
	return build(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, level)
}

func build(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()
}
