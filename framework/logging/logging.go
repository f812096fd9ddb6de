// Package logging builds the application logger from configuration.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/km-arc/go-inject/framework/config"
)

// New returns a logger writing to w. Format "json" writes one JSON object per
// line, anything else writes human-readable console output. An unknown or empty
// level falls back to info.
func New(cfg config.LogConfig, w io.Writer) zerolog.Logger {
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.DateTime,
		}
	}
	return zerolog.New(w).
		Level(Level(cfg.Level)).
		With().
		Timestamp().
		Logger()
}

// Level parses a level name, falling back to info.
func Level(name string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
