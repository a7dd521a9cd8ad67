package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Log field names shared by every component.
const (
	FieldTraceID    = "trace_id"
	FieldOperation  = "operation"
	FieldDurationMs = "duration_ms"
	FieldUserID     = "user_id"
	FieldStatus     = "status"
	FieldComponent  = "component"
)

// NewLogger builds the service logger. The level defaults to info when it
// cannot be parsed.
func NewLogger(cfg LoggingConfig, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	w := out
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "carbon-compass").
		Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str(FieldComponent, component).Logger()
}
