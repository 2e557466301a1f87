// Package logger builds the zerolog logger used by pagesql tools.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls log level and output format.
type Config struct {
	Level  string `toml:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Format string `toml:"format" validate:"omitempty,oneof=json console"`
}

// SetDefaults fills empty fields with info level console output.
func (c *Config) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}

// New creates a logger writing to stderr.
func New(c Config) (zerolog.Logger, error) {
	return NewWithWriter(c, os.Stderr)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(c Config, w io.Writer) (zerolog.Logger, error) {
	c.SetDefaults()

	level, err := zerolog.ParseLevel(c.Level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	var out io.Writer
	switch c.Format {
	case "json":
		out = w
	case "console":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", c.Format)
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
