// Package config loads pagesql settings from TOML.
package config

import (
	"fmt"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/zoobzio/pagesql"
	"github.com/zoobzio/pagesql/dialects"
	"github.com/zoobzio/pagesql/logger"
)

// identPattern is what a driver accepts as a bare parameter name.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config selects the dialect and the synthetic parameter settings.
// Empty parameter names keep the dialect's defaults.
type Config struct {
	Dialect     string        `toml:"dialect" validate:"required"`
	BindStyle   string        `toml:"bind_style" validate:"omitempty,oneof=question dollar named at"`
	OffsetParam string        `toml:"offset_param" validate:"omitempty,sqlident"`
	LimitParam  string        `toml:"limit_param" validate:"omitempty,sqlident"`
	MaxLimit    int           `toml:"max_limit" validate:"gte=0"`
	Logging     logger.Config `toml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{Dialect: "postgres"}
	c.setDefaults()
	return c
}

// Load reads and validates a TOML file.
func Load(path string) (*Config, error) {
	var c Config
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return c.finish()
}

// Parse reads and validates TOML text.
func Parse(data []byte) (*Config, error) {
	var c Config
	if _, err := toml.Decode(string(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return c.finish()
}

func (c *Config) finish() (*Config, error) {
	c.setDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) setDefaults() {
	c.Logging.SetDefaults()
}

// Validate checks field constraints, that the dialect is known and that
// it can bind the window parameter names.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		return identPattern.MatchString(fl.Field().String())
	}); err != nil {
		return err
	}
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	pager, err := c.Pager(zerolog.Nop())
	if err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	if err := pager.ValidateParamNames(); err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

// Pager builds a Pager from the configuration.
func (c *Config) Pager(log zerolog.Logger) (*pagesql.Pager, error) {
	d, err := dialects.Lookup(c.Dialect)
	if err != nil {
		return nil, err
	}

	opts := []pagesql.Option{
		pagesql.WithMaxLimit(c.MaxLimit),
		pagesql.WithLogger(log),
	}
	if c.OffsetParam != "" || c.LimitParam != "" {
		offset, limit := pagesql.New(d).ParamNames()
		if c.OffsetParam != "" {
			offset = c.OffsetParam
		}
		if c.LimitParam != "" {
			limit = c.LimitParam
		}
		opts = append(opts, pagesql.WithParamNames(offset, limit))
	}
	if c.BindStyle != "" {
		style, ok := pagesql.ParseBindStyle(c.BindStyle)
		if !ok {
			return nil, fmt.Errorf("unknown bind style '%s'", c.BindStyle)
		}
		opts = append(opts, pagesql.WithBindStyle(style))
	}

	return pagesql.New(d, opts...), nil
}
