// Package config loads tourbench settings from YAML and turns them into
// solver options and a structured logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourbench/tsp"
)

// DefaultInput is the instance file used when none is configured.
const DefaultInput = "sample.tsp"

// ErrInvalidConfig wraps every validation failure reported by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New()

// Config is the on-disk settings document.
type Config struct {
	Input     string  `yaml:"input" validate:"required"`
	Strategy  string  `yaml:"strategy" validate:"required,oneof=bruteforce exhaustive greedy heldkarp"`
	Workers   int     `yaml:"workers" validate:"gte=0,lte=1024"`
	MaxCities int     `yaml:"max_cities" validate:"gte=0"`
	Eager     bool    `yaml:"eager"`
	Log       Log     `yaml:"log"`
	Metrics   Metrics `yaml:"metrics"`
}

// Log selects the slog handler.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Metrics configures the optional Prometheus textfile dump.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Input:    DefaultInput,
		Strategy: tsp.BruteForce.String(),
		Workers:  1,
		Log:      Log{Level: "info", Format: "text"},
	}
}

// Load reads path on top of Default. Keys missing from the file keep their
// defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// normalize folds strategy aliases and case so that "Nearest-Neighbor" and
// "greedy" validate the same way.
func (c *Config) normalize() {
	if st, err := tsp.ParseStrategy(c.Strategy); err == nil {
		c.Strategy = st.String()
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate normalizes aliases and checks field constraints.
func (c *Config) Validate() error {
	c.normalize()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options converts the settings into tsp.Options.
func (c Config) Options() (tsp.Options, error) {
	st, err := tsp.ParseStrategy(c.Strategy)
	if err != nil {
		return tsp.Options{}, err
	}

	return tsp.Options{
		Strategy:  st,
		Workers:   c.Workers,
		MaxCities: c.MaxCities,
		Eager:     c.Eager,
	}, nil
}

// NewLogger builds a slog.Logger writing to w with the configured level and
// format.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	var (
		level slog.Level
		opts  = &slog.HandlerOptions{}
	)
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts.Level = level

	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
