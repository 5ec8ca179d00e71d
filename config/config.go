// Package config holds the tuning knobs of the AR workflows. Values come from
// an embedded YAML file, an optional user file and ARFLOW_* environment
// variables, in that order of precedence (lowest first).
package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

//go:embed defaults.yaml
var defaults []byte

// Config is the complete workflow tuning.
type Config struct {
	Floorplan   Floorplan   `yaml:"floorplan"`
	Legacy      Legacy      `yaml:"legacy"`
	ShaderPaint ShaderPaint `yaml:"shaderpaint"`
	Debug       Debug       `yaml:"debug"`
}

// Floorplan tunes the corner-placement workflow.
type Floorplan struct {
	// ScanTimeout is passed to the StartScan command.
	ScanTimeout time.Duration `yaml:"scan_timeout"`
	// MinCorners is the number of corners required to finish placing corners.
	MinCorners int `yaml:"min_corners"`
}

// Legacy tunes the swatch workflow's steadiness debounce.
type Legacy struct {
	// AngleThreshold in degrees; a larger absolute angle resets the counter.
	AngleThreshold float64 `yaml:"angle_threshold"`
	// SteadySamples is the count the steadiness counter must exceed.
	SteadySamples int `yaml:"steady_samples"`
}

// ShaderPaint tunes the shader painting workflow.
type ShaderPaint struct {
	DefaultTolerance float64 `yaml:"default_tolerance"`
}

// Debug toggles diagnostics that have no behavioral effect.
type Debug struct {
	Trace bool `yaml:"trace"`
}

// Default returns the embedded defaults. It panics if they are malformed,
// which can only happen if the embedded file is broken.
func Default() Config {
	cfg, err := LoadFromBytes(defaults)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}

	return cfg
}

// Load reads a YAML file layered over the embedded defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Intentional path-based loading
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	return overlay(data)
}

// LoadFromFS reads a YAML file from fsys layered over the embedded defaults.
func LoadFromFS(fsys fs.FS, name string) (Config, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %q: %w", name, err)
	}

	return overlay(data)
}

// LoadFromBytes parses a complete YAML document. Fields missing from data are
// zero, so the result usually fails validation unless data is complete; use
// Load or LoadFromFS to layer a partial file over the defaults.
func LoadFromBytes(data []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func overlay(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects non-positive thresholds and out-of-range tolerances.
func (c Config) Validate() error {
	var errs []error

	if c.Floorplan.ScanTimeout <= 0 {
		errs = append(errs, fmt.Errorf("floorplan.scan_timeout must be positive, got %s", c.Floorplan.ScanTimeout))
	}

	if c.Floorplan.MinCorners <= 0 {
		errs = append(errs, fmt.Errorf("floorplan.min_corners must be positive, got %d", c.Floorplan.MinCorners))
	}

	if c.Legacy.AngleThreshold <= 0 {
		errs = append(errs, fmt.Errorf("legacy.angle_threshold must be positive, got %v", c.Legacy.AngleThreshold))
	}

	if c.Legacy.SteadySamples <= 0 {
		errs = append(errs, fmt.Errorf("legacy.steady_samples must be positive, got %d", c.Legacy.SteadySamples))
	}

	if c.ShaderPaint.DefaultTolerance < 0 || c.ShaderPaint.DefaultTolerance > 1 {
		errs = append(errs, fmt.Errorf("shaderpaint.default_tolerance must be within [0, 1], got %v",
			c.ShaderPaint.DefaultTolerance))
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return data, nil
}

// FromCtx returns the configuration stored in ctx, or the defaults.
func FromCtx(ctx context.Context) Config {
	if ctx != nil {
		if cfg, ok := ctx.Value(contextKey{}).(Config); ok {
			return cfg
		}
	}

	return Default()
}

// WithConfig stores cfg in the context.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey{}, cfg)
}

type contextKey struct{}
