package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amp-labs/arflow/envutil"
)

// Environment variables that override file values.
const (
	EnvFloorplanScanTimeout = "ARFLOW_FLOORPLAN_SCAN_TIMEOUT"
	EnvFloorplanMinCorners  = "ARFLOW_FLOORPLAN_MIN_CORNERS"
	EnvLegacyAngleThreshold = "ARFLOW_LEGACY_ANGLE_THRESHOLD"
	EnvLegacySteadySamples  = "ARFLOW_LEGACY_STEADY_SAMPLES"
	EnvShaderPaintTolerance = "ARFLOW_SHADERPAINT_DEFAULT_TOLERANCE"
	EnvDebugTrace           = "ARFLOW_DEBUG_TRACE"
	EnvConfigFile           = "ARFLOW_CONFIG"
)

// FromEnv applies ARFLOW_* overrides to base. Malformed or invalid values are
// reported together rather than silently ignored.
func FromEnv(ctx context.Context, base Config) (Config, error) {
	cfg := base

	readers := []error{
		set(envutil.Duration(ctx, EnvFloorplanScanTimeout,
			envutil.Validate(envutil.Positive[time.Duration])), &cfg.Floorplan.ScanTimeout),
		set(envutil.Int(ctx, EnvFloorplanMinCorners,
			envutil.Validate(envutil.Positive[int])), &cfg.Floorplan.MinCorners),
		set(envutil.Float64(ctx, EnvLegacyAngleThreshold,
			envutil.Validate(envutil.Positive[float64])), &cfg.Legacy.AngleThreshold),
		set(envutil.Int(ctx, EnvLegacySteadySamples,
			envutil.Validate(envutil.Positive[int])), &cfg.Legacy.SteadySamples),
		set(envutil.Float64(ctx, EnvShaderPaintTolerance), &cfg.ShaderPaint.DefaultTolerance),
		set(envutil.Bool(ctx, EnvDebugTrace), &cfg.Debug.Trace),
	}

	if err := errors.Join(readers...); err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return base, err
	}

	return cfg, nil
}

// LoadFromEnv loads the file named by ARFLOW_CONFIG (or the defaults when it
// is unset) and applies the remaining ARFLOW_* overrides.
func LoadFromEnv(ctx context.Context) (Config, error) {
	base := Default()

	path := envutil.String(ctx, EnvConfigFile)
	if path.HasValue() {
		loaded, err := Load(path.ValueOrElse(""))
		if err != nil {
			return Config{}, err
		}

		base = loaded
	}

	return FromEnv(ctx, base)
}

func set[T any](rdr envutil.Reader[T], dst *T) error {
	if err := rdr.Error(); err != nil {
		_, err = rdr.Value()

		return err
	}

	rdr.DoWithValue(func(val T) {
		*dst = val
	})

	return nil
}
