// Package envutil reads typed configuration values from the environment.
// Every reader consults context overrides first, so tests and tools can
// inject values without touching the process environment.
package envutil

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

type envContextKey string

// WithEnvOverride returns a context in which key reads as value.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, envContextKey(key), value)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	val, ok := ctx.Value(envContextKey(key)).(string)

	return val, ok
}

// get returns a Reader for the given key, preferring context overrides.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool accepts the values understood by strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

// Int reads a base-10 integer.
func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(ctx, key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

// Float64 reads a floating point number.
func Float64(ctx context.Context, key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(get(ctx, key), func(s string) (float64, error) {
		return strconv.ParseFloat(strings.TrimSpace(s), 64)
	}), opts)
}

// Duration reads a value understood by time.ParseDuration.
func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), func(s string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel reads a log level name (debug, info, warn, error).
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s))))

		return level, err
	}), opts)
}

// Positive is a validation that rejects zero and negative numbers.
func Positive[T int | float64 | time.Duration](val T) error {
	if val <= 0 {
		return fmt.Errorf("%w: must be positive, got %v", ErrBadEnvVar, val)
	}

	return nil
}
