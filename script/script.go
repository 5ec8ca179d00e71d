// Package script runs command-line entry points with env file loading,
// logging, telemetry, signal handling and exit code management.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/amp-labs/arflow/envutil"
	"github.com/amp-labs/arflow/logger"
	"github.com/amp-labs/arflow/telemetry"
)

// EnvFileVar lists extra env files to load, separated by semicolons.
const EnvFileVar = "ARFLOW_ENV_FILE"

const shutdownTimeout = 5 * time.Second

// Main is the body of a script. args excludes the program name.
type Main func(ctx context.Context, args []string) error

// Option is a function that configures a Script.
type Option func(script *Script)

// Exit returns an error that will cause the script to exit with the given code.
// Use this to exit with a specific code without logging an error.
func Exit(code int) error {
	return &exitError{
		code: code,
	}
}

// ExitWithError returns an error that will cause the script to exit with code 1
// and log the provided error.
func ExitWithError(err error) error {
	return &exitError{
		err:  err,
		code: 1,
	}
}

// ExitWithErrorMessage returns an error that will cause the script to exit with code 1
// and log a formatted error message.
func ExitWithErrorMessage(msg string, args ...any) error {
	return &exitError{
		err:  fmt.Errorf(msg, args...), //nolint:err113
		code: 1,
	}
}

// exitError is an error type that carries an exit code for script termination.
type exitError struct {
	err  error
	code int
}

func (e *exitError) Error() string {
	msg := "exit " + strconv.FormatInt(int64(e.code), 10)

	if e.err != nil {
		return msg + ": " + e.err.Error()
	}

	return msg
}

func (e *exitError) Unwrap() error {
	return e.err
}

// LogLevel sets the minimum log level for the script's logger.
func LogLevel(lvl slog.Level) Option {
	return func(script *Script) {
		script.loggerOpts = append(script.loggerOpts, func(options *logger.Options) {
			options.MinLevel = lvl
		})
	}
}

// LogOutput sets the output writer for the script's logger.
func LogOutput(writer io.Writer) Option {
	return func(script *Script) {
		script.loggerOpts = append(script.loggerOpts, logger.WithOutput(writer))
	}
}

// WithEnvFiles loads the given env files before anything else runs. Missing
// files are skipped.
func WithEnvFiles(paths ...string) Option {
	return func(script *Script) {
		script.envFiles = append(script.envFiles, paths...)
	}
}

// WithTelemetry controls whether OpenTelemetry is set up from the OTEL_*
// variables. Defaults to true.
func WithTelemetry(enabled bool) Option {
	return func(script *Script) {
		script.telemetry = enabled
	}
}

// Script represents a runnable script with configured logging and signal handling.
type Script struct {
	name       string
	envFiles   []string
	telemetry  bool
	loggerOpts []logger.Option
}

// New creates a new Script with the given name and options.
func New(scriptName string, opts ...Option) *Script {
	script := &Script{
		name:      scriptName,
		telemetry: true,
	}

	for _, opt := range opts {
		opt(script)
	}

	return script
}

// Run executes main with the process arguments, handling signal interrupts
// and exit codes. The context passed to main is canceled on SIGINT.
// This function calls os.Exit and does not return.
func (r *Script) Run(main Main) {
	os.Exit(r.run(main, os.Args[1:]))
}

type providersKey struct{}

// Telemetry returns the providers installed for the running script. The
// result is never nil.
func Telemetry(ctx context.Context) *telemetry.Providers {
	if p, ok := ctx.Value(providersKey{}).(*telemetry.Providers); ok && p != nil {
		return p
	}

	return &telemetry.Providers{}
}

// run executes main and returns the process exit code.
func (r *Script) run(main Main, args []string) int {
	skipped, envErr := r.loadEnv()

	// Catch Ctrl+C and handle it gracefully by shutting down the context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	stopOnce := sync.Once{}
	cancel := func() {
		stopOnce.Do(stop)
	}

	defer cancel()

	providers, telErr := r.setupTelemetry(ctx)

	defer func() {
		shutdownCtx, done := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer done()

		if err := providers.Shutdown(shutdownCtx); err != nil {
			logger.Get(ctx).Warn("telemetry shutdown failed", "error", err)
		}
	}()

	opts := append([]logger.Option{logger.WithExtraHandler(providers.LogHandler())}, r.loggerOpts...)

	log, err := logger.ConfigureLogging(ctx, r.name, opts...)
	if err != nil {
		log = logger.ConfigureLoggingWithOptions(logger.Options{Subsystem: r.name, Output: os.Stderr})
		log.Error("invalid logging configuration", "error", err)

		return 1
	}

	for _, path := range skipped {
		log.Debug("env file not found, skipping", "path", path)
	}

	if err := errors.Join(envErr, telErr); err != nil {
		log.Error("error preparing script", "error", err)

		return 1
	}

	if main == nil {
		log.Error("main is nil")

		return 1
	}

	ctx = context.WithValue(ctx, providersKey{}, providers)

	return exitCode(log, main(ctx, args))
}

// loadEnv applies the configured env files, then the ones named by
// ARFLOW_ENV_FILE. It returns the paths that did not exist.
func (r *Script) loadEnv() ([]string, error) {
	paths := append([]string{}, r.envFiles...)

	extra := envutil.Map(envutil.String(context.Background(), EnvFileVar), splitList).ValueOrElse(nil)
	paths = append(paths, extra...)

	var (
		present []string
		skipped []string
	)

	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			skipped = append(skipped, path)

			continue
		}

		present = append(present, path)
	}

	return skipped, envutil.Apply(false, present...)
}

func (r *Script) setupTelemetry(ctx context.Context) (*telemetry.Providers, error) {
	if !r.telemetry {
		return &telemetry.Providers{}, nil
	}

	cfg, err := telemetry.LoadConfigFromEnv(ctx, envutil.String(ctx, "ARFLOW_ENV").ValueOrElse("local"))
	if err != nil {
		return &telemetry.Providers{}, fmt.Errorf("telemetry config: %w", err)
	}

	if !cfg.Enabled {
		return &telemetry.Providers{}, nil
	}

	providers, err := telemetry.Initialize(ctx, cfg)
	if err != nil {
		return &telemetry.Providers{}, err
	}

	return providers, nil
}

func splitList(s string) ([]string, error) {
	var out []string

	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out, nil
}

func exitCode(log *slog.Logger, err error) int {
	if err == nil {
		return 0
	}

	var exitErr *exitError

	if errors.As(err, &exitErr) {
		if exitErr.code != 0 {
			log.Error("error running script", "error", err)
		}

		return exitErr.code
	}

	log.Error("error running script", "error", err)

	return 1
}
