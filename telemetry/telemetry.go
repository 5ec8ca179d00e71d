// Package telemetry wires OpenTelemetry traces and logs for arflow binaries.
// Dispatch spans come from the statemachine package; this package only sets
// up the exporters they end up in.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amp-labs/arflow/envutil"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
)

const (
	defaultServiceName    = "arflow"
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second

	instrumentationName = "github.com/amp-labs/arflow"
)

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Environment    string
	TracesEndpoint string
	LogsEndpoint   string
	Enabled        bool
	Timeout        time.Duration
}

// LoadConfigFromEnv loads the OpenTelemetry configuration from environment
// variables. The logs endpoint is optional; without it only traces are
// exported.
func LoadConfigFromEnv(ctx context.Context, runningEnv string) (*Config, error) {
	enabled, err := envutil.Bool(ctx, "OTEL_ENABLED", envutil.Default(false)).Value()
	if err != nil {
		return nil, err
	}

	svcName, err := envutil.String(ctx, "OTEL_SERVICE_NAME", envutil.Default(defaultServiceName)).Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String(ctx, "OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).
		Value()
	if err != nil {
		return nil, err
	}

	tracesEndpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	logsEndpoint, err := envutil.String(ctx, "OTEL_EXPORTER_OTLP_LOGS_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration(ctx, "OTEL_EXPORTER_OTLP_TIMEOUT",
		envutil.Default(defaultTimeout),
		envutil.Validate(envutil.Positive[time.Duration])).
		Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Environment:    runningEnv,
		TracesEndpoint: tracesEndpoint,
		LogsEndpoint:   logsEndpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Providers holds whatever Initialize installed. The zero value is a
// disabled setup.
type Providers struct {
	tracer *sdktrace.TracerProvider
	logger *sdklog.LoggerProvider
}

// LogHandler returns a slog handler feeding the OpenTelemetry log pipeline,
// or nil when logs are not exported. Pass it to logger.WithExtraHandler.
func (p *Providers) LogHandler() slog.Handler {
	if p == nil || p.logger == nil {
		return nil
	}

	return otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(p.logger))
}

// TracingEnabled reports whether spans are exported.
func (p *Providers) TracingEnabled() bool {
	return p != nil && p.tracer != nil
}

// Shutdown flushes and stops every installed provider.
func (p *Providers) Shutdown(ctx context.Context) error {
	if p == nil {
		return nil
	}

	var errs []error

	if p.tracer != nil {
		slog.Info("Shutting down OpenTelemetry tracer provider")

		errs = append(errs, p.tracer.Shutdown(ctx))
	}

	if p.logger != nil {
		slog.Info("Shutting down OpenTelemetry logger provider")

		errs = append(errs, p.logger.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

// Initialize sets up OpenTelemetry with the given configuration and installs
// the providers globally.
func Initialize(ctx context.Context, config *Config) (*Providers, error) {
	if config == nil || !config.Enabled {
		slog.Info("OpenTelemetry is disabled")

		return &Providers{}, nil
	}

	if config.TracesEndpoint == "" && config.LogsEndpoint == "" {
		slog.Warn("OpenTelemetry endpoints not configured, telemetry will be disabled")

		return &Providers{}, nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
			semconv.DeploymentEnvironmentKey.String(config.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	providers := &Providers{}

	if config.TracesEndpoint != "" {
		providers.tracer, err = newTracerProvider(ctx, config, res)
		if err != nil {
			return nil, err
		}

		otel.SetTracerProvider(providers.tracer)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	if config.LogsEndpoint != "" {
		providers.logger, err = newLoggerProvider(ctx, config, res)
		if err != nil {
			return nil, errors.Join(err, providers.Shutdown(ctx))
		}

		global.SetLoggerProvider(providers.logger)
	}

	slog.Info("OpenTelemetry initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"environment", config.Environment,
		"traces_endpoint", config.TracesEndpoint,
		"logs_endpoint", config.LogsEndpoint,
	)

	return providers, nil
}

func newTracerProvider(ctx context.Context, config *Config, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.TracesEndpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

func newLoggerProvider(ctx context.Context, config *Config, res *resource.Resource) (*sdklog.LoggerProvider, error) {
	exporter, err := otlploghttp.New(ctx,
		otlploghttp.WithEndpointURL(config.LogsEndpoint),
		otlploghttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP log exporter: %w", err)
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
		sdklog.WithResource(res),
	), nil
}
