// Package telemetry configures OpenTelemetry tracing and hands out the tracer
// used around page loading and benchmark runs.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/amp-labs/keysort/envutil"
	"github.com/amp-labs/keysort/logger"
)

const (
	instrumentationName   = "github.com/amp-labs/keysort"
	defaultServiceVersion = "1.0.0"
	defaultTimeout        = 5 * time.Second
)

var tracerProvider *sdktrace.TracerProvider //nolint:gochecknoglobals

// Config holds the OpenTelemetry configuration.
type Config struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
	Timeout        time.Duration
}

// LoadConfigFromEnv reads OTEL_ENABLED, OTEL_SERVICE_NAME (default: the
// logging subsystem), OTEL_SERVICE_VERSION, OTEL_EXPORTER_OTLP_TRACES_ENDPOINT
// and OTEL_EXPORTER_OTLP_TRACES_TIMEOUT.
func LoadConfigFromEnv(ctx context.Context) (*Config, error) {
	enabled := envutil.Bool("OTEL_ENABLED",
		envutil.Default(false)).
		ValueOrElse(false)

	svcName, err := envutil.String("OTEL_SERVICE_NAME",
		envutil.Default(logger.GetSubsystem(ctx))).
		Value()
	if err != nil {
		return nil, err
	}

	svcVersion, err := envutil.String("OTEL_SERVICE_VERSION",
		envutil.Default(defaultServiceVersion)).
		Value()
	if err != nil {
		return nil, err
	}

	endpoint, err := envutil.String("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", envutil.Default("")).Value()
	if err != nil {
		return nil, err
	}

	timeout, err := envutil.Duration("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT",
		envutil.Default(defaultTimeout)).
		Value()
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceName:    svcName,
		ServiceVersion: svcVersion,
		Endpoint:       endpoint,
		Enabled:        enabled,
		Timeout:        timeout,
	}, nil
}

// Initialize installs a batching OTLP/HTTP tracer provider as the global
// provider. It does nothing when tracing is disabled or has no endpoint.
func Initialize(ctx context.Context, config *Config) error {
	log := logger.Get(ctx)

	if !config.Enabled {
		log.Debug("OpenTelemetry tracing is disabled")

		return nil
	}

	if config.Endpoint == "" {
		log.Warn("OpenTelemetry endpoint not configured, tracing will be disabled")

		return nil
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(config.ServiceName),
			semconv.ServiceVersionKey.String(config.ServiceVersion),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(config.Endpoint),
		otlptracehttp.WithTimeout(config.Timeout),
	)
	if err != nil {
		return fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	tracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	)

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	log.Info("OpenTelemetry tracing initialized",
		"service", config.ServiceName,
		"version", config.ServiceVersion,
		"endpoint", config.Endpoint)

	return nil
}

// Shutdown flushes and stops the provider installed by Initialize, if any.
func Shutdown(ctx context.Context) error {
	if tracerProvider == nil {
		return nil
	}

	logger.Get(ctx).Debug("shutting down OpenTelemetry tracer provider")

	err := tracerProvider.Shutdown(ctx)
	tracerProvider = nil

	return err
}

type contextKey string

const tracerKey contextKey = "tracer"

// WithTracer overrides the tracer returned by Tracer for ctx.
func WithTracer(ctx context.Context, tracer trace.Tracer) context.Context {
	return context.WithValue(ctx, tracerKey, tracer)
}

// Tracer returns the tracer set with WithTracer, or the global provider's
// tracer. With no provider installed its spans are no-ops.
func Tracer(ctx context.Context) trace.Tracer { //nolint:ireturn
	if tracer, ok := ctx.Value(tracerKey).(trace.Tracer); ok {
		return tracer
	}

	return otel.Tracer(instrumentationName)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}

	span.End()
}
