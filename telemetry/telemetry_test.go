package telemetry

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/amp-labs/keysort/logger"
)

var errSpanFailed = errors.New("span failed")

func unsetenv(t *testing.T, keys ...string) {
	t.Helper()

	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigFromEnv_Defaults(t *testing.T) { //nolint:paralleltest
	unsetenv(t, "OTEL_ENABLED", "OTEL_SERVICE_NAME", "OTEL_SERVICE_VERSION",
		"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "OTEL_EXPORTER_OTLP_TRACES_TIMEOUT")

	ctx := logger.WithSubsystem(t.Context(), "sortbench")

	cfg, err := LoadConfigFromEnv(ctx)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ServiceName:    "sortbench",
		ServiceVersion: defaultServiceVersion,
		Timeout:        defaultTimeout,
	}, cfg)
}

func TestLoadConfigFromEnv_Overrides(t *testing.T) { //nolint:paralleltest
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_SERVICE_NAME", "bench")
	t.Setenv("OTEL_SERVICE_VERSION", "2.0.0")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "http://collector:4318")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", "250ms")

	cfg, err := LoadConfigFromEnv(t.Context())
	require.NoError(t, err)

	assert.Equal(t, &Config{
		ServiceName:    "bench",
		ServiceVersion: "2.0.0",
		Endpoint:       "http://collector:4318",
		Enabled:        true,
		Timeout:        250 * time.Millisecond,
	}, cfg)

	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_TIMEOUT", "soon")

	_, err = LoadConfigFromEnv(t.Context())
	require.Error(t, err)
}

func TestInitialize(t *testing.T) { //nolint:paralleltest
	ctx := t.Context()

	require.NoError(t, Initialize(ctx, &Config{Enabled: false}))
	assert.Nil(t, tracerProvider)

	require.NoError(t, Initialize(ctx, &Config{Enabled: true}))
	assert.Nil(t, tracerProvider)

	require.NoError(t, Initialize(ctx, &Config{
		ServiceName: "sortbench",
		Endpoint:    "http://127.0.0.1:4318",
		Enabled:     true,
		Timeout:     time.Second,
	}))
	assert.NotNil(t, tracerProvider)

	require.NoError(t, Shutdown(context.Background()))
	assert.Nil(t, tracerProvider)
	require.NoError(t, Shutdown(context.Background()))
}

func TestTracerAndEnd(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	ctx := WithTracer(t.Context(), provider.Tracer("test"))

	_, ok := Tracer(ctx).Start(ctx, "ok")
	End(ok, nil)

	_, failed := Tracer(ctx).Start(ctx, "failed")
	End(failed, errSpanFailed)

	ended := recorder.Ended()
	require.Len(t, ended, 2)

	assert.Equal(t, "ok", ended[0].Name())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)
	assert.Equal(t, "failed", ended[1].Name())
	assert.Equal(t, codes.Error, ended[1].Status().Code)
	assert.Len(t, ended[1].Events(), 1)

	assert.NotNil(t, Tracer(t.Context()))
}
