// Command sortbench compares the decorated and naive sorting strategies on a
// page collection, either loaded from disk or generated.
//
// Configuration is read from the environment:
//
//	SORTBENCH_DIR          content directory to load; a corpus is generated when unset
//	SORTBENCH_PARAM        sort key name (default: rating, or asked when interactive)
//	SORTBENCH_SIZE         generated corpus size (default 10000)
//	SORTBENCH_SPARSITY     fraction of generated pages without the param (default 0.5)
//	SORTBENCH_SEED         generator seed (default 1)
//	SORTBENCH_ROUNDS       rounds per strategy; the best time is reported (default 5)
//	SORTBENCH_WORKERS      parallel file loaders (default GOMAXPROCS)
//	SORTBENCH_DESCENDING   sort in descending order (default false)
//	SORTBENCH_INTERACTIVE  prompt for the param and direction (default false)
//
// Logging is configured with LOG_JSON, LOG_LEVEL and LOG_OUTPUT. Tracing is
// off unless OTEL_ENABLED is set and OTEL_EXPORTER_OTLP_TRACES_ENDPOINT names
// an OTLP/HTTP collector.
package main

import (
	"context"
	"os"

	"github.com/amp-labs/keysort/logger"
	"github.com/amp-labs/keysort/shutdown"
	"github.com/amp-labs/keysort/telemetry"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	logger.ConfigureLogging("sortbench")

	ctx, stop := shutdown.SetupHandler(context.Background())
	defer stop()

	shutdown.BeforeShutdown(func() {
		logger.Get(ctx).Warn("interrupted, results will be incomplete")
	})

	cfg, err := loadConfig()
	if err != nil {
		logger.Get(ctx).Error("invalid configuration", "error", err)

		return 1
	}

	otelCfg, err := telemetry.LoadConfigFromEnv(ctx)
	if err != nil {
		logger.Get(ctx).Error("invalid telemetry configuration", "error", err)

		return 1
	}

	if err := telemetry.Initialize(ctx, otelCfg); err != nil {
		logger.Get(ctx).Warn("tracing disabled", "error", err)
	}

	defer func() {
		if err := telemetry.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Get(ctx).Warn("failed to flush traces", "error", err)
		}
	}()

	if _, err := run(ctx, cfg); err != nil {
		logger.Get(ctx).Error("benchmark failed", "error", err)

		return 1
	}

	return 0
}
