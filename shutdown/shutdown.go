// Package shutdown cancels a context when the process is asked to stop.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/amp-labs/keysort/logger"
)

var (
	mut   sync.Mutex //nolint:gochecknoglobals
	hooks []func()   //nolint:gochecknoglobals
)

// BeforeShutdown registers h to run when a stop signal arrives, before the
// handler's context is canceled.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// SetupHandler returns a child of parent that is canceled on SIGINT or
// SIGTERM, after the registered hooks have run. Call stop to release the
// signal handler once the work is done.
func SetupHandler(parent context.Context) (ctx context.Context, stop func()) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(parent)

	go func() {
		select {
		case sig := <-signals:
			logger.Get(ctx).Warn("received signal, shutting down", "signal", sig.String())
			runHooks()
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(signals)
		cancel()
	}
}

func runHooks() {
	mut.Lock()
	pending := hooks
	hooks = nil
	mut.Unlock()

	for _, h := range pending {
		h()
	}
}
