package ordered

import (
	"go.uber.org/atomic"

	"github.com/amp-labs/keysort/optional"
)

// Count wraps key so that every call increments the returned counter.
// The counter is safe to read while the wrapped function is in use.
func Count[T, K any](key KeyFunc[T, K]) (KeyFunc[T, K], *atomic.Int64) {
	calls := atomic.NewInt64(0)

	return func(item T) (optional.Value[K], error) {
		calls.Inc()

		return key(item)
	}, calls
}
