// Package ordered sorts items by an optional key while reading each item's
// key only once.
//
// Sort decorates every item with its key, sorts the decorated pairs and strips
// the keys again (decorate-sort-undecorate). Naive applies the same comparison
// policy but re-reads both keys on every comparison; it exists as the
// baseline the decorated strategy is measured against.
//
// # Comparison policy
//
// When both items have a key, their order is the order of the keys. When
// either key is absent the keys are ignored and the items are compared with
// the fallback ordering. This policy is not transitive once keyed and unkeyed
// items are mixed: an unkeyed item lands wherever the fallback ordering puts
// it relative to its neighbours, not at the front or the back. Both
// strategies run the same stable sort with the same policy, so for a given
// input they always produce the same output.
//
// # Stability
//
// Sorting is stable. Items whose keys compare equal keep their input order.
package ordered

import (
	"cmp"
	"runtime/debug"
	"slices"

	"github.com/amp-labs/keysort/compare"
	errs "github.com/amp-labs/keysort/errors"
	"github.com/amp-labs/keysort/optional"
)

// KeyFunc extracts the sort key of an item. It returns optional.None when the
// item has no key. It must be free of side effects: Sort calls it exactly
// once per item, Naive many times.
type KeyFunc[T, K any] func(item T) (optional.Value[K], error)

// Lookup adapts a comma-ok accessor into a KeyFunc that never fails.
func Lookup[T, K any](f func(item T) (K, bool)) KeyFunc[T, K] {
	return func(item T) (optional.Value[K], error) {
		return optional.FromPair(f(item)), nil
	}
}

// decorated pairs an item with its precomputed key for the duration of one sort.
type decorated[T, K any] struct {
	key  optional.Value[K]
	item T
}

// Sort returns a new slice holding items ordered by key, falling back to the
// items' own ordering whenever either key of a pair is absent. The input
// slice is left untouched.
//
// key is called exactly len(items) times, in input order. If it fails or
// panics for any item the sort is abandoned and the returned error wraps
// ErrInvalidKey. If keys or fallback fail the returned error wraps
// ErrIncomparable. No partial result is returned on error.
func Sort[T, K any](
	items []T,
	key KeyFunc[T, K],
	keys compare.Func[K],
	fallback compare.Func[T],
	opts ...Option,
) ([]T, error) {
	o := newOptions(opts)
	rec := newRecorder(strategyDecorated, o.label)

	result, err := sortDecorated(items, key, newPolicy(keys, fallback, o), rec)

	rec.finish(err)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// SortOrdered is Sort for keys and items that are ordered by the < operator.
func SortOrdered[T, K cmp.Ordered](items []T, key KeyFunc[T, K], opts ...Option) ([]T, error) {
	return Sort(items, key, compare.Natural[K](), compare.Natural[T](), opts...)
}

func sortDecorated[T, K any](
	items []T,
	key KeyFunc[T, K],
	pol *policy[T, K],
	rec *recorder,
) ([]T, error) {
	pairs := make([]decorated[T, K], len(items))

	for idx, item := range items {
		k, err := extract(key, item)

		rec.extractions++

		if err != nil {
			return nil, &KeyError{Index: idx, Err: err}
		}

		pairs[idx] = decorated[T, K]{key: k, item: item}
	}

	slices.SortStableFunc(pairs, func(a, b decorated[T, K]) int {
		return pol.compare(a.key, a.item, b.key, b.item)
	})

	rec.comparisons += pol.comparisons

	if pol.err != nil {
		return nil, pol.err
	}

	result := make([]T, len(pairs))
	for idx, pair := range pairs {
		result[idx] = pair.item
	}

	return result, nil
}

// extract calls key and converts a panic inside it into an error.
func extract[T, K any](key KeyFunc[T, K], item T) (value optional.Value[K], err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.FromPanic(r, debug.Stack())
		}
	}()

	return key(item)
}
