package ordered

import (
	"slices"

	"github.com/amp-labs/keysort/compare"
	"github.com/amp-labs/keysort/optional"
)

// Naive sorts like Sort but calls key for both operands inside every
// comparison, which makes O(n log n) extractor calls instead of n. It is the
// benchmark baseline for Sort and produces the same output for the same input.
//
// Errors from key are reported as a *KeyError with Index -1, since the
// position of the failing item is not tracked during the sort.
func Naive[T, K any](
	items []T,
	key KeyFunc[T, K],
	keys compare.Func[K],
	fallback compare.Func[T],
	opts ...Option,
) ([]T, error) {
	o := newOptions(opts)
	rec := newRecorder(strategyNaive, o.label)
	pol := newPolicy(keys, fallback, o)

	result := make([]T, len(items))
	copy(result, items)

	var keyErr error

	lookup := func(item T) (optional.Value[K], bool) {
		k, err := extract(key, item)

		rec.extractions++

		if err != nil {
			keyErr = &KeyError{Index: -1, Err: err}

			return k, false
		}

		return k, true
	}

	slices.SortStableFunc(result, func(a, b T) int {
		if keyErr != nil {
			return 0
		}

		aKey, ok := lookup(a)
		if !ok {
			return 0
		}

		bKey, ok := lookup(b)
		if !ok {
			return 0
		}

		return pol.compare(aKey, a, bKey, b)
	})

	rec.comparisons += pol.comparisons

	err := keyErr
	if err == nil {
		err = pol.err
	}

	rec.finish(err)

	if err != nil {
		return nil, err
	}

	return result, nil
}
