package ordered

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/amp-labs/keysort/compare"
	errs "github.com/amp-labs/keysort/errors"
	"github.com/amp-labs/keysort/optional"
)

// policy is the comparison rule shared by both strategies. slices.SortStableFunc
// cannot abort, so the first comparison error is latched and every later
// comparison reports equality until the sort returns.
type policy[T, K any] struct {
	keys     compare.Func[K]
	fallback compare.Func[T]

	comparisons int
	err         error
}

func newPolicy[T, K any](keys compare.Func[K], fallback compare.Func[T], o options) *policy[T, K] {
	if o.descending {
		keys = compare.Reverse(keys)
		fallback = compare.Reverse(fallback)
	}

	return &policy[T, K]{
		keys:     keys,
		fallback: fallback,
	}
}

func (p *policy[T, K]) compare(aKey optional.Value[K], a T, bKey optional.Value[K], b T) (result int) {
	if p.err != nil {
		return 0
	}

	p.comparisons++

	defer func() {
		if r := recover(); r != nil {
			p.err = asIncomparable(errs.FromPanic(r, debug.Stack()))
			result = 0
		}
	}()

	var (
		c   int
		err error
	)

	av, aok := aKey.Get()
	bv, bok := bKey.Get()

	if aok && bok {
		c, err = p.keys(av, bv)
	} else {
		c, err = p.fallback(a, b)
	}

	if err != nil {
		p.err = asIncomparable(err)

		return 0
	}

	return c
}

func asIncomparable(err error) error {
	if errors.Is(err, ErrIncomparable) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrIncomparable, err)
}
