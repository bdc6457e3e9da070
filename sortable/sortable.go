// Package sortable defines the intrinsic-ordering contract for item types and
// adapts it to the compare.Func shape used by the ordered package.
package sortable

import (
	"github.com/amp-labs/keysort/compare"
)

// Sortable is implemented by types that carry their own total order.
// LessThan must be a strict weak ordering consistent with Equals.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare derives a three-way comparison from a Sortable pair.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}

// Func returns the intrinsic ordering of T as a compare.Func. It never fails.
func Func[T Sortable[T]]() compare.Func[T] {
	return compare.Infallible(Compare[T])
}
