// Package compare provides equality and ordering primitives shared by the
// sorting packages.
//
// Orderings are expressed as [Func] values rather than as methods so that the
// same item type can be ordered in more than one way, and so that orderings
// over loosely typed data (front matter, JSON) can report values that cannot
// be ordered against each other instead of guessing.
package compare

import (
	"cmp"
	"errors"
)

// ErrIncomparable is returned by a Func when its two arguments have no
// defined order relative to each other.
var ErrIncomparable = errors.New("incomparable values")

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Func orders two values. It returns a negative number when a sorts before b,
// a positive number when a sorts after b and zero when they are equivalent.
// A non-nil error means the pair could not be ordered; the int result is
// meaningless in that case.
type Func[T any] func(a, b T) (int, error)

// Natural returns the ordering defined by the < operator.
func Natural[T cmp.Ordered]() Func[T] {
	return func(a, b T) (int, error) {
		return cmp.Compare(a, b), nil
	}
}

// Infallible lifts a plain three-way comparison into a Func.
func Infallible[T any](f func(a, b T) int) Func[T] {
	return func(a, b T) (int, error) {
		return f(a, b), nil
	}
}

// Reverse inverts the ordering produced by f. The result is -1, 0 or 1, so
// any negative value f returns, math.MinInt included, flips. Errors pass
// through unchanged.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) (int, error) {
		c, err := f(a, b)
		if err != nil {
			return 0, err
		}

		return cmp.Compare(0, c), nil
	}
}
