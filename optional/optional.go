// Package optional provides a type-safe Value type for keys that may or may not be present.
// A Value is conceptually a set of size zero or one; sort keys use it to tell
// "this item has no key" apart from "this item's key is the zero value".
package optional

import (
	"fmt"
)

// Value represents a value that may or may not be present.
// Use Some(value) to create a Value with a value, or None() for an empty Value.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value with no value.
func None[T any]() Value[T] {
	return Value[T]{isSet: false}
}

// FromPair builds a Value from the result of a comma-ok lookup.
func FromPair[T any](value T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(value)
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and a boolean indicating whether the value is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// String returns "Some(value)" if present, or "None" if empty.
func (o Value[T]) String() string {
	if !o.isSet {
		return "None"
	}

	return fmt.Sprintf("Some(%v)", o.value)
}

// Map transforms the value inside the Value using the provided function.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if !o.isSet {
		return None[U]()
	}

	return Some(f(o.value))
}
