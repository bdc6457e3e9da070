// Package errors holds error helpers shared across keysort packages.
package errors

import (
	"errors"
	"fmt"
)

// ErrPanicRecovery marks errors that were converted from a recovered panic.
var ErrPanicRecovery = errors.New("panic recovered")

// FromPanic converts a recovered panic value into an error wrapping
// ErrPanicRecovery. It returns nil when r is nil. If r is itself an error it
// stays reachable through errors.Is / errors.As. A non-nil stack is appended
// to the message.
func FromPanic(r any, stack []byte) error {
	if r == nil {
		return nil
	}

	var err error
	if e, ok := r.(error); ok {
		err = fmt.Errorf("%w: %w", ErrPanicRecovery, e)
	} else {
		err = fmt.Errorf("%w: %v", ErrPanicRecovery, r)
	}

	if stack != nil {
		return fmt.Errorf("%w\nstack trace:\n%s", err, stack)
	}

	return err
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent operations should all be attempted and
// their failures reported together.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
