package ordered

import (
	"errors"
	"fmt"

	"github.com/amp-labs/keysort/compare"
)

var (
	// ErrInvalidKey is wrapped by every error caused by a failing KeyFunc.
	ErrInvalidKey = errors.New("invalid sort key")

	// ErrIncomparable is wrapped by every error caused by a failing key or
	// fallback comparison.
	ErrIncomparable = compare.ErrIncomparable
)

// KeyError reports the item whose key could not be extracted.
type KeyError struct {
	// Index is the position of the item in the input, or -1 if unknown.
	Index int
	Err   error
}

func (e *KeyError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", ErrInvalidKey, e.Err)
	}

	return fmt.Sprintf("%s: item %d: %v", ErrInvalidKey, e.Index, e.Err)
}

// Unwrap exposes both ErrInvalidKey and the extractor's own error.
func (e *KeyError) Unwrap() []error {
	return []error{ErrInvalidKey, e.Err}
}
