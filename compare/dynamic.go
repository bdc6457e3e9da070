package compare

import (
	"cmp"
	"fmt"
	"math"
	"time"
)

// Dynamic orders loosely typed values such as the ones produced by decoding
// YAML or JSON into interface values.
//
// Supported pairings:
//   - any two numbers (signed, unsigned or floating point) compare numerically
//   - strings compare lexicographically
//   - bools order false before true
//   - time.Time values compare chronologically
//
// Every other pairing, including nil and mixed kinds such as a number against
// a string, returns ErrIncomparable.
func Dynamic(a, b any) (int, error) {
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(av, bv), nil
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return compareBools(av, bv), nil
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Compare(bv), nil
		}
	default:
		if c, ok := compareNumbers(a, b); ok {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %T and %T", ErrIncomparable, a, b)
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// number is the widened form of any Go numeric value.
type number struct {
	signed   int64
	unsigned uint64
	float    float64
	kind     numberKind
}

type numberKind int

const (
	notNumber numberKind = iota
	signedKind
	unsignedKind
	floatKind
)

func toNumber(v any) number { //nolint:cyclop
	switch n := v.(type) {
	case int:
		return number{signed: int64(n), kind: signedKind}
	case int8:
		return number{signed: int64(n), kind: signedKind}
	case int16:
		return number{signed: int64(n), kind: signedKind}
	case int32:
		return number{signed: int64(n), kind: signedKind}
	case int64:
		return number{signed: n, kind: signedKind}
	case uint:
		return number{unsigned: uint64(n), kind: unsignedKind}
	case uint8:
		return number{unsigned: uint64(n), kind: unsignedKind}
	case uint16:
		return number{unsigned: uint64(n), kind: unsignedKind}
	case uint32:
		return number{unsigned: uint64(n), kind: unsignedKind}
	case uint64:
		return number{unsigned: n, kind: unsignedKind}
	case float32:
		return number{float: float64(n), kind: floatKind}
	case float64:
		return number{float: n, kind: floatKind}
	default:
		return number{kind: notNumber}
	}
}

func compareNumbers(a, b any) (int, bool) {
	an, bn := toNumber(a), toNumber(b)
	if an.kind == notNumber || bn.kind == notNumber {
		return 0, false
	}

	switch {
	case an.kind == signedKind && bn.kind == signedKind:
		return cmp.Compare(an.signed, bn.signed), true
	case an.kind == unsignedKind && bn.kind == unsignedKind:
		return cmp.Compare(an.unsigned, bn.unsigned), true
	case an.kind == signedKind && bn.kind == unsignedKind && an.signed < 0:
		return -1, true
	case an.kind == unsignedKind && bn.kind == signedKind && bn.signed < 0:
		return 1, true
	case an.kind != floatKind && bn.kind != floatKind:
		// Mixed signedness with both sides non-negative.
		return cmp.Compare(an.magnitude(), bn.magnitude()), true
	case an.kind == floatKind && bn.kind == floatKind:
		return cmp.Compare(an.float, bn.float), true
	case bn.kind == floatKind:
		return compareIntegerFloat(an, bn.float), true
	default:
		return -compareIntegerFloat(bn, an.float), true
	}
}

// Bounds of the int64 and uint64 ranges, both exactly representable.
const (
	minInt64Float  = -(1 << 63)
	maxInt64Float  = 1 << 63
	maxUint64Float = 1 << 64
)

// compareIntegerFloat orders an integer against a float without rounding the
// integer to float64 first, so 1<<53+1 stays above float64(1<<53). NaN sorts
// below every integer.
func compareIntegerFloat(n number, f float64) int {
	if math.IsNaN(f) {
		return 1
	}

	whole := math.Trunc(f)

	var c int

	switch n.kind {
	case signedKind:
		switch {
		case whole < minInt64Float:
			return 1
		case whole >= maxInt64Float:
			return -1
		}

		c = cmp.Compare(n.signed, int64(whole))
	default:
		switch {
		case whole < 0:
			return 1
		case whole >= maxUint64Float:
			return -1
		}

		c = cmp.Compare(n.unsigned, uint64(whole))
	}

	if c != 0 {
		return c
	}

	// Equal integer parts; the fraction of f decides.
	return cmp.Compare(whole, f)
}

func (n number) magnitude() uint64 {
	if n.kind == signedKind {
		return uint64(n.signed) //nolint:gosec
	}

	return n.unsigned
}
