package compare

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNatural(t *testing.T) {
	t.Parallel()

	natural := Natural[int]()

	c, err := natural(1, 2)
	require.NoError(t, err)
	assert.Negative(t, c)

	c, err = natural(2, 2)
	require.NoError(t, err)
	assert.Zero(t, c)

	c, err = natural(3, 2)
	require.NoError(t, err)
	assert.Positive(t, c)
}

func TestReverse(t *testing.T) {
	t.Parallel()

	reversed := Reverse(Natural[string]())

	c, err := reversed("a", "b")
	require.NoError(t, err)
	assert.Positive(t, c)

	failing := Reverse(Func[int](func(int, int) (int, error) {
		return 0, ErrIncomparable
	}))

	_, err = failing(1, 2)
	require.ErrorIs(t, err, ErrIncomparable)
}

func TestReverse_ExtremeResults(t *testing.T) {
	t.Parallel()

	extreme := Func[int](func(a, b int) (int, error) {
		switch {
		case a < b:
			return math.MinInt, nil
		case a > b:
			return math.MaxInt, nil
		default:
			return 0, nil
		}
	})

	reversed := Reverse(extreme)

	c, err := reversed(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = reversed(2, 1)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = reversed(2, 2)
	require.NoError(t, err)
	assert.Zero(t, c)
}

func TestInfallible(t *testing.T) {
	t.Parallel()

	byLen := Infallible(func(a, b string) int {
		return len(a) - len(b)
	})

	c, err := byLen("abc", "z")
	require.NoError(t, err)
	assert.Positive(t, c)
}

func TestDynamic(t *testing.T) {
	t.Parallel()

	early := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	late := early.Add(time.Hour)

	tests := []struct {
		name string
		a, b any
		want int
	}{
		{name: "ints", a: 1, b: 2, want: -1},
		{name: "equal ints of different widths", a: int8(7), b: int64(7), want: 0},
		{name: "int against float", a: 2, b: 1.5, want: 1},
		{name: "uints", a: uint(3), b: uint64(9), want: -1},
		{name: "negative int against uint", a: -1, b: uint(0), want: -1},
		{name: "uint against negative int", a: uint8(0), b: int32(-5), want: 1},
		{name: "large uint against int", a: uint64(math.MaxUint64), b: math.MaxInt64, want: 1},
		{name: "strings", a: "apple", b: "banana", want: -1},
		{name: "bools", a: true, b: false, want: 1},
		{name: "equal bools", a: false, b: false, want: 0},
		{name: "times", a: late, b: early, want: 1},
		{name: "int above float beyond float precision", a: 1<<53 + 1, b: float64(1 << 53), want: 1},
		{name: "float below int beyond float precision", a: float64(1 << 53), b: int64(1<<53 + 1), want: -1},
		{name: "max int64 against 2^63", a: int64(math.MaxInt64), b: float64(1 << 63), want: -1},
		{name: "max uint64 against 2^64", a: uint64(math.MaxUint64), b: math.Ldexp(1, 64), want: -1},
		{name: "uint against fractional float", a: uint(3), b: 3.5, want: -1},
		{name: "int equal to integral float", a: 4, b: 4.0, want: 0},
		{name: "negative int against negative fraction", a: -2, b: -2.5, want: 1},
		{name: "uint against negative float", a: uint(0), b: -0.5, want: 1},
		{name: "int against NaN", a: 1, b: math.NaN(), want: 1},
		{name: "int against infinity", a: math.MaxInt64, b: math.Inf(1), want: -1},
		{name: "floats", a: 0.25, b: 0.5, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Dynamic(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sign(got))
		})
	}
}

func TestDynamic_Incomparable(t *testing.T) {
	t.Parallel()

	pairs := [][2]any{
		{1, "1"},
		{"true", true},
		{nil, nil},
		{nil, 1},
		{[]any{1}, []any{1}},
		{map[string]any{}, 3},
		{time.Now(), "2024-01-01"},
	}

	for _, pair := range pairs {
		_, err := Dynamic(pair[0], pair[1])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrIncomparable), "pair %v", pair)
	}
}

func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
