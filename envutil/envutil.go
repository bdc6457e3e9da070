// Package envutil reads typed configuration from environment variables.
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Option modifies a Reader. Typed constructors such as String and Bool
// apply them in order, so a default can be followed by validation.
type Option[T any] func(Reader[T]) Reader[T]

// Default allows you to provide a default value for the Reader.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the value; a non-nil result becomes the Reader's error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return Map(rdr, func(val T) (T, error) {
			return val, f(val)
		})
	}
}

func get(key string) Reader[string] {
	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(key string, opts ...Option[string]) Reader[string] {
	return apply(get(key), opts)
}

func Bool(key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(key), strconv.ParseBool), opts)
}

func Int(key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(key), strconv.Atoi), opts)
}

func Uint64(key string, opts ...Option[uint64]) Reader[uint64] {
	return apply(Map(get(key), func(value string) (uint64, error) {
		return strconv.ParseUint(value, 10, 64)
	}), opts)
}

func Float64(key string, opts ...Option[float64]) Reader[float64] {
	return apply(Map(get(key), func(value string) (float64, error) {
		return strconv.ParseFloat(value, 64)
	}), opts)
}

func Duration(key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(key), time.ParseDuration), opts)
}

// SlogLevel accepts debug, info, warn or error, in any case.
func SlogLevel(key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(key), parseSlogLevel), opts)
}

func parseSlogLevel(value string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, value)
	}
}
