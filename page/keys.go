package page

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/amp-labs/keysort/optional"
	"github.com/amp-labs/keysort/ordered"
)

// ErrEmptyParamName is returned by the extractor built for an empty name.
var ErrEmptyParamName = errors.New("empty param name")

// ParamsPrefix forces Key to read a param even when its name matches a
// built-in field.
const ParamsPrefix = "params."

// Key returns the extractor for a sort name. "title", "weight", "date" and
// "path" read the page fields; any other name is a front-matter param (see
// Param). A leading "params." forces the param lookup, so "params.date"
// reads a param called date rather than the Date field.
func Key(name string) ordered.KeyFunc[*Page, any] {
	folded := FoldKey(name)

	if rest, ok := strings.CutPrefix(folded, ParamsPrefix); ok {
		return Param(rest)
	}

	switch folded {
	case "title":
		return widen[string](TitleKey)
	case "weight":
		return widen[int](WeightKey)
	case "date":
		return widen[time.Time](DateKey)
	case "path":
		return widen[string](PathKey)
	default:
		return Param(name)
	}
}

// Param returns an extractor for a front-matter param. Names are matched
// case-insensitively and may be dotted to reach nested maps ("author.name").
// The key is absent when any segment is missing, when an intermediate value
// is not a map, or when the final value is null.
func Param(name string) ordered.KeyFunc[*Page, any] {
	folded := FoldKey(name)
	segments := strings.Split(folded, ".")

	return func(p *Page) (optional.Value[any], error) {
		if p == nil {
			return optional.None[any](), ErrNilPage
		}

		if folded == "" {
			return optional.None[any](), ErrEmptyParamName
		}

		var current any = p.Params

		for _, segment := range segments {
			m, ok := current.(map[string]any)
			if !ok {
				return optional.None[any](), nil
			}

			current, ok = m[segment]
			if !ok {
				return optional.None[any](), nil
			}
		}

		if current == nil {
			return optional.None[any](), nil
		}

		return optional.Some(current), nil
	}
}

// WeightKey is absent for pages with no weight.
func WeightKey(p *Page) (optional.Value[int], error) {
	if p == nil {
		return optional.None[int](), ErrNilPage
	}

	return optional.FromPair(p.Weight, p.Weight != 0), nil
}

// DateKey is absent for undated pages.
func DateKey(p *Page) (optional.Value[time.Time], error) {
	if p == nil {
		return optional.None[time.Time](), ErrNilPage
	}

	return optional.FromPair(p.Date, !p.Date.IsZero()), nil
}

// TitleKey is absent for untitled pages.
func TitleKey(p *Page) (optional.Value[string], error) {
	if p == nil {
		return optional.None[string](), ErrNilPage
	}

	return optional.FromPair(p.Title, p.Title != ""), nil
}

func PathKey(p *Page) (optional.Value[string], error) {
	if p == nil {
		return optional.None[string](), ErrNilPage
	}

	return optional.FromPair(p.Path, p.Path != ""), nil
}

func widen[K any](key ordered.KeyFunc[*Page, K]) ordered.KeyFunc[*Page, any] {
	return func(p *Page) (optional.Value[any], error) {
		v, err := key(p)
		if err != nil {
			return optional.None[any](), err
		}

		return optional.Map(v, func(k K) any { return k }), nil
	}
}

// FoldKey is the normalized form of a param or sort name: trimmed and
// case-folded. Params are stored under folded names.
func FoldKey(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
