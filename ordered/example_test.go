package ordered_test

import (
	"fmt"
	"strings"

	"github.com/amp-labs/keysort/compare"
	"github.com/amp-labs/keysort/optional"
	"github.com/amp-labs/keysort/ordered"
)

type post struct {
	slug     string
	priority optional.Value[int]
}

func bySlug(a, b post) (int, error) {
	return strings.Compare(a.slug, b.slug), nil
}

func ExampleSort() {
	posts := []post{
		{slug: "zeta", priority: optional.Some(2)},
		{slug: "alpha", priority: optional.None[int]()},
		{slug: "beta", priority: optional.Some(1)},
	}

	sorted, err := ordered.Sort(posts,
		func(p post) (optional.Value[int], error) { return p.priority, nil },
		compare.Natural[int](),
		bySlug)
	if err != nil {
		fmt.Println(err)

		return
	}

	for _, p := range sorted {
		fmt.Println(p.slug)
	}
	// Output:
	// alpha
	// beta
	// zeta
}

func ExampleCount() {
	ranks := map[string]int{"go": 1, "rust": 2}

	key, calls := ordered.Count(ordered.Lookup(func(lang string) (int, bool) {
		rank, ok := ranks[lang]

		return rank, ok
	}))

	sorted, err := ordered.Sort([]string{"rust", "zig", "go"}, key,
		compare.Natural[int](), compare.Natural[string]())
	if err != nil {
		fmt.Println(err)

		return
	}

	fmt.Println(sorted, calls.Load())
	// Output: [go rust zig] 3
}
