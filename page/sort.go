package page

import (
	"github.com/amp-labs/keysort/compare"
	"github.com/amp-labs/keysort/ordered"
	"github.com/amp-labs/keysort/sortable"
)

// Sort orders pages by the key named name (see Key). Pages where either side
// lacks the key fall back to the default page order. Keys are compared with
// compare.Dynamic, so a param holding numbers on some pages and strings on
// others fails with ordered.ErrIncomparable.
func Sort(pages Pages, name string, opts ...ordered.Option) (Pages, error) {
	return ordered.Sort(pages, Key(name), compare.Dynamic, sortable.Func[*Page](), opts...)
}

// SortNaive is Sort using the naive strategy. It exists for benchmarking.
func SortNaive(pages Pages, name string, opts ...ordered.Option) (Pages, error) {
	return ordered.Naive(pages, Key(name), compare.Dynamic, sortable.Func[*Page](), opts...)
}
