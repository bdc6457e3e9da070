// Package corpus generates synthetic page collections for benchmarking.
//
// Every attribute of a generated page is derived from an xxh3 hash of its
// index and the seed, so the same Options always produce the same pages.
package corpus

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"

	"github.com/amp-labs/keysort/page"
)

const (
	// DefaultParam is the sparse param used when Options.Param is empty.
	DefaultParam = "rating"

	presenceBuckets = 1 << 20
	valueRange      = 1000
	weightRange     = 5
	dateRange       = 365
)

// Epoch is the newest date a generated page can carry.
var Epoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC) //nolint:gochecknoglobals

// Options describes a synthetic collection.
type Options struct {
	// Size is the number of pages.
	Size int
	// Sparsity is the fraction of pages without the param, clamped to [0, 1].
	Sparsity float64
	// Param names the sparse param. It is stored case-folded, without any
	// "params." prefix, and must not contain dots. Defaults to DefaultParam.
	Param string
	Seed  uint64
}

// Generate builds the collection described by opts. Pages are named
// posts/post-N.md and returned in index order.
func Generate(opts Options) page.Pages {
	param := paramName(opts.Param)

	sparsity := min(max(opts.Sparsity, 0), 1)
	threshold := uint64(sparsity * presenceBuckets)

	pages := make(page.Pages, 0, max(opts.Size, 0))

	for i := range max(opts.Size, 0) {
		h := xxh3.HashStringSeed(strconv.Itoa(i), opts.Seed)

		p := page.New(fmt.Sprintf("posts/post-%d.md", i))
		p.Title = fmt.Sprintf("Post %d", i)
		p.Weight = int((h >> 24) % weightRange)               //nolint:gosec
		p.Date = Epoch.AddDate(0, 0, -int((h>>32)%dateRange)) //nolint:gosec
		p.Content = fmt.Sprintf("Synthetic post %d.\n", i)

		if h%presenceBuckets >= threshold {
			p.Params[param] = int((h >> 44) % valueRange) //nolint:gosec
		}

		pages = append(pages, p)
	}

	return pages
}

// SortName returns the page.Key name that reads the param Generate stores
// for param. The name always goes through the param lookup, so a param
// called "weight" is not confused with the Weight field.
func SortName(param string) string {
	return page.ParamsPrefix + paramName(param)
}

// paramName is the folded name Generate stores param under.
func paramName(param string) string {
	name := strings.TrimPrefix(page.FoldKey(param), page.ParamsPrefix)
	if name == "" {
		return DefaultParam
	}

	return name
}

// Keyed counts the pages that have a key under the sort name (see page.Key).
func Keyed(pages page.Pages, name string) int {
	key := page.Key(name)
	count := 0

	for _, p := range pages {
		if v, err := key(p); err == nil && v.NonEmpty() {
			count++
		}
	}

	return count
}
