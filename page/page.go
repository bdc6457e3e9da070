// Package page is the document model fed to the sorters: a page parsed from a
// content file, its front-matter params, and the collection type used by the
// site builder.
package page

import (
	"cmp"
	"errors"
	"time"

	"facette.io/natsort"
	"github.com/OneOfOne/xxhash"
	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/amp-labs/keysort/sortable"
)

// Namespace seeds page IDs. IDs are name-based UUIDs of the page path, so the
// same path always yields the same ID.
var Namespace = uuid.MustParse("6f1c1f0e-5b7a-4f43-9a53-2d8f0b1c7e21") //nolint:gochecknoglobals

// ErrNilPage is returned by extractors handed a nil page.
var ErrNilPage = errors.New("nil page")

// Page is one content document.
type Page struct {
	ID      uuid.UUID
	Path    string // slash separated, relative to the content root
	Title   string
	Weight  int
	Date    time.Time
	Params  map[string]any // front matter, keys case-folded
	Content string
}

// New returns an empty page for path with its ID set.
func New(path string) *Page {
	return &Page{
		ID:     uuid.NewSHA1(Namespace, []byte(path)),
		Path:   path,
		Params: map[string]any{},
	}
}

var _ sortable.Sortable[*Page] = (*Page)(nil)

// Compare is the default page order:
//   - pages with a weight before pages without one, lower weights first
//   - newer dates first
//   - titles, case-insensitively
//   - paths in natural order ("post-2" before "post-10")
func (p *Page) Compare(other *Page) int {
	if c := compareWeights(p.Weight, other.Weight); c != 0 {
		return c
	}

	if c := other.Date.Compare(p.Date); c != 0 {
		return c
	}

	if c := compareFolded(p.Title, other.Title); c != 0 {
		return c
	}

	return comparePaths(p.Path, other.Path)
}

func (p *Page) Equals(other *Page) bool {
	return p.ID == other.ID && p.Path == other.Path
}

func (p *Page) LessThan(other *Page) bool {
	return p.Compare(other) < 0
}

// compareWeights treats zero as "no weight", which sorts last.
func compareWeights(a, b int) int {
	switch {
	case a == b:
		return 0
	case a == 0:
		return 1
	case b == 0:
		return -1
	default:
		return cmp.Compare(a, b)
	}
}

func compareFolded(a, b string) int {
	if a == b {
		return 0
	}

	folder := cases.Fold()

	return cmp.Compare(folder.String(a), folder.String(b))
}

func comparePaths(a, b string) int {
	switch {
	case a == b:
		return 0
	case natsort.Compare(a, b):
		return -1
	case natsort.Compare(b, a):
		return 1
	default:
		return cmp.Compare(a, b)
	}
}

// Pages is an ordered collection of pages.
type Pages []*Page

// Paths returns the page paths in collection order.
func (ps Pages) Paths() []string {
	paths := make([]string, len(ps))
	for i, p := range ps {
		paths[i] = p.Path
	}

	return paths
}

// Fingerprint hashes the page paths in collection order. Two collections
// holding the same pages in the same order have the same fingerprint.
func (ps Pages) Fingerprint() uint64 {
	h := xxhash.New64()

	for _, p := range ps {
		_, _ = h.Write([]byte(p.Path))
		_, _ = h.Write([]byte{0})
	}

	return h.Sum64()
}

// ParamNames returns every top-level param name used in the collection, in
// natural order.
func (ps Pages) ParamNames() []string {
	seen := make(map[string]struct{})

	var names []string

	for _, p := range ps {
		for name := range p.Params {
			if _, ok := seen[name]; ok {
				continue
			}

			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	natsort.Sort(names)

	return names
}
