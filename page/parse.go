package page

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"
)

var (
	// ErrFrontMatter is wrapped by every front-matter parse failure.
	ErrFrontMatter = errors.New("invalid front matter")

	errUnterminated = errors.New("missing closing delimiter")
)

const frontMatterDelimiter = "---"

// builtin holds the front-matter fields that map onto Page fields.
type builtin struct {
	Title  string    `yaml:"title"`
	Weight int       `yaml:"weight"`
	Date   time.Time `yaml:"date"`
}

// Parse builds a page from a content file. YAML front matter, when present,
// sits between two "---" lines at the very top of the file. Every front-matter
// key is also kept in Params with its name case-folded. Pages without a title
// are titled after their file name.
func Parse(filePath string, data []byte) (*Page, error) {
	frontMatter, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFrontMatter, filePath, err)
	}

	page := New(filePath)
	page.Content = string(body)

	if len(frontMatter) > 0 {
		var fields builtin
		if err := yaml.Unmarshal(frontMatter, &fields); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFrontMatter, filePath, err)
		}

		var raw map[string]any
		if err := yaml.Unmarshal(frontMatter, &raw); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrFrontMatter, filePath, err)
		}

		page.Title = fields.Title
		page.Weight = fields.Weight
		page.Date = fields.Date
		page.Params = foldKeys(cases.Fold(), raw)
	}

	if page.Title == "" {
		page.Title = titleFromPath(filePath)
	}

	return page, nil
}

func splitFrontMatter(data []byte) (frontMatter, body []byte, err error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	first, rest, _ := bytes.Cut(data, []byte("\n"))
	if !isDelimiter(first) {
		return nil, data, nil
	}

	offset := 0

	for offset < len(rest) {
		line, _, more := bytes.Cut(rest[offset:], []byte("\n"))
		if isDelimiter(line) {
			end := offset + len(line)
			if more {
				end++
			}

			return rest[:offset], rest[end:], nil
		}

		if !more {
			break
		}

		offset += len(line) + 1
	}

	return nil, nil, errUnterminated
}

func isDelimiter(line []byte) bool {
	return string(bytes.TrimRight(line, "\r")) == frontMatterDelimiter
}

// foldKeys returns a copy of m with every map key, at any depth, case-folded.
// When several keys fold to the same name, a key already in folded form wins;
// otherwise the lexically smallest key does.
func foldKeys(folder cases.Caser, m map[string]any) map[string]any {
	out := make(map[string]any, len(m))

	for _, k := range slices.Sorted(maps.Keys(m)) {
		folded := folder.String(k)
		if _, taken := out[folded]; taken && k != folded {
			continue
		}

		out[folded] = foldValue(folder, m[k])
	}

	return out
}

func foldValue(folder cases.Caser, v any) any {
	switch val := v.(type) {
	case map[string]any:
		return foldKeys(folder, val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = foldValue(folder, item)
		}

		return out
	default:
		return v
	}
}

func titleFromPath(filePath string) string {
	name := path.Base(stripCompression(filePath))
	name = strings.TrimSuffix(name, path.Ext(name))

	return strings.NewReplacer("-", " ", "_", " ").Replace(name)
}
