package page

import (
	"context"
	"io/fs"
	"runtime"
	"strings"
	"sync"

	"github.com/alitto/pond/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	errs "github.com/amp-labs/keysort/errors"
	"github.com/amp-labs/keysort/logger"
	"github.com/amp-labs/keysort/telemetry"
)

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	workers int
}

// WithWorkers caps the number of files parsed at once. Values below 1 are
// ignored; the default is GOMAXPROCS.
func WithWorkers(n int) LoadOption {
	return func(o *loadOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Load reads every content file under fsys into a collection. Content files
// end in .md or .markdown, optionally followed by .gz, .zst, .lz4 or .br.
// Directories whose name starts with a dot are skipped.
//
// Files are parsed concurrently but the collection follows walk order, which
// is lexical. Every file that fails to load is reported in the returned
// error; no pages are returned in that case.
func Load(ctx context.Context, fsys fs.FS, opts ...LoadOption) (pages Pages, err error) {
	o := loadOptions{workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&o)
	}

	ctx = logger.WithSubsystem(ctx, "page")

	ctx, span := telemetry.Tracer(ctx).Start(ctx, "page.Load",
		trace.WithAttributes(attribute.Int("workers", o.workers)))
	defer func() { telemetry.End(span, err) }()

	paths, err := contentPaths(ctx, fsys)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("files", len(paths)))

	if len(paths) == 0 {
		return Pages{}, nil
	}

	pool := pond.NewResultPool[*Page](o.workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	var (
		mut      sync.Mutex
		failures errs.Collection
	)

	group := pool.NewGroup()

	for _, filePath := range paths {
		group.Submit(func() *Page {
			p, err := loadFile(ctx, fsys, filePath)
			if err != nil {
				logger.Get(ctx).Warn("failed to load page", "path", filePath, "error", err)

				mut.Lock()
				failures.Add(err)
				mut.Unlock()

				return nil
			}

			return p
		})
	}

	loaded, err := group.Wait()
	if err != nil {
		return nil, err
	}

	if failures.HasError() {
		span.SetAttributes(attribute.Int("failures", failures.Len()))

		return nil, failures.GetError()
	}

	logger.Get(ctx).Debug("loaded pages", "count", len(loaded), "workers", o.workers)

	return Pages(loaded), nil
}

func loadFile(ctx context.Context, fsys fs.FS, filePath string) (*Page, error) {
	data, err := readContent(ctx, fsys, filePath)
	if err != nil {
		return nil, err
	}

	return Parse(stripCompression(filePath), data)
}

func contentPaths(ctx context.Context, fsys fs.FS) ([]string, error) {
	var paths []string

	err := fs.WalkDir(fsys, ".", func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if entry.IsDir() {
			if filePath != "." && strings.HasPrefix(entry.Name(), ".") {
				return fs.SkipDir
			}

			return nil
		}

		if isContent(filePath) {
			paths = append(paths, filePath)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
