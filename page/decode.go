package page

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"

	"github.com/amp-labs/keysort/should"
)

// ErrUnknownCharset is returned for content that is neither UTF-8 nor in a
// character set that can be detected and transcoded.
var ErrUnknownCharset = errors.New("unknown character set")

var contentExtensions = map[string]struct{}{ //nolint:gochecknoglobals
	".md":       {},
	".markdown": {},
}

// decompressors maps a compression suffix to a reader constructor.
var decompressors = map[string]func(io.Reader) (io.ReadCloser, error){ //nolint:gochecknoglobals
	".gz": func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	},
	".zst": func(r io.Reader) (io.ReadCloser, error) {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}

		return dec.IOReadCloser(), nil
	},
	".lz4": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(lz4.NewReader(r)), nil
	},
	".br": func(r io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(r)), nil
	},
}

// stripCompression removes a known compression suffix from p.
func stripCompression(p string) string {
	ext := path.Ext(p)
	if _, ok := decompressors[ext]; ok {
		return strings.TrimSuffix(p, ext)
	}

	return p
}

// isContent reports whether p names a content file, compressed or not.
func isContent(p string) bool {
	_, ok := contentExtensions[strings.ToLower(path.Ext(stripCompression(p)))]

	return ok
}

// readContent reads a content file, decompressing it according to its
// suffix, and returns it as UTF-8.
func readContent(ctx context.Context, fsys fs.FS, filePath string) ([]byte, error) {
	file, err := fsys.Open(filePath)
	if err != nil {
		return nil, err
	}

	defer should.Close(ctx, file, "failed to close content file")

	reader := io.Reader(file)

	if newReader, ok := decompressors[path.Ext(filePath)]; ok {
		decompressed, err := newReader(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}

		defer should.Close(ctx, decompressed, "failed to close decompressor")

		reader = decompressed
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	data, err = toUTF8(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return data, nil
}

func toUTF8(data []byte) ([]byte, error) {
	if utf8.Valid(data) {
		return data, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnknownCharset, err)
	}

	reader, err := charset.NewReaderLabel(best.Charset, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCharset, best.Charset)
	}

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnknownCharset, best.Charset, err)
	}

	return decoded, nil
}
