// Package should holds cleanup helpers whose failures are logged rather than
// returned, for use in defer statements.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/keysort/logger"
)

// Close closes closer and logs msg through the context logger if that fails.
//
//	defer should.Close(ctx, reader, "failed to close decompressor")
func Close(ctx context.Context, closer io.Closer, msg string) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Error(msg, "error", err)
	}
}
