package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsmcp"
)

// Ensure LoggingEmbedder implements docsmcp.Embedder.
var _ docsmcp.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with debug logging.
type LoggingEmbedder struct {
	next   docsmcp.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next docsmcp.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// Embed logs the batch size and delegates to the wrapped embedder.
func (e *LoggingEmbedder) Embed(ctx context.Context, texts []string) (vectors [][]float32, err error) {
	defer func(begin time.Time) {
		dims := 0
		if len(vectors) > 0 {
			dims = len(vectors[0])
		}
		e.logger.Debug("embed",
			"texts", len(texts),
			"dims", dims,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Embed(ctx, texts)
}
