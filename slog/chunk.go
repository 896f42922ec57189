package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docsmcp"
)

// Ensure LoggingChunkService implements docsmcp.ChunkService.
var _ docsmcp.ChunkService = (*LoggingChunkService)(nil)

// LoggingChunkService wraps a ChunkService with logging.
type LoggingChunkService struct {
	next   docsmcp.ChunkService
	logger *slog.Logger
}

// NewLoggingChunkService creates a new LoggingChunkService.
func NewLoggingChunkService(next docsmcp.ChunkService, logger *slog.Logger) *LoggingChunkService {
	return &LoggingChunkService{next: next, logger: logger}
}

func (s *LoggingChunkService) AddChunks(ctx context.Context, chunks []*docsmcp.Chunk) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("add chunks",
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddChunks(ctx, chunks)
}

func (s *LoggingChunkService) SearchChunks(ctx context.Context, query string, filter docsmcp.Filter, k int) (results []docsmcp.SearchResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search chunks",
			"query", query,
			"filter", filterAttr(filter),
			"k", k,
			"count", len(results),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchChunks(ctx, query, filter, k)
}

func (s *LoggingChunkService) DeleteChunks(ctx context.Context, filter docsmcp.Filter) (n int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete chunks",
			"filter", filterAttr(filter),
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteChunks(ctx, filter)
}

func (s *LoggingChunkService) DistinctValues(ctx context.Context, field string, filter docsmcp.Filter) (values []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("distinct values",
			"field", field,
			"filter", filterAttr(filter),
			"count", len(values),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DistinctValues(ctx, field, filter)
}

func (s *LoggingChunkService) GroupedStats(ctx context.Context, filter docsmcp.Filter) (rows []docsmcp.StatRow, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("grouped stats",
			"filter", filterAttr(filter),
			"count", len(rows),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GroupedStats(ctx, filter)
}

// filterAttr renders a filter as a group of field=value attributes.
func filterAttr(filter docsmcp.Filter) slog.Value {
	attrs := make([]slog.Attr, 0, len(filter))
	for _, term := range filter {
		attrs = append(attrs, slog.String(term.Field, term.Value))
	}
	return slog.GroupValue(attrs...)
}
