package mock

import (
	"context"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.ChunkService = (*ChunkService)(nil)

// ChunkService is a mock implementation of docsmcp.ChunkService.
type ChunkService struct {
	AddChunksFn      func(ctx context.Context, chunks []*docsmcp.Chunk) (int, error)
	SearchChunksFn   func(ctx context.Context, query string, filter docsmcp.Filter, k int) ([]docsmcp.SearchResult, error)
	DeleteChunksFn   func(ctx context.Context, filter docsmcp.Filter) (int, error)
	DistinctValuesFn func(ctx context.Context, field string, filter docsmcp.Filter) ([]string, error)
	GroupedStatsFn   func(ctx context.Context, filter docsmcp.Filter) ([]docsmcp.StatRow, error)
}

func (s *ChunkService) AddChunks(ctx context.Context, chunks []*docsmcp.Chunk) (int, error) {
	return s.AddChunksFn(ctx, chunks)
}

func (s *ChunkService) SearchChunks(ctx context.Context, query string, filter docsmcp.Filter, k int) ([]docsmcp.SearchResult, error) {
	return s.SearchChunksFn(ctx, query, filter, k)
}

func (s *ChunkService) DeleteChunks(ctx context.Context, filter docsmcp.Filter) (int, error) {
	return s.DeleteChunksFn(ctx, filter)
}

func (s *ChunkService) DistinctValues(ctx context.Context, field string, filter docsmcp.Filter) ([]string, error) {
	return s.DistinctValuesFn(ctx, field, filter)
}

func (s *ChunkService) GroupedStats(ctx context.Context, filter docsmcp.Filter) ([]docsmcp.StatRow, error) {
	return s.GroupedStatsFn(ctx, filter)
}

var _ docsmcp.ChunkWriter = (*ChunkWriter)(nil)

// ChunkWriter is a mock implementation of docsmcp.ChunkWriter.
type ChunkWriter struct {
	AddChunksFn func(ctx context.Context, chunks []*docsmcp.Chunk) (int, error)
}

func (w *ChunkWriter) AddChunks(ctx context.Context, chunks []*docsmcp.Chunk) (int, error) {
	return w.AddChunksFn(ctx, chunks)
}

var _ docsmcp.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of docsmcp.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, texts []string) ([][]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedFn(ctx, texts)
}
