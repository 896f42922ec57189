package sqlite

import (
	"container/heap"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docsmcp"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ docsmcp.ChunkService = (*ChunkService)(nil)

// Embedding limits for AddChunks.
const (
	// EmbedBatchSize is the number of texts sent per Embed call.
	EmbedBatchSize = 100
	// embedConcurrency bounds the Embed calls in flight.
	embedConcurrency = 4
)

// ChunkService implements docsmcp.ChunkService using SQLite. Vectors are
// stored normalized so cosine similarity reduces to a dot product.
type ChunkService struct {
	db         *DB
	collection string
	embedder   docsmcp.Embedder
}

// NewChunkService creates a ChunkService whose rows all belong to
// collection.
func NewChunkService(db *DB, collection string, embedder docsmcp.Embedder) *ChunkService {
	return &ChunkService{db: db, collection: collection, embedder: embedder}
}

// AddChunks embeds and stores chunks in a single transaction. IDs, hashes
// and timestamps are assigned on the passed chunks.
func (s *ChunkService) AddChunks(ctx context.Context, chunks []*docsmcp.Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}
	for _, c := range chunks {
		if err := c.Validate(); err != nil {
			return 0, err
		}
	}

	vectors, err := s.embed(ctx, chunks)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, collection, project, library, version, content_type, url, text, content_hash, embedding, dimensions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for i, c := range chunks {
		c.ID = uuid.New().String()
		c.Version = docsmcp.VersionOrDefault(c.Version)
		c.ContentHash = hashContent(c.Text)
		c.CreatedAt = now

		vec := normalizeVector(vectors[i])
		if _, err := stmt.ExecContext(ctx, c.ID, s.collection, c.Project, c.Library, c.Version, c.ContentType,
			c.URL, c.Text, c.ContentHash, encodeVector(vec), len(vec), now.Format(time.RFC3339Nano)); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

// embed returns one vector per chunk, embedding batches concurrently.
func (s *ChunkService) embed(ctx context.Context, chunks []*docsmcp.Chunk) ([][]float32, error) {
	vectors := make([][]float32, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(embedConcurrency)
	for start := 0; start < len(chunks); start += EmbedBatchSize {
		end := min(start+EmbedBatchSize, len(chunks))
		g.Go(func() error {
			texts := make([]string, 0, end-start)
			for _, c := range chunks[start:end] {
				texts = append(texts, c.Text)
			}
			got, err := s.embedder.Embed(gctx, texts)
			if err != nil {
				return fmt.Errorf("embed chunks: %w", err)
			}
			if len(got) != len(texts) {
				return docsmcp.Errorf(docsmcp.EINTERNAL, "embedder returned %d vectors for %d texts", len(got), len(texts))
			}
			copy(vectors[start:end], got)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// SearchChunks returns the k chunks most similar to query among those
// matching filter, best first. Rows whose dimensions differ from the
// query vector are ignored.
func (s *ChunkService) SearchChunks(ctx context.Context, query string, filter docsmcp.Filter, k int) ([]docsmcp.SearchResult, error) {
	if k <= 0 {
		k = docsmcp.DefaultSearchLimit
	}

	var q strings.Builder
	var args []any
	q.WriteString("SELECT id, project, library, version, content_type, url, text, content_hash, created_at, embedding, dimensions FROM chunks")
	if err := appendWhere(&q, &args, s.collection, filter); err != nil {
		return nil, err
	}

	vectors, err := s.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, docsmcp.Errorf(docsmcp.EINTERNAL, "embedder returned %d vectors for 1 query", len(vectors))
	}
	target := normalizeVector(vectors[0])

	rows, err := s.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	h := &resultHeap{}
	for rows.Next() {
		var c docsmcp.Chunk
		var createdAt string
		var blob []byte
		var dims int
		if err := rows.Scan(&c.ID, &c.Project, &c.Library, &c.Version, &c.ContentType, &c.URL,
			&c.Text, &c.ContentHash, &createdAt, &blob, &dims); err != nil {
			return nil, err
		}
		if dims != len(target) {
			continue
		}

		score := dotProduct(target, decodeVector(blob, dims))
		if h.Len() >= k && score <= (*h)[0].Score {
			continue
		}
		if c.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		r := docsmcp.SearchResult{Chunk: &c, Score: score}
		if h.Len() < k {
			heap.Push(h, r)
		} else {
			(*h)[0] = r
			heap.Fix(h, 0)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := make([]docsmcp.SearchResult, h.Len())
	for i := len(results) - 1; i >= 0; i-- {
		results[i] = heap.Pop(h).(docsmcp.SearchResult)
	}
	return results, nil
}

// DeleteChunks removes every chunk matching filter.
func (s *ChunkService) DeleteChunks(ctx context.Context, filter docsmcp.Filter) (int, error) {
	var q strings.Builder
	var args []any
	q.WriteString("DELETE FROM chunks")
	if err := appendWhere(&q, &args, s.collection, filter); err != nil {
		return 0, err
	}

	result, err := s.db.ExecContext(ctx, q.String(), args...)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// DistinctValues returns the sorted non-empty values of field.
func (s *ChunkService) DistinctValues(ctx context.Context, field string, filter docsmcp.Filter) ([]string, error) {
	col, err := column(field)
	if err != nil {
		return nil, err
	}

	var q strings.Builder
	var args []any
	q.WriteString("SELECT DISTINCT ")
	q.WriteString(col)
	q.WriteString(" FROM chunks")
	if err := appendWhere(&q, &args, s.collection, filter); err != nil {
		return nil, err
	}
	fmt.Fprintf(&q, " AND %s != '' ORDER BY %s", col, col)

	rows, err := s.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

// GroupedStats counts chunks per project, library, version, content type
// and URL.
func (s *ChunkService) GroupedStats(ctx context.Context, filter docsmcp.Filter) ([]docsmcp.StatRow, error) {
	var q strings.Builder
	var args []any
	q.WriteString("SELECT project, library, version, content_type, url, COUNT(*) FROM chunks")
	if err := appendWhere(&q, &args, s.collection, filter); err != nil {
		return nil, err
	}
	q.WriteString(" GROUP BY project, library, version, content_type, url ORDER BY project, library, version, content_type, url")

	rows, err := s.db.QueryContext(ctx, q.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []docsmcp.StatRow
	for rows.Next() {
		var r docsmcp.StatRow
		if err := rows.Scan(&r.Project, &r.Library, &r.Version, &r.ContentType, &r.URL, &r.Chunks); err != nil {
			return nil, err
		}
		stats = append(stats, r)
	}
	return stats, rows.Err()
}

// resultHeap is a min-heap on score holding the current top k.
type resultHeap []docsmcp.SearchResult

func (h resultHeap) Len() int           { return len(h) }
func (h resultHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h resultHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *resultHeap) Push(x any)        { *h = append(*h, x.(docsmcp.SearchResult)) }
func (h *resultHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
