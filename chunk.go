package docsmcp

import (
	"context"
	"time"
)

// Unversioned is stored in place of an empty version so that version
// matching can always treat the field as a plain string.
const Unversioned = "unversioned"

// DefaultContentType is used when a caller does not supply a content type.
const DefaultContentType = "docs"

// Metadata fields a Filter may reference.
const (
	FieldProject     = "project"
	FieldLibrary     = "library"
	FieldVersion     = "version"
	FieldContentType = "content_type"
	FieldURL         = "url"
)

// Chunk represents a slice of normalized document text stored with the
// metadata of its source. Chunks are immutable once written.
type Chunk struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	Project     string    `json:"project"`
	Library     string    `json:"library"`
	Version     string    `json:"version"`
	ContentType string    `json:"contentType"`
	URL         string    `json:"url"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the chunk contains invalid fields.
func (c *Chunk) Validate() error {
	if c.Text == "" {
		return Errorf(EINVALID, "chunk text required")
	}
	if c.Project == "" {
		return Errorf(EINVALID, "chunk project required")
	}
	if c.Library == "" {
		return Errorf(EINVALID, "chunk library required")
	}
	if c.ContentType == "" {
		return Errorf(EINVALID, "chunk content type required")
	}
	return nil
}

// FilterTerm restricts a query to rows whose metadata field equals Value.
type FilterTerm struct {
	Field string
	Value string
}

// Filter is an ordered list of exact-match terms. All terms must match.
type Filter []FilterTerm

// With returns a copy of the filter with an additional term.
func (f Filter) With(field, value string) Filter {
	out := make(Filter, len(f), len(f)+1)
	copy(out, f)
	return append(out, FilterTerm{Field: field, Value: value})
}

// WithOptional adds the term only when value is not empty.
func (f Filter) WithOptional(field, value string) Filter {
	if value == "" {
		return f
	}
	return f.With(field, value)
}

// ScopeFilter builds the filter identifying a library within a project.
// The version term is added only when version is not empty.
func ScopeFilter(project, library, contentType, version string) Filter {
	return Filter{
		{Field: FieldProject, Value: project},
		{Field: FieldContentType, Value: contentType},
		{Field: FieldLibrary, Value: library},
	}.WithOptional(FieldVersion, version)
}

// SearchResult represents a similarity match.
type SearchResult struct {
	Chunk *Chunk  `json:"chunk"`
	Score float64 `json:"score"`
}

// StatRow is one group of chunks sharing the same project, library,
// version, content type and URL.
type StatRow struct {
	Project     string `json:"project"`
	Library     string `json:"library"`
	Version     string `json:"version"`
	ContentType string `json:"contentType"`
	URL         string `json:"url"`
	Chunks      int    `json:"chunks"`
}

// ChunkWriter appends chunks to the index.
type ChunkWriter interface {
	// AddChunks stores chunks without deduplication and returns the
	// number of chunks written.
	AddChunks(ctx context.Context, chunks []*Chunk) (int, error)
}

// ChunkService represents the similarity-searchable chunk index.
type ChunkService interface {
	ChunkWriter

	// SearchChunks returns up to k chunks matching every filter term,
	// ordered by similarity to query. An empty result is not an error.
	SearchChunks(ctx context.Context, query string, filter Filter, k int) ([]SearchResult, error)

	// DeleteChunks removes every chunk matching the filter and returns
	// the number of chunks removed.
	DeleteChunks(ctx context.Context, filter Filter) (int, error)

	// DistinctValues returns the sorted distinct non-empty values of a
	// metadata field among chunks matching the filter.
	DistinctValues(ctx context.Context, field string, filter Filter) ([]string, error)

	// GroupedStats returns chunk counts grouped by project, library,
	// version, content type and URL, sorted by those fields.
	GroupedStats(ctx context.Context, filter Filter) ([]StatRow, error)
}

// Embedder turns text into vectors for similarity search.
type Embedder interface {
	// Embed returns one vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
