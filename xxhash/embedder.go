// Package xxhash provides an offline docsmcp.Embedder based on feature
// hashing with xxHash. Vectors capture shared vocabulary, not meaning, and
// need no network or API key.
package xxhash

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.Embedder = (*Embedder)(nil)

// DefaultDimensions is the vector size used when none is configured.
const DefaultDimensions = 512

// Embedder hashes word unigrams and bigrams into a fixed number of
// buckets. The sign of each contribution comes from the hash so that
// collisions tend to cancel.
type Embedder struct {
	dims int
}

// NewEmbedder creates an Embedder producing vectors of dims entries.
// Non-positive dims selects DefaultDimensions.
func NewEmbedder(dims int) *Embedder {
	if dims <= 0 {
		dims = DefaultDimensions
	}
	return &Embedder{dims: dims}
}

// Embed returns one unit-length vector per text. Text without any word
// characters maps to the zero vector.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out[i] = e.vector(text)
	}
	return out, nil
}

func (e *Embedder) vector(text string) []float32 {
	v := make([]float32, e.dims)
	words := tokenize(text)
	for i, w := range words {
		e.add(v, w, 1)
		if i > 0 {
			e.add(v, words[i-1]+" "+w, 0.5)
		}
	}

	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	for i := range v {
		v[i] = float32(float64(v[i]) / norm)
	}
	return v
}

func (e *Embedder) add(v []float32, feature string, weight float32) {
	h := xxhash.Sum64String(feature)
	idx := h % uint64(e.dims)
	if h&(1<<63) != 0 {
		weight = -weight
	}
	v[idx] += weight
}

// tokenize lowercases text and splits it on anything that is not a letter
// or digit.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
