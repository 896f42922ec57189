// Package gemini provides a docsmcp.Embedder backed by the Gemini
// embedding API.
package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/docsmcp"
	"google.golang.org/genai"
)

// DefaultModel is the embedding model used when none is configured.
const DefaultModel = "gemini-embedding-001"

// taskType tunes vectors for similarity between queries and passages.
const taskType = "SEMANTIC_SIMILARITY"

// Ensure Embedder implements docsmcp.Embedder at compile time.
var _ docsmcp.Embedder = (*Embedder)(nil)

// Embedder implements docsmcp.Embedder using Google Gemini.
type Embedder struct {
	client *genai.Client
	model  string
	dims   int32
}

// NewEmbedder creates a new Embedder. An empty model selects
// DefaultModel; dims of zero keeps the model's native size.
func NewEmbedder(client *genai.Client, model string, dims int) *Embedder {
	if model == "" {
		model = DefaultModel
	}
	return &Embedder{client: client, model: model, dims: int32(dims)}
}

// Embed sends texts in a single batch request.
func (e *Embedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	contents := make([]*genai.Content, len(texts))
	for i, text := range texts {
		contents[i] = genai.NewContentFromText(text, genai.RoleUser)
	}

	config := &genai.EmbedContentConfig{TaskType: taskType}
	if e.dims > 0 {
		config.OutputDimensionality = &e.dims
	}

	result, err := e.client.Models.EmbedContent(ctx, e.model, contents, config)
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.EUNAVAILABLE, "gemini embed: %v", err)
	}
	if result == nil || len(result.Embeddings) != len(texts) {
		return nil, docsmcp.Errorf(docsmcp.EINTERNAL, "gemini returned %d embeddings for %d texts", embeddingCount(result), len(texts))
	}

	vectors := make([][]float32, len(result.Embeddings))
	for i, emb := range result.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, docsmcp.Errorf(docsmcp.EINTERNAL, "gemini returned an empty embedding at %d", i)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

func embeddingCount(result *genai.EmbedContentResponse) int {
	if result == nil {
		return 0
	}
	return len(result.Embeddings)
}

// String identifies the model for logs.
func (e *Embedder) String() string {
	return fmt.Sprintf("gemini:%s", e.model)
}
