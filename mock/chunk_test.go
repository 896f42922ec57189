package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkWriter_AddChunks(t *testing.T) {
	t.Parallel()

	t.Run("delegates to AddChunksFn", func(t *testing.T) {
		t.Parallel()

		var calledWith []*docsmcp.Chunk
		w := &mock.ChunkWriter{
			AddChunksFn: func(_ context.Context, chunks []*docsmcp.Chunk) (int, error) {
				calledWith = chunks
				return len(chunks), nil
			},
		}

		chunks := []*docsmcp.Chunk{{Text: "t", Project: "P", Library: "L", ContentType: "docs"}}
		n, err := w.AddChunks(context.Background(), chunks)

		require.NoError(t, err)
		assert.Equal(t, 1, n)
		assert.Equal(t, chunks, calledWith)
	})
}
