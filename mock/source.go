package mock

import (
	"context"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.FileSource = (*FileSource)(nil)

// FileSource is a mock implementation of docsmcp.FileSource.
type FileSource struct {
	FilesFn    func(ctx context.Context, path string) ([]string, error)
	ReadFileFn func(path string) ([]byte, error)
}

func (s *FileSource) Files(ctx context.Context, path string) ([]string, error) {
	return s.FilesFn(ctx, path)
}

func (s *FileSource) ReadFile(path string) ([]byte, error) {
	return s.ReadFileFn(path)
}
