// Package fs provides file-based sources for documentation.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsmcp"
)

// Ensure FileSource implements docsmcp.FileSource at compile time.
var _ docsmcp.FileSource = (*FileSource)(nil)

// FileSource reads documentation from the local filesystem.
type FileSource struct{}

// NewFileSource creates a new FileSource.
func NewFileSource() *FileSource {
	return &FileSource{}
}

// Files returns path when it names a regular file, or every regular file
// beneath it when it names a directory. Symlinks are not followed.
func (s *FileSource) Files(ctx context.Context, path string) ([]string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docsmcp.Errorf(docsmcp.ENOTFOUND, "Path not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.Type().IsRegular() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// ReadFile returns the contents of path.
func (s *FileSource) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
