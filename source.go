package docsmcp

import "context"

// FileSource lists and reads local files.
type FileSource interface {
	// Files returns path itself when it is a regular file, or every
	// regular file beneath it when it is a directory, in lexical order.
	// A missing path is an ENOTFOUND error.
	Files(ctx context.Context, path string) ([]string, error)

	// ReadFile returns the contents of a file.
	ReadFile(path string) ([]byte, error)
}
