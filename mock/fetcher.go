package mock

import (
	"context"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docsmcp.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, opts docsmcp.FetchOptions) (*docsmcp.Response, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string, opts docsmcp.FetchOptions) (*docsmcp.Response, error) {
	return f.FetchFn(ctx, url, opts)
}
