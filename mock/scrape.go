package mock

import (
	"context"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.Acquirer = (*Acquirer)(nil)

// Acquirer is a mock implementation of docsmcp.Acquirer.
type Acquirer struct {
	AcquireFn func(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error)
}

func (a *Acquirer) Acquire(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error) {
	return a.AcquireFn(ctx, req)
}

var _ docsmcp.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of docsmcp.Crawler.
type Crawler struct {
	CrawlFn func(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error)
}

func (c *Crawler) Crawl(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error) {
	return c.CrawlFn(ctx, req)
}
