package mock

import (
	"context"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of docsmcp.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ docsmcp.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of docsmcp.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
