package docsmcp

import "context"

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}

// LinkExtractor finds the hyperlinks of an HTML page.
type LinkExtractor interface {
	// ExtractLinks returns the absolute http(s) URLs of every anchor in
	// html, resolved against baseURL, in document order. Fragment-only,
	// mailto:, javascript:, tel: and data: hrefs are skipped.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
