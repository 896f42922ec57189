package docsmcp

import (
	"context"
	"strings"
)

// Version is reported to MCP clients and in the User-Agent header.
const Version = "1.0"

// UserAgent identifies the engine to the servers it fetches from.
const UserAgent = "docs-mcp/" + Version

// FetchOptions controls a single fetch.
type FetchOptions struct {
	// FollowRedirects follows 3xx responses when set. Otherwise the
	// redirect response itself is returned.
	FollowRedirects bool
}

// Response is a fetched resource.
type Response struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the response status is 200.
func (r *Response) OK() bool {
	return r.StatusCode == 200
}

// IsHTML reports whether the Content-Type header declares text/html.
func (r *Response) IsHTML() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "text/html")
}

// Fetcher retrieves resources over HTTP.
type Fetcher interface {
	// Fetch performs a GET request. Non-200 responses are returned, not
	// reported as errors; err is set only when no response was received.
	// Per-request timeouts are owned by the implementation, the context
	// only cancels.
	Fetch(ctx context.Context, url string, opts FetchOptions) (*Response, error)
}
