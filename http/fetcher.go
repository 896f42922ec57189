// Package http provides an HTTP implementation of docsmcp.Fetcher.
package http

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/docsmcp"
)

// Default per-request budgets. The connect budget covers dialing, the
// read budget covers waiting for response headers and the body.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultReadTimeout    = 20 * time.Second
	DefaultMaxBodySize    = 32 << 20
)

var _ docsmcp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves resources with plain HTTP GET requests. It does not
// execute JavaScript.
type Fetcher struct {
	connectTimeout time.Duration
	readTimeout    time.Duration
	maxBodySize    int64
	userAgent      string

	follow   *http.Client
	noFollow *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithConnectTimeout sets the dial timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.connectTimeout = d
	}
}

// WithReadTimeout sets the time allowed for the response after the
// connection is established.
func WithReadTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.readTimeout = d
	}
}

// WithMaxBodySize caps the number of body bytes read. Larger bodies are
// truncated.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		connectTimeout: DefaultConnectTimeout,
		readTimeout:    DefaultReadTimeout,
		maxBodySize:    DefaultMaxBodySize,
		userAgent:      docsmcp.UserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   f.connectTimeout,
		KeepAlive: 30 * time.Second,
	}).DialContext
	transport.TLSHandshakeTimeout = f.connectTimeout
	transport.ResponseHeaderTimeout = f.readTimeout

	timeout := f.connectTimeout + f.readTimeout
	f.follow = &http.Client{Transport: transport, Timeout: timeout}
	f.noFollow = &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch retrieves url. Any status code is returned as a response.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts docsmcp.FetchOptions) (*docsmcp.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "invalid url %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	client := f.noFollow
	if opts.FollowRedirects {
		client = f.follow
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	return &docsmcp.Response{
		URL:         resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
