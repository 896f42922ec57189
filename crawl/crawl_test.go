package crawl_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/crawl"
	"github.com/fwojciec/docsmcp/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testMocks exposes the collaborators of a crawler built by
// newTestCrawler.
type testMocks struct {
	Fetcher *mock.Fetcher
	Links   *mock.LinkExtractor
	Chunks  *mock.ChunkWriter

	mu      sync.Mutex
	fetched []string
	stored  []*docsmcp.Chunk
}

func (m *testMocks) Fetched() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.fetched...)
}

func (m *testMocks) Stored() []*docsmcp.Chunk {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*docsmcp.Chunk(nil), m.stored...)
}

// site maps URLs to page bodies; each body lists the links of its page
// separated by spaces after a "links:" marker.
type site map[string]string

func newTestCrawler(pages site) (*crawl.Crawler, *testMocks) {
	m := &testMocks{}
	m.Fetcher = &mock.Fetcher{
		FetchFn: func(_ context.Context, url string, _ docsmcp.FetchOptions) (*docsmcp.Response, error) {
			m.mu.Lock()
			m.fetched = append(m.fetched, url)
			m.mu.Unlock()
			body, ok := pages[url]
			if !ok {
				return &docsmcp.Response{URL: url, StatusCode: 404, ContentType: "text/plain"}, nil
			}
			return &docsmcp.Response{URL: url, StatusCode: 200, ContentType: "text/html; charset=utf-8", Body: []byte(body)}, nil
		},
	}
	m.Links = &mock.LinkExtractor{
		ExtractLinksFn: func(html string, _ string) ([]string, error) {
			_, after, ok := strings.Cut(html, "links:")
			if !ok {
				return nil, nil
			}
			return strings.Fields(after), nil
		},
	}
	m.Chunks = &mock.ChunkWriter{
		AddChunksFn: func(_ context.Context, chunks []*docsmcp.Chunk) (int, error) {
			m.mu.Lock()
			defer m.mu.Unlock()
			m.stored = append(m.stored, chunks...)
			return len(chunks), nil
		},
	}

	c := &crawl.Crawler{
		Fetcher: m.Fetcher,
		Normalizer: &mock.Normalizer{NormalizeFn: func(raw string) docsmcp.Normalized {
			text, _, _ := strings.Cut(raw, "links:")
			return docsmcp.Normalized{MainHTML: raw, Markdown: strings.TrimSpace(text)}
		}},
		Links:       m.Links,
		Chunks:      m.Chunks,
		Concurrency: 2,
		RetryDelays: []time.Duration{},
	}
	return c, m
}

func newRequest(url string) *docsmcp.ScrapeRequest {
	req := &docsmcp.ScrapeRequest{
		Project:         "P",
		Library:         "L",
		URL:             url,
		MaxDepth:        docsmcp.DefaultMaxDepth,
		FollowRedirects: true,
	}
	req.ApplyDefaults()
	return req
}

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-http seed before fetching", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{})

		_, err := c.Crawl(context.Background(), newRequest("ftp://example.com/docs"))

		assert.Equal(t, docsmcp.EINVALID, docsmcp.ErrorCode(err))
		assert.Empty(t, m.Fetched())
	})

	t.Run("indexes the seed page with request metadata", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{"https://example.com/docs/": "Welcome to the docs"})
		req := newRequest("https://example.com/docs/")
		req.Version = "2.0"

		result, err := c.Crawl(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 1, result.PagesScraped)
		assert.Equal(t, 1, result.ChunksIndexed)
		stored := m.Stored()
		require.Len(t, stored, 1)
		assert.Equal(t, "Welcome to the docs", stored[0].Text)
		assert.Equal(t, "https://example.com/docs/", stored[0].URL)
		assert.Equal(t, "2.0", stored[0].Version)
		assert.Equal(t, "docs", stored[0].ContentType)
	})

	t.Run("follows links breadth first within scope", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{
			"https://example.com/docs/":  "root links: https://example.com/docs/a https://example.com/blog/x https://other.com/docs/y",
			"https://example.com/docs/a": "page a",
			"https://example.com/blog/x": "blog",
		})

		result, err := c.Crawl(context.Background(), newRequest("https://example.com/docs/"))

		require.NoError(t, err)
		assert.Equal(t, 2, result.PagesScraped)
		assert.ElementsMatch(t, []string{"https://example.com/docs/", "https://example.com/docs/a"}, m.Fetched())
	})

	t.Run("scope names padded with spaces still follow links", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{
			"https://example.com/docs/":  "root links: https://example.com/blog/x",
			"https://example.com/blog/x": "blog",
		})
		req := newRequest("https://example.com/docs/")
		req.Scope = " hostname "

		result, err := c.Crawl(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 2, result.PagesScraped)
		assert.Contains(t, m.Fetched(), "https://example.com/blog/x")
	})

	t.Run("respects the depth limit", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{
			"https://example.com/":  "d0 links: https://example.com/1",
			"https://example.com/1": "d1 links: https://example.com/2",
			"https://example.com/2": "d2 links: https://example.com/3",
			"https://example.com/3": "d3",
		})
		req := newRequest("https://example.com/")
		req.MaxDepth = 1

		result, err := c.Crawl(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 2, result.PagesScraped)
		assert.NotContains(t, m.Fetched(), "https://example.com/2")
	})

	t.Run("depth zero indexes only the seed", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{
			"https://example.com/": "seed links: https://example.com/a",
		})
		req := newRequest("https://example.com/")
		req.MaxDepth = 0

		result, err := c.Crawl(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, 1, result.PagesScraped)
		assert.Equal(t, []string{"https://example.com/"}, m.Fetched())
	})

	t.Run("skips non-200 and non-html responses", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{
			"https://example.com/": "seed links: https://example.com/missing https://example.com/file.json https://example.com/ok",
			"https://example.com/ok": "fine",
		})
		inner := m.Fetcher.FetchFn
		m.Fetcher.FetchFn = func(ctx context.Context, url string, opts docsmcp.FetchOptions) (*docsmcp.Response, error) {
			if url == "https://example.com/file.json" {
				return &docsmcp.Response{URL: url, StatusCode: 200, ContentType: "application/json", Body: []byte(`{}`)}, nil
			}
			return inner(ctx, url, opts)
		}

		result, err := c.Crawl(context.Background(), newRequest("https://example.com/"))

		require.NoError(t, err)
		assert.Equal(t, 2, result.PagesScraped)
		assert.Equal(t, 2, result.ChunksIndexed)
	})

	t.Run("skips pages that fail to fetch", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{
			"https://example.com/":   "seed links: https://example.com/bad https://example.com/good",
			"https://example.com/good": "good",
		})
		inner := m.Fetcher.FetchFn
		m.Fetcher.FetchFn = func(ctx context.Context, url string, opts docsmcp.FetchOptions) (*docsmcp.Response, error) {
			if url == "https://example.com/bad" {
				return nil, errors.New("connection reset")
			}
			return inner(ctx, url, opts)
		}

		result, err := c.Crawl(context.Background(), newRequest("https://example.com/"))

		require.NoError(t, err)
		assert.Equal(t, 2, result.PagesScraped)
	})

	t.Run("passes the redirect policy to the fetcher", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{"https://example.com/": "seed"})
		var got docsmcp.FetchOptions
		inner := m.Fetcher.FetchFn
		m.Fetcher.FetchFn = func(ctx context.Context, url string, opts docsmcp.FetchOptions) (*docsmcp.Response, error) {
			got = opts
			return inner(ctx, url, opts)
		}
		req := newRequest("https://example.com/")
		req.FollowRedirects = false

		_, err := c.Crawl(context.Background(), req)

		require.NoError(t, err)
		assert.False(t, got.FollowRedirects)
	})

	t.Run("counts pages without chunks", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCrawler(site{"https://example.com/": "   "})

		result, err := c.Crawl(context.Background(), newRequest("https://example.com/"))

		require.NoError(t, err)
		assert.Equal(t, 1, result.PagesScraped)
		assert.Equal(t, 0, result.ChunksIndexed)
	})

	t.Run("store errors abort the crawl", func(t *testing.T) {
		t.Parallel()

		c, m := newTestCrawler(site{"https://example.com/": "seed links: https://example.com/a", "https://example.com/a": "a"})
		m.Chunks.AddChunksFn = func(context.Context, []*docsmcp.Chunk) (int, error) {
			return 0, errors.New("disk full")
		}

		result, err := c.Crawl(context.Background(), newRequest("https://example.com/"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		require.NotNil(t, result)
		assert.Equal(t, 0, result.PagesScraped)
	})

	t.Run("waits on the rate limiter per host", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCrawler(site{"https://example.com/": "seed"})
		var hosts []string
		c.RateLimiter = &mock.DomainLimiter{WaitFn: func(_ context.Context, domain string) error {
			hosts = append(hosts, domain)
			return nil
		}}

		_, err := c.Crawl(context.Background(), newRequest("https://example.com/"))

		require.NoError(t, err)
		assert.Equal(t, []string{"example.com"}, hosts)
	})
}
