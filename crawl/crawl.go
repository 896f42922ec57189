// Package crawl ingests documentation sites by bounded breadth-first
// crawling: pages are fetched by a pool of workers, normalized to
// Markdown, chunked and indexed, and their links followed while they
// stay in scope and within the depth limit.
package crawl

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.Crawler = (*Crawler)(nil)

// Crawler crawls HTML documentation sites.
type Crawler struct {
	Fetcher    docsmcp.Fetcher
	Normalizer docsmcp.Normalizer
	Links      docsmcp.LinkExtractor
	Chunks     docsmcp.ChunkWriter

	// RateLimiter is optional; nil fetches without per-host limits.
	RateLimiter docsmcp.DomainLimiter
	Chunking    docsmcp.Chunking
	// Concurrency bounds the number of pages in flight. Defaults to
	// docsmcp.DefaultConcurrency.
	Concurrency int
	// RetryDelays are the backoff delays for transport errors. Nil uses
	// DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration
	// Logger receives skipped pages. Nil discards.
	Logger *slog.Logger
}

// pageResult is the outcome of one worker fetch.
type pageResult struct {
	entry   Entry
	indexed bool
	chunks  int
	links   []string
	// storeErr aborts the crawl; other failures only skip the page.
	storeErr error
}

// Crawl fetches pages reachable from req.URL. It returns the pages
// indexed and chunks written so far together with any fatal error: a
// store failure or the cancellation of ctx.
func (c *Crawler) Crawl(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error) {
	seed, err := url.Parse(req.URL)
	if err != nil || (seed.Scheme != "http" && seed.Scheme != "https") || seed.Host == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "invalid crawl url %q", req.URL)
	}
	scope, err := docsmcp.ParseScope(string(req.Scope))
	if err != nil {
		return nil, err
	}

	scoped := *req
	scoped.Scope = scope
	return c.walk(ctx, &scoped)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// processPage fetches, normalizes and indexes a single page.
func (c *Crawler) processPage(ctx context.Context, req *docsmcp.ScrapeRequest, e Entry) pageResult {
	result := pageResult{entry: e}
	log := c.logger()

	if c.RateLimiter != nil {
		if u, err := url.Parse(e.URL); err == nil {
			if err := c.RateLimiter.Wait(ctx, u.Host); err != nil {
				return result
			}
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetch := func(ctx context.Context, u string) (*docsmcp.Response, error) {
		return c.Fetcher.Fetch(ctx, u, docsmcp.FetchOptions{FollowRedirects: req.FollowRedirects})
	}
	resp, err := FetchWithRetryDelays(ctx, e.URL, fetch, log, delays)
	if err != nil {
		log.Warn("skipping page", "url", e.URL, "err", err)
		return result
	}
	if !resp.OK() {
		log.Info("skipping page", "url", e.URL, "status", resp.StatusCode)
		return result
	}
	if !resp.IsHTML() {
		log.Info("skipping page", "url", e.URL, "content_type", resp.ContentType)
		return result
	}

	raw := string(resp.Body)
	normalized := c.Normalizer.Normalize(raw)

	if chunks := c.Chunking.PageChunks(req, e.URL, normalized.Markdown); len(chunks) > 0 {
		n, err := c.Chunks.AddChunks(ctx, chunks)
		if err != nil {
			if ctx.Err() == nil {
				result.storeErr = err
			}
			return result
		}
		result.chunks = n
	}
	result.indexed = true

	if e.Depth < req.MaxDepth {
		links, err := c.Links.ExtractLinks(raw, e.URL)
		if err != nil {
			log.Info("skipping links", "url", e.URL, "err", err)
		}
		result.links = links
	}

	return result
}
