package crawl

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/docsmcp"
)

// Frontier sizing for a single crawl.
const (
	// frontierMinExpectedURLs is the smallest Bloom filter capacity.
	frontierMinExpectedURLs = 10000
	// frontierURLsPerPage estimates distinct links discovered per page.
	frontierURLsPerPage = 100
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.001
)

// walk runs the coordinator loop. The coordinator owns the counters and
// decides what to dispatch; workers only process pages. A page is
// dispatched only while pages in flight plus pages indexed stay below
// MaxPages, so the budget holds no matter how many workers run.
func (c *Crawler) walk(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	expected := max(uint(req.MaxPages)*frontierURLsPerPage, frontierMinExpectedURLs)
	frontier := NewFrontier(expected, frontierFalsePositiveRate)
	frontier.Push(Entry{URL: req.URL, Depth: 0})

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = docsmcp.DefaultConcurrency
	}

	workCh := make(chan Entry)
	resultCh := make(chan pageResult)

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for e := range workCh {
				resultCh <- c.processPage(ctx, req, e)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	var (
		result   docsmcp.ScrapeResult
		pending  int
		fatalErr error
		next     *Entry
	)

	handle := func(r pageResult) {
		pending--
		if r.storeErr != nil {
			if fatalErr == nil {
				fatalErr = fmt.Errorf("index %s: %w", r.entry.URL, r.storeErr)
				cancel()
			}
			return
		}
		if !r.indexed {
			return
		}
		result.PagesScraped++
		result.ChunksIndexed += r.chunks
		for _, link := range r.links {
			if docsmcp.SameScope(req.Scope, req.URL, link) {
				frontier.Push(Entry{URL: link, Depth: r.entry.Depth + 1})
			}
		}
	}

	budgetLeft := func() bool {
		return pending+result.PagesScraped < req.MaxPages
	}

coordinatorLoop:
	for {
		if next == nil && budgetLeft() {
			if e, ok := frontier.Pop(); ok {
				next = &e
			}
		}

		if pending == 0 && (next == nil || !budgetLeft()) {
			break coordinatorLoop
		}

		if next != nil && budgetLeft() {
			select {
			case <-ctx.Done():
				break coordinatorLoop
			case workCh <- *next:
				pending++
				next = nil
			case r := <-resultCh:
				handle(r)
			}
			continue
		}

		select {
		case <-ctx.Done():
			break coordinatorLoop
		case r := <-resultCh:
			handle(r)
		}
	}

	// Workers observe the cancelled context; collect what they finish so
	// the reported counts stay true.
	close(workCh)
	for r := range resultCh {
		handle(r)
	}

	if fatalErr != nil {
		return &result, fatalErr
	}
	return &result, ctx.Err()
}
