// Package acquire routes a scrape request to the ingestion path for its
// source: a binary document download, a local file or folder, or an HTML
// crawl.
package acquire

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/docsmcp"
)

var _ docsmcp.Acquirer = (*Acquirer)(nil)

const fileScheme = "file://"

// Acquirer dispatches scrape requests by scheme and extension.
type Acquirer struct {
	Fetcher docsmcp.Fetcher
	Files   docsmcp.FileSource
	Crawler docsmcp.Crawler
	Chunks  docsmcp.ChunkWriter

	// Converters maps a lowercase extension such as ".pdf" to the
	// converter for that document format.
	Converters map[string]docsmcp.DocumentConverter
	Chunking   docsmcp.Chunking
	Logger     *slog.Logger
}

// Acquire ingests req.URL. The request is expected to have defaults
// applied.
func (a *Acquirer) Acquire(ctx context.Context, req *docsmcp.ScrapeRequest) (*docsmcp.ScrapeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if strings.HasPrefix(req.URL, fileScheme) {
		return a.acquireLocal(ctx, req, strings.TrimPrefix(req.URL, fileScheme))
	}

	if ext, ok := a.remoteDocument(req.URL); ok {
		return a.acquireDocument(ctx, req, ext)
	}

	result, err := a.Crawler.Crawl(ctx, req)
	if result != nil && err == nil {
		result.Message = fmt.Sprintf("Indexed %d chunks from %d pages for project=%s, library=%s@%s [%s]",
			result.ChunksIndexed, result.PagesScraped, req.Project, req.Library, req.Version, req.ContentType)
	}
	return result, err
}

// remoteDocument reports whether rawURL is an http(s) link to a document
// format with a registered converter.
func (a *Acquirer) remoteDocument(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return "", false
	}
	ext := strings.ToLower(path.Ext(u.Path))
	if _, ok := a.Converters[ext]; !ok {
		return "", false
	}
	return ext, true
}

func (a *Acquirer) acquireDocument(ctx context.Context, req *docsmcp.ScrapeRequest, ext string) (*docsmcp.ScrapeResult, error) {
	resp, err := a.Fetcher.Fetch(ctx, req.URL, docsmcp.FetchOptions{FollowRedirects: req.FollowRedirects})
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", req.URL, err)
	}
	if !resp.OK() {
		return nil, docsmcp.Errorf(docsmcp.EUNAVAILABLE, "download %s: status %d", req.URL, resp.StatusCode)
	}

	text, err := a.Converters[ext].ConvertDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", req.URL, err)
	}

	n, err := a.index(ctx, req, req.URL, text)
	if err != nil {
		return nil, err
	}
	return &docsmcp.ScrapeResult{
		PagesScraped:  1,
		ChunksIndexed: n,
		Message:       fmt.Sprintf("Indexed %d chunks from %s", n, req.URL),
	}, nil
}

func (a *Acquirer) acquireLocal(ctx context.Context, req *docsmcp.ScrapeRequest, root string) (*docsmcp.ScrapeResult, error) {
	files, err := a.Files.Files(ctx, root)
	if err != nil {
		return nil, err
	}

	single := len(files) == 1 && files[0] == root
	if single {
		n, err := a.ingestFile(ctx, req, root)
		if err != nil {
			return nil, err
		}
		return &docsmcp.ScrapeResult{
			PagesScraped:  1,
			ChunksIndexed: n,
			Message:       fmt.Sprintf("Indexed %d chunks from file '%s'", n, root),
		}, nil
	}

	result := &docsmcp.ScrapeResult{}
	for _, p := range files {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		n, err := a.ingestFile(ctx, req, p)
		if err != nil {
			var se *storeError
			if errors.As(err, &se) || ctx.Err() != nil {
				return result, err
			}
			a.logger().Warn("skipping file", "path", p, "err", err)
		}
		result.PagesScraped++
		result.ChunksIndexed += n
	}
	result.Message = fmt.Sprintf("Indexed %d chunks from folder '%s'", result.ChunksIndexed, root)
	return result, nil
}

// ingestFile converts and indexes one local file. Read and conversion
// failures come back as plain errors; store failures are wrapped so the
// folder walk can tell them apart and abort.
func (a *Acquirer) ingestFile(ctx context.Context, req *docsmcp.ScrapeRequest, p string) (int, error) {
	data, err := a.Files.ReadFile(p)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", p, err)
	}

	var text string
	if conv, ok := a.Converters[strings.ToLower(filepath.Ext(p))]; ok {
		text, err = conv.ConvertDocument(data)
		if err != nil {
			return 0, fmt.Errorf("convert %s: %w", p, err)
		}
	} else {
		text = strings.ToValidUTF8(string(data), "")
	}

	n, err := a.index(ctx, req, fileScheme+p, text)
	if err != nil {
		return 0, &storeError{err: err}
	}
	return n, nil
}

func (a *Acquirer) index(ctx context.Context, req *docsmcp.ScrapeRequest, source, text string) (int, error) {
	chunks := a.Chunking.Chunks(req, source, text)
	if len(chunks) == 0 {
		return 0, nil
	}
	n, err := a.Chunks.AddChunks(ctx, chunks)
	if err != nil {
		return 0, fmt.Errorf("index %s: %w", source, err)
	}
	return n, nil
}

func (a *Acquirer) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}

// storeError marks a failure to write chunks, which aborts a folder walk.
type storeError struct {
	err error
}

func (e *storeError) Error() string { return e.err.Error() }

func (e *storeError) Unwrap() error { return e.err }
