package docsmcp

import (
	"context"
	"strings"
)

// Defaults for scrape and search requests.
const (
	DefaultMaxPages    = 50
	DefaultMaxDepth    = 2
	DefaultConcurrency = 4
	DefaultSearchLimit = 5
)

// ScrapeRequest describes one source to ingest.
type ScrapeRequest struct {
	Project     string
	Library     string
	URL         string
	Version     string
	ContentType string

	// MaxPages bounds the number of pages a crawl fetches successfully.
	MaxPages int
	// MaxDepth bounds link distance from URL. Zero crawls URL only.
	MaxDepth int
	Scope    Scope
	// FollowRedirects is applied to every fetch of the scrape.
	FollowRedirects bool
}

// ApplyDefaults trims the request and fills unset optional fields.
// MaxDepth is left alone since zero is meaningful.
func (r *ScrapeRequest) ApplyDefaults() {
	r.Project = strings.TrimSpace(r.Project)
	r.Library = strings.TrimSpace(r.Library)
	r.URL = strings.TrimSpace(r.URL)
	r.Version = VersionOrDefault(r.Version)
	r.ContentType = strings.TrimSpace(r.ContentType)
	if r.ContentType == "" {
		r.ContentType = DefaultContentType
	}
	if r.MaxPages <= 0 {
		r.MaxPages = DefaultMaxPages
	}
	if r.MaxDepth < 0 {
		r.MaxDepth = 0
	}
	if s, err := ParseScope(string(r.Scope)); err == nil {
		r.Scope = s
	}
}

// Validate returns an error if the request cannot be served.
func (r *ScrapeRequest) Validate() error {
	if r.Project == "" {
		return Errorf(EINVALID, "project required")
	}
	if r.Library == "" {
		return Errorf(EINVALID, "library required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "url required")
	}
	if r.ContentType == "" {
		return Errorf(EINVALID, "content type required")
	}
	if strings.ContainsAny(r.ContentType, "\n\r\t") {
		return Errorf(EINVALID, "invalid content type %q", r.ContentType)
	}
	if _, err := ParseScope(string(r.Scope)); err != nil {
		return err
	}
	return nil
}

// ScrapeResult reports what a scrape ingested. Error is set instead of
// the counts when the scrape failed as a whole.
type ScrapeResult struct {
	PagesScraped  int    `json:"pagesScraped"`
	ChunksIndexed int    `json:"chunksIndexed"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Acquirer ingests one source of any kind.
type Acquirer interface {
	Acquire(ctx context.Context, req *ScrapeRequest) (*ScrapeResult, error)
}

// Crawler ingests HTML pages reachable from a seed URL.
type Crawler interface {
	// Crawl returns the counts reached so far together with any error,
	// including context cancellation.
	Crawl(ctx context.Context, req *ScrapeRequest) (*ScrapeResult, error)
}

// Chunking configures how text is split. Zero values select the
// defaults.
type Chunking struct {
	Size    int
	Overlap int
}

// Chunks splits text and tags every window with the request's metadata
// and the source url.
func (c Chunking) Chunks(req *ScrapeRequest, url, text string) []*Chunk {
	size, overlap := c.window()
	return tag(req, url, SplitText(text, size, overlap))
}

// PageChunks is Chunks for crawled pages: windows holding only
// whitespace are dropped.
func (c Chunking) PageChunks(req *ScrapeRequest, url, text string) []*Chunk {
	size, overlap := c.window()
	return tag(req, url, SplitNonBlank(text, size, overlap))
}

func (c Chunking) window() (size, overlap int) {
	size, overlap = c.Size, c.Overlap
	if size <= 0 {
		size = DefaultChunkSize
		if overlap == 0 {
			overlap = DefaultChunkOverlap
		}
	}
	return size, overlap
}

func tag(req *ScrapeRequest, url string, windows []string) []*Chunk {
	chunks := make([]*Chunk, 0, len(windows))
	for _, w := range windows {
		chunks = append(chunks, &Chunk{
			Text:        w,
			Project:     req.Project,
			Library:     req.Library,
			Version:     VersionOrDefault(req.Version),
			ContentType: req.ContentType,
			URL:         url,
		})
	}
	return chunks
}
