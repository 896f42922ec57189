// Package retrieval implements the public documentation operations:
// ingesting sources, similarity search, version resolution, removal and
// statistics. Every operation reports failures in its result instead of
// returning an error, so callers can render any outcome directly.
package retrieval

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/docsmcp"
)

// Service composes acquisition, the chunk index and ad-hoc fetching.
type Service struct {
	Acquirer   docsmcp.Acquirer
	Chunks     docsmcp.ChunkService
	Fetcher    docsmcp.Fetcher
	Normalizer docsmcp.Normalizer
	// Logger receives operation failures. Nil discards.
	Logger *slog.Logger
}

// SearchRequest selects the chunks to rank. Version is optional; an
// empty ContentType means docsmcp.DefaultContentType and a non-positive
// Limit means docsmcp.DefaultSearchLimit.
type SearchRequest struct {
	Project     string
	Library     string
	Query       string
	Version     string
	ContentType string
	Limit       int
}

// RemoveResult reports a removal. Error is set instead of the count when
// the removal failed.
type RemoveResult struct {
	ChunksDeleted int    `json:"chunksDeleted"`
	Message       string `json:"message,omitempty"`
	Error         string `json:"error,omitempty"`
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// Scrape ingests one source. Partial counts are kept when a crawl is
// interrupted.
func (s *Service) Scrape(ctx context.Context, req docsmcp.ScrapeRequest) docsmcp.ScrapeResult {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return docsmcp.ScrapeResult{Error: docsmcp.ErrorMessage(err)}
	}

	result, err := s.Acquirer.Acquire(ctx, &req)
	if err != nil {
		s.logger().Error("scrape failed", "project", req.Project, "library", req.Library, "url", req.URL, "err", err)
		out := docsmcp.ScrapeResult{Error: docsmcp.ErrorMessage(err)}
		if result != nil {
			out.PagesScraped = result.PagesScraped
			out.ChunksIndexed = result.ChunksIndexed
		}
		return out
	}
	return *result
}

// Search ranks the chunks of one library by similarity to the query.
func (s *Service) Search(ctx context.Context, req SearchRequest) string {
	req.Project = strings.TrimSpace(req.Project)
	req.Library = strings.TrimSpace(req.Library)
	req.Version = docsmcp.NormalizeVersion(req.Version)
	req.ContentType = contentTypeOrDefault(req.ContentType)
	if req.Limit <= 0 {
		req.Limit = docsmcp.DefaultSearchLimit
	}
	if err := requireScope(req.Project, req.Library); err != nil {
		return formatError(err)
	}
	if strings.TrimSpace(req.Query) == "" {
		return formatError(docsmcp.Errorf(docsmcp.EINVALID, "query required"))
	}

	filter := docsmcp.ScopeFilter(req.Project, req.Library, req.ContentType, req.Version)
	results, err := s.Chunks.SearchChunks(ctx, req.Query, filter, req.Limit)
	if err != nil {
		s.logger().Error("search failed", "project", req.Project, "library", req.Library, "err", err)
		return formatError(err)
	}
	if len(results) == 0 {
		return formatNoResults(req)
	}
	return formatResults(results)
}

// ListProjects summarizes every indexed project.
func (s *Service) ListProjects(ctx context.Context) string {
	projects, err := s.projects(ctx)
	if err != nil {
		return formatError(err)
	}
	return formatProjects(projects)
}

// CheckProject reports whether a project exists and what it holds.
func (s *Service) CheckProject(ctx context.Context, project string) string {
	project = strings.TrimSpace(project)
	if project == "" {
		return formatError(docsmcp.Errorf(docsmcp.EINVALID, "project required"))
	}
	projects, err := s.projects(ctx)
	if err != nil {
		return formatError(err)
	}
	return formatCheckProject(project, docsmcp.FindProject(projects, project))
}

// ListLibraries lists libraries across all projects, or within project
// when it is not empty.
func (s *Service) ListLibraries(ctx context.Context, project string) string {
	project = strings.TrimSpace(project)
	projects, err := s.projects(ctx)
	if err != nil {
		return formatError(err)
	}
	return formatLibraries(projects, project)
}

// FindVersion resolves target against the versions indexed for a
// library, returning "library@version" on success.
func (s *Service) FindVersion(ctx context.Context, project, library, contentType, target string) string {
	project, library = strings.TrimSpace(project), strings.TrimSpace(library)
	contentType = contentTypeOrDefault(contentType)
	if err := requireScope(project, library); err != nil {
		return formatError(err)
	}

	versions, err := s.Chunks.DistinctValues(ctx, docsmcp.FieldVersion, docsmcp.ScopeFilter(project, library, contentType, ""))
	if err != nil {
		return formatError(err)
	}
	if len(versions) == 0 {
		return formatNoVersions(project, library, contentType)
	}
	chosen, ok := docsmcp.MatchVersion(versions, target)
	if !ok {
		return formatNoVersionMatch(project, library, contentType, target, versions)
	}
	return library + "@" + chosen
}

// Remove deletes the chunks of a library, limited to one version when
// version is not empty.
func (s *Service) Remove(ctx context.Context, project, library, version, contentType string) RemoveResult {
	project, library = strings.TrimSpace(project), strings.TrimSpace(library)
	version = docsmcp.NormalizeVersion(version)
	contentType = contentTypeOrDefault(contentType)
	if err := requireScope(project, library); err != nil {
		return RemoveResult{Error: docsmcp.ErrorMessage(err)}
	}

	n, err := s.Chunks.DeleteChunks(ctx, docsmcp.ScopeFilter(project, library, contentType, version))
	if err != nil {
		s.logger().Error("remove failed", "project", project, "library", library, "err", err)
		return RemoveResult{Error: docsmcp.ErrorMessage(err)}
	}
	return RemoveResult{
		ChunksDeleted: n,
		Message:       formatRemoved(n, project, library, version, contentType),
	}
}

// FetchURL fetches a page and returns it as Markdown without indexing
// it. Project and contentType only label the request in logs.
func (s *Service) FetchURL(ctx context.Context, url, project, contentType string, followRedirects bool) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return "Failed to fetch URL: url required"
	}

	resp, err := s.Fetcher.Fetch(ctx, url, docsmcp.FetchOptions{FollowRedirects: followRedirects})
	if err != nil {
		s.logger().Warn("fetch url failed", "url", url, "project", project, "content_type", contentType, "err", err)
		return "Failed to fetch URL: " + docsmcp.ErrorMessage(err)
	}
	return formatFetched(resp, s.Normalizer)
}

// DetailedStats lists chunk counts per URL, optionally narrowed by any of
// project, library and version.
func (s *Service) DetailedStats(ctx context.Context, project, library, version string) string {
	project, library = strings.TrimSpace(project), strings.TrimSpace(library)
	version = docsmcp.NormalizeVersion(version)

	filter := docsmcp.Filter{}.
		WithOptional(docsmcp.FieldProject, project).
		WithOptional(docsmcp.FieldLibrary, library).
		WithOptional(docsmcp.FieldVersion, version)
	rows, err := s.Chunks.GroupedStats(ctx, filter)
	if err != nil {
		return formatError(err)
	}
	return formatDetailedStats(rows, project, library, version)
}

func (s *Service) projects(ctx context.Context) ([]docsmcp.ProjectSummary, error) {
	rows, err := s.Chunks.GroupedStats(ctx, nil)
	if err != nil {
		s.logger().Error("stats failed", "err", err)
		return nil, err
	}
	return docsmcp.SummarizeProjects(rows), nil
}

func requireScope(project, library string) error {
	if project == "" {
		return docsmcp.Errorf(docsmcp.EINVALID, "project required")
	}
	if library == "" {
		return docsmcp.Errorf(docsmcp.EINVALID, "library required")
	}
	return nil
}

func contentTypeOrDefault(ct string) string {
	if ct = strings.TrimSpace(ct); ct == "" {
		return docsmcp.DefaultContentType
	}
	return ct
}
