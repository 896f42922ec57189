package mcp

import (
	"context"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/retrieval"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool names.
const (
	ToolScrapeDocs    = "scrape_docs"
	ToolSearchDocs    = "search_docs"
	ToolListProjects  = "list_projects"
	ToolCheckProject  = "check_project"
	ToolListLibraries = "list_libraries"
	ToolFindVersion   = "find_version"
	ToolRemoveDocs    = "remove_docs"
	ToolFetchURL      = "fetch_url"
	ToolDetailedStats = "detailed_stats"
)

// ScrapeInput is the input schema for scrape_docs. Pointer fields
// distinguish an omitted argument from an explicit zero.
type ScrapeInput struct {
	Project         string `json:"project" jsonschema:"project name"`
	Library         string `json:"library" jsonschema:"library name"`
	URL             string `json:"url" jsonschema:"http(s) URL, file:// path to a file or folder, or a link to a PDF, DOCX or PPTX document"`
	Version         string `json:"version,omitempty" jsonschema:"library version (default unversioned)"`
	ContentType     string `json:"content_type,omitempty" jsonschema:"type of content such as docs or api (default docs)"`
	MaxPages        *int   `json:"maxPages,omitempty" jsonschema:"maximum pages to crawl (default 50)"`
	MaxDepth        *int   `json:"maxDepth,omitempty" jsonschema:"maximum link depth from the start URL (default 2)"`
	Scope           string `json:"scope,omitempty" jsonschema:"crawl scope: subpages, hostname or domain (default subpages)"`
	FollowRedirects *bool  `json:"followRedirects,omitempty" jsonschema:"follow HTTP redirects (default true)"`
}

// Request converts the tool input into a scrape request with the tool
// defaults applied.
func (in ScrapeInput) Request() docsmcp.ScrapeRequest {
	req := docsmcp.ScrapeRequest{
		Project:         in.Project,
		Library:         in.Library,
		URL:             in.URL,
		Version:         in.Version,
		ContentType:     in.ContentType,
		MaxPages:        docsmcp.DefaultMaxPages,
		MaxDepth:        docsmcp.DefaultMaxDepth,
		Scope:           docsmcp.Scope(in.Scope),
		FollowRedirects: boolOr(in.FollowRedirects, true),
	}
	if in.MaxPages != nil {
		req.MaxPages = *in.MaxPages
	}
	if in.MaxDepth != nil {
		req.MaxDepth = *in.MaxDepth
	}
	return req
}

// SearchInput is the input schema for search_docs.
type SearchInput struct {
	Project     string `json:"project" jsonschema:"project name to search within"`
	Library     string `json:"library" jsonschema:"library name to search within"`
	Query       string `json:"query" jsonschema:"search query"`
	Version     string `json:"version,omitempty" jsonschema:"library version (searches all versions if not specified)"`
	ContentType string `json:"content_type,omitempty" jsonschema:"type of content such as docs or api (default docs)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 5)"`
}

// ListProjectsInput is the input schema for list_projects.
type ListProjectsInput struct{}

// CheckProjectInput is the input schema for check_project.
type CheckProjectInput struct {
	Project string `json:"project" jsonschema:"project name to check"`
}

// ListLibrariesInput is the input schema for list_libraries.
type ListLibrariesInput struct {
	Project string `json:"project,omitempty" jsonschema:"project to list (shows all projects if not specified)"`
}

// FindVersionInput is the input schema for find_version.
type FindVersionInput struct {
	Project       string `json:"project" jsonschema:"project name"`
	Library       string `json:"library" jsonschema:"library name"`
	ContentType   string `json:"content_type,omitempty" jsonschema:"type of content such as docs or api (default docs)"`
	TargetVersion string `json:"targetVersion,omitempty" jsonschema:"version to match: exact, prefix or wildcard such as 5.x (latest if not specified)"`
}

// RemoveInput is the input schema for remove_docs.
type RemoveInput struct {
	Project     string `json:"project" jsonschema:"project name"`
	Library     string `json:"library" jsonschema:"library name to remove"`
	Version     string `json:"version,omitempty" jsonschema:"version to remove (removes all versions if not specified)"`
	ContentType string `json:"content_type,omitempty" jsonschema:"type of content such as docs or api (default docs)"`
}

// FetchURLInput is the input schema for fetch_url.
type FetchURLInput struct {
	URL             string `json:"url" jsonschema:"URL to fetch"`
	Project         string `json:"project" jsonschema:"project name (for context)"`
	ContentType     string `json:"content_type,omitempty" jsonschema:"type of content such as docs or api (default docs)"`
	FollowRedirects *bool  `json:"followRedirects,omitempty" jsonschema:"follow HTTP redirects (default true)"`
}

// DetailedStatsInput is the input schema for detailed_stats.
type DetailedStatsInput struct {
	Project string `json:"project,omitempty" jsonschema:"project name to filter by"`
	Library string `json:"library,omitempty" jsonschema:"library name to filter by"`
	Version string `json:"version,omitempty" jsonschema:"version to filter by"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolScrapeDocs,
		Description: "Scrape and index documentation from a URL, file, or folder into a project. Supports web crawls, local files and folder trees, and PDF, DOCX and PPTX documents.",
	}, s.handleScrape)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolSearchDocs,
		Description: "Search documentation within a project's library.",
	}, s.handleSearch)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolListProjects,
		Description: "List all projects and their libraries with statistics.",
	}, s.handleListProjects)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolCheckProject,
		Description: "Check if a project exists and show its current libraries.",
	}, s.handleCheckProject)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolListLibraries,
		Description: "List all libraries across projects or within a specific project.",
	}, s.handleListLibraries)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolFindVersion,
		Description: "Find best matching version for a library within project.",
	}, s.handleFindVersion)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolRemoveDocs,
		Description: "Remove indexed documentation for a library/version from a project.",
	}, s.handleRemove)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolFetchURL,
		Description: "Fetch a URL and convert to Markdown (helper tool).",
	}, s.handleFetchURL)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolDetailedStats,
		Description: "Get detailed statistics with URL-level granularity and flexible filtering.",
	}, s.handleDetailedStats)
}

func (s *Server) handleScrape(ctx context.Context, _ *mcp.CallToolRequest, in ScrapeInput) (*mcp.CallToolResult, docsmcp.ScrapeResult, error) {
	return nil, s.service.Scrape(ctx, in.Request()), nil
}

func (s *Server) handleSearch(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.Search(ctx, retrieval.SearchRequest{
		Project:     in.Project,
		Library:     in.Library,
		Query:       in.Query,
		Version:     in.Version,
		ContentType: in.ContentType,
		Limit:       in.Limit,
	}))
}

func (s *Server) handleListProjects(ctx context.Context, _ *mcp.CallToolRequest, _ ListProjectsInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.ListProjects(ctx))
}

func (s *Server) handleCheckProject(ctx context.Context, _ *mcp.CallToolRequest, in CheckProjectInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.CheckProject(ctx, in.Project))
}

func (s *Server) handleListLibraries(ctx context.Context, _ *mcp.CallToolRequest, in ListLibrariesInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.ListLibraries(ctx, in.Project))
}

func (s *Server) handleFindVersion(ctx context.Context, _ *mcp.CallToolRequest, in FindVersionInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.FindVersion(ctx, in.Project, in.Library, in.ContentType, in.TargetVersion))
}

func (s *Server) handleRemove(ctx context.Context, _ *mcp.CallToolRequest, in RemoveInput) (*mcp.CallToolResult, any, error) {
	result := s.service.Remove(ctx, in.Project, in.Library, in.Version, in.ContentType)
	if result.Error != "" {
		return text("Error: " + result.Error)
	}
	return text(result.Message)
}

func (s *Server) handleFetchURL(ctx context.Context, _ *mcp.CallToolRequest, in FetchURLInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.FetchURL(ctx, in.URL, in.Project, in.ContentType, boolOr(in.FollowRedirects, true)))
}

func (s *Server) handleDetailedStats(ctx context.Context, _ *mcp.CallToolRequest, in DetailedStatsInput) (*mcp.CallToolResult, any, error) {
	return text(s.service.DetailedStats(ctx, in.Project, in.Library, in.Version))
}

func text(s string) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: s}},
	}, nil, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
