package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docsmcp/retrieval"
)

// Embedder selection values.
const (
	embedderAuto   = "auto"
	embedderGemini = "gemini"
	embedderHash   = "hash"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Service *retrieval.Service
}

// Config holds the flags shared by every command.
type Config struct {
	DB           string  `name:"db" env:"DOCSMCP_DB" help:"SQLite database path (default ~/.docsmcp/docsmcp.db)"`
	Collection   string  `env:"DOCSMCP_COLLECTION" default:"docs_mcp" help:"Collection that scopes every stored chunk"`
	GeminiAPIKey string  `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key; enables the Gemini embedder"`
	EmbedModel   string  `env:"DOCSMCP_EMBED_MODEL" default:"gemini-embedding-001" help:"Gemini embedding model"`
	Embedder     string  `enum:"auto,gemini,hash" default:"auto" help:"Embedder: auto uses Gemini when a key is set (auto, gemini, hash)"`
	Dimensions   int     `default:"0" help:"Vector size; 0 keeps the embedder's default"`
	Concurrency  int     `default:"4" help:"Pages fetched in parallel during a crawl"`
	RateLimit    float64 `default:"2" help:"Requests per second per host during a crawl; 0 disables"`
	ChunkSize    int     `default:"1200" help:"Chunk size in characters"`
	ChunkOverlap int     `default:"150" help:"Characters shared by consecutive chunks"`
	Verbose      bool    `short:"v" help:"Enable debug logging"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config `embed:""`

	Serve       ServeCmd       `cmd:"" help:"Serve the documentation tools over MCP (stdio by default)"`
	Scrape      ScrapeCmd      `cmd:"" help:"Index a site, file, folder or document into a project"`
	Search      SearchCmd      `cmd:"" help:"Search a library's documentation"`
	Projects    ProjectsCmd    `cmd:"" help:"List projects with their libraries and versions"`
	Check       CheckCmd       `cmd:"" help:"Check whether a project exists"`
	Libraries   LibrariesCmd   `cmd:"" help:"List libraries, optionally within one project"`
	FindVersion FindVersionCmd `cmd:"" name:"find-version" help:"Resolve a version of a library"`
	Remove      RemoveCmd      `cmd:"" help:"Remove a library's indexed documentation"`
	Fetch       FetchCmd       `cmd:"" help:"Fetch a URL and print it as Markdown"`
	Stats       StatsCmd       `cmd:"" help:"Show chunk counts per URL"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	HTTP string `name:"http" placeholder:"ADDR" help:"Serve streamable HTTP on ADDR (e.g. 127.0.0.1:8009) instead of stdio"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	Project         string `arg:"" help:"Project name"`
	Library         string `arg:"" help:"Library name"`
	URL             string `arg:"" help:"http(s) URL, file:// path, or document link"`
	Version         string `help:"Library version"`
	ContentType     string `default:"docs" help:"Content type such as docs or api"`
	MaxPages        int    `default:"50" help:"Maximum pages to crawl"`
	MaxDepth        int    `default:"2" help:"Maximum link depth from the start URL"`
	Scope           string `enum:"subpages,hostname,domain" default:"subpages" help:"Crawl scope (subpages, hostname, domain)"`
	FollowRedirects bool   `default:"true" negatable:"" help:"Follow HTTP redirects"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Project     string `arg:"" help:"Project name"`
	Library     string `arg:"" help:"Library name"`
	Query       string `arg:"" help:"Search query"`
	Version     string `help:"Library version (all versions if empty)"`
	ContentType string `default:"docs" help:"Content type such as docs or api"`
	Limit       int    `short:"n" default:"5" help:"Maximum number of results"`
}

// ProjectsCmd is the "projects" subcommand.
type ProjectsCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Project string `arg:"" help:"Project name"`
}

// LibrariesCmd is the "libraries" subcommand.
type LibrariesCmd struct {
	Project string `arg:"" optional:"" help:"Project name"`
}

// FindVersionCmd is the "find-version" subcommand.
type FindVersionCmd struct {
	Project     string `arg:"" help:"Project name"`
	Library     string `arg:"" help:"Library name"`
	Target      string `arg:"" optional:"" help:"Version to match: exact, prefix or wildcard such as 5.x"`
	ContentType string `default:"docs" help:"Content type such as docs or api"`
}

// RemoveCmd is the "remove" subcommand.
type RemoveCmd struct {
	Project     string `arg:"" help:"Project name"`
	Library     string `arg:"" help:"Library name"`
	Version     string `help:"Version to remove (all versions if empty)"`
	ContentType string `default:"docs" help:"Content type such as docs or api"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL             string `arg:"" help:"URL to fetch"`
	Project         string `help:"Project name, for context"`
	ContentType     string `default:"docs" help:"Content type such as docs or api"`
	FollowRedirects bool   `default:"true" negatable:"" help:"Follow HTTP redirects"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Project string `help:"Filter by project"`
	Library string `help:"Filter by library"`
	Version string `help:"Filter by version"`
}
