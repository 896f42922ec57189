package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/acquire"
	"github.com/fwojciec/docsmcp/crawl"
	"github.com/fwojciec/docsmcp/etree"
	"github.com/fwojciec/docsmcp/fs"
	"github.com/fwojciec/docsmcp/gemini"
	"github.com/fwojciec/docsmcp/goquery"
	"github.com/fwojciec/docsmcp/htmltomarkdown"
	dochttp "github.com/fwojciec/docsmcp/http"
	"github.com/fwojciec/docsmcp/normalize"
	"github.com/fwojciec/docsmcp/pdf"
	"github.com/fwojciec/docsmcp/readability"
	"github.com/fwojciec/docsmcp/retrieval"
	docslog "github.com/fwojciec/docsmcp/slog"
	"github.com/fwojciec/docsmcp/sqlite"
	"github.com/fwojciec/docsmcp/trafilatura"
	"github.com/fwojciec/docsmcp/xxhash"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path used when neither --db nor DOCSMCP_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Service is the wired retrieval service, kept for end-to-end tests.
	Service *retrieval.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsmcp"),
		kong.Description("Documentation harvesting and retrieval served over MCP."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsmcp --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dbPath := cli.DB
	if dbPath == "" {
		dbPath = m.DBPath
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCSMCP_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	embedder, err := newEmbedder(ctx, &cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
		return fmt.Errorf("failed to connect to Gemini API: %w", err)
	}

	m.Service = wire(m.DB, embedder, &cli.Config, logger)
	deps.Service = m.Service
	deps.Logger = logger

	return kongCtx.Run(deps)
}

// newEmbedder selects the Gemini embedder when an API key is available
// and the local hashing embedder otherwise.
func newEmbedder(ctx context.Context, cfg *Config) (docsmcp.Embedder, error) {
	switch cfg.Embedder {
	case embedderHash:
		return xxhash.NewEmbedder(cfg.Dimensions), nil
	case embedderAuto:
		if cfg.GeminiAPIKey == "" {
			return xxhash.NewEmbedder(cfg.Dimensions), nil
		}
	}
	if cfg.GeminiAPIKey == "" {
		return nil, docsmcp.Errorf(docsmcp.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return gemini.NewEmbedder(client, cfg.EmbedModel, cfg.Dimensions), nil
}

// wire assembles the retrieval service. Every network and store boundary
// is wrapped in a logging decorator.
func wire(db *sqlite.DB, embedder docsmcp.Embedder, cfg *Config, logger *slog.Logger) *retrieval.Service {
	fetcher := docslog.NewLoggingFetcher(dochttp.NewFetcher(), logger)
	chunks := docslog.NewLoggingChunkService(
		sqlite.NewChunkService(db, cfg.Collection, docslog.NewLoggingEmbedder(embedder, logger)),
		logger,
	)

	normalizer := normalize.New(
		[]docsmcp.Extractor{readability.NewExtractor(), trafilatura.NewExtractor()},
		goquery.NewContentSelector(),
		htmltomarkdown.NewConverter(),
		goquery.NewMarkdownRenderer(),
	)
	chunking := docsmcp.Chunking{Size: cfg.ChunkSize, Overlap: cfg.ChunkOverlap}

	var limiter docsmcp.DomainLimiter
	if cfg.RateLimit > 0 {
		limiter = crawl.NewDomainLimiter(cfg.RateLimit)
	}

	crawler := &crawl.Crawler{
		Fetcher:     fetcher,
		Normalizer:  normalizer,
		Links:       goquery.NewLinkExtractor(),
		Chunks:      chunks,
		RateLimiter: limiter,
		Chunking:    chunking,
		Concurrency: cfg.Concurrency,
		Logger:      logger,
	}

	return &retrieval.Service{
		Acquirer: &acquire.Acquirer{
			Fetcher: fetcher,
			Files:   fs.NewFileSource(),
			Crawler: crawler,
			Chunks:  chunks,
			Converters: map[string]docsmcp.DocumentConverter{
				docsmcp.ExtPDF:  pdf.NewConverter(),
				docsmcp.ExtDOCX: etree.NewDOCXConverter(),
				docsmcp.ExtPPTX: etree.NewPPTXConverter(),
			},
			Chunking: chunking,
			Logger:   logger,
		},
		Chunks:     chunks,
		Fetcher:    fetcher,
		Normalizer: normalizer,
		Logger:     logger,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docsmcp.db"
	}
	dir := filepath.Join(home, ".docsmcp")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docsmcp.db")
}
