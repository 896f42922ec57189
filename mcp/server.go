// Package mcp exposes the retrieval operations as Model Context Protocol
// tools over stdio or streamable HTTP.
package mcp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fwojciec/docsmcp"
	"github.com/fwojciec/docsmcp/retrieval"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// DefaultHTTPAddr is the listen address used by the HTTP transport when
// none is given.
const DefaultHTTPAddr = "127.0.0.1:8009"

// Server serves the documentation tools.
type Server struct {
	service *retrieval.Service
	server  *mcp.Server
}

// NewServer registers every tool against service.
func NewServer(service *retrieval.Service) *Server {
	s := &Server{
		service: service,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "docs-mcp",
			Version: docsmcp.Version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Connect serves a single session over transport. It is used by callers
// that manage their own transport, such as tests.
func (s *Server) Connect(ctx context.Context, transport mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, transport, nil)
}

// Run serves over stdio until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves streamable HTTP on addr until ctx is done.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultHTTPAddr
	}
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
