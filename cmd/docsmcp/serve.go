package main

import (
	"github.com/fwojciec/docsmcp/mcp"
)

// Run executes the serve command. Stdout carries the protocol on stdio,
// so diagnostics go to the logger.
func (c *ServeCmd) Run(deps *Dependencies) error {
	server := mcp.NewServer(deps.Service)
	if c.HTTP != "" {
		deps.Logger.Info("serving MCP over HTTP", "addr", c.HTTP)
		return server.RunHTTP(deps.Ctx, c.HTTP)
	}
	return server.Run(deps.Ctx)
}
