package main

import (
	"fmt"

	"github.com/fwojciec/docsmcp"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	result := deps.Service.Scrape(deps.Ctx, docsmcp.ScrapeRequest{
		Project:         c.Project,
		Library:         c.Library,
		URL:             c.URL,
		Version:         c.Version,
		ContentType:     c.ContentType,
		MaxPages:        c.MaxPages,
		MaxDepth:        c.MaxDepth,
		Scope:           docsmcp.Scope(c.Scope),
		FollowRedirects: c.FollowRedirects,
	})
	if result.Error != "" {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		if result.PagesScraped > 0 {
			fmt.Fprintf(deps.Stderr, "indexed %d chunks from %d pages before failing\n", result.ChunksIndexed, result.PagesScraped)
		}
		return docsmcp.Errorf(docsmcp.EINTERNAL, "scrape failed")
	}

	fmt.Fprintln(deps.Stdout, result.Message)
	return nil
}
