package main

import (
	"fmt"

	"github.com/fwojciec/docsmcp/retrieval"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.Search(deps.Ctx, retrieval.SearchRequest{
		Project:     c.Project,
		Library:     c.Library,
		Query:       c.Query,
		Version:     c.Version,
		ContentType: c.ContentType,
		Limit:       c.Limit,
	}))
	return nil
}

// Run executes the projects command.
func (c *ProjectsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.ListProjects(deps.Ctx))
	return nil
}

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.CheckProject(deps.Ctx, c.Project))
	return nil
}

// Run executes the libraries command.
func (c *LibrariesCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.ListLibraries(deps.Ctx, c.Project))
	return nil
}

// Run executes the find-version command.
func (c *FindVersionCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.FindVersion(deps.Ctx, c.Project, c.Library, c.ContentType, c.Target))
	return nil
}

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.FetchURL(deps.Ctx, c.URL, c.Project, c.ContentType, c.FollowRedirects))
	return nil
}

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, deps.Service.DetailedStats(deps.Ctx, c.Project, c.Library, c.Version))
	return nil
}
