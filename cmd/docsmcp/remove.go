package main

import (
	"fmt"

	"github.com/fwojciec/docsmcp"
)

// Run executes the remove command.
func (c *RemoveCmd) Run(deps *Dependencies) error {
	result := deps.Service.Remove(deps.Ctx, c.Project, c.Library, c.Version, c.ContentType)
	if result.Error != "" {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return docsmcp.Errorf(docsmcp.EINTERNAL, "remove failed")
	}

	fmt.Fprintln(deps.Stdout, result.Message)
	return nil
}
