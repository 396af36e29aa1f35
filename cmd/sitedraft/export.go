package main

import (
	"fmt"

	"github.com/fwojciec/sitedraft"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	set, err := findSet(deps, c.ID)
	if err != nil {
		return err
	}

	if err := deps.SiteWriter.WriteSite(deps.Ctx, set); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d pages to %s\n", len(set.HTMLArtifacts), c.Dir)
	return nil
}
