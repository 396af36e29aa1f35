package main

import (
	"fmt"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/pipeline"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	sets, err := deps.Artifacts.FindArtifactSets(deps.Ctx, sitedraft.ArtifactSetFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
		return err
	}

	if len(sets) == 0 {
		fmt.Fprintln(deps.Stdout, "No artifact sets found. Use 'sitedraft generate' to create one.")
		return nil
	}

	for _, s := range sets {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-28s  %s\n",
			s.ID,
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			pipeline.Summarize(s.Result()),
			pipeline.Truncate(s.Prompt, 60),
		)
	}
	return nil
}
