package main

import (
	"fmt"

	"github.com/fwojciec/sitedraft"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return sitedraft.Errorf(sitedraft.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Artifacts.DeleteArtifactSet(deps.Ctx, c.ID); err != nil {
		if sitedraft.ErrorCode(err) == sitedraft.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: artifact set %q not found. Use 'sitedraft list' to see saved sets.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted artifact set %s\n", c.ID)
	return nil
}
