package main

import (
	"fmt"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/pipeline"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	sub, err := deps.Submitter.Submit(deps.Ctx, c.Prompt)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
		return err
	}

	summary := pipeline.Summarize(sub.Result)
	if deps.Tokens != nil {
		if n, err := deps.Tokens.CountTokens(deps.Ctx, sub.Response); err == nil {
			summary += ", " + pipeline.FormatTokens(n)
		} else {
			deps.Logger.Warn("count tokens", "err", err)
		}
	}
	fmt.Fprintf(deps.Stdout, "Generated %s (%s)\n", sub.ID, summary)

	if len(sub.Result.HTMLArtifacts) == 0 {
		fmt.Fprintln(deps.Stderr, "warning: the response contained no HTML pages; nothing was saved")
		return nil
	}
	printPages(deps, sub.Result.HTMLArtifacts)

	if deps.Artifacts != nil {
		if _, err := deps.Artifacts.FindArtifactSetByID(deps.Ctx, sub.ID); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: pages were not saved; %s will not be found later\n", sub.ID)
		}
	}

	if c.Out != "" {
		set := sitedraft.NewArtifactSet(sub.Prompt, sub.Result)
		set.ID = sub.ID
		if err := deps.SiteWriter.WriteSite(deps.Ctx, set); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Wrote site to %s\n", c.Out)
	}
	return nil
}

// printPages lists artifacts with their titles when a title extractor is wired.
func printPages(deps *Dependencies, artifacts []sitedraft.HTMLArtifact) {
	for _, a := range artifacts {
		line := "  " + a.Filename
		if deps.Titles != nil {
			if title := deps.Titles.Title(a.Code); title != "" {
				line += "  " + title
			}
		}
		fmt.Fprintln(deps.Stdout, line)
	}
}
