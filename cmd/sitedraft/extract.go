package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/pipeline"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	raw, err := c.read(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var id string
	var result *sitedraft.ExtractionResult
	if c.Save {
		sub := deps.Publisher.Publish(deps.Ctx, c.prompt(), raw)
		id, result = sub.ID, sub.Result
		if len(result.HTMLArtifacts) > 0 {
			if _, err := deps.Artifacts.FindArtifactSetByID(deps.Ctx, id); err != nil {
				fmt.Fprintln(deps.Stderr, "error: pages were not saved; run with --verbose for details")
				return sitedraft.Errorf(sitedraft.EINTERNAL, "artifact set %s was not saved", id)
			}
		}
	} else {
		result = sitedraft.Extract(sitedraft.CleanResponse(raw))
	}

	switch {
	case c.JSON:
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
	case c.Page != "":
		a, ok := result.Artifact(c.Page)
		if !ok {
			fmt.Fprintf(deps.Stderr, "error: page %q not found; pages: %v\n", c.Page, result.Filenames())
			return sitedraft.Errorf(sitedraft.ENOTFOUND, "page %q not found", c.Page)
		}
		fmt.Fprint(deps.Stdout, sitedraft.RenderDocument(a, result.CSS, result.JS).HTML)
	default:
		fmt.Fprintf(deps.Stdout, "Extracted %s\n", pipeline.Summarize(result))
		for _, a := range result.HTMLArtifacts {
			fmt.Fprintf(deps.Stdout, "  %s  %s\n", a.Filename, pipeline.FormatBytes(len(a.Code)))
		}
	}

	if c.Save {
		if len(result.HTMLArtifacts) == 0 {
			fmt.Fprintln(deps.Stderr, "warning: no HTML pages found; only the response was saved")
		} else {
			fmt.Fprintf(deps.Stderr, "Saved as %s\n", id)
		}
	}

	if c.Out != "" {
		set := sitedraft.NewArtifactSet(c.prompt(), result)
		set.ID = id
		if err := deps.SiteWriter.WriteSite(deps.Ctx, set); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote site to %s\n", c.Out)
	}
	return nil
}

func (c *ExtractCmd) read(stdin io.Reader) (string, error) {
	if c.File == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(c.File)
	return string(b), err
}

func (c *ExtractCmd) prompt() string {
	if c.Prompt != "" {
		return c.Prompt
	}
	if c.File == "-" {
		return "extract: stdin"
	}
	return "extract: " + filepath.Base(c.File)
}
