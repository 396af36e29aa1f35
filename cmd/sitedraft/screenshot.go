package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/fs"
)

// Run executes the screenshot command.
func (c *ScreenshotCmd) Run(deps *Dependencies) error {
	set, err := findSet(deps, c.ID)
	if err != nil {
		return err
	}

	docs := sitedraft.RenderDocuments(set.Result())
	if c.Page != "" {
		docs = filterDocuments(docs, c.Page)
		if len(docs) == 0 {
			fmt.Fprintf(deps.Stderr, "error: page %q not found in set %s\n", c.Page, set.ID)
			return sitedraft.Errorf(sitedraft.ENOTFOUND, "page %q not found", c.Page)
		}
	}

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	for _, doc := range docs {
		name, err := fs.PageFilename(doc.Filename)
		if err != nil {
			return err
		}
		png, err := deps.Screenshotter.Screenshot(deps.Ctx, doc.HTML)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", doc.Filename, sitedraft.ErrorMessage(err))
			return err
		}

		path := filepath.Join(c.Dir, strings.TrimSuffix(name, filepath.Ext(name))+".png")
		if err := os.WriteFile(path, png, 0644); err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}

func filterDocuments(docs []sitedraft.RenderableDocument, filename string) []sitedraft.RenderableDocument {
	var out []sitedraft.RenderableDocument
	for _, d := range docs {
		if d.Filename == filename {
			out = append(out, d)
		}
	}
	return out
}
