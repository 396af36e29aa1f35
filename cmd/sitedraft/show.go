package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/pipeline"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	set, err := findSet(deps, c.ID)
	if err != nil {
		return err
	}

	switch {
	case c.Text:
		err = showText(deps, set)
	case c.Code:
		err = showCode(deps, set)
	default:
		fmt.Fprintf(deps.Stdout, "%s  %s\n", set.ID, set.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Fprintf(deps.Stdout, "Prompt: %s\n", set.Prompt)
		fmt.Fprintf(deps.Stdout, "Content: %s (hash %s)\n\n", pipeline.Summarize(set.Result()), set.ContentHash)
		printPages(deps, set.HTMLArtifacts)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
	}
	return err
}

// showText prints every page as markdown, rendered for the terminal when a
// renderer is wired.
func showText(deps *Dependencies, set *sitedraft.ArtifactSet) error {
	var b strings.Builder
	for _, a := range set.HTMLArtifacts {
		text, err := deps.Converter.Convert(a.Code)
		if err != nil {
			return fmt.Errorf("converting %s: %w", a.Filename, err)
		}
		fmt.Fprintf(&b, "# %s\n\n%s\n\n", a.Filename, text)
	}

	out := b.String()
	if deps.Markdown != nil {
		rendered, err := deps.Markdown.Render(out)
		if err != nil {
			return err
		}
		out = rendered
	}
	fmt.Fprint(deps.Stdout, out)
	return nil
}

func showCode(deps *Dependencies, set *sitedraft.ArtifactSet) error {
	type source struct{ name, code, lang string }
	var sources []source
	for _, a := range set.HTMLArtifacts {
		sources = append(sources, source{a.Filename, a.Code, "html"})
	}
	if set.CSS != "" {
		sources = append(sources, source{"styles.css", set.CSS, "css"})
	}
	if set.JS != "" {
		sources = append(sources, source{"script.js", set.JS, "javascript"})
	}

	for _, s := range sources {
		out, err := deps.Highlighter.Highlight(s.code, s.lang)
		if err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "── %s ──\n%s\n\n", s.name, strings.TrimRight(out, "\n"))
	}
	return nil
}

// findSet loads a set and reports a missing one with a hint.
func findSet(deps *Dependencies, id string) (*sitedraft.ArtifactSet, error) {
	set, err := deps.Artifacts.FindArtifactSetByID(deps.Ctx, id)
	if err != nil {
		if sitedraft.ErrorCode(err) == sitedraft.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: artifact set %q not found. Use 'sitedraft list' to see saved sets.\n", id)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", sitedraft.ErrorMessage(err))
		}
		return nil, err
	}
	return set, nil
}
