// Package fs exports artifact sets as static sites on the local filesystem.
package fs

import (
	"context"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/sitedraft"
)

// Asset filenames written next to the pages.
const (
	StylesFilename  = "styles.css"
	ScriptFilename  = "script.js"
	SitemapFilename = "sitemap.xml"
)

var (
	_ sitedraft.SiteWriter = (*SiteWriter)(nil)
	_ sitedraft.Subscriber = (*SiteWriter)(nil)
)

// SiteWriter writes an artifact set into a directory: one standalone
// document per page, the shared CSS and JS, and optionally a sitemap.
type SiteWriter struct {
	dir     string
	baseURL string
}

// Option configures a SiteWriter.
type Option func(*SiteWriter)

// WithBaseURL enables sitemap.xml with page URLs under baseURL.
func WithBaseURL(baseURL string) Option {
	return func(w *SiteWriter) {
		w.baseURL = baseURL
	}
}

// NewSiteWriter creates a SiteWriter that writes into dir. Pages from an
// earlier write are replaced; unrelated files in dir are kept.
func NewSiteWriter(dir string, opts ...Option) *SiteWriter {
	w := &SiteWriter{dir: filepath.Clean(dir)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dir returns the directory the site is written to.
func (w *SiteWriter) Dir() string {
	return w.dir
}

// WriteSite renders and writes every page of set. The target directory is
// not touched when rendering or staging fails.
func (w *SiteWriter) WriteSite(ctx context.Context, set *sitedraft.ArtifactSet) (err error) {
	if err := set.Validate(); err != nil {
		return err
	}

	stage := &stagingDir{dir: w.dir}
	if err := stage.Abort(); err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = stage.Abort()
		}
	}()

	var pages []string
	for _, doc := range sitedraft.RenderDocuments(set.Result()) {
		if err := ctx.Err(); err != nil {
			return err
		}
		name, err := PageFilename(doc.Filename)
		if err != nil {
			return err
		}
		if err := stage.Save(name, []byte(doc.HTML)); err != nil {
			return err
		}
		pages = append(pages, name)
	}

	if set.CSS != "" {
		if err := stage.Save(StylesFilename, []byte(set.CSS+"\n")); err != nil {
			return err
		}
	}
	if set.JS != "" {
		if err := stage.Save(ScriptFilename, []byte(set.JS+"\n")); err != nil {
			return err
		}
	}
	if w.baseURL != "" {
		sitemap, err := BuildSitemap(w.baseURL, pages, set.CreatedAt)
		if err != nil {
			return err
		}
		if err := stage.Save(SitemapFilename, []byte(sitemap)); err != nil {
			return err
		}
	}

	return stage.Commit()
}

// Notify writes the site of a submission. Submissions without HTML are skipped.
func (w *SiteWriter) Notify(ctx context.Context, s *sitedraft.Submission) error {
	if s.Result == nil || len(s.Result.HTMLArtifacts) == 0 {
		return nil
	}
	set := sitedraft.NewArtifactSet(s.Prompt, s.Result)
	set.ID = s.ID
	return w.WriteSite(ctx, set)
}

// PageFilename reduces an artifact filename to a safe base name ending in .html.
// Directory components are dropped.
func PageFilename(name string) (string, error) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), `\`, "/"))
	switch base {
	case "", ".", "..", "/":
		return "", sitedraft.Errorf(sitedraft.EINVALID, "invalid page filename %q", name)
	}
	if !strings.HasSuffix(strings.ToLower(base), ".html") {
		base += ".html"
	}
	return base, nil
}
