package mock

import "github.com/fwojciec/sitedraft"

var (
	_ sitedraft.Converter      = (*Converter)(nil)
	_ sitedraft.TitleExtractor = (*TitleExtractor)(nil)
	_ sitedraft.LinkRewriter   = (*LinkRewriter)(nil)
)

// Converter is a mock implementation of sitedraft.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// TitleExtractor is a mock implementation of sitedraft.TitleExtractor.
type TitleExtractor struct {
	TitleFn func(html string) string
}

func (e *TitleExtractor) Title(html string) string {
	return e.TitleFn(html)
}

// LinkRewriter is a mock implementation of sitedraft.LinkRewriter.
type LinkRewriter struct {
	RewriteLinksFn func(html, prefix string) (string, error)
}

func (r *LinkRewriter) RewriteLinks(html, prefix string) (string, error) {
	return r.RewriteLinksFn(html, prefix)
}
