package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.LinkRewriter = (*LinkRewriter)(nil)

// LinkRewriter repoints links between generated pages, so that
// <a href="about.html"> inside a preview opens the sibling preview.
type LinkRewriter struct{}

// NewLinkRewriter creates a new LinkRewriter.
func NewLinkRewriter() *LinkRewriter {
	return &LinkRewriter{}
}

// RewriteLinks prefixes relative .html links in anchors and form actions.
// Markup without such links is returned unchanged.
func (r *LinkRewriter) RewriteLinks(html, prefix string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	var changed bool
	rewrite := func(attr string) func(int, *goquery.Selection) {
		return func(_ int, s *goquery.Selection) {
			value, _ := s.Attr(attr)
			if target, ok := pageLink(value); ok {
				s.SetAttr(attr, prefix+target)
				changed = true
			}
		}
	}
	doc.Find("a[href]").Each(rewrite("href"))
	doc.Find("form[action]").Each(rewrite("action"))

	if !changed {
		return html, nil
	}
	return doc.Html()
}

// pageLink reports whether ref points at a sibling page and returns it
// without a leading "./".
func pageLink(ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "/") || strings.HasPrefix(ref, "#") {
		return "", false
	}

	u, err := url.Parse(ref)
	if err != nil || u.IsAbs() || u.Host != "" {
		return "", false
	}
	if !strings.HasSuffix(strings.ToLower(u.Path), ".html") {
		return "", false
	}
	return strings.TrimPrefix(ref, "./"), true
}
