package fs

import (
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
)

// sitemapNamespace is the sitemaps.org schema for <urlset>.
const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// BuildSitemap returns a sitemap.xml listing pages under baseURL.
// Duplicate pages are listed once. lastMod is omitted when zero.
func BuildSitemap(baseURL string, pages []string, lastMod time.Time) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	base := strings.TrimRight(baseURL, "/") + "/"
	seen := make(map[string]bool)
	for _, page := range pages {
		if seen[page] {
			continue
		}
		seen[page] = true

		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(base + url.PathEscape(page))
		if !lastMod.IsZero() {
			u.CreateElement("lastmod").SetText(lastMod.UTC().Format("2006-01-02"))
		}
	}

	doc.Indent(2)
	return doc.WriteToString()
}
