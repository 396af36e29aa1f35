// Package goquery reads and rewrites generated page markup with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor reads page titles from generated markup.
type TitleExtractor struct{}

// NewTitleExtractor creates a new TitleExtractor.
func NewTitleExtractor() *TitleExtractor {
	return &TitleExtractor{}
}

// Title returns the <title> text, else the first heading, else "".
// Generated pages are usually body fragments without a <title>.
func (e *TitleExtractor) Title(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, sel := range []string{"title", "h1", "h2"} {
		if text := collapseSpace(doc.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
