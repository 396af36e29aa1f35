// Package htmltomarkdown renders generated pages as Markdown so they can be
// read in a terminal.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.Converter = (*Converter)(nil)

// Converter turns page markup into CommonMark. Tables are kept as pipe
// tables since pricing and comparison grids are common in generated sites.
type Converter struct {
	md *converter.Converter
}

func NewConverter() *Converter {
	return &Converter{
		md: converter.NewConverter(converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		)),
	}
}

// Convert returns the Markdown text of a page or page fragment, trimmed.
// Blank markup is EINVALID.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", sitedraft.Errorf(sitedraft.EINVALID, "page has no markup")
	}
	text, err := c.md.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("convert page to markdown: %w", err)
	}
	return strings.TrimSpace(text), nil
}
