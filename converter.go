package sitedraft

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms page markup into a Markdown text rendition,
	// used to read generated pages in a terminal.
	Convert(html string) (string, error)
}

// TitleExtractor reads a human-readable title from page markup.
type TitleExtractor interface {
	// Title returns the page title, or "" when the page has none.
	Title(html string) string
}

// LinkRewriter points links between generated pages at another location.
type LinkRewriter interface {
	// RewriteLinks prefixes every relative link to an .html page with prefix.
	// Absolute URLs and fragment-only links are left alone.
	RewriteLinks(html, prefix string) (string, error)
}
