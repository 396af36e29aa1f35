package sitedraft

// Highlighter renders source code with syntax highlighting.
type Highlighter interface {
	// Highlight returns code marked up for display. An empty or unknown
	// language falls back to content detection.
	Highlight(code, lang string) (string, error)
}
