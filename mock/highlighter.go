package mock

import "github.com/fwojciec/sitedraft"

var _ sitedraft.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of sitedraft.Highlighter.
type Highlighter struct {
	HighlightFn func(code, lang string) (string, error)
}

func (h *Highlighter) Highlight(code, lang string) (string, error) {
	return h.HighlightFn(code, lang)
}
