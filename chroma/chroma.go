// Package chroma implements sitedraft.Highlighter with the chroma
// syntax highlighter.
package chroma

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/sitedraft"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// Ensure Highlighter implements sitedraft.Highlighter at compile time.
var _ sitedraft.Highlighter = (*Highlighter)(nil)

// Highlighter renders code with chroma. By default it produces an inline-styled
// HTML <pre> block; WithTerminal switches to ANSI output.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// Option configures a Highlighter.
type Option func(*Highlighter)

// WithStyle selects a chroma style by name. Unknown names use the fallback style.
func WithStyle(name string) Option {
	return func(h *Highlighter) {
		h.style = styles.Get(name)
	}
}

// WithTerminal renders with 256-color ANSI escapes instead of HTML.
func WithTerminal() Option {
	return func(h *Highlighter) {
		h.formatter = formatters.Get("terminal256")
	}
}

// NewHighlighter creates a new Highlighter.
func NewHighlighter(opts ...Option) *Highlighter {
	h := &Highlighter{
		style:     styles.Get(DefaultStyle),
		formatter: html.New(html.WithClasses(false), html.TabWidth(2)),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.style == nil {
		h.style = styles.Fallback
	}
	if h.formatter == nil {
		h.formatter = formatters.Fallback
	}
	return h
}

// Highlight highlights code as lang. When lang is empty or unknown the lexer
// is picked by analysing the code, then falls back to plain text.
func (h *Highlighter) Highlight(code, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenise %s: %w", lang, err)
	}

	var buf strings.Builder
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("format %s: %w", lang, err)
	}
	return buf.String(), nil
}
