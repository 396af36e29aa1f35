package goquery_test

import (
	"testing"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ sitedraft.LinkRewriter = (*goquery.LinkRewriter)(nil)

func TestLinkRewriter_RewriteLinks(t *testing.T) {
	t.Parallel()

	const prefix = "/preview/set-1/"

	t.Run("prefixes relative page links", func(t *testing.T) {
		t.Parallel()

		html := `<nav><a href="index.html">Home</a><a href="./contact.html#form">Contact</a></nav>`

		out, err := goquery.NewLinkRewriter().RewriteLinks(html, prefix)

		require.NoError(t, err)
		assert.Contains(t, out, `href="/preview/set-1/index.html"`)
		assert.Contains(t, out, `href="/preview/set-1/contact.html#form"`)
	})

	t.Run("prefixes form actions", func(t *testing.T) {
		t.Parallel()

		out, err := goquery.NewLinkRewriter().RewriteLinks(`<form action="thanks.html"></form>`, prefix)

		require.NoError(t, err)
		assert.Contains(t, out, `action="/preview/set-1/thanks.html"`)
	})

	t.Run("leaves other links alone", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://example.com/a.html">x</a>` +
			`<a href="//cdn.example.com/b.html">x</a>` +
			`<a href="/root.html">x</a>` +
			`<a href="#top">x</a>` +
			`<a href="mailto:hi@example.com">x</a>` +
			`<a href="styles.css">x</a>` +
			`<a href="about.html">x</a>`

		out, err := goquery.NewLinkRewriter().RewriteLinks(html, prefix)

		require.NoError(t, err)
		assert.Contains(t, out, `href="https://example.com/a.html"`)
		assert.Contains(t, out, `href="//cdn.example.com/b.html"`)
		assert.Contains(t, out, `href="/root.html"`)
		assert.Contains(t, out, `href="#top"`)
		assert.Contains(t, out, `href="mailto:hi@example.com"`)
		assert.Contains(t, out, `href="styles.css"`)
		assert.Contains(t, out, `href="/preview/set-1/about.html"`)
	})

	t.Run("returns input unchanged without page links", func(t *testing.T) {
		t.Parallel()

		html := "<!DOCTYPE html>\n<html><body><a href=\"#top\">Top</a></body></html>\n"

		out, err := goquery.NewLinkRewriter().RewriteLinks(html, prefix)

		require.NoError(t, err)
		assert.Equal(t, html, out)
	})

	t.Run("keeps document scripts intact", func(t *testing.T) {
		t.Parallel()

		doc := sitedraft.RenderDocument(
			sitedraft.HTMLArtifact{Filename: "index.html", Code: `<a href="about.html">About</a>`},
			"a { color: red; }",
			"if (1 < 2) { console.log('ok'); }",
		)

		out, err := goquery.NewLinkRewriter().RewriteLinks(doc.HTML, prefix)

		require.NoError(t, err)
		assert.Contains(t, out, `href="/preview/set-1/about.html"`)
		assert.Contains(t, out, "if (1 < 2) { console.log('ok'); }")
		assert.Contains(t, out, "<!DOCTYPE html>")
	})
}
