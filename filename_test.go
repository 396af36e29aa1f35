package sitedraft_test

import (
	"testing"

	"github.com/fwojciec/sitedraft"
	"github.com/stretchr/testify/assert"
)

func TestFilenameHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{name: "html comment", text: "<!-- filename: about.html -->", want: "about.html", wantOK: true},
		{name: "html comment with padding", text: "<!--   filename:   faq.html   -->", want: "faq.html", wantOK: true},
		{name: "line comment", text: "// filename: shop.html", want: "shop.html", wantOK: true},
		{name: "line comment stops at newline", text: "// filename: shop.html\nHere is the page:", want: "shop.html", wantOK: true},
		{name: "block comment", text: "/* filename: blog.html */", want: "blog.html", wantOK: true},
		{name: "heading", text: "### landing.html", want: "landing.html", wantOK: true},
		{name: "second level heading", text: "## pricing-plans.html\n", want: "pricing-plans.html", wantOK: true},
		{name: "case insensitive marker", text: "<!-- FILENAME: Team.html -->", want: "Team.html", wantOK: true},
		{name: "last marker wins", text: "// filename: one.html\nthen\n<!-- filename: two.html -->", want: "two.html", wantOK: true},
		{name: "heading without extension", text: "## About Us", wantOK: false},
		{name: "plain prose", text: "Here is your website.", wantOK: false},
		{name: "empty", text: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := sitedraft.FilenameHint(tt.text)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectPageType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		body      string
		preceding string
		want      string
		wantOK    bool
	}{
		{name: "home keyword", body: "<h1>Welcome</h1>", want: "index.html", wantOK: true},
		{name: "hero section", body: "<section class=\"x\">hero</section>", want: "index.html", wantOK: true},
		{name: "about keyword", body: "<section>Our team</section>", want: "about.html", wantOK: true},
		{name: "services keyword", body: "<h2>What we offer</h2>", want: "services.html", wantOK: true},
		{name: "contact keyword", body: "<form>Get in touch</form>", want: "contact.html", wantOK: true},
		{name: "portfolio keyword", body: "<h2>Case study</h2>", want: "portfolio.html", wantOK: true},
		{name: "keyword in preceding text", body: "<div></div>", preceding: "Now the about us page:", want: "about.html", wantOK: true},
		{name: "earlier page type wins", body: "<h1>Welcome</h1><a>Contact us</a>", want: "index.html", wantOK: true},
		{name: "whole words only", body: "<p>heroes</p>", wantOK: false},
		{name: "no keywords", body: "<p>Lorem ipsum</p>", preceding: "Sure!", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := sitedraft.DetectPageType(tt.body, tt.preceding)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFallbackFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "index.html", sitedraft.FallbackFilename(0))
	assert.Equal(t, "about.html", sitedraft.FallbackFilename(1))
	assert.Equal(t, "services.html", sitedraft.FallbackFilename(2))
	assert.Equal(t, "contact.html", sitedraft.FallbackFilename(3))
	assert.Equal(t, "portfolio.html", sitedraft.FallbackFilename(4))
	assert.Equal(t, "page-6.html", sitedraft.FallbackFilename(5))
	assert.Equal(t, "page-7.html", sitedraft.FallbackFilename(6))
}

func TestResolveFilename(t *testing.T) {
	t.Parallel()

	t.Run("hint overrides page type", func(t *testing.T) {
		t.Parallel()

		got := sitedraft.ResolveFilename("<h1>Welcome</h1>", "<!-- filename: shop.html -->\n", 0)

		assert.Equal(t, "shop.html", got)
	})

	t.Run("page type overrides position", func(t *testing.T) {
		t.Parallel()

		got := sitedraft.ResolveFilename("<form>Get in touch</form>", "", 0)

		assert.Equal(t, "contact.html", got)
	})

	t.Run("falls back to position", func(t *testing.T) {
		t.Parallel()

		got := sitedraft.ResolveFilename("<div>Block</div>", "", 2)

		assert.Equal(t, "services.html", got)
	})
}
