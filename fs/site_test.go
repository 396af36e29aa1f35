package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *sitedraft.ArtifactSet {
	return &sitedraft.ArtifactSet{
		ID:     "set-1",
		Prompt: "bakery",
		HTMLArtifacts: []sitedraft.HTMLArtifact{
			{Filename: "index.html", Code: "<h1>Welcome</h1>"},
			{Filename: "about.html", Code: "<h1>Our team</h1>"},
		},
		CSS:       "h1 { color: teal; }",
		JS:        "console.log('hi');",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestSiteWriter_WriteSite(t *testing.T) {
	t.Parallel()

	t.Run("writes pages and assets", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		w := fs.NewSiteWriter(dir)

		err := w.WriteSite(context.Background(), testSet())
		require.NoError(t, err)

		index, err := os.ReadFile(filepath.Join(dir, "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(index), "<!DOCTYPE html>")
		assert.Contains(t, string(index), "<h1>Welcome</h1>")
		assert.Contains(t, string(index), "h1 { color: teal; }")

		css, err := os.ReadFile(filepath.Join(dir, fs.StylesFilename))
		require.NoError(t, err)
		assert.Equal(t, "h1 { color: teal; }\n", string(css))

		_, err = os.Stat(filepath.Join(dir, "about.html"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, fs.ScriptFilename))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, fs.SitemapFilename))
		assert.True(t, os.IsNotExist(err), "sitemap requires a base URL")

		_, err = os.Stat(dir + ".tmp")
		assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
	})

	t.Run("skips empty assets", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		set := testSet()
		set.CSS, set.JS = "", ""

		require.NoError(t, fs.NewSiteWriter(dir).WriteSite(context.Background(), set))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		assert.ElementsMatch(t, []string{"index.html", "about.html", fs.ManifestFilename}, names)
	})

	t.Run("writes sitemap with base URL", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		w := fs.NewSiteWriter(dir, fs.WithBaseURL("https://rosas.example/"))

		require.NoError(t, w.WriteSite(context.Background(), testSet()))

		sitemap, err := os.ReadFile(filepath.Join(dir, fs.SitemapFilename))
		require.NoError(t, err)
		assert.Contains(t, string(sitemap), "<loc>https://rosas.example/index.html</loc>")
		assert.Contains(t, string(sitemap), "<loc>https://rosas.example/about.html</loc>")
		assert.Contains(t, string(sitemap), "<lastmod>2026-03-14</lastmod>")
	})

	t.Run("keeps unrelated files", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "img"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("mine"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "img", "logo.png"), []byte("png"), 0644))

		require.NoError(t, fs.NewSiteWriter(dir).WriteSite(context.Background(), testSet()))

		notes, err := os.ReadFile(filepath.Join(dir, "notes.txt"))
		require.NoError(t, err)
		assert.Equal(t, "mine", string(notes))
		_, err = os.Stat(filepath.Join(dir, "img", "logo.png"))
		assert.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "index.html"))
		assert.NoError(t, err)
	})

	t.Run("replaces pages of the previous site", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("mine"), 0644))
		w := fs.NewSiteWriter(dir)
		require.NoError(t, w.WriteSite(context.Background(), testSet()))

		next := testSet()
		next.HTMLArtifacts = []sitedraft.HTMLArtifact{{Filename: "index.html", Code: "<h1>Reopened</h1>"}}
		next.JS = ""
		require.NoError(t, w.WriteSite(context.Background(), next))

		index, err := os.ReadFile(filepath.Join(dir, "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(index), "Reopened")
		_, err = os.Stat(filepath.Join(dir, "about.html"))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, fs.ScriptFilename))
		assert.True(t, os.IsNotExist(err))
		_, err = os.Stat(filepath.Join(dir, "notes.txt"))
		assert.NoError(t, err)

		manifest, err := os.ReadFile(filepath.Join(dir, fs.ManifestFilename))
		require.NoError(t, err)
		assert.Equal(t, "index.html\n"+fs.StylesFilename+"\n", string(manifest))
	})

	t.Run("ignores manifest entries outside the directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		dir := filepath.Join(base, "site")
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(base, "keep.txt"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, fs.ManifestFilename), []byte("../keep.txt\n"), 0644))

		require.NoError(t, fs.NewSiteWriter(dir).WriteSite(context.Background(), testSet()))

		_, err := os.Stat(filepath.Join(base, "keep.txt"))
		assert.NoError(t, err)
	})

	t.Run("keeps pages inside the directory", func(t *testing.T) {
		t.Parallel()

		base := t.TempDir()
		dir := filepath.Join(base, "site")
		set := testSet()
		set.HTMLArtifacts = []sitedraft.HTMLArtifact{{Filename: "../../escape.html", Code: "<p>x</p>"}}

		require.NoError(t, fs.NewSiteWriter(dir).WriteSite(context.Background(), set))

		_, err := os.Stat(filepath.Join(dir, "escape.html"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(base, "escape.html"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("invalid set leaves nothing behind", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")

		err := fs.NewSiteWriter(dir).WriteSite(context.Background(), &sitedraft.ArtifactSet{CSS: "a {}"})

		assert.Equal(t, sitedraft.EINVALID, sitedraft.ErrorCode(err))
		_, err = os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("canceled context aborts", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := fs.NewSiteWriter(dir).WriteSite(ctx, testSet())

		assert.ErrorIs(t, err, context.Canceled)
		_, statErr := os.Stat(dir + ".tmp")
		assert.True(t, os.IsNotExist(statErr))
		_, statErr = os.Stat(dir)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestSiteWriter_Notify(t *testing.T) {
	t.Parallel()

	t.Run("writes submission pages", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		s := &sitedraft.Submission{
			ID:     "sub-1",
			Prompt: "bakery",
			Result: sitedraft.Extract("```html\n<form>Get in touch</form>\n```"),
		}

		require.NoError(t, fs.NewSiteWriter(dir).Notify(context.Background(), s))

		_, err := os.Stat(filepath.Join(dir, "contact.html"))
		assert.NoError(t, err)
	})

	t.Run("skips submissions without html", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "site")
		s := &sitedraft.Submission{ID: "sub-1", Result: sitedraft.Extract("no code")}

		require.NoError(t, fs.NewSiteWriter(dir).Notify(context.Background(), s))

		_, err := os.Stat(dir)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestPageFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"index.html", "index.html"},
		{"About.HTML", "About.HTML"},
		{"about", "about.html"},
		{"pages/contact.html", "contact.html"},
		{`..\..\win.html`, "win.html"},
		{"../../etc/passwd", "passwd.html"},
		{" spaced.html ", "spaced.html"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := fs.PageFilename(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects empty and dot names", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"", ".", "..", "/"} {
			_, err := fs.PageFilename(name)
			assert.Equal(t, sitedraft.EINVALID, sitedraft.ErrorCode(err), name)
		}
	})
}
