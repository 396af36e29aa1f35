package pipeline_test

import (
	"testing"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("returns text unchanged when shorter than max", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "bakery", pipeline.Truncate("bakery", 50))
	})

	t.Run("truncates with ellipsis when longer than max", func(t *testing.T) {
		t.Parallel()
		result := pipeline.Truncate("a landing page for a bakery in Lisbon", 20)
		assert.Equal(t, "a landing page fo...", result)
		assert.Len(t, result, 20)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "café", pipeline.Truncate("café", 4))
	})

	t.Run("returns empty string when maxLen is zero", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, pipeline.Truncate("text", 0))
	})

	t.Run("cuts without ellipsis when maxLen is tiny", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "ab", pipeline.Truncate("abcdef", 2))
	})
}

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 B", pipeline.FormatBytes(0))
	assert.Equal(t, "512 B", pipeline.FormatBytes(512))
	assert.Equal(t, "1.5 KB", pipeline.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", pipeline.FormatBytes(2*1024*1024))
}

func TestFormatTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~999 tokens", pipeline.FormatTokens(999))
	assert.Equal(t, "~2k tokens", pipeline.FormatTokens(1500))
	assert.Equal(t, "~12k tokens", pipeline.FormatTokens(12345))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("counts pages and asset sizes", func(t *testing.T) {
		t.Parallel()

		result := &sitedraft.ExtractionResult{
			HTMLArtifacts: []sitedraft.HTMLArtifact{{Filename: "index.html"}, {Filename: "about.html"}},
			CSS:           "a { b: c; }",
		}

		assert.Equal(t, "2 pages, CSS 11 B, JS 0 B", pipeline.Summarize(result))
	})

	t.Run("singular page", func(t *testing.T) {
		t.Parallel()

		result := &sitedraft.ExtractionResult{HTMLArtifacts: []sitedraft.HTMLArtifact{{Filename: "index.html"}}}

		assert.Equal(t, "1 page, CSS 0 B, JS 0 B", pipeline.Summarize(result))
	})

	t.Run("nil result", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "0 pages", pipeline.Summarize(nil))
	})
}
