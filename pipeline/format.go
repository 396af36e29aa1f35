package pipeline

import (
	"fmt"

	"github.com/fwojciec/sitedraft"
)

// Truncate shortens text for display, keeping the beginning.
func Truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen < 4 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatTokens formats token count in human-readable form.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("~%d tokens", tokens)
	}
	return fmt.Sprintf("~%dk tokens", (tokens+500)/1000)
}

// Summarize describes an extraction result in one line.
func Summarize(result *sitedraft.ExtractionResult) string {
	if result == nil {
		return "0 pages"
	}
	pages := "pages"
	if len(result.HTMLArtifacts) == 1 {
		pages = "page"
	}
	return fmt.Sprintf("%d %s, CSS %s, JS %s",
		len(result.HTMLArtifacts), pages, FormatBytes(len(result.CSS)), FormatBytes(len(result.JS)))
}
