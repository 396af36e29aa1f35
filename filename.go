package sitedraft

import (
	"regexp"
	"strconv"
	"strings"
)

// StandardFilenames are the page names handed out, in order, to HTML blocks
// that carry no hint and match no page type.
var StandardFilenames = []string{
	"index.html",
	"about.html",
	"services.html",
	"contact.html",
	"portfolio.html",
}

// filenameHintRe recognizes explicit filename markers. Names stay on one line.
var filenameHintRe = regexp.MustCompile(`(?i)<!--\s*filename:\s*([\w \t.-]+?)\s*-->` +
	`|//[ \t]*filename:[ \t]*([\w \t.-]+)` +
	`|/\*\s*filename:\s*([\w \t.-]+?)\s*\*/` +
	`|#{1,6}[ \t]+([\w \t.-]+?\.html)`)

// PageType associates a page filename with the keywords that identify it.
type PageType struct {
	Filename string
	Pattern  *regexp.Regexp
}

// PageTypes lists the page-type heuristics in the order they are tried.
var PageTypes = []PageType{
	{"index.html", regexp.MustCompile(`(?i)\b(welcome|home\s?page|hero|landing\s?page|intro|main\ssection)\b`)},
	{"about.html", regexp.MustCompile(`(?i)\b(about\s?us|our\steam|mission|company\s(history|overview)|about\ssection|team|who\swe\sare)\b`)},
	{"services.html", regexp.MustCompile(`(?i)\b(services?|what\swe\soffer|service\s(cards?|section)|offerings?)\b`)},
	{"contact.html", regexp.MustCompile(`(?i)\b(contact\s?us|contact\sform|get\s?in\stouch|message\s(us|form)?|send\smessage|reach\s(out)?)\b`)},
	{"portfolio.html", regexp.MustCompile(`(?i)\b(portfolio|our\swork|projects?|gallery|showcase|case\sstud(ies|y))\b`)},
}

// FilenameHint returns the last explicit filename marker in text.
// Recognized forms are <!-- filename: X -->, // filename: X,
// /* filename: X */ and a markdown heading ending in .html.
func FilenameHint(text string) (string, bool) {
	matches := filenameHintRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return "", false
	}

	last := matches[len(matches)-1]
	for _, group := range last[1:] {
		if name := strings.TrimSpace(group); name != "" {
			return name, true
		}
	}
	return "", false
}

// DetectPageType returns the filename of the first page type whose keywords
// appear in the block body or in the text preceding it.
func DetectPageType(body, preceding string) (string, bool) {
	for _, pt := range PageTypes {
		if pt.Pattern.MatchString(body) || pt.Pattern.MatchString(preceding) {
			return pt.Filename, true
		}
	}
	return "", false
}

// FallbackFilename returns the positional name for an HTML block when
// resolved blocks have already been named in the same pass.
func FallbackFilename(resolved int) string {
	if resolved < len(StandardFilenames) {
		return StandardFilenames[resolved]
	}
	return "page-" + strconv.Itoa(resolved+1) + ".html"
}

// ResolveFilename names an HTML block: an explicit hint in the preceding text
// wins, then a page-type match, then the positional fallback.
// Names are not deduplicated; two blocks may resolve to the same name.
func ResolveFilename(body, preceding string, resolved int) string {
	if name, ok := FilenameHint(preceding); ok {
		return name
	}
	if name, ok := DetectPageType(body, preceding); ok {
		return name
	}
	return FallbackFilename(resolved)
}
