package sitedraft

import (
	"iter"
	"regexp"
	"strings"
)

// CodeBlock represents a fenced code block found in a markdown response.
type CodeBlock struct {
	// Lang is the language tag written after the opening fence, lowercased.
	// Empty when the fence carries no tag.
	Lang string `json:"lang,omitempty"`

	// Body is the content between the fences with surrounding whitespace trimmed.
	Body string `json:"body"`

	// Start and End are the byte offsets of the whole fenced region,
	// fences included, in the scanned text.
	Start int `json:"start"`
	End   int `json:"end"`
}

// fenceRe matches a fenced region: three backticks, an optional word tag,
// a newline, then everything up to the next three backticks.
var fenceRe = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")

// Blocks returns the fenced code blocks of markdown in document order.
// The sequence is lazy and can be ranged over more than once.
func Blocks(markdown string) iter.Seq[CodeBlock] {
	return func(yield func(CodeBlock) bool) {
		rest, offset := markdown, 0
		for {
			loc := fenceRe.FindStringSubmatchIndex(rest)
			if loc == nil {
				return
			}

			block := CodeBlock{
				Body:  strings.TrimSpace(rest[loc[4]:loc[5]]),
				Start: offset + loc[0],
				End:   offset + loc[1],
			}
			if loc[2] >= 0 {
				block.Lang = strings.ToLower(rest[loc[2]:loc[3]])
			}

			if !yield(block) {
				return
			}

			rest = rest[loc[1]:]
			offset += loc[1]
		}
	}
}
