package sitedraft

import (
	"regexp"
	"strings"
)

// HTMLArtifact is an HTML code block with its resolved filename.
type HTMLArtifact struct {
	Filename string `json:"filename"`
	Code     string `json:"code"`
}

// ExtractionResult holds everything extracted from one response.
// Every HTML artifact of a result shares the same CSS and JS.
type ExtractionResult struct {
	HTMLArtifacts []HTMLArtifact `json:"htmlBlocks"`
	CSS           string         `json:"css"`
	JS            string         `json:"js"`
}

// Filenames returns the artifact filenames in order.
func (r *ExtractionResult) Filenames() []string {
	names := make([]string, 0, len(r.HTMLArtifacts))
	for _, a := range r.HTMLArtifacts {
		names = append(names, a.Filename)
	}
	return names
}

// Artifact returns the first artifact with the given filename.
func (r *ExtractionResult) Artifact(filename string) (HTMLArtifact, bool) {
	for _, a := range r.HTMLArtifacts {
		if a.Filename == filename {
			return a, true
		}
	}
	return HTMLArtifact{}, false
}

// extraction is the state carried across blocks while folding a response.
type extraction struct {
	text     string
	prevEnd  int
	htmlSeen int
	html     []HTMLArtifact
	css      []string
	js       []string
}

func (e extraction) add(block CodeBlock) extraction {
	preceding := e.text[e.prevEnd:block.Start]
	e.prevEnd = block.End

	switch Classify(block) {
	case CategoryHTML:
		e.html = append(e.html, HTMLArtifact{
			Filename: ResolveFilename(block.Body, preceding, e.htmlSeen),
			Code:     block.Body,
		})
		e.htmlSeen++
	case CategoryCSS:
		e.css = append(e.css, block.Body)
	case CategoryJS:
		e.js = append(e.js, block.Body)
	}
	return e
}

// Extract splits a markdown response into named HTML artifacts and the
// combined CSS and JS of the response. Text without fenced blocks yields an
// empty result; Extract never fails.
func Extract(markdown string) *ExtractionResult {
	e := extraction{text: markdown}
	for block := range Blocks(markdown) {
		e = e.add(block)
	}

	result := &ExtractionResult{
		HTMLArtifacts: e.html,
		CSS:           strings.Join(e.css, "\n"),
		JS:            strings.Join(e.js, "\n"),
	}
	if result.HTMLArtifacts == nil {
		result.HTMLArtifacts = []HTMLArtifact{}
	}
	return result
}

// Greeting is the canned reply some models prepend to every answer.
const Greeting = "Hi! It's nice to meet you. Is there something I can help you with, or would you like to chat?"

var thinkRe = regexp.MustCompile(`<think>[\s\S]*?</think>`)

// CleanResponse removes the canned greeting and <think> reasoning sections
// from a raw model response.
func CleanResponse(raw string) string {
	cleaned := strings.Replace(raw, Greeting, "", 1)
	return thinkRe.ReplaceAllString(cleaned, "")
}
