package sitedraft

import (
	"regexp"
	"strings"
)

// Category is the kind of artifact a code block contributes to.
type Category string

// Category constants.
const (
	CategoryNone Category = ""
	CategoryHTML Category = "html"
	CategoryCSS  Category = "css"
	CategoryJS   Category = "js"
)

// Rule pairs a predicate over an untagged block body with the category it implies.
type Rule struct {
	Category Category
	Match    func(body string) bool
}

var (
	htmlRootRe    = regexp.MustCompile(`(?i)</?html|<!DOCTYPE html>`)
	htmlElementRe = regexp.MustCompile(`^\s*<[a-zA-Z][a-zA-Z0-9-]*[\s/>]`)
	jsRe          = regexp.MustCompile(`function\s|\bconsole\.log\b|\bfetch\s*\(|=>`)
	cssRe         = regexp.MustCompile(`(?m)^\s*[.#\w-]+\s*\{[^}]+\}`)
)

// DefaultRules returns the ordered rules used to classify untagged blocks.
// HTML is checked before JS because markup often embeds script-like text,
// and JS before CSS because object literals look like rule blocks.
func DefaultRules() []Rule {
	return []Rule{
		{Category: CategoryHTML, Match: func(body string) bool {
			return htmlRootRe.MatchString(body) || htmlElementRe.MatchString(body)
		}},
		{Category: CategoryJS, Match: jsRe.MatchString},
		{Category: CategoryCSS, Match: cssRe.MatchString},
	}
}

var defaultRules = DefaultRules()

// Classify returns the category of a code block. An explicit language tag is
// used as is; untagged blocks go through DefaultRules. Blocks that match
// nothing, or carry an unsupported tag, are CategoryNone.
func Classify(block CodeBlock) Category {
	if block.Lang != "" {
		return CategoryForTag(block.Lang)
	}
	return ClassifyBody(block.Body, defaultRules)
}

// CategoryForTag maps a fence tag to its category, ignoring case.
func CategoryForTag(tag string) Category {
	switch strings.ToLower(tag) {
	case "html":
		return CategoryHTML
	case "css":
		return CategoryCSS
	case "js", "javascript":
		return CategoryJS
	}
	return CategoryNone
}

// ClassifyBody evaluates rules top to bottom and returns the category of the
// first rule that matches.
func ClassifyBody(body string, rules []Rule) Category {
	for _, r := range rules {
		if r.Match(body) {
			return r.Category
		}
	}
	return CategoryNone
}
