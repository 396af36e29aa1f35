package sitedraft

import (
	"regexp"
	"strings"
)

// NoHTMLPlaceholder is rendered in place of an artifact with empty code.
const NoHTMLPlaceholder = "<p style='color: gray;'>No HTML found</p>"

// DefaultBodyStyle precedes the response CSS in every rendered document.
const DefaultBodyStyle = `body {
  font-family: system-ui, sans-serif;
  padding: 1rem;
  background: #f9f9f9;
}`

// RenderableDocument is a standalone HTML document for one page, ready to be
// embedded as a sandboxed srcdoc or served as is.
type RenderableDocument struct {
	Filename string `json:"filename"`
	HTML     string `json:"html"`
}

var (
	closeStyleRe  = regexp.MustCompile(`(?i)</style`)
	closeScriptRe = regexp.MustCompile(`(?i)</script`)
)

// RenderDocument assembles the preview document for one artifact. The CSS is
// inlined after DefaultBodyStyle; the JS runs on DOMContentLoaded inside a
// try/catch so that script errors stay inside the document.
func RenderDocument(artifact HTMLArtifact, css, js string) RenderableDocument {
	body := artifact.Code
	if body == "" {
		body = NoHTMLPlaceholder
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("<meta charset=\"UTF-8\" />\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\" />\n")
	b.WriteString("<style>\n")
	b.WriteString(DefaultBodyStyle)
	b.WriteString("\n")
	if css != "" {
		b.WriteString(closeStyleRe.ReplaceAllString(css, `<\/style`))
		b.WriteString("\n")
	}
	b.WriteString("</style>\n")
	b.WriteString("</head>\n")
	b.WriteString("<body>\n")
	b.WriteString(body)
	b.WriteString("\n<script>\n")
	b.WriteString("document.addEventListener(\"DOMContentLoaded\", function () {\n")
	b.WriteString("  try {\n")
	if js != "" {
		b.WriteString(closeScriptRe.ReplaceAllString(js, `<\/script`))
		b.WriteString("\n")
	}
	b.WriteString("  } catch (e) {\n")
	b.WriteString("    console.error(\"Script error:\", e);\n")
	b.WriteString("  }\n")
	b.WriteString("});\n")
	b.WriteString("</script>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>\n")

	return RenderableDocument{Filename: artifact.Filename, HTML: b.String()}
}

// RenderDocuments renders one document per artifact of the result, each with
// the result's combined CSS and JS.
func RenderDocuments(result *ExtractionResult) []RenderableDocument {
	if result == nil {
		return nil
	}
	docs := make([]RenderableDocument, 0, len(result.HTMLArtifacts))
	for _, a := range result.HTMLArtifacts {
		docs = append(docs, RenderDocument(a, result.CSS, result.JS))
	}
	return docs
}
