package http

import (
	"html/template"
	"net/http"

	"github.com/fwojciec/sitedraft"
	"github.com/go-chi/chi/v5"
)

// PreviewCSP sandboxes previews with scripts enabled. allow-same-origin keeps
// the server's origin, so preview scripts can reach the /api routes.
const PreviewCSP = "sandbox allow-scripts allow-same-origin"

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	id, filename := chi.URLParam(r, "id"), chi.URLParam(r, "filename")

	set, err := s.Artifacts.FindArtifactSetByID(r.Context(), id)
	if err != nil {
		Error(w, r, err, s.logger())
		return
	}
	result := set.Result()
	artifact, ok := result.Artifact(filename)
	if !ok {
		Error(w, r, sitedraft.Errorf(sitedraft.ENOTFOUND, "Page %q not found.", filename), s.logger())
		return
	}

	doc := sitedraft.RenderDocument(artifact, result.CSS, result.JS)
	html := doc.HTML
	if s.Links != nil {
		if html, err = s.Links.RewriteLinks(html, previewPrefix(set.ID)); err != nil {
			Error(w, r, err, s.logger())
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Security-Policy", PreviewCSP)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

var codeTemplate = template.Must(template.New("code").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8" />
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; margin: 2rem; }
pre { padding: 1rem; overflow-x: auto; border: 1px solid #ddd; border-radius: 4px; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Blocks}}<section>
<h2>{{if .URL}}<a href="{{.URL}}">{{.Name}}</a>{{else}}{{.Name}}{{end}}</h2>
{{.Code}}
</section>
{{end}}</body>
</html>
`))

type codeBlock struct {
	Name string
	URL  string
	Code template.HTML
}

type codeView struct {
	Title  string
	Blocks []codeBlock
}

func (s *Server) handleCode(w http.ResponseWriter, r *http.Request) {
	set, err := s.Artifacts.FindArtifactSetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err, s.logger())
		return
	}

	view := codeView{Title: set.Prompt}
	if view.Title == "" {
		view.Title = set.ID
	}
	for _, a := range set.HTMLArtifacts {
		block, err := s.codeBlock(a.Filename, a.Code, "html")
		if err != nil {
			Error(w, r, err, s.logger())
			return
		}
		block.URL = PreviewURL(set.ID, a.Filename)
		view.Blocks = append(view.Blocks, block)
	}
	for _, asset := range []struct{ name, code, lang string }{
		{"styles.css", set.CSS, "css"},
		{"script.js", set.JS, "javascript"},
	} {
		if asset.code == "" {
			continue
		}
		block, err := s.codeBlock(asset.name, asset.code, asset.lang)
		if err != nil {
			Error(w, r, err, s.logger())
			return
		}
		view.Blocks = append(view.Blocks, block)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := codeTemplate.Execute(w, view); err != nil {
		s.logger().Error("render code view", "id", set.ID, "err", err)
	}
}

// codeBlock highlights code, or escapes it into a plain <pre> when no
// highlighter is configured.
func (s *Server) codeBlock(name, code, lang string) (codeBlock, error) {
	if s.Highlighter == nil {
		return codeBlock{Name: name, Code: template.HTML("<pre>" + template.HTMLEscapeString(code) + "</pre>")}, nil
	}
	out, err := s.Highlighter.Highlight(code, lang)
	if err != nil {
		return codeBlock{}, err
	}
	return codeBlock{Name: name, Code: template.HTML(out)}, nil
}
