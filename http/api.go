package http

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/go-chi/chi/v5"
)

// Page describes one generated page for clients that list or embed them.
type Page struct {
	Filename   string `json:"filename"`
	Title      string `json:"title"`
	PreviewURL string `json:"previewUrl,omitempty"`
}

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateResponse is returned by POST /api/generate.
type GenerateResponse struct {
	ID       string `json:"id"`
	Response string `json:"response"`
	// Saved reports whether the pages were stored. Pages carry preview URLs
	// only when they were.
	Saved bool `json:"saved"`
	*sitedraft.ExtractionResult
	Pages []Page `json:"pages"`
}

// ExtractRequest is the body of POST /api/extract.
type ExtractRequest struct {
	Content string `json:"content"`
}

// ExtractResponse is returned by POST /api/extract.
type ExtractResponse struct {
	*sitedraft.ExtractionResult
	Pages     []Page                         `json:"pages"`
	Documents []sitedraft.RenderableDocument `json:"documents"`
}

// SaveCodeRequest is the body of POST /api/save-code.
type SaveCodeRequest struct {
	Prompt        string                   `json:"prompt"`
	HTMLArtifacts []sitedraft.HTMLArtifact `json:"htmlBlocks"`
	CSS           string                   `json:"css"`
	JS            string                   `json:"js"`
}

// SaveResponseRequest is the body of POST /api/save-response.
type SaveResponseRequest struct {
	Prompt   string `json:"prompt"`
	Response string `json:"response"`
	Language string `json:"language"`
}

// IDResponse is returned when a resource is created.
type IDResponse struct {
	ID string `json:"id"`
}

// SetSummary is one entry of GET /api/sets.
type SetSummary struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Pages     []Page    `json:"pages"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, r, err, s.logger())
		return
	}

	if s.Submitter == nil {
		Error(w, r, sitedraft.Errorf(sitedraft.EINVALID, "Generation is not configured on this server."), s.logger())
		return
	}

	sub, err := s.Submitter.Submit(r.Context(), req.Prompt)
	if err != nil {
		Error(w, r, err, s.logger())
		return
	}

	var previewID string
	saved := len(sub.Result.HTMLArtifacts) > 0 && s.stored(r.Context(), sub.ID)
	if saved {
		previewID = sub.ID
	}

	writeJSON(w, http.StatusOK, &GenerateResponse{
		ID:               sub.ID,
		Response:         sub.Response,
		Saved:            saved,
		ExtractionResult: sub.Result,
		Pages:            s.pages(previewID, sub.Result.HTMLArtifacts),
	})
}

// stored reports whether the artifact set id exists.
func (s *Server) stored(ctx context.Context, id string) bool {
	if s.Artifacts == nil {
		return false
	}
	if _, err := s.Artifacts.FindArtifactSetByID(ctx, id); err != nil {
		if sitedraft.ErrorCode(err) != sitedraft.ENOTFOUND {
			s.logger().Error("find artifact set", "id", id, "err", err)
		}
		return false
	}
	return true
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req ExtractRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, r, err, s.logger())
		return
	}

	result := sitedraft.Extract(sitedraft.CleanResponse(req.Content))
	docs := sitedraft.RenderDocuments(result)
	if docs == nil {
		docs = []sitedraft.RenderableDocument{}
	}
	writeJSON(w, http.StatusOK, &ExtractResponse{
		ExtractionResult: result,
		Pages:            s.pages("", result.HTMLArtifacts),
		Documents:        docs,
	})
}

func (s *Server) handleSaveCode(w http.ResponseWriter, r *http.Request) {
	var req SaveCodeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, r, err, s.logger())
		return
	}

	set := sitedraft.NewArtifactSet(req.Prompt, &sitedraft.ExtractionResult{
		HTMLArtifacts: req.HTMLArtifacts,
		CSS:           req.CSS,
		JS:            req.JS,
	})
	if err := s.Artifacts.CreateArtifactSet(r.Context(), set); err != nil {
		Error(w, r, err, s.logger())
		return
	}
	writeJSON(w, http.StatusCreated, &IDResponse{ID: set.ID})
}

func (s *Server) handleSaveResponse(w http.ResponseWriter, r *http.Request) {
	var req SaveResponseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		Error(w, r, err, s.logger())
		return
	}

	resp := &sitedraft.Response{
		Prompt:   req.Prompt,
		Content:  req.Response,
		Language: req.Language,
	}
	if err := s.Responses.CreateResponse(r.Context(), resp); err != nil {
		Error(w, r, err, s.logger())
		return
	}
	writeJSON(w, http.StatusCreated, &IDResponse{ID: resp.ID})
}

func (s *Server) handleListSets(w http.ResponseWriter, r *http.Request) {
	var filter sitedraft.ArtifactSetFilter
	var err error
	if filter.Offset, err = queryInt(r, "offset"); err != nil {
		Error(w, r, err, s.logger())
		return
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		Error(w, r, err, s.logger())
		return
	}

	sets, err := s.Artifacts.FindArtifactSets(r.Context(), filter)
	if err != nil {
		Error(w, r, err, s.logger())
		return
	}

	summaries := make([]SetSummary, 0, len(sets))
	for _, set := range sets {
		summaries = append(summaries, SetSummary{
			ID:        set.ID,
			Prompt:    set.Prompt,
			Pages:     s.pages(set.ID, set.HTMLArtifacts),
			CreatedAt: set.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetSet(w http.ResponseWriter, r *http.Request) {
	set, err := s.Artifacts.FindArtifactSetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		Error(w, r, err, s.logger())
		return
	}
	writeJSON(w, http.StatusOK, set)
}

func (s *Server) handleDeleteSet(w http.ResponseWriter, r *http.Request) {
	if err := s.Artifacts.DeleteArtifactSet(r.Context(), chi.URLParam(r, "id")); err != nil {
		Error(w, r, err, s.logger())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pages describes artifacts for listing. Preview URLs are only set for
// stored sets.
func (s *Server) pages(id string, artifacts []sitedraft.HTMLArtifact) []Page {
	pages := make([]Page, 0, len(artifacts))
	for _, a := range artifacts {
		p := Page{Filename: a.Filename, Title: s.title(a)}
		if id != "" {
			p.PreviewURL = PreviewURL(id, a.Filename)
		}
		pages = append(pages, p)
	}
	return pages
}

func (s *Server) title(a sitedraft.HTMLArtifact) string {
	if s.Titles != nil {
		if t := s.Titles.Title(a.Code); t != "" {
			return t
		}
	}
	return strings.TrimSuffix(a.Filename, ".html")
}

// PreviewURL returns the path serving a page of a stored set.
func PreviewURL(id, filename string) string {
	return previewPrefix(id) + url.PathEscape(filename)
}

func previewPrefix(id string) string {
	return "/preview/" + url.PathEscape(id) + "/"
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, sitedraft.Errorf(sitedraft.EINVALID, "Invalid %s parameter.", name)
	}
	return n, nil
}
