package pipeline

import (
	"context"

	"github.com/fwojciec/sitedraft"
)

var (
	_ sitedraft.Subscriber = (*ArtifactSaver)(nil)
	_ sitedraft.Subscriber = (*ResponseRecorder)(nil)
)

// ArtifactSaver stores the extraction of each submission as an artifact set
// keyed by the submission ID. Submissions without HTML are skipped.
type ArtifactSaver struct {
	Artifacts sitedraft.ArtifactService
}

func (a *ArtifactSaver) Notify(ctx context.Context, s *sitedraft.Submission) error {
	if s.Result == nil || len(s.Result.HTMLArtifacts) == 0 {
		return nil
	}
	set := sitedraft.NewArtifactSet(s.Prompt, s.Result)
	set.ID = s.ID
	return a.Artifacts.CreateArtifactSet(ctx, set)
}

// ResponseRecorder saves the raw model output of each submission, greeting
// and <think> sections included.
type ResponseRecorder struct {
	Responses sitedraft.ResponseService
}

func (r *ResponseRecorder) Notify(ctx context.Context, s *sitedraft.Submission) error {
	return r.Responses.CreateResponse(ctx, &sitedraft.Response{
		ID:       s.ID,
		Prompt:   s.Prompt,
		Content:  s.Raw,
		Language: "txt",
	})
}
