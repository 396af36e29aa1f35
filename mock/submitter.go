package mock

import (
	"context"

	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.Submitter = (*Submitter)(nil)

// Submitter is a mock implementation of sitedraft.Submitter.
type Submitter struct {
	SubmitFn func(ctx context.Context, prompt string) (*sitedraft.Submission, error)
}

func (s *Submitter) Submit(ctx context.Context, prompt string) (*sitedraft.Submission, error) {
	return s.SubmitFn(ctx, prompt)
}
