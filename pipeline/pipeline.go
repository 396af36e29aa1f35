// Package pipeline turns prompts into extracted artifact sets.
// It coordinates generation, cleanup, extraction, and delivery of each
// submission to its subscribers.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var _ sitedraft.Submitter = (*Pipeline)(nil)

// Pipeline generates a response for a prompt, extracts its artifacts and
// hands the submission to every subscriber.
type Pipeline struct {
	Generator   sitedraft.Generator
	Subscribers []sitedraft.Subscriber
	RetryDelays []time.Duration
	Logger      *slog.Logger
}

// Submit generates a response for prompt and publishes it.
// Subscriber failures are logged and do not fail the submission.
func (p *Pipeline) Submit(ctx context.Context, prompt string) (*sitedraft.Submission, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, sitedraft.Errorf(sitedraft.EINVALID, "prompt required")
	}

	delays := p.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	raw, err := GenerateWithRetryDelays(ctx, prompt, p.Generator.Generate, p.logRetry, delays)
	if err != nil {
		return nil, err
	}

	return p.Publish(ctx, prompt, raw), nil
}

// Publish cleans and extracts an already generated response, then notifies
// subscribers. It returns once every subscriber has finished.
func (p *Pipeline) Publish(ctx context.Context, prompt, raw string) *sitedraft.Submission {
	response := sitedraft.CleanResponse(raw)
	s := &sitedraft.Submission{
		ID:       uuid.NewString(),
		Prompt:   prompt,
		Raw:      raw,
		Response: response,
		Result:   sitedraft.Extract(response),
	}

	p.notify(ctx, s)
	return s
}

func (p *Pipeline) notify(ctx context.Context, s *sitedraft.Submission) {
	var g errgroup.Group
	for _, sub := range p.Subscribers {
		g.Go(func() error {
			if err := sub.Notify(ctx, s); err != nil {
				p.logger().Error("subscriber failed", "submission", s.ID, "err", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Pipeline) logRetry(format string, args ...any) {
	p.logger().Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}
