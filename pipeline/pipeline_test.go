package pipeline_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/fwojciec/sitedraft/mock"
	"github.com/fwojciec/sitedraft/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Submit(t *testing.T) {
	t.Parallel()

	t.Run("rejects blank prompt", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{Generator: &mock.Generator{}}

		_, err := p.Submit(context.Background(), "   ")

		assert.Equal(t, sitedraft.EINVALID, sitedraft.ErrorCode(err))
	})

	t.Run("extracts cleaned response", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string) (string, error) {
					return sitedraft.Greeting + "<think>plan</think>\n```html\n<h1>Welcome</h1>\n```", nil
				},
			},
			RetryDelays: []time.Duration{0},
		}

		s, err := p.Submit(context.Background(), "a bakery site")

		require.NoError(t, err)
		assert.NotEmpty(t, s.ID)
		assert.Equal(t, "a bakery site", s.Prompt)
		assert.Equal(t, "\n```html\n<h1>Welcome</h1>\n```", s.Response)
		assert.Equal(t, sitedraft.Greeting+"<think>plan</think>\n```html\n<h1>Welcome</h1>\n```", s.Raw)
		assert.Equal(t, []string{"index.html"}, s.Result.Filenames())
	})

	t.Run("retries failed generation", func(t *testing.T) {
		t.Parallel()

		var calls int
		p := &pipeline.Pipeline{
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string) (string, error) {
					calls++
					if calls < 2 {
						return "", errors.New("upstream unavailable")
					}
					return "no code here", nil
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		s, err := p.Submit(context.Background(), "p")

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Empty(t, s.Result.HTMLArtifacts)
	})

	t.Run("returns generation error after retries", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("upstream unavailable")
		p := &pipeline.Pipeline{
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string) (string, error) {
					return "", wantErr
				},
			},
			Subscribers: []sitedraft.Subscriber{&mock.Subscriber{
				NotifyFn: func(_ context.Context, _ *sitedraft.Submission) error {
					t.Fatal("subscriber must not be notified")
					return nil
				},
			}},
			RetryDelays: []time.Duration{0},
		}

		_, err := p.Submit(context.Background(), "p")

		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("notifies every subscriber with the same submission", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var got []*sitedraft.Submission
		record := &mock.Subscriber{
			NotifyFn: func(_ context.Context, s *sitedraft.Submission) error {
				mu.Lock()
				defer mu.Unlock()
				got = append(got, s)
				return nil
			},
		}
		p := &pipeline.Pipeline{
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string) (string, error) {
					return "```html\n<p>x</p>\n```", nil
				},
			},
			Subscribers: []sitedraft.Subscriber{record, record, record},
			RetryDelays: []time.Duration{0},
		}

		s, err := p.Submit(context.Background(), "p")

		require.NoError(t, err)
		require.Len(t, got, 3)
		for _, g := range got {
			assert.Same(t, s, g)
		}
	})

	t.Run("subscriber failure does not fail submission", func(t *testing.T) {
		t.Parallel()

		var notified bool
		p := &pipeline.Pipeline{
			Generator: &mock.Generator{
				GenerateFn: func(_ context.Context, _ string) (string, error) {
					return "```html\n<p>x</p>\n```", nil
				},
			},
			Subscribers: []sitedraft.Subscriber{
				&mock.Subscriber{NotifyFn: func(_ context.Context, _ *sitedraft.Submission) error {
					return errors.New("disk full")
				}},
				&mock.Subscriber{NotifyFn: func(_ context.Context, _ *sitedraft.Submission) error {
					notified = true
					return nil
				}},
			},
			RetryDelays: []time.Duration{0},
		}

		s, err := p.Submit(context.Background(), "p")

		require.NoError(t, err)
		assert.Len(t, s.Result.HTMLArtifacts, 1)
		assert.True(t, notified)
	})
}

func TestPipeline_Publish(t *testing.T) {
	t.Parallel()

	t.Run("assigns unique submission ids", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{}

		a := p.Publish(context.Background(), "p", "text")
		b := p.Publish(context.Background(), "p", "text")

		assert.NotEqual(t, a.ID, b.ID)
		assert.Equal(t, a.Result, b.Result)
	})

	t.Run("records the raw response verbatim", func(t *testing.T) {
		t.Parallel()

		var stored *sitedraft.Response
		p := &pipeline.Pipeline{
			Subscribers: []sitedraft.Subscriber{&pipeline.ResponseRecorder{
				Responses: &mock.ResponseService{
					CreateResponseFn: func(_ context.Context, resp *sitedraft.Response) error {
						stored = resp
						return nil
					},
				},
			}},
		}
		raw := "<think>secret plan</think>" + sitedraft.Greeting + "```html\n<p>x</p>\n```"

		s := p.Publish(context.Background(), "p", raw)

		require.NotNil(t, stored)
		assert.Equal(t, raw, stored.Content)
		assert.Equal(t, s.ID, stored.ID)
		assert.Equal(t, "```html\n<p>x</p>\n```", s.Response)
	})
}
