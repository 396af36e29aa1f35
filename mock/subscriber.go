package mock

import (
	"context"

	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.Subscriber = (*Subscriber)(nil)

// Subscriber is a mock implementation of sitedraft.Subscriber.
type Subscriber struct {
	NotifyFn func(ctx context.Context, s *sitedraft.Submission) error
}

func (m *Subscriber) Notify(ctx context.Context, s *sitedraft.Submission) error {
	return m.NotifyFn(ctx, s)
}
