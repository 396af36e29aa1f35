package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.Subscriber = (*LoggingSubscriber)(nil)

// LoggingSubscriber wraps a Subscriber and logs every delivery under name.
type LoggingSubscriber struct {
	next   sitedraft.Subscriber
	name   string
	logger *slog.Logger
}

// NewLoggingSubscriber creates a new LoggingSubscriber.
func NewLoggingSubscriber(next sitedraft.Subscriber, name string, logger *slog.Logger) *LoggingSubscriber {
	return &LoggingSubscriber{next: next, name: name, logger: logger}
}

// Notify delegates to the wrapped subscriber and logs the delivery.
func (s *LoggingSubscriber) Notify(ctx context.Context, sub *sitedraft.Submission) (err error) {
	defer func(begin time.Time) {
		pages := 0
		if sub.Result != nil {
			pages = len(sub.Result.HTMLArtifacts)
		}
		s.logger.Debug("notify",
			"subscriber", s.name,
			"submission", sub.ID,
			"pages", pages,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Notify(ctx, sub)
}
