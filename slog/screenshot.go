package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.Screenshotter = (*LoggingScreenshotter)(nil)

// LoggingScreenshotter wraps a Screenshotter with logging.
type LoggingScreenshotter struct {
	next   sitedraft.Screenshotter
	logger *slog.Logger
}

// NewLoggingScreenshotter creates a new LoggingScreenshotter.
func NewLoggingScreenshotter(next sitedraft.Screenshotter, logger *slog.Logger) *LoggingScreenshotter {
	return &LoggingScreenshotter{next: next, logger: logger}
}

// Screenshot delegates to the wrapped screenshotter and logs the capture.
func (s *LoggingScreenshotter) Screenshot(ctx context.Context, doc string) (png []byte, err error) {
	defer func(begin time.Time) {
		s.logger.Info("screenshot",
			"doc_bytes", len(doc),
			"bytes", len(png),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Screenshot(ctx, doc)
}

// Close delegates to the wrapped screenshotter.
func (s *LoggingScreenshotter) Close() error {
	return s.next.Close()
}
