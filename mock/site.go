package mock

import (
	"context"

	"github.com/fwojciec/sitedraft"
)

var (
	_ sitedraft.SiteWriter    = (*SiteWriter)(nil)
	_ sitedraft.Screenshotter = (*Screenshotter)(nil)
	_ sitedraft.RateLimiter   = (*RateLimiter)(nil)
)

// SiteWriter is a mock implementation of sitedraft.SiteWriter.
type SiteWriter struct {
	WriteSiteFn func(ctx context.Context, set *sitedraft.ArtifactSet) error
}

func (w *SiteWriter) WriteSite(ctx context.Context, set *sitedraft.ArtifactSet) error {
	return w.WriteSiteFn(ctx, set)
}

// Screenshotter is a mock implementation of sitedraft.Screenshotter.
type Screenshotter struct {
	ScreenshotFn func(ctx context.Context, doc string) ([]byte, error)
	CloseFn      func() error
}

func (s *Screenshotter) Screenshot(ctx context.Context, doc string) ([]byte, error) {
	return s.ScreenshotFn(ctx, doc)
}

func (s *Screenshotter) Close() error {
	if s.CloseFn == nil {
		return nil
	}
	return s.CloseFn()
}

// RateLimiter is a mock implementation of sitedraft.RateLimiter.
type RateLimiter struct {
	AllowFn func(key string) bool
}

func (l *RateLimiter) Allow(key string) bool {
	return l.AllowFn(key)
}
