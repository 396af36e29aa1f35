package rod

import (
	"context"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/go-rod/rod/lib/proto"
)

var _ sitedraft.Screenshotter = (*Screenshotter)(nil)

// Default capture settings.
const (
	DefaultWidth   = 1280
	DefaultHeight  = 800
	DefaultTimeout = 15 * time.Second
)

// Screenshotter loads preview documents into a blank tab and captures them
// as PNG. Screenshotter is safe for concurrent use.
type Screenshotter struct {
	manager  *BrowserManager
	width    int
	height   int
	fullPage bool
	timeout  time.Duration
}

// Option configures a Screenshotter.
type Option func(*Screenshotter)

// WithViewport sets the viewport size in CSS pixels.
func WithViewport(width, height int) Option {
	return func(s *Screenshotter) {
		s.width, s.height = width, height
	}
}

// WithFullPage captures the whole scrollable page instead of the viewport.
func WithFullPage() Option {
	return func(s *Screenshotter) {
		s.fullPage = true
	}
}

// WithTimeout bounds a single capture.
func WithTimeout(d time.Duration) Option {
	return func(s *Screenshotter) {
		s.timeout = d
	}
}

// NewScreenshotter creates a Screenshotter backed by manager. Close closes
// the manager.
func NewScreenshotter(manager *BrowserManager, opts ...Option) *Screenshotter {
	s := &Screenshotter{
		manager: manager,
		width:   DefaultWidth,
		height:  DefaultHeight,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Screenshot renders doc and returns the PNG bytes.
func (s *Screenshotter) Screenshot(ctx context.Context, doc string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser := s.manager.Acquire()
	if browser == nil {
		return nil, sitedraft.Errorf(sitedraft.EINVALID, "screenshotter is closed")
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, err
	}
	defer page.Close()
	page = page.Context(ctx)

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.width,
		Height:            s.height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, err
	}
	if err := page.SetDocumentContent(doc); err != nil {
		return nil, err
	}
	if err := page.WaitLoad(); err != nil {
		return nil, err
	}

	return page.Screenshot(s.fullPage, &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	})
}

// Close stops the browser.
func (s *Screenshotter) Close() error {
	return s.manager.Close()
}
