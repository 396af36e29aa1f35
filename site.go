package sitedraft

import "context"

// SiteWriter writes an artifact set out as a static site.
type SiteWriter interface {
	WriteSite(ctx context.Context, set *ArtifactSet) error
}

// Screenshotter captures rendered previews as PNG images.
type Screenshotter interface {
	// Screenshot loads an HTML document and returns a PNG of the page.
	Screenshot(ctx context.Context, doc string) ([]byte, error)

	// Close releases browser resources.
	Close() error
}
