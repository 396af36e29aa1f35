package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedraft"
)

// Ensure LoggingGenerator implements sitedraft.Generator.
var _ sitedraft.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next     sitedraft.Generator
	provider string
	logger   *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator. provider names the
// backing model service in log lines.
func NewLoggingGenerator(next sitedraft.Generator, provider string, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, provider: provider, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (text string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"provider", g.provider,
			"prompt_bytes", len(prompt),
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}
