package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sitedraft"
)

// Ensure LoggingArtifactService implements sitedraft.ArtifactService.
var _ sitedraft.ArtifactService = (*LoggingArtifactService)(nil)

// LoggingArtifactService wraps an ArtifactService with debug logging.
type LoggingArtifactService struct {
	next   sitedraft.ArtifactService
	logger *slog.Logger
}

// NewLoggingArtifactService creates a new LoggingArtifactService.
func NewLoggingArtifactService(next sitedraft.ArtifactService, logger *slog.Logger) *LoggingArtifactService {
	return &LoggingArtifactService{next: next, logger: logger}
}

func (s *LoggingArtifactService) CreateArtifactSet(ctx context.Context, set *sitedraft.ArtifactSet) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("artifact set create",
			"id", set.ID,
			"pages", len(set.HTMLArtifacts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateArtifactSet(ctx, set)
}

func (s *LoggingArtifactService) FindArtifactSetByID(ctx context.Context, id string) (set *sitedraft.ArtifactSet, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("artifact set find",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArtifactSetByID(ctx, id)
}

func (s *LoggingArtifactService) FindArtifactSets(ctx context.Context, filter sitedraft.ArtifactSetFilter) (sets []*sitedraft.ArtifactSet, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("artifact set list",
			"count", len(sets),
			"limit", filter.Limit,
			"offset", filter.Offset,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindArtifactSets(ctx, filter)
}

func (s *LoggingArtifactService) DeleteArtifactSet(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("artifact set delete",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteArtifactSet(ctx, id)
}
