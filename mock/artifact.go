package mock

import (
	"context"

	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.ArtifactService = (*ArtifactService)(nil)

// ArtifactService is a mock implementation of sitedraft.ArtifactService.
type ArtifactService struct {
	CreateArtifactSetFn   func(ctx context.Context, set *sitedraft.ArtifactSet) error
	FindArtifactSetByIDFn func(ctx context.Context, id string) (*sitedraft.ArtifactSet, error)
	FindArtifactSetsFn    func(ctx context.Context, filter sitedraft.ArtifactSetFilter) ([]*sitedraft.ArtifactSet, error)
	DeleteArtifactSetFn   func(ctx context.Context, id string) error
}

func (s *ArtifactService) CreateArtifactSet(ctx context.Context, set *sitedraft.ArtifactSet) error {
	return s.CreateArtifactSetFn(ctx, set)
}

func (s *ArtifactService) FindArtifactSetByID(ctx context.Context, id string) (*sitedraft.ArtifactSet, error) {
	return s.FindArtifactSetByIDFn(ctx, id)
}

func (s *ArtifactService) FindArtifactSets(ctx context.Context, filter sitedraft.ArtifactSetFilter) ([]*sitedraft.ArtifactSet, error) {
	return s.FindArtifactSetsFn(ctx, filter)
}

func (s *ArtifactService) DeleteArtifactSet(ctx context.Context, id string) error {
	return s.DeleteArtifactSetFn(ctx, id)
}
