package sitedraft

import (
	"context"
	"time"
)

// ArtifactSet is a persisted extraction: the pages, CSS and JS produced from
// one response, together with the prompt that produced it.
type ArtifactSet struct {
	ID            string         `json:"id"`
	Prompt        string         `json:"prompt"`
	HTMLArtifacts []HTMLArtifact `json:"htmlBlocks"`
	CSS           string         `json:"css"`
	JS            string         `json:"js"`
	ContentHash   string         `json:"contentHash"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// NewArtifactSet returns an unsaved set holding a copy of result.
func NewArtifactSet(prompt string, result *ExtractionResult) *ArtifactSet {
	set := &ArtifactSet{Prompt: prompt}
	if result != nil {
		set.HTMLArtifacts = append([]HTMLArtifact(nil), result.HTMLArtifacts...)
		set.CSS = result.CSS
		set.JS = result.JS
	}
	return set
}

// Validate returns an error if the set contains invalid fields.
func (s *ArtifactSet) Validate() error {
	if len(s.HTMLArtifacts) == 0 {
		return Errorf(EINVALID, "artifact set requires at least one HTML block")
	}
	for i, a := range s.HTMLArtifacts {
		if a.Filename == "" {
			return Errorf(EINVALID, "HTML block %d filename required", i+1)
		}
	}
	return nil
}

// Result returns the set as an extraction result.
func (s *ArtifactSet) Result() *ExtractionResult {
	return &ExtractionResult{
		HTMLArtifacts: s.HTMLArtifacts,
		CSS:           s.CSS,
		JS:            s.JS,
	}
}

// ArtifactService represents a service for managing artifact sets.
type ArtifactService interface {
	// CreateArtifactSet saves a new set. A caller-supplied ID is kept;
	// otherwise one is generated.
	CreateArtifactSet(ctx context.Context, set *ArtifactSet) error

	// FindArtifactSetByID retrieves a set and its artifacts by ID.
	// Returns ENOTFOUND if the set does not exist.
	FindArtifactSetByID(ctx context.Context, id string) (*ArtifactSet, error)

	// FindArtifactSets retrieves sets matching the filter, newest first.
	FindArtifactSets(ctx context.Context, filter ArtifactSetFilter) ([]*ArtifactSet, error)

	// DeleteArtifactSet permanently removes a set and its artifacts.
	// Returns ENOTFOUND if the set does not exist.
	DeleteArtifactSet(ctx context.Context, id string) error
}

// ArtifactSetFilter represents a filter for FindArtifactSets.
type ArtifactSetFilter struct {
	ID          *string `json:"id"`
	ContentHash *string `json:"contentHash"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
