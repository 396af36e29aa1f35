package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitedraft.ArtifactService = (*ArtifactService)(nil)

// ArtifactService implements sitedraft.ArtifactService using SQLite.
type ArtifactService struct {
	db *DB
}

// NewArtifactService creates a new ArtifactService.
func NewArtifactService(db *DB) *ArtifactService {
	return &ArtifactService{db: db}
}

// setContentHash hashes the artifacts, CSS and JS of a set.
func setContentHash(set *sitedraft.ArtifactSet) string {
	parts := make([]string, 0, 2*len(set.HTMLArtifacts)+2)
	for _, a := range set.HTMLArtifacts {
		parts = append(parts, a.Filename, a.Code)
	}
	parts = append(parts, set.CSS, set.JS)
	return hashContent(parts...)
}

// CreateArtifactSet creates a new artifact set and its artifacts in one transaction.
func (s *ArtifactService) CreateArtifactSet(ctx context.Context, set *sitedraft.ArtifactSet) error {
	if err := set.Validate(); err != nil {
		return err
	}

	if set.ID == "" {
		set.ID = uuid.New().String()
	}
	set.CreatedAt = time.Now().UTC().Truncate(time.Second)
	set.ContentHash = setContentHash(set)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO artifact_sets (id, prompt, css, js, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, set.ID, set.Prompt, set.CSS, set.JS, set.ContentHash, set.CreatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return sitedraft.Errorf(sitedraft.ECONFLICT, "artifact set %s already exists", set.ID)
	}
	if err != nil {
		return err
	}

	for i, a := range set.HTMLArtifacts {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO artifacts (id, set_id, position, filename, code)
			VALUES (?, ?, ?, ?, ?)
		`, uuid.New().String(), set.ID, i, a.Filename, a.Code); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindArtifactSetByID retrieves an artifact set by ID.
func (s *ArtifactService) FindArtifactSetByID(ctx context.Context, id string) (*sitedraft.ArtifactSet, error) {
	sets, err := s.FindArtifactSets(ctx, sitedraft.ArtifactSetFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, sitedraft.Errorf(sitedraft.ENOTFOUND, "artifact set not found")
	}
	return sets[0], nil
}

// FindArtifactSets retrieves artifact sets matching the filter, newest first.
func (s *ArtifactService) FindArtifactSets(ctx context.Context, filter sitedraft.ArtifactSetFilter) ([]*sitedraft.ArtifactSet, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, prompt, css, js, content_hash, created_at FROM artifact_sets WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.ContentHash != nil {
		query.WriteString(" AND content_hash = ?")
		args = append(args, *filter.ContentHash)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	sets, err := s.scanSets(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}

	// Artifacts are loaded after the set rows are closed; the pool holds a
	// single connection.
	for _, set := range sets {
		if set.HTMLArtifacts, err = s.findArtifacts(ctx, set.ID); err != nil {
			return nil, err
		}
	}
	return sets, nil
}

func (s *ArtifactService) scanSets(ctx context.Context, query string, args ...any) ([]*sitedraft.ArtifactSet, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := []*sitedraft.ArtifactSet{}
	for rows.Next() {
		var set sitedraft.ArtifactSet
		var createdAt string

		if err := rows.Scan(&set.ID, &set.Prompt, &set.CSS, &set.JS, &set.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if set.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		sets = append(sets, &set)
	}

	return sets, rows.Err()
}

func (s *ArtifactService) findArtifacts(ctx context.Context, setID string) ([]sitedraft.HTMLArtifact, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT filename, code
		FROM artifacts
		WHERE set_id = ?
		ORDER BY position ASC
	`, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artifacts := []sitedraft.HTMLArtifact{}
	for rows.Next() {
		var a sitedraft.HTMLArtifact
		if err := rows.Scan(&a.Filename, &a.Code); err != nil {
			return nil, err
		}
		artifacts = append(artifacts, a)
	}

	return artifacts, rows.Err()
}

// DeleteArtifactSet permanently removes an artifact set and its artifacts.
func (s *ArtifactService) DeleteArtifactSet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM artifact_sets WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sitedraft.Errorf(sitedraft.ENOTFOUND, "artifact set not found")
	}

	return nil
}
