package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/sitedraft"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ sitedraft.ResponseService = (*ResponseService)(nil)

// ResponseService implements sitedraft.ResponseService using SQLite.
type ResponseService struct {
	db *DB
}

// NewResponseService creates a new ResponseService.
func NewResponseService(db *DB) *ResponseService {
	return &ResponseService{db: db}
}

// CreateResponse records a raw response.
func (s *ResponseService) CreateResponse(ctx context.Context, resp *sitedraft.Response) error {
	if err := resp.Validate(); err != nil {
		return err
	}

	if resp.ID == "" {
		resp.ID = uuid.New().String()
	}
	if resp.Language == "" {
		resp.Language = "txt"
	}
	resp.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO responses (id, prompt, content, language, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, resp.ID, resp.Prompt, resp.Content, resp.Language, resp.CreatedAt.Format(time.RFC3339))
	if isUniqueViolation(err) {
		return sitedraft.Errorf(sitedraft.ECONFLICT, "response %s already exists", resp.ID)
	}
	return err
}

// FindResponses retrieves responses matching the filter, newest first.
func (s *ResponseService) FindResponses(ctx context.Context, filter sitedraft.ResponseFilter) ([]*sitedraft.Response, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, prompt, content, language, created_at FROM responses WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}

	query.WriteString(" ORDER BY created_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := []*sitedraft.Response{}
	for rows.Next() {
		var resp sitedraft.Response
		var createdAt string

		if err := rows.Scan(&resp.ID, &resp.Prompt, &resp.Content, &resp.Language, &createdAt); err != nil {
			return nil, err
		}
		if resp.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		responses = append(responses, &resp)
	}

	return responses, rows.Err()
}
