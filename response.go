package sitedraft

import (
	"context"
	"time"
)

// Response is a raw model response saved verbatim next to its prompt.
type Response struct {
	ID        string    `json:"id"`
	Prompt    string    `json:"prompt"`
	Content   string    `json:"response"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate returns an error if the response contains invalid fields.
func (r *Response) Validate() error {
	if r.Prompt == "" {
		return Errorf(EINVALID, "response prompt required")
	}
	return nil
}

// ResponseService represents a service for recording raw responses.
type ResponseService interface {
	// CreateResponse saves a new response. Language defaults to "txt".
	CreateResponse(ctx context.Context, resp *Response) error

	// FindResponses retrieves responses matching the filter, newest first.
	FindResponses(ctx context.Context, filter ResponseFilter) ([]*Response, error)
}

// ResponseFilter represents a filter for FindResponses.
type ResponseFilter struct {
	ID *string `json:"id"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
