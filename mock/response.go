package mock

import (
	"context"

	"github.com/fwojciec/sitedraft"
)

var _ sitedraft.ResponseService = (*ResponseService)(nil)

// ResponseService is a mock implementation of sitedraft.ResponseService.
type ResponseService struct {
	CreateResponseFn func(ctx context.Context, resp *sitedraft.Response) error
	FindResponsesFn  func(ctx context.Context, filter sitedraft.ResponseFilter) ([]*sitedraft.Response, error)
}

func (s *ResponseService) CreateResponse(ctx context.Context, resp *sitedraft.Response) error {
	return s.CreateResponseFn(ctx, resp)
}

func (s *ResponseService) FindResponses(ctx context.Context, filter sitedraft.ResponseFilter) ([]*sitedraft.Response, error) {
	return s.FindResponsesFn(ctx, filter)
}
