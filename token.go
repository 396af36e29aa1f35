package sitedraft

import "context"

// TokenCounter estimates how many model tokens a response used.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
