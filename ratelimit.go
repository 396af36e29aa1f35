package sitedraft

// RateLimiter decides whether a caller may proceed now.
type RateLimiter interface {
	// Allow reports whether a request for key may proceed. Each key is
	// limited independently.
	Allow(key string) bool
}
