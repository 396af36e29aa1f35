package pipeline

import (
	"sync"
	"time"

	"github.com/fwojciec/sitedraft"
	"golang.org/x/time/rate"
)

// DefaultIdleTimeout is how long a key's limiter is kept after its last request.
const DefaultIdleTimeout = 10 * time.Minute

var _ sitedraft.RateLimiter = (*KeyLimiter)(nil)

// KeyLimiter provides per-key rate limiting using token buckets.
// Each key, typically a client address, gets its own limiter. Limiters idle
// for longer than the idle timeout are dropped.
type KeyLimiter struct {
	mu        sync.Mutex
	limiters  map[string]*keyLimit
	rps       float64
	burst     int
	idle      time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type keyLimit struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// KeyLimiterOption configures a KeyLimiter.
type KeyLimiterOption func(*KeyLimiter)

// WithIdleTimeout sets how long an unused key is remembered. Non-positive
// values are ignored.
func WithIdleTimeout(d time.Duration) KeyLimiterOption {
	return func(l *KeyLimiter) {
		if d > 0 {
			l.idle = d
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) KeyLimiterOption {
	return func(l *KeyLimiter) {
		l.now = now
	}
}

// NewKeyLimiter creates a KeyLimiter allowing rps requests per second per key
// with the given burst. A burst below 1 is treated as 1.
func NewKeyLimiter(rps float64, burst int, opts ...KeyLimiterOption) *KeyLimiter {
	if burst < 1 {
		burst = 1
	}
	l := &KeyLimiter{
		limiters: make(map[string]*keyLimit),
		rps:      rps,
		burst:    burst,
		idle:     DefaultIdleTimeout,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.lastSweep = l.now()
	return l
}

// Allow reports whether a request for key may proceed now.
func (l *KeyLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	kl, ok := l.limiters[key]
	if !ok {
		kl = &keyLimit{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
		l.limiters[key] = kl
	}
	kl.lastSeen = now
	return kl.limiter.AllowN(now, 1)
}

// Len returns the number of keys currently tracked.
func (l *KeyLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

func (l *KeyLimiter) sweep(now time.Time) {
	for key, kl := range l.limiters {
		if now.Sub(kl.lastSeen) >= l.idle {
			delete(l.limiters, key)
		}
	}
	l.lastSweep = now
}
