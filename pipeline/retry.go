package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/sitedraft"
)

// GenerateFunc produces a model response for a prompt.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

// LogFunc receives printf-style retry notices.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the waits between generation attempts: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// GenerateWithRetryDelays calls generate, then calls it again after each of
// delays for as long as it keeps failing. EINVALID errors end the attempts
// early, as does ctx. The last error is returned.
func GenerateWithRetryDelays(ctx context.Context, prompt string, generate GenerateFunc, logf LogFunc, delays []time.Duration) (string, error) {
	text, err := generate(ctx, prompt)
	for i, delay := range delays {
		if !retryable(err) {
			break
		}
		if logf != nil {
			logf("  retry generate (attempt %d): %v", i+2, err)
		}
		if err := wait(ctx, delay); err != nil {
			return "", err
		}
		text, err = generate(ctx, prompt)
	}
	if err != nil {
		return "", err
	}
	return text, nil
}

func retryable(err error) bool {
	return err != nil && sitedraft.ErrorCode(err) != sitedraft.EINVALID
}

// wait sleeps for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
