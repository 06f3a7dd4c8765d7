package llm

import (
	"context"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultRetryDelay  = 2 * time.Second
)

// Policy is a bounded, fixed-delay retry policy. Both extraction paths and
// any future remote call share these semantics: try up to MaxAttempts times,
// sleeping Delay between attempts, no backoff.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy mirrors the service defaults: 3 attempts, 2s apart.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultRetryDelay}
}

// Do invokes fn until it succeeds or attempts are exhausted. The last error
// is returned; a context cancellation ends the loop immediately.
func (p Policy) Do(ctx context.Context, fn func(attempt int) error) error {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		lastErr = fn(attempt)
		if lastErr == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delay):
		}
	}
	return lastErr
}
