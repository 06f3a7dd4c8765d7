package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyDoSucceedsAfterFailures(t *testing.T) {
	p := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	calls := 0
	err := p.Do(context.Background(), func(attempt int) error {
		calls++
		assert.Equal(t, calls, attempt)
		if attempt < 3 {
			return errors.New("transient")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPolicyDoExhaustsAttempts(t *testing.T) {
	p := Policy{MaxAttempts: 3, Delay: time.Millisecond}

	sentinel := errors.New("still broken")
	calls := 0
	err := p.Do(context.Background(), func(int) error {
		calls++
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestPolicyDoStopsOnCancellation(t *testing.T) {
	p := Policy{MaxAttempts: 5, Delay: time.Minute}

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- p.Do(ctx, func(int) error {
			calls++
			return errors.New("fail")
		})
	}()

	// Let the first attempt run, then cancel during the inter-attempt sleep.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("retry loop did not stop on cancellation")
	}
}

func TestPolicyDoZeroAttemptsUsesDefault(t *testing.T) {
	p := Policy{Delay: time.Millisecond}

	calls := 0
	_ = p.Do(context.Background(), func(int) error {
		calls++
		return errors.New("fail")
	})
	assert.Equal(t, DefaultMaxAttempts, calls)
}
