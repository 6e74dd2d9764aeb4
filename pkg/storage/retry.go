package storage

import (
	"context"
	"errors"
	"time"
)

// RetryConfig bounds how many times a transient store failure is retried
// before it surfaces to the caller.
type RetryConfig struct {
	// Attempts is the total number of tries, including the first.
	Attempts int

	// Backoff is the wait after the first failure; it doubles per retry.
	Backoff time.Duration
}

// DefaultRetryConfig returns the retry policy used when nothing is
// overridden.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		Attempts: 3,
		Backoff:  50 * time.Millisecond,
	}
}

// WithRetry runs op, retrying transient failures per the config. Terminal
// errors (not-found, context cancellation) are surfaced immediately: they
// will not succeed on a second try. Only idempotent operations belong here.
func WithRetry(ctx context.Context, config RetryConfig, op func(context.Context) error) error {
	attempts := config.Attempts
	if attempts <= 0 {
		attempts = 1
	}

	backoff := config.Backoff
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		err = op(ctx)
		if err == nil {
			return nil
		}
		if terminal(err) {
			return err
		}
	}

	return err
}

func terminal(err error) bool {
	return IsNotFound(err) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
