package httputil

import (
	"context"
	"errors"
	"time"
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 5xx responses) with this type
// so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a [RetryableError]. Retryable(nil) is nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err carries a [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Policy bounds how often and how patiently an operation is retried.
type Policy struct {
	Attempts int           // Total tries, at least 1
	Delay    time.Duration // Wait before the second try; doubles afterwards
}

// DefaultPolicy is used by [RetryWithBackoff].
var DefaultPolicy = Policy{Attempts: 3, Delay: time.Second}

// Retry executes fn according to p.
// Only errors wrapped with [RetryableError] are retried; other errors are
// returned immediately. Returns the last error if all attempts fail, or
// ctx.Err() if ctx is cancelled while waiting.
func (p Policy) Retry(ctx context.Context, fn func() error) error {
	attempts := max(p.Attempts, 1)
	delay := p.Delay
	var lastErr error

	for i := range attempts {
		if err := fn(); err == nil {
			return nil
		} else if lastErr = err; !IsRetryable(err) {
			return err
		}

		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

// Retry executes fn up to attempts times with exponential backoff starting at delay.
func Retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	return Policy{Attempts: attempts, Delay: delay}.Retry(ctx, fn)
}

// RetryWithBackoff retries fn with [DefaultPolicy].
func RetryWithBackoff(ctx context.Context, fn func() error) error {
	return DefaultPolicy.Retry(ctx, fn)
}
