// Package httputil provides retry helpers for remote repository clients.
//
// [Retry] re-runs an operation with exponential backoff, but only when the
// operation reports a transient failure by wrapping it in [RetryableError]:
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    resp, err := client.Do(req)
//	    if err != nil {
//	        return httputil.Retryable(err)
//	    }
//	    ...
//	})
//
// Defaults (see [DefaultPolicy]): 3 attempts, 1 second initial delay,
// doubling after each failure.
package httputil
