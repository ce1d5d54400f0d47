// Package retry re-runs a Result-producing function with exponential backoff.
//
// Attempts are strictly sequential: one initial try plus at most MaxAttempts
// retries. Between two attempts the wait starts at Delay and doubles each
// time; there is no wait after the last attempt. Panics count as failures.
// The first success is returned, otherwise the last failure.
//
//	res := retry.Do(ctx, fetchUser, retry.Options{MaxAttempts: 3, Delay: 100 * time.Millisecond})
//
// The backoff sequence comes from github.com/sethvargo/go-retry; the waiting
// itself is done here so the context and the clock stay under our control.
package retry
