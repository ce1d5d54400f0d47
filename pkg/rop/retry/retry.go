package retry

import (
	"context"
	"log/slog"
	"time"

	goretry "github.com/sethvargo/go-retry"

	"github.com/ib-77/railway/pkg/rop"
)

// Options configures Do.
type Options struct {
	// MaxAttempts is the number of retries after the first attempt
	MaxAttempts int
	// Delay is the first wait; every following wait is doubled
	Delay time.Duration
	// ShouldRetry filters failures worth retrying (nil retries all of them)
	ShouldRetry func(err error) bool
	// OnRetry is called before each wait for observability
	OnRetry func(attempt int, err error, nextDelay time.Duration)
	// Logger receives debug records for each retry (optional)
	Logger *slog.Logger
	// After creates a timer channel (for testing, defaults to time.After)
	After func(d time.Duration) <-chan time.Time
}

func (o Options) normalize() Options {
	if o.MaxAttempts < 0 {
		o.MaxAttempts = 0
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.After == nil {
		o.After = time.After
	}
	return o
}

func (o Options) backoff() goretry.Backoff {
	var b goretry.Backoff
	if o.Delay > 0 {
		b = goretry.NewExponential(o.Delay)
	} else {
		b = goretry.BackoffFunc(func() (time.Duration, bool) { return 0, false })
	}
	return goretry.WithMaxRetries(uint64(o.MaxAttempts), b)
}

// Do runs f until it succeeds or the attempts are exhausted.
// When ctx is done before an attempt or during a wait, a cancelled Result is
// returned.
func Do[T any](ctx context.Context, f func(ctx context.Context) rop.Result[T], opts Options) rop.Result[T] {
	opts = opts.normalize()
	backoff := opts.backoff()

	for attempt := 1; ; attempt++ {
		if ctx.Err() != nil {
			return rop.Cancel[T](context.Cause(ctx))
		}

		res := rop.Safe(func() rop.Result[T] { return f(ctx) })
		if res.IsSuccess() {
			if attempt > 1 {
				opts.Logger.DebugContext(ctx, "retry succeeded", slog.Int("attempt", attempt))
			}
			return res
		}

		err := res.Err()
		if opts.ShouldRetry != nil && !opts.ShouldRetry(err) {
			opts.Logger.DebugContext(ctx, "retry aborted, failure is not retryable",
				slog.Int("attempt", attempt), slog.Any("error", err))
			return res
		}

		next, stop := backoff.Next()
		if stop {
			opts.Logger.DebugContext(ctx, "retry attempts exhausted",
				slog.Int("attempts", attempt), slog.Any("error", err))
			return res
		}

		if opts.OnRetry != nil {
			opts.OnRetry(attempt, err, next)
		}
		opts.Logger.DebugContext(ctx, "retrying",
			slog.Int("attempt", attempt),
			slog.Duration("delay", next),
			slog.String("result_id", res.Id().String()),
			slog.Any("error", err))

		select {
		case <-ctx.Done():
			return rop.Cancel[T](context.Cause(ctx))
		case <-opts.After(next):
		}
	}
}

// DoFunc is Do for Go-style (T, error) functions.
func DoFunc[T any](ctx context.Context, f func(ctx context.Context) (T, error), opts Options) rop.Result[T] {
	return Do(ctx, func(ctx context.Context) rop.Result[T] {
		return rop.FromThrowable(func() (T, error) { return f(ctx) })
	}, opts)
}
