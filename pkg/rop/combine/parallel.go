package combine

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/ib-77/railway/pkg/rop"
)

type workerOptionKey struct{}

type workerOptions struct {
	maxCount int
}

// errAborted is the cancel cause handed to producers still running after a
// sibling failed.
var errAborted = errors.New("combine: aborted after a sibling failure")

// WithWorkers limits the number of producers Parallel runs at once.
func WithWorkers(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey{}, workerOptions{maxCount: maxWorkers})
}

func workerCount(ctx context.Context, defaultMax int) int {
	if o, ok := ctx.Value(workerOptionKey{}).(workerOptions); ok && o.maxCount > 0 {
		return o.maxCount
	}
	return defaultMax
}

// Parallel is AllOf with producers running concurrently on a bounded set of
// workers (see WithWorkers, default runtime.NumCPU). Values keep the order of
// producers. The first failure to complete wins: the context passed to the
// other producers is cancelled and nothing new is started.
func Parallel[T any](ctx context.Context, producers ...func(ctx context.Context) rop.Result[T]) rop.Result[[]T] {
	if len(producers) == 0 {
		return rop.Success([]T{})
	}
	if ctx.Err() != nil {
		return rop.Cancel[[]T](context.Cause(ctx))
	}

	runCtx, abort := context.WithCancelCause(ctx)
	defer abort(nil)

	var (
		results = make([]rop.Result[T], len(producers))
		first   rop.Result[T]
		failed  bool
		once    sync.Once
		wg      sync.WaitGroup
		jobs    = make(chan int)
	)

	go func() {
		defer close(jobs)
		for i := range producers {
			select {
			case <-runCtx.Done():
				return
			case jobs <- i:
			}
		}
	}()

	n := min(workerCount(ctx, runtime.NumCPU()), len(producers))
	wg.Add(n)
	for range n {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-runCtx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					r := produce(runCtx, producers[i])
					if !r.IsSuccess() {
						once.Do(func() {
							first, failed = r, true
							abort(errAborted)
						})
						return
					}
					results[i] = r
				}
			}
		}()
	}
	wg.Wait()

	if failed {
		return rop.FailFrom[T, []T](first)
	}
	if ctx.Err() != nil {
		return rop.Cancel[[]T](context.Cause(ctx))
	}

	values := make([]T, len(results))
	for i, r := range results {
		values[i] = r.Value()
	}
	return rop.Success(values)
}

// produce runs f on a worker goroutine. Every panic, a *rop.ProgrammingError
// included, becomes a failure since the caller cannot recover it there.
func produce[T any](ctx context.Context, f func(ctx context.Context) rop.Result[T]) (res rop.Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = rop.Fail[T](rop.Normalize(p))
		}
	}()
	return f(ctx)
}
