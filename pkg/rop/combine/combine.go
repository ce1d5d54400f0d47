package combine

import (
	"context"
	"errors"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/async"
)

// All collects the values of results in order. The first failure is returned
// as is and the remaining results are not inspected. No input gives an empty,
// non-nil slice.
func All[T any](results ...rop.Result[T]) rop.Result[[]T] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.IsSuccess() {
			return rop.FailFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rop.Success(values)
}

// AllOf is the lazy form of All: producers run one at a time, in order, and
// none runs after the first failure or once ctx is done.
func AllOf[T any](ctx context.Context, producers ...func(ctx context.Context) rop.Result[T]) rop.Result[[]T] {
	values := make([]T, 0, len(producers))
	for _, produce := range producers {
		if ctx.Err() != nil {
			return rop.Cancel[[]T](context.Cause(ctx))
		}

		r := rop.Safe(func() rop.Result[T] { return produce(ctx) })
		if !r.IsSuccess() {
			return rop.FailFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rop.Success(values)
}

// TryAsync runs f on a goroutine and waits for it. Returned errors and panics
// become failures; an expired ctx yields a cancelled result.
func TryAsync[T any](ctx context.Context, f func(ctx context.Context) (T, error)) rop.Result[T] {
	if ctx.Err() != nil {
		return rop.Cancel[T](context.Cause(ctx))
	}
	return async.FromPromise(ctx, rop.Go(func() (T, error) { return f(ctx) }))
}

// BridgeCallback adapts a callback-style API: f receives a callback following
// the (value, error) convention. Only the first callback invocation counts.
// A panic raised while calling f is captured as a failure, except a
// *rop.ProgrammingError.
func BridgeCallback[T any](ctx context.Context, f func(callback func(v T, err error))) rop.Result[T] {
	p, settle := rop.NewPromise[T]()

	func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				settle(zero, rop.Recovered(r))
			}
		}()
		f(settle)
	}()

	return async.FromPromise(ctx, p)
}

// FromPredicate succeeds with v when predicate holds, else fails with message.
func FromPredicate[T any](v T, predicate func(T) bool, message string) rop.Result[T] {
	if predicate(v) {
		return rop.Success(v)
	}
	return rop.Fail[T](errors.New(message))
}

// MapResult is a context-free map.
func MapResult[In, Out any](r rop.Result[In], f func(In) Out) rop.Result[Out] {
	if !r.IsSuccess() {
		return rop.FailFrom[In, Out](r)
	}
	return rop.Success(f(r.Value()))
}

// WithFallback replaces a failure by a success holding fallback.
func WithFallback[T any](r rop.Result[T], fallback T) rop.Result[T] {
	return r.OrElse(rop.Success(fallback))
}
