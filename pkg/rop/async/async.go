package async

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
)

// Map runs onSuccess for a successful input on a new goroutine.
// A failed input is propagated without calling onSuccess, an expired ctx
// yields a cancelled result without calling it, and an error or panic from
// onSuccess becomes a failure.
func Map[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) (Out, error)) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}
	if ctx.Err() != nil {
		return cancelled[Out](ctx)
	}

	v := input.Value()
	return FromPromise(ctx, rop.Go(func() (Out, error) {
		return onSuccess(ctx, v)
	}))
}

// FlatMap is Map for functions already returning a Result; that Result is
// returned as is.
func FlatMap[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}
	if ctx.Err() != nil {
		return cancelled[Out](ctx)
	}

	v := input.Value()
	p := rop.Go(func() (rop.Result[Out], error) {
		return rop.Safe(func() rop.Result[Out] { return onSuccess(ctx, v) }), nil
	})

	select {
	case <-p.Done():
		outer := p.Wait()
		if outer.IsFailure() {
			return rop.FailFrom[rop.Result[Out], Out](outer)
		}
		return outer.Value()
	case <-ctx.Done():
		return cancelled[Out](ctx)
	}
}

// FromPromise bridges an external asynchronous source into a Result with the
// same cancellation contract as Map.
func FromPromise[T any](ctx context.Context, p *rop.Promise[T]) rop.Result[T] {
	if ctx.Err() != nil {
		return cancelled[T](ctx)
	}

	select {
	case <-p.Done():
		return p.Wait()
	case <-ctx.Done():
		return cancelled[T](ctx)
	}
}

// Mapping is the non-blocking form of Map: the returned channel delivers
// exactly one Result and is then closed.
func Mapping[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) (Out, error)) <-chan rop.Result[Out] {

	out := make(chan rop.Result[Out], 1)
	go func() {
		defer close(out)
		out <- Map(ctx, input, onSuccess)
	}()
	return out
}

func cancelled[T any](ctx context.Context) rop.Result[T] {
	return rop.Cancel[T](context.Cause(ctx))
}
