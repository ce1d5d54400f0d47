package chain

import (
	"context"

	"github.com/ib-77/railway/pkg/rop"
	"github.com/ib-77/railway/pkg/rop/async"
	"github.com/ib-77/railway/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// FromThrowable starts a chain from a function that may fail or panic
func FromThrowable[T any](ctx context.Context, f func(ctx context.Context) (T, error)) *Chain[T] {
	return Start(ctx, rop.FromThrowable(func() (T, error) { return f(ctx) }))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenAsync is Then with the step raced against the chain context
func ThenAsync[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return Start(c.ctx, async.FlatMap(c.ctx, c.result, onSuccess))
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return Start(c.ctx, solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result rop.Result[T]) {
			onSuccess(ctx, result.Value())
		}))
}

// EnsureError performs a side effect on failure without changing the result
func (c *Chain[T]) EnsureError(onFailure func(context.Context, error)) *Chain[T] {
	return Start(c.ctx, c.result.TapError(func(err error) { onFailure(c.ctx, err) }))
}

// Recover lets a failure produce a new result
func (c *Chain[T]) Recover(onFailure func(context.Context, error) rop.Result[T]) *Chain[T] {
	return Start(c.ctx, c.result.Recover(func(err error) rop.Result[T] { return onFailure(c.ctx, err) }))
}

// OrElse replaces a failure by an already built alternative
func (c *Chain[T]) OrElse(alternative rop.Result[T]) *Chain[T] {
	return Start(c.ctx, c.result.OrElse(alternative))
}

// Match collapses the chain into a final value using solo.Match
func Match[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Match(c.ctx, c.result, onSuccess, onFailure)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
