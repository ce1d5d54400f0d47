package rop

import (
	"context"
	"sync"
)

// Promise is a single-shot asynchronous outcome. It settles exactly once,
// either resolved with a value or rejected with an error; later settle calls
// are ignored.
type Promise[T any] struct {
	done  chan struct{}
	once  sync.Once
	value T
	err   error
}

// NewPromise returns a pending promise and the function that settles it.
// A non-nil error rejects the promise.
func NewPromise[T any]() (*Promise[T], func(v T, err error)) {
	p := &Promise[T]{done: make(chan struct{})}
	return p, p.settle
}

// Go runs f on a new goroutine. A panic in f rejects the promise.
func Go[T any](f func() (T, error)) *Promise[T] {
	p, settle := NewPromise[T]()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero T
				settle(zero, Normalize(r))
			}
		}()
		settle(f())
	}()

	return p
}

func Resolved[T any](v T) *Promise[T] {
	p, settle := NewPromise[T]()
	settle(v, nil)
	return p
}

func Rejected[T any](err error) *Promise[T] {
	if err == nil {
		err = ErrNilFailure
	}
	p, settle := NewPromise[T]()
	var zero T
	settle(zero, err)
	return p
}

func (p *Promise[T]) settle(v T, err error) {
	p.once.Do(func() {
		p.value = v
		p.err = err
		close(p.done)
	})
}

// Done is closed once the promise has settled.
func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the promise settles and returns it as a Result.
func (p *Promise[T]) Wait() Result[T] {
	<-p.done
	if p.err != nil {
		return Fail[T](p.err)
	}
	return Success(p.value)
}

// Await blocks until the promise settles or ctx is done, whichever comes
// first. On ctx expiry the promise is abandoned, not stopped.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, context.Cause(ctx)
	}
}
