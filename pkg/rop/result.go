package rop

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/railway/pkg/rop/fault"
)

// ErrNilFailure replaces a nil error passed to Fail, so a failure always
// carries an error.
var ErrNilFailure = errors.New("rop: failure constructed with nil error")

// Result holds exactly one of a success value or a failure error.
// All fields are assigned once by the constructors; every operator returns a
// new Result. The zero value is neither success nor failure and is reported
// by IsEmpty.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isCancel  bool
}

// Success wraps v. A zero v is a legal, void-like success.
func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps err as a failure.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Cancelled builds a cancelled failure carrying a Cancellation fault.
// operationID may be empty.
func Cancelled[T any](operationID string) Result[T] {
	return Cancel[T](fault.Cancellation(operationID))
}

// Cancel builds a cancelled failure from err. Unless err already is a
// Cancellation fault it becomes the cause of one, so context.Canceled and
// friends stay visible to errors.Is.
func Cancel[T any](err error) Result[T] {
	if f, ok := err.(*fault.Fault); !ok || f.Kind() != fault.KindCancellation {
		c := fault.Cancellation("")
		if err != nil {
			c = c.WithCause(err)
		}
		err = c
	}
	r := Fail[T](err)
	r.isCancel = true
	return r
}

// FailFrom carries a failure into another value type. The error value, the
// cancel flag, the id and the creation time are preserved.
// It panics with a *ProgrammingError when from is a success.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic(newProgrammingError("FailFrom", "called on a success"))
	}
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// FromThrowable runs f and captures both its returned error and any panic.
// Non-error panic values are converted through their string form. A
// *ProgrammingError panic is not captured.
func FromThrowable[T any](f func() (T, error)) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](Recovered(p))
		}
	}()

	v, err := f()
	if err != nil {
		return Fail[T](err)
	}
	return Success(v)
}

// Safe runs f and turns a panic into a failure, except a *ProgrammingError.
func Safe[T any](f func() Result[T]) (res Result[T]) {
	defer func() {
		if p := recover(); p != nil {
			res = Fail[T](Recovered(p))
		}
	}()
	return f()
}

// Normalize converts a recovered panic value into an error.
func Normalize(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return errors.New(fmt.Sprint(v))
}

// Recovered converts a value returned by recover into an error. A
// *ProgrammingError is raised again.
func Recovered(p any) error {
	if pe, ok := p.(*ProgrammingError); ok {
		panic(pe)
	}
	return Normalize(p)
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsCancelled is true only for results built by Cancel or Cancelled.
func (r Result[T]) IsCancelled() bool {
	return r.isCancel
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

// Value returns the success value.
// It panics with a *ProgrammingError on a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(newProgrammingError("Value", "called on a failure: "+errString(r.err)))
	}
	return r.value
}

// Err returns the failure error.
// It panics with a *ProgrammingError on a success.
func (r Result[T]) Err() error {
	if r.isSuccess {
		panic(newProgrammingError("Err", "called on a success"))
	}
	return r.err
}

// Get unwraps into Go's (value, error) convention and never panics.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// MapError transforms the error of a failure. Successes and the empty Result
// pass through.
func (r Result[T]) MapError(f func(err error) error) Result[T] {
	if !r.IsFailure() {
		return r
	}
	return Fail[T](f(r.err))
}

// Tap calls f with the value of a success and returns r unchanged.
func (r Result[T]) Tap(f func(v T)) Result[T] {
	if r.isSuccess {
		f(r.value)
	}
	return r
}

// TapError calls f with the error of a failure and returns r unchanged.
func (r Result[T]) TapError(f func(err error)) Result[T] {
	if !r.isSuccess && r.err != nil {
		f(r.err)
	}
	return r
}

func (r Result[T]) GetOrElse(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// GetOrCall computes the fallback from the error, only on failure.
func (r Result[T]) GetOrCall(f func(err error) T) T {
	if r.isSuccess {
		return r.value
	}
	return f(r.err)
}

// Recover gives a failure a chance to produce a new Result.
// A panic inside f becomes a failure.
func (r Result[T]) Recover(f func(err error) Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return Safe(func() Result[T] { return f(r.err) })
}

// OrElse returns r on success, alternative otherwise. The alternative is
// built by the caller before the call.
func (r Result[T]) OrElse(alternative Result[T]) Result[T] {
	if r.isSuccess {
		return r
	}
	return alternative
}

// ToPromise converts r into an already settled Promise: resolved with the
// value or rejected with the error.
func (r Result[T]) ToPromise() *Promise[T] {
	if r.isSuccess {
		return Resolved(r.value)
	}
	return Rejected[T](r.err)
}

func (r Result[T]) String() string {
	switch {
	case r.isSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case r.isCancel:
		return fmt.Sprintf("Cancelled(%v)", r.err)
	case r.err != nil:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Empty"
	}
}

func errString(err error) string {
	if err == nil {
		return "<nil>"
	}
	return err.Error()
}
