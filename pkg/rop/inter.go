package rop

import "time"

// Outcome is the type-erased view of a Result
type Outcome interface {
	IsSuccess() bool
	IsFailure() bool
	// IsCancelled returns true if the operation was cancelled
	IsCancelled() bool
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithValue defines an interface for types that can return a value or an error
type WithValue[T any] interface {
	Outcome
	// Get returns the value and the error, never panics
	Get() (T, error)
}

var (
	_ WithValue[int] = Result[int]{}
	_ Outcome        = Result[string]{}
)
