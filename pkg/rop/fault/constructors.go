package fault

import (
	"fmt"
	"time"
)

// Sentinels for errors.Is checks against a kind.
var (
	ErrValidation   = sentinel(KindValidation)
	ErrNotFound     = sentinel(KindNotFound)
	ErrUnauthorized = sentinel(KindUnauthorized)
	ErrBusinessRule = sentinel(KindBusinessRule)
	ErrTechnical    = sentinel(KindTechnical)
	ErrTimeout      = sentinel(KindTimeout)
	ErrConcurrency  = sentinel(KindConcurrency)
	ErrCancellation = sentinel(KindCancellation)
)

func sentinel(k Kind) *Fault {
	return &Fault{kind: k, message: k.String(), sentinel: true}
}

func newFault(k Kind, detail string) *Fault {
	msg := detail
	if l := k.label(); l != "" {
		msg = l + ": " + detail
	}
	return &Fault{kind: k, message: msg}
}

// Validation reports input that failed a correctness rule.
func Validation(msg string) *Fault {
	return newFault(KindValidation, msg)
}

// Validationf is Validation with a format string.
func Validationf(format string, args ...any) *Fault {
	return Validation(fmt.Sprintf(format, args...))
}

// NotFound reports an absent resource. id may be empty.
//
//	fault.NotFound("User", "42").Error() // Not Found: User with id '42' was not found
func NotFound(resource, id string) *Fault {
	f := newFault(KindNotFound, subject(resource, id)+" was not found")
	f.resource = resource
	f.id = id
	return f
}

func Unauthorized(msg string) *Fault {
	return newFault(KindUnauthorized, msg)
}

func BusinessRule(msg string) *Fault {
	return newFault(KindBusinessRule, msg)
}

func Technical(msg string) *Fault {
	return newFault(KindTechnical, msg)
}

// Timeout reports that operation exceeded d. The duration is rendered in
// milliseconds.
func Timeout(operation string, d time.Duration) *Fault {
	f := newFault(KindTimeout, fmt.Sprintf("operation '%s' timed out after %dms", operation, d.Milliseconds()))
	f.operation = operation
	f.duration = d
	return f
}

// Concurrency reports a resource modified by another actor. id may be empty.
func Concurrency(resource, id string) *Fault {
	f := newFault(KindConcurrency, subject(resource, id)+" was modified concurrently")
	f.resource = resource
	f.id = id
	return f
}

// Cancellation reports an aborted operation. operationID may be empty.
// Unlike the other kinds its message carries no kind prefix.
func Cancellation(operationID string) *Fault {
	msg := "operation cancelled"
	if operationID != "" {
		msg = fmt.Sprintf("operation '%s' was cancelled", operationID)
	}
	f := newFault(KindCancellation, msg)
	f.operation = operationID
	return f
}

func subject(resource, id string) string {
	if id == "" {
		return resource
	}
	return fmt.Sprintf("%s with id '%s'", resource, id)
}
