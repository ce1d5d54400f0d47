package fault

import (
	"errors"
	"reflect"
)

// KindOf returns the kind of the outermost Fault in err's chain,
// or KindUnknown.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.kind
	}
	return KindUnknown
}

// Is reports whether any Fault in err's chain has kind k, or specializes it.
func Is(err error, k Kind) bool {
	if err == nil || k == KindUnknown {
		return false
	}
	return errors.Is(err, sentinel(k))
}

func IsValidation(err error) bool   { return Is(err, KindValidation) }
func IsNotFound(err error) bool     { return Is(err, KindNotFound) }
func IsTechnical(err error) bool    { return Is(err, KindTechnical) }
func IsTimeout(err error) bool      { return Is(err, KindTimeout) }
func IsCancellation(err error) bool { return Is(err, KindCancellation) }

// IsRetryable reports whether the outermost Fault describes a transient
// failure (Technical, Timeout, Concurrency). Errors outside the taxonomy are
// permanent.
func IsRetryable(err error) bool {
	return KindOf(err).retryable()
}

// Messages flattens err's cause chain into messages ordered from the outermost
// error to the innermost cause. Faults contribute Message(), other errors
// Error(). Joined errors are visited breadth first.
func Messages(err error) []string {
	if err == nil {
		return nil
	}

	var out []string
	seen := make(map[error]bool)
	queue := []error{err}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		// slice or map backed errors cannot be map keys
		if reflect.TypeOf(current).Comparable() {
			if seen[current] {
				continue
			}
			seen[current] = true
		}

		if f, ok := current.(*Fault); ok {
			out = append(out, f.message)
		} else {
			out = append(out, current.Error())
		}

		if joined, ok := current.(interface{ Unwrap() []error }); ok {
			queue = append(queue, joined.Unwrap()...)
		} else if next := errors.Unwrap(current); next != nil {
			queue = append(queue, next)
		}
	}

	return out
}
