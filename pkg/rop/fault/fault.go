package fault

import "time"

// Fault is an immutable, kind-tagged domain error.
// It is private to construction: use the package constructors.
type Fault struct {
	kind      Kind
	message   string
	cause     error
	resource  string
	id        string
	operation string
	duration  time.Duration
	sentinel  bool
}

// Error returns the rendered message, followed by the cause when present.
func (f *Fault) Error() string {
	if f.cause != nil {
		return f.message + ": " + f.cause.Error()
	}
	return f.message
}

// Message returns the rendered message of this fault alone, without its cause.
func (f *Fault) Message() string {
	return f.message
}

func (f *Fault) Kind() Kind {
	return f.kind
}

// Name returns the serialized name of the fault kind, e.g. "ValidationError".
func (f *Fault) Name() string {
	return f.kind.String()
}

func (f *Fault) Cause() error {
	return f.cause
}

// Resource is set for NotFound and Concurrency faults.
func (f *Fault) Resource() string {
	return f.resource
}

// ID is the optional resource identifier of NotFound and Concurrency faults.
func (f *Fault) ID() string {
	return f.id
}

// Operation is set for Timeout faults and for Cancellation faults built with
// an operation id.
func (f *Fault) Operation() string {
	return f.operation
}

// Duration is the exceeded deadline of a Timeout fault.
func (f *Fault) Duration() time.Duration {
	return f.duration
}

// Unwrap returns the cause for standard library compatibility.
func (f *Fault) Unwrap() error {
	return f.cause
}

// Is matches the kind sentinels (ErrValidation, ErrTechnical, ...), honoring
// the Timeout -> Technical specialization.
func (f *Fault) Is(target error) bool {
	t, ok := target.(*Fault)
	if !ok || !t.sentinel {
		return false
	}
	return f.kind.Is(t.kind)
}

// WithCause returns a copy of f wrapping cause. The receiver is unchanged.
func (f *Fault) WithCause(cause error) *Fault {
	c := *f
	c.cause = cause
	c.sentinel = false
	return &c
}
