// Package fault defines the domain error taxonomy carried in the failure
// channel of rop.Result.
//
// Every error is a *Fault tagged with a Kind. Instead of a class hierarchy the
// tag drives both rendering and "is-a" checks:
//
//	err := fault.Timeout("fetch-user", 3*time.Second)
//	errors.Is(err, fault.ErrTimeout)   // true
//	errors.Is(err, fault.ErrTechnical) // true, Timeout is a Technical fault
//
// Faults are immutable. WithCause returns a new Fault that wraps a prior
// error, so cause chains can be walked with errors.Unwrap or flattened with
// Messages without touching the original values.
package fault
