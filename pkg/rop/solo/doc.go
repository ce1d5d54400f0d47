// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the core building blocks for error-aware
// pipelines without goroutines.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate: apply validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out] (flat map, no double wrapping)
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Match/Finally: reduce to a concrete value via success/error(/cancel) handlers
//
// A failing input is always propagated with the very same error value.
package solo
