// Package chain provides a fluent wrapper around Result[T]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// It composes functions like Switch, Map, Try, Tee, and Finally behind a
// convenient Chain[T] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue/FromThrowable: begin a chain
// - Then: switch to a new Result[U] via a function
// - ThenAsync: same as Then, run on a goroutine and raced against ctx
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Ensure/EnsureError: run side effects without changing the result
// - Recover/OrElse: give a failure a second chance
// - Finally/Match: collapse the chain into a final value via handlers
package chain
