// Package async implements the asynchronous, cancellation-aware analogues of
// the solo operators.
//
// Each operator runs its work on a goroutine and races completion against
// ctx.Done(). The context is checked eagerly before any work starts and then
// raced while the work is in flight. When the context wins, a cancelled
// Result is returned at once and the work is abandoned: it keeps running to
// completion in the background and its outcome is dropped. Nothing is killed.
package async
