// Package combine holds free functions composing one or more Results:
// All/AllOf (first failure wins), Parallel (AllOf on a bounded worker pool),
// TryAsync and BridgeCallback (catch boundaries for goroutine and callback
// based code), FromPredicate, MapResult and WithFallback.
//
// Retrying lives in package retry.
package combine
