// Package async bridges pending computations into Result-delivering futures.
// A future here is a single-value channel that always delivers exactly one
// Result and closes: task errors, panics and context cancellation are
// translated into Err values, never propagated as outer faults.
//
// Highlights:
// - Task: a pending computation, func(ctx) (T, error)
// - Run/RunWith: execute a task, delivering Result[T] on a channel
// - Unwrap/UnwrapResult: run the task held on the left of an Either
// - Await: block for a future's single Result
// - Then: asynchronous railway composition of futures
//
// The bridge adds no timeout of its own; bounding a task's runtime is the
// caller's context's job.
package async
