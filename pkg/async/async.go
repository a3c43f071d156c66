package async

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/outcome/pkg/either"
	"github.com/ib-77/outcome/pkg/failure"
	"github.com/ib-77/outcome/pkg/result"
)

// Task is a pending computation. It runs on a goroutine of the bridge's
// choosing and reports trouble through its error return.
type Task[T any] func(ctx context.Context) (T, error)

// ErrNoResult reports a future channel that closed without delivering a
// value.
var ErrNoResult = errors.New("async: future closed without a result")

// TaskFailure is a failure arising from executing a task: an error return,
// a panic, or cancellation of the task's context.
type TaskFailure struct {
	description string
	err         error
}

func (f *TaskFailure) Description() string { return f.description }

func (f *TaskFailure) Cause() failure.Failure { return nil }

func (f *TaskFailure) Unwrap() error { return f.err }

// Cancelled reports whether this failure came from context cancellation or
// deadline expiry. At this layer cancellation is not otherwise distinguished
// from any other fault.
func (f *TaskFailure) Cancelled() bool {
	return errors.Is(f.err, context.Canceled) || errors.Is(f.err, context.DeadlineExceeded)
}

// Translate is the default error translator: a TaskFailure described by the
// error's text, retaining the error itself.
func Translate(err error) failure.Failure {
	return &TaskFailure{description: err.Error(), err: err}
}

// Run executes a task on its own goroutine and returns a channel that always
// delivers exactly one Result and closes. Task errors, panics and context
// cancellation arrive in-band as Err values translated with Translate; the
// channel itself never fails.
func Run[T any](ctx context.Context, task Task[T]) <-chan result.Result[T] {
	return RunWith(ctx, task, Translate)
}

// RunWith is Run with a caller-supplied error translator.
func RunWith[T any](ctx context.Context, task Task[T], translate func(error) failure.Failure) <-chan result.Result[T] {
	out := make(chan result.Result[T], 1)
	go func() {
		defer close(out)
		v, err := runTask(ctx, task)
		if err != nil {
			out <- result.Err[T](translate(err))
			return
		}
		out <- result.Ok(v)
	}()
	return out
}

// Unwrap turns an Either holding a pending task on the left into a future
// Either of the task's outcome: the task's value on the left, or a
// translated execution fault on the right. A right input passes through
// untouched. The completion of the task always precedes the outer Either
// becoming observable.
func Unwrap[L, R any](ctx context.Context, e either.Either[Task[L], R], translate func(error) R) <-chan either.Either[L, R] {
	out := make(chan either.Either[L, R], 1)
	go func() {
		defer close(out)
		out <- either.FlatMapLeft(e, func(task Task[L]) either.Either[L, R] {
			v, err := runTask(ctx, task)
			if err != nil {
				return either.Right[L, R](translate(err))
			}
			return either.Left[L, R](v)
		})
	}()
	return out
}

// UnwrapResult is Unwrap for an Either whose right side is already a
// Failure, delivering a Result and translating execution faults with
// Translate.
func UnwrapResult[L any](ctx context.Context, e either.Either[Task[L], failure.Failure]) <-chan result.Result[L] {
	out := make(chan result.Result[L], 1)
	go func() {
		defer close(out)
		out <- result.FromEither(<-Unwrap(ctx, e, Translate))
	}()
	return out
}

// Await blocks until the future delivers its Result, or until ctx is done,
// whichever comes first. Cancellation and a closed-empty channel are reported
// as Err like any other fault.
func Await[T any](ctx context.Context, fut <-chan result.Result[T]) result.Result[T] {
	select {
	case r, ok := <-fut:
		if !ok {
			return result.Err[T](Translate(ErrNoResult))
		}
		return r
	case <-ctx.Done():
		return result.Err[T](Translate(ctx.Err()))
	}
}

// Then composes futures: once fut delivers an Ok, step is started with its
// value and Then's future delivers the step's outcome. An Err short-circuits
// past step. This is the asynchronous analogue of result.Then.
func Then[In, Out any](ctx context.Context, fut <-chan result.Result[In], step func(ctx context.Context, v In) <-chan result.Result[Out]) <-chan result.Result[Out] {
	out := make(chan result.Result[Out], 1)
	go func() {
		defer close(out)
		r := Await(ctx, fut)
		if f, bad := r.MaybeErr(); bad {
			out <- result.Err[Out](f)
			return
		}
		out <- Await(ctx, step(ctx, r.Value()))
	}()
	return out
}

func runTask[T any](ctx context.Context, task Task[T]) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("task panicked: %v", p)
		}
	}()
	if err = ctx.Err(); err != nil {
		return v, err
	}
	return task(ctx)
}
