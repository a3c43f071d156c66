package result

import (
	"github.com/ib-77/outcome/pkg/either"
	"github.com/ib-77/outcome/pkg/failure"
)

// Result is like either.Either, but the alternate side is always a
// failure.Failure. The zero value is an Ok holding the zero value of E.
type Result[E any] struct {
	value E
	err   failure.Failure
	isErr bool
}

// Ok creates a Result holding a value.
func Ok[E any](value E) Result[E] {
	return Result[E]{value: value}
}

// Err creates a Result holding a failure.
func Err[E any](f failure.Failure) Result[E] {
	return Result[E]{err: f, isErr: true}
}

// Of creates a Result from the value if the pointer is non-nil, or else the
// failure.
func Of[E any](value *E, f failure.Failure) Result[E] {
	if value != nil {
		return Ok(*value)
	}
	return Err[E](f)
}

// OfSupplier creates a Result from the value if the pointer is non-nil, or
// else from the supplied failure. The supplier is only invoked on the err
// path.
func OfSupplier[E any](value *E, failureSup func() failure.Failure) Result[E] {
	if value != nil {
		return Ok(*value)
	}
	return Err[E](failureSup())
}

// OfFailure creates a Result from the failure if it is non-nil, or else from
// the supplied value. The supplier is only invoked on the ok path.
func OfFailure[E any](valueSup func() E, f failure.Failure) Result[E] {
	if f != nil {
		return Err[E](f)
	}
	return Ok(valueSup())
}

// FromEither creates a Result holding the given Either's contents.
func FromEither[E any](e either.Either[E, failure.Failure]) Result[E] {
	return either.Fold(e, Ok[E], Err[E])
}

// ToEither creates an Either holding this Result's contents.
func (r Result[E]) ToEither() either.Either[E, failure.Failure] {
	if r.isErr {
		return either.Right[E, failure.Failure](r.err)
	}
	return either.Left[E, failure.Failure](r.value)
}

// IsOk reports whether this Result holds a value.
func (r Result[E]) IsOk() bool {
	return !r.isErr
}

// IsErr reports whether this Result holds a failure.
func (r Result[E]) IsErr() bool {
	return r.isErr
}

// Value returns the held value. It panics if this Result holds a failure;
// calling it on the wrong variant is a programming error, not a recoverable
// failure.
func (r Result[E]) Value() E {
	if r.isErr {
		panic("result: tried to get value of a failure Result")
	}
	return r.value
}

// Err returns the held failure. It panics if this Result holds a value.
func (r Result[E]) Err() failure.Failure {
	if !r.isErr {
		panic("result: tried to get failure of a value Result")
	}
	return r.err
}

// MaybeValue returns the value and true, or the zero value and false when
// this Result holds a failure.
func (r Result[E]) MaybeValue() (E, bool) {
	return r.value, !r.isErr
}

// MaybeErr returns the failure and true, or nil and false when this Result
// holds a value.
func (r Result[E]) MaybeErr() (failure.Failure, bool) {
	return r.err, r.isErr
}

// Consume passes the held value or failure to exactly one of the consumers.
func (r Result[E]) Consume(onOk func(E), onErr func(failure.Failure)) {
	if r.isErr {
		onErr(r.err)
	} else {
		onOk(r.value)
	}
}

// MapErr maps the failure side of the Result.
func (r Result[E]) MapErr(f func(failure.Failure) failure.Failure) Result[E] {
	if r.isErr {
		return Err[E](f(r.err))
	}
	return r
}

// FlatMapErr flatmaps the failure side of the Result, allowing a failure to
// be recovered into a value.
func (r Result[E]) FlatMapErr(f func(failure.Failure) Result[E]) Result[E] {
	if r.isErr {
		return f(r.err)
	}
	return r
}

// Map transforms the held value; a failure passes through untouched.
func Map[E, E1 any](r Result[E], f func(E) E1) Result[E1] {
	if r.isErr {
		return Err[E1](r.err)
	}
	return Ok(f(r.value))
}

// Then composes a Result-returning step: given an Ok it applies f and returns
// its Result, given an Err it short-circuits and returns the Err unchanged.
func Then[E, E1 any](r Result[E], f func(E) Result[E1]) Result[E1] {
	if r.isErr {
		return Err[E1](r.err)
	}
	return f(r.value)
}

// MapBoth maps the value with onOk or rewrites the failure with onErr.
// Exactly one function is invoked.
func MapBoth[E, E1 any](r Result[E], onOk func(E) E1, onErr func(failure.Failure) failure.Failure) Result[E1] {
	if r.isErr {
		return Err[E1](onErr(r.err))
	}
	return Ok(onOk(r.value))
}

// FlatMapBoth flatmaps both sides of the Result.
func FlatMapBoth[E, E1 any](r Result[E], onOk func(E) Result[E1], onErr func(failure.Failure) Result[E1]) Result[E1] {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// Finally collapses the Result to a value of a single type. Exactly one
// function is invoked.
func Finally[E, T any](r Result[E], onOk func(E) T, onErr func(failure.Failure) T) T {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.value)
}
