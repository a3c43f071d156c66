package result

import (
	"github.com/ib-77/outcome/pkg/either"
	"github.com/ib-77/outcome/pkg/failure"
)

// Verify checks the value side of a Result. If r holds a value and check
// yields a failure for it, the result is an Err of that failure; otherwise
// the result is equal to the input.
func Verify[E any](r Result[E], check func(E) failure.Failure) Result[E] {
	return Then(r, func(v E) Result[E] {
		return OfFailure(func() E { return v }, check(v))
	})
}

// BubbleErrorsUp aggregates a slice of Results. If every element is ok, it
// returns an Ok of the unwrapped values in order. Otherwise it returns an Err
// of all the failures found, in encounter order, combined with join.
func BubbleErrorsUp[E any](list []Result[E], join func([]failure.Failure) failure.Failure) Result[[]E] {
	eithers := make([]either.Either[E, failure.Failure], len(list))
	for i, r := range list {
		eithers[i] = r.ToEither()
	}
	return FromEither(either.BubbleErrorsUp(eithers, join))
}

// Collect is BubbleErrorsUp with the default joiner: several failures are
// aggregated into a failure.Multi, a lone failure is kept as-is.
func Collect[E any](list []Result[E]) Result[[]E] {
	return BubbleErrorsUp(list, failure.Join)
}

// VerifyList checks every element of an ok-held slice with check, then
// bubbles the per-element outcomes up: all elements passing leaves the input
// unchanged, any element failing yields an Err of the combined failures. An
// err input passes through untouched.
func VerifyList[E any](r Result[[]E], check func(E) failure.Failure, join func([]failure.Failure) failure.Failure) Result[[]E] {
	return FlatMapBoth(r, func(vs []E) Result[[]E] {
		checked := make([]Result[E], len(vs))
		for i, v := range vs {
			checked[i] = Verify(Ok(v), check)
		}
		return BubbleErrorsUp(checked, join)
	}, Err[[]E])
}
