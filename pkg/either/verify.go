package either

// Verify checks the left side of an Either. If e holds a left value and check
// yields a right value for it, the result is a right Either of that output;
// otherwise the result is equal to the input.
func Verify[L, R any](e Either[L, R], check func(L) (R, bool)) Either[L, R] {
	return FlatMapLeft(e, func(l L) Either[L, R] {
		if r, bad := check(l); bad {
			return Right[L, R](r)
		}
		return Left[L, R](l)
	})
}

// BubbleErrorsUp aggregates a slice of Eithers. If every element is
// left-valued, it returns a left Either of the unwrapped values in order.
// Otherwise it returns a right Either of all right values found, in encounter
// order, combined with join; the left values of the remaining elements are
// discarded. A single right element anywhere forces the aggregate right.
func BubbleErrorsUp[L, R1, R any](list []Either[L, R1], join func([]R1) R) Either[[]L, R] {
	var errs []R1
	for _, e := range list {
		if r, ok := e.MaybeRight(); ok {
			errs = append(errs, r)
		}
	}
	if len(errs) > 0 {
		return Right[[]L, R](join(errs))
	}
	values := make([]L, len(list))
	for i, e := range list {
		values[i] = e.Left()
	}
	return Left[[]L, R](values)
}

// VerifyList checks every element of a left-held slice with check, then
// bubbles the per-element outcomes up: all elements passing leaves the input
// unchanged, any element failing yields a right Either of the combined
// failures. A right input passes through untouched.
func VerifyList[L, R1, R any](e Either[[]L, R], check func(L) (R1, bool), join func([]R1) R) Either[[]L, R] {
	return FlatMapBoth(e, func(ls []L) Either[[]L, R] {
		checked := make([]Either[L, R1], len(ls))
		for i, l := range ls {
			checked[i] = Verify(Left[L, R1](l), check)
		}
		return BubbleErrorsUp(checked, join)
	}, Right[[]L, R])
}
