package either

// Either holds a value of one of two types, designated left and right.
// Exactly one side is populated; the zero value is a left Either holding
// the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates a left Either with the given value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value}
}

// Right creates a right Either with the given value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// Of creates an Either from the left value if the pointer is non-nil,
// or else the right value.
func Of[L, R any](left *L, right R) Either[L, R] {
	if left != nil {
		return Left[L, R](*left)
	}
	return Right[L, R](right)
}

// OfSupplier creates an Either from the left value if the pointer is non-nil,
// or else from the supplied right value. The supplier is only invoked on the
// right path.
func OfSupplier[L, R any](left *L, rightSup func() R) Either[L, R] {
	if left != nil {
		return Left[L, R](*left)
	}
	return Right[L, R](rightSup())
}

// OfRight creates an Either from the right value if the pointer is non-nil,
// or else from the supplied left value. The supplier is only invoked on the
// left path.
func OfRight[L, R any](leftSup func() L, right *R) Either[L, R] {
	if right != nil {
		return Right[L, R](*right)
	}
	return Left[L, R](leftSup())
}

// IsLeft reports whether this Either holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether this Either holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value. It panics if this Either holds a right value;
// calling it on the wrong variant is a programming error, not a recoverable
// failure.
func (e Either[L, R]) Left() L {
	if e.isRight {
		panic("either: tried to get left value of a right Either")
	}
	return e.left
}

// Right returns the right value. It panics if this Either holds a left value.
func (e Either[L, R]) Right() R {
	if !e.isRight {
		panic("either: tried to get right value of a left Either")
	}
	return e.right
}

// MaybeLeft returns the left value and true, or the zero value and false when
// this Either holds a right value.
func (e Either[L, R]) MaybeLeft() (L, bool) {
	return e.left, !e.isRight
}

// MaybeRight returns the right value and true, or the zero value and false
// when this Either holds a left value.
func (e Either[L, R]) MaybeRight() (R, bool) {
	return e.right, e.isRight
}

// Consume passes the held value to exactly one of the two consumers.
func (e Either[L, R]) Consume(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// MapBoth maps both sides of the Either. Exactly one function is invoked.
func MapBoth[L, R, L1, R1 any](e Either[L, R], onLeft func(L) L1, onRight func(R) R1) Either[L1, R1] {
	if e.isRight {
		return Right[L1, R1](onRight(e.right))
	}
	return Left[L1, R1](onLeft(e.left))
}

// MapLeft maps the left side of the Either.
func MapLeft[L, R, L1 any](e Either[L, R], onLeft func(L) L1) Either[L1, R] {
	return MapBoth(e, onLeft, identity[R])
}

// MapRight maps the right side of the Either.
func MapRight[L, R, R1 any](e Either[L, R], onRight func(R) R1) Either[L, R1] {
	return MapBoth(e, identity[L], onRight)
}

// FlatMapBoth flatmaps both sides of the Either, allowing either function to
// change the variant of the output.
func FlatMapBoth[L, R, L1, R1 any](e Either[L, R], onLeft func(L) Either[L1, R1], onRight func(R) Either[L1, R1]) Either[L1, R1] {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// FlatMapLeft flatmaps the left side of the Either.
func FlatMapLeft[L, R, L1 any](e Either[L, R], onLeft func(L) Either[L1, R]) Either[L1, R] {
	return FlatMapBoth(e, onLeft, Right[L1, R])
}

// FlatMapRight flatmaps the right side of the Either.
func FlatMapRight[L, R, R1 any](e Either[L, R], onRight func(R) Either[L, R1]) Either[L, R1] {
	return FlatMapBoth(e, Left[L, R1], onRight)
}

// Fold collapses the Either to a value of a single type. Exactly one function
// is invoked.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func identity[T any](v T) T {
	return v
}
