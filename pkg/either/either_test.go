package either

import (
	"testing"
)

func TestLeft(t *testing.T) {
	t.Parallel()
	e := Left[int, string](5)

	if !e.IsLeft() || e.IsRight() {
		t.Fatalf("expected a left Either, got: isLeft=%v, isRight=%v", e.IsLeft(), e.IsRight())
	}
	if e.Left() != 5 {
		t.Fatalf("expected left value 5, got %v", e.Left())
	}
}

func TestRight(t *testing.T) {
	t.Parallel()
	e := Right[int, string]("oops")

	if e.IsLeft() || !e.IsRight() {
		t.Fatalf("expected a right Either, got: isLeft=%v, isRight=%v", e.IsLeft(), e.IsRight())
	}
	if e.Right() != "oops" {
		t.Fatalf("expected right value 'oops', got %v", e.Right())
	}
}

func TestWrongVariantAccessPanics(t *testing.T) {
	t.Parallel()

	assertPanics(t, "Right() on a left Either", func() {
		Left[int, string](1).Right()
	})
	assertPanics(t, "Left() on a right Either", func() {
		Right[int, string]("x").Left()
	})
}

func TestOf(t *testing.T) {
	t.Parallel()

	l := 3
	if e := Of(&l, "fallback"); !e.IsLeft() || e.Left() != 3 {
		t.Fatalf("expected Left(3), got %+v", e)
	}
	if e := Of[int](nil, "fallback"); !e.IsRight() || e.Right() != "fallback" {
		t.Fatalf("expected Right(fallback), got %+v", e)
	}
}

func TestOfSupplier_LazyOnLeftPath(t *testing.T) {
	t.Parallel()

	l := 3
	called := false
	e := OfSupplier(&l, func() string {
		called = true
		return "fallback"
	})
	if !e.IsLeft() || e.Left() != 3 {
		t.Fatalf("expected Left(3), got %+v", e)
	}
	if called {
		t.Fatalf("right supplier must not be invoked when the left value is present")
	}

	e = OfSupplier[int](nil, func() string { return "fallback" })
	if !e.IsRight() || e.Right() != "fallback" {
		t.Fatalf("expected Right(fallback), got %+v", e)
	}
}

func TestOfRight_LazyOnRightPath(t *testing.T) {
	t.Parallel()

	r := "present"
	called := false
	e := OfRight(func() int {
		called = true
		return 9
	}, &r)
	if !e.IsRight() || e.Right() != "present" {
		t.Fatalf("expected Right(present), got %+v", e)
	}
	if called {
		t.Fatalf("left supplier must not be invoked when the right value is present")
	}

	e = OfRight[int, string](func() int { return 9 }, nil)
	if !e.IsLeft() || e.Left() != 9 {
		t.Fatalf("expected Left(9), got %+v", e)
	}
}

func TestMaybeAccessors(t *testing.T) {
	t.Parallel()

	l := Left[int, string](7)
	if v, ok := l.MaybeLeft(); !ok || v != 7 {
		t.Fatalf("expected MaybeLeft (7, true), got (%v, %v)", v, ok)
	}
	if _, ok := l.MaybeRight(); ok {
		t.Fatalf("expected MaybeRight to report absence on a left Either")
	}

	r := Right[int, string]("x")
	if v, ok := r.MaybeRight(); !ok || v != "x" {
		t.Fatalf("expected MaybeRight (x, true), got (%v, %v)", v, ok)
	}
	if _, ok := r.MaybeLeft(); ok {
		t.Fatalf("expected MaybeLeft to report absence on a right Either")
	}
}

func TestMapBoth_TouchesExactlyOneSide(t *testing.T) {
	t.Parallel()

	e := MapBoth(Left[int, string](5),
		func(l int) int { return l * 2 },
		sentinel[string, string](t, "right func invoked on a left Either"))
	if !e.IsLeft() || e.Left() != 10 {
		t.Fatalf("expected Left(10), got %+v", e)
	}

	e2 := MapBoth(Right[int, string]("e"),
		sentinel[int, int](t, "left func invoked on a right Either"),
		func(r string) string { return r + "!" })
	if !e2.IsRight() || e2.Right() != "e!" {
		t.Fatalf("expected Right(e!), got %+v", e2)
	}
}

func TestMapLeftMapRight(t *testing.T) {
	t.Parallel()

	if e := MapLeft(Left[int, string](5), func(l int) int { return l + 1 }); e.Left() != 6 {
		t.Fatalf("expected Left(6), got %+v", e)
	}
	if e := MapLeft(Right[int, string]("r"), func(l int) int { return l + 1 }); e.Right() != "r" {
		t.Fatalf("expected untouched Right(r), got %+v", e)
	}
	if e := MapRight(Right[int, string]("r"), func(r string) int { return len(r) }); e.Right() != 1 {
		t.Fatalf("expected Right(1), got %+v", e)
	}
}

func TestFlatMapBoth_CanFlipVariant(t *testing.T) {
	t.Parallel()

	flip := FlatMapBoth(Left[int, string](5),
		func(l int) Either[int, string] { return Right[int, string]("flipped") },
		func(r string) Either[int, string] { return Right[int, string](r) })
	if !flip.IsRight() || flip.Right() != "flipped" {
		t.Fatalf("expected Right(flipped), got %+v", flip)
	}
}

func TestFlatMapLeft_RightUntouched(t *testing.T) {
	t.Parallel()

	e := FlatMapLeft(Right[int, string]("kept"), func(l int) Either[string, string] {
		t.Fatalf("left func invoked on a right Either")
		return Left[string, string]("")
	})
	if !e.IsRight() || e.Right() != "kept" {
		t.Fatalf("expected Right(kept), got %+v", e)
	}
}

func TestFold(t *testing.T) {
	t.Parallel()

	got := Fold(Left[int, string](21),
		func(l int) int { return l * 2 },
		func(r string) int { return -1 })
	if got != 42 {
		t.Fatalf("expected 42, got %v", got)
	}

	got = Fold(Right[int, string]("x"),
		func(l int) int { return 0 },
		func(r string) int { return len(r) })
	if got != 1 {
		t.Fatalf("expected 1, got %v", got)
	}
}

func TestConsume(t *testing.T) {
	t.Parallel()

	var seen int
	Left[int, string](9).Consume(
		func(l int) { seen = l },
		func(r string) { t.Fatalf("right consumer invoked on a left Either") })
	if seen != 9 {
		t.Fatalf("expected left consumer to see 9, got %v", seen)
	}
}

func sentinel[In, Out any](t *testing.T, msg string) func(In) Out {
	t.Helper()
	return func(In) Out {
		t.Fatalf("%s", msg)
		var zero Out
		return zero
	}
}

func assertPanics(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s: expected a panic", name)
		}
	}()
	fn()
}
