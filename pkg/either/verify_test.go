package either

import (
	"fmt"
	"strings"
	"testing"
)

func concat(errs []string) string {
	return strings.Join(errs, "")
}

func TestVerify_PassLeavesLeft(t *testing.T) {
	t.Parallel()

	e := Verify(Left[int, string](4), func(l int) (string, bool) {
		return "", false
	})
	if !e.IsLeft() || e.Left() != 4 {
		t.Fatalf("expected Left(4) after passing verification, got %+v", e)
	}
}

func TestVerify_FailFlipsRight(t *testing.T) {
	t.Parallel()

	e := Verify(Left[int, string](4), func(l int) (string, bool) {
		return fmt.Sprintf("%d is bad", l), true
	})
	if !e.IsRight() || e.Right() != "4 is bad" {
		t.Fatalf("expected Right(4 is bad), got %+v", e)
	}
}

func TestVerify_RightUntouched(t *testing.T) {
	t.Parallel()

	e := Verify(Right[int, string]("already"), func(l int) (string, bool) {
		t.Fatalf("check invoked on a right Either")
		return "", false
	})
	if !e.IsRight() || e.Right() != "already" {
		t.Fatalf("expected Right(already), got %+v", e)
	}
}

func TestBubbleErrorsUp_AllLeft(t *testing.T) {
	t.Parallel()

	list := []Either[int, string]{
		Left[int, string](1),
		Left[int, string](2),
		Left[int, string](3),
	}
	e := BubbleErrorsUp(list, concat)
	if !e.IsLeft() {
		t.Fatalf("expected a left aggregate, got %+v", e)
	}
	got := e.Left()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3] in order, got %v", got)
	}
}

func TestBubbleErrorsUp_AnyRightForcesRight(t *testing.T) {
	t.Parallel()

	list := []Either[int, string]{
		Left[int, string](1),
		Right[int, string]("a"),
		Left[int, string](3),
		Right[int, string]("b"),
	}
	e := BubbleErrorsUp(list, concat)
	if !e.IsRight() {
		t.Fatalf("expected a right aggregate, got %+v", e)
	}
	if e.Right() != "ab" {
		t.Fatalf("expected right values joined in encounter order as 'ab', got %q", e.Right())
	}
}

func TestBubbleErrorsUp_Empty(t *testing.T) {
	t.Parallel()

	e := BubbleErrorsUp[int](nil, concat)
	if !e.IsLeft() || len(e.Left()) != 0 {
		t.Fatalf("expected Left of an empty list, got %+v", e)
	}
}

func TestVerifyList_AllPassKeepsList(t *testing.T) {
	t.Parallel()

	e := VerifyList(Left[[]int, string]([]int{1, 2, 3}),
		func(l int) (string, bool) { return "", false },
		concat)
	if !e.IsLeft() {
		t.Fatalf("expected the original list back, got %+v", e)
	}
	got := e.Left()
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("expected [1 2 3] unchanged, got %v", got)
	}
}

func TestVerifyList_OneFailure(t *testing.T) {
	t.Parallel()

	e := VerifyList(Left[[]int, string]([]int{1, 2, 3}),
		func(l int) (string, bool) {
			if l == 2 {
				return "2 is bad", true
			}
			return "", false
		},
		concat)
	if !e.IsRight() || e.Right() != "2 is bad" {
		t.Fatalf("expected Right(2 is bad), got %+v", e)
	}
}

func TestVerifyList_RightPassesThrough(t *testing.T) {
	t.Parallel()

	e := VerifyList(Right[[]int, string]("upstream"),
		func(l int) (string, bool) {
			t.Fatalf("check invoked on a right Either")
			return "", false
		},
		concat)
	if !e.IsRight() || e.Right() != "upstream" {
		t.Fatalf("expected Right(upstream), got %+v", e)
	}
}
