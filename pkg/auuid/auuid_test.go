package auuid

import (
	"testing"

	"github.com/google/uuid"
)

const canonical = "8a6e0804-2bd0-4672-b79d-d97027f9071a"

func TestMaybe(t *testing.T) {
	t.Parallel()

	id, ok := Maybe(canonical)
	if !ok || id.String() != canonical {
		t.Fatalf("expected (%s, true), got (%v, %v)", canonical, id, ok)
	}

	if _, ok := Maybe("not-a-uuid"); ok {
		t.Fatalf("expected a parse failure for a malformed string")
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	r := Try(canonical)
	if !r.IsOk() {
		t.Fatalf("expected ok, got %v", r.Err().Description())
	}
	if r.Value() != uuid.MustParse(canonical) {
		t.Fatalf("expected %s, got %v", canonical, r.Value())
	}
}

func TestTry_Failure(t *testing.T) {
	t.Parallel()

	r := Try("not-a-uuid")
	if !r.IsErr() {
		t.Fatalf("expected a failure Result")
	}
	f, ok := r.Err().(*ParseFailure)
	if !ok {
		t.Fatalf("expected a ParseFailure, got %T", r.Err())
	}
	if f.Input() != "not-a-uuid" {
		t.Fatalf("expected the offending input retained, got %q", f.Input())
	}
	if f.Unwrap() == nil {
		t.Fatalf("expected the parser's error retained")
	}
	if f.Cause() != nil {
		t.Fatalf("expected no causing failure on a leaf parse failure")
	}
}
