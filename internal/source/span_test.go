package source

import "testing"

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}

	got := a.Cover(b)
	if got.Start != 2 || got.End != 8 {
		t.Errorf("expected 2-8, got %d-%d", got.Start, got.End)
	}

	other := Span{File: 2, Start: 0, End: 100}
	if a.Cover(other) != a {
		t.Error("cover across files must be a no-op")
	}
}

func TestSpanEmpty(t *testing.T) {
	if !(Span{Start: 5, End: 5}).Empty() {
		t.Error("zero-length span should be empty")
	}
	if (Span{Start: 5, End: 6}).Empty() {
		t.Error("non-zero span should not be empty")
	}
	if (Span{Start: 5, End: 9}).Len() != 4 {
		t.Error("expected Len 4")
	}
}
