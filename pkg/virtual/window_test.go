package virtual

import (
	"errors"
	"testing"
)

func TestComputeAtTop(t *testing.T) {
	w, err := Compute(1000, 80, 600, 0, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// visibleStart=0, visibleEnd=ceil(600/80)=8, plus 5 overscan.
	if w.Start != 0 || w.End != 13 {
		t.Fatalf("unexpected window [%d,%d]", w.Start, w.End)
	}
	if w.Offset != 0 {
		t.Fatalf("unexpected offset %d", w.Offset)
	}
	if w.TotalHeight != 80000 {
		t.Fatalf("unexpected total height %d", w.TotalHeight)
	}
	if w.Count() != 14 {
		t.Fatalf("unexpected count %d", w.Count())
	}
}

func TestComputeMidScroll(t *testing.T) {
	w, err := Compute(50, 80, 600, 400, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// visibleStart=floor(400/80)=5, visibleEnd=ceil(1000/80)=13.
	if w.Start != 2 || w.End != 16 {
		t.Fatalf("unexpected window [%d,%d]", w.Start, w.End)
	}
	if w.Offset != 2*80 {
		t.Fatalf("unexpected offset %d", w.Offset)
	}
}

func TestComputeClampsToLastItem(t *testing.T) {
	w, err := Compute(10, 80, 600, 5000, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.End != 9 {
		t.Fatalf("end must clamp to itemCount-1, got %d", w.End)
	}
	if w.Start < 0 || w.Start > w.End {
		t.Fatalf("invalid window [%d,%d]", w.Start, w.End)
	}
}

func TestComputeOverscrolledPinsToLastItem(t *testing.T) {
	// A scroll offset far past the content is valid input; the window
	// collapses onto the last item instead of inverting.
	w, err := Compute(10, 80, 600, 5000, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Start != 9 || w.End != 9 {
		t.Fatalf("expected window [9,9], got [%d,%d]", w.Start, w.End)
	}
	if w.Count() != 1 {
		t.Fatalf("unexpected count %d", w.Count())
	}
	if w.Offset != 9*80 {
		t.Fatalf("unexpected offset %d", w.Offset)
	}
}

func TestComputeWindowCoversViewport(t *testing.T) {
	// Whatever the scroll position, the window must hold at least as many
	// items as fit the viewport (when enough items exist).
	fit := ceilDiv(600, 80)
	for scroll := 0; scroll < 4000; scroll += 37 {
		w, err := Compute(1000, 80, 600, scroll, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w.Count() < fit {
			t.Fatalf("scroll %d: window of %d items, viewport fits %d", scroll, w.Count(), fit)
		}
		if w.Start < 0 || w.End >= 1000 {
			t.Fatalf("scroll %d: window out of bounds [%d,%d]", scroll, w.Start, w.End)
		}
	}
}

func TestComputeEmptyList(t *testing.T) {
	w, err := Compute(0, 80, 600, 0, 5)
	if err != nil {
		t.Fatalf("empty list is valid, got error: %v", err)
	}
	if !w.Empty {
		t.Fatalf("expected the empty sentinel")
	}
	if w.Count() != 0 || w.TotalHeight != 0 {
		t.Fatalf("empty window should render nothing")
	}
}

func TestComputeInvalidViewport(t *testing.T) {
	if _, err := Compute(10, 0, 600, 0, 5); !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("expected ErrInvalidViewport for zero item height, got %v", err)
	}
	if _, err := Compute(10, 80, -1, 0, 5); !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("expected ErrInvalidViewport for negative container, got %v", err)
	}
}

func TestComputeNegativeScrollAndOverscan(t *testing.T) {
	w, err := Compute(100, 80, 600, -50, -2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Start != 0 {
		t.Fatalf("negative scroll should clamp to top, got start %d", w.Start)
	}
}
