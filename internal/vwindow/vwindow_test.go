package vwindow

import "testing"

func TestAdoptsIdealRangeFirst(t *testing.T) {
	t.Parallel()

	e := New(2, 100)
	r := e.Compute(0, 10, 1, 1000)
	if r.Start != 0 {
		t.Fatalf("expected start 0, got %d", r.Start)
	}
	if r.End != 12 {
		t.Fatalf("expected end = visible 10 + overscan 2, got %d", r.End)
	}
	if r.TotalHeight != 1000 {
		t.Fatalf("expected total height 1000, got %d", r.TotalHeight)
	}
}

func TestSpacerGeometry(t *testing.T) {
	t.Parallel()

	e := New(0, 100)
	r := e.Compute(500, 50, 10, 200)
	if r.Start != 50 {
		t.Fatalf("expected start 50, got %d", r.Start)
	}
	if r.OffsetY != 500 {
		t.Fatalf("expected offset = start*rowHeight, got %d", r.OffsetY)
	}
	if r.TotalHeight != 2000 {
		t.Fatalf("expected total = rowCount*rowHeight, got %d", r.TotalHeight)
	}
}

func TestMonotonicGrowthWhileScrollingDown(t *testing.T) {
	t.Parallel()

	e := New(3, 500)
	prev := e.Compute(0, 20, 1, 1000)
	for scroll := 5; scroll <= 100; scroll += 5 {
		r := e.Compute(scroll, 20, 1, 1000)
		if r.Start > prev.Start {
			t.Fatalf("scroll %d: start grew from %d to %d", scroll, prev.Start, r.Start)
		}
		if r.End < prev.End {
			t.Fatalf("scroll %d: end shrank from %d to %d", scroll, prev.End, r.End)
		}
		prev = r
	}
}

func TestCapTrimsTowardScrollDirection(t *testing.T) {
	t.Parallel()

	e := New(2, 30)
	e.Compute(0, 20, 1, 1000)
	// Scroll down so the merged range would blow the cap while the new
	// ideal range still overlaps the stable one.
	r := e.Compute(20, 20, 1, 1000)

	if r.Len() > 30 {
		t.Fatalf("expected range capped at 30 rows, got %d", r.Len())
	}
	// The ideal range [18, 42) must stay fully materialized.
	if r.Start > 18 || r.End < 42 {
		t.Fatalf("expected ideal range inside trimmed result, got [%d,%d)", r.Start, r.End)
	}
	// Scrolling down keeps more buffer below the viewport than above.
	below := r.End - 42
	above := 18 - r.Start
	if below < above {
		t.Fatalf("expected more buffer below when scrolling down, above=%d below=%d", above, below)
	}
}

func TestJumpOutsideStableRangeReanchors(t *testing.T) {
	t.Parallel()

	e := New(2, 100)
	e.Compute(0, 10, 1, 10000)
	r := e.Compute(5000, 10, 1, 10000)
	if r.Start < 4990 {
		t.Fatalf("expected fresh range near scroll target, got start %d", r.Start)
	}
	if r.Contains(0) {
		t.Fatalf("expected old range discarded after jump")
	}
}

func TestAppendExtendsEndKeepsStart(t *testing.T) {
	t.Parallel()

	e := New(2, 500)
	before := e.Compute(50, 10, 1, 100)

	e.Append(50)
	after := e.Compute(50, 10, 1, 150)

	if after.Start != before.Start {
		t.Fatalf("expected start preserved across load-more, got %d vs %d", after.Start, before.Start)
	}
	if want := before.End + 50 + 2; after.End != want {
		t.Fatalf("expected end grown by appended rows plus overscan, got %d want %d", after.End, want)
	}
}

func TestShrinkDiscardsStableRange(t *testing.T) {
	t.Parallel()

	e := New(2, 500)
	e.Compute(80, 10, 1, 100)
	r := e.Compute(0, 10, 1, 20)
	if r.Start != 0 || r.End != 12 {
		t.Fatalf("expected fresh range after dataset shrank, got [%d,%d)", r.Start, r.End)
	}
}

func TestResetForgetsEverything(t *testing.T) {
	t.Parallel()

	e := New(2, 500)
	e.Compute(50, 10, 1, 100)
	e.Reset()
	r := e.Compute(0, 10, 1, 100)
	if r.Start != 0 {
		t.Fatalf("expected ideal range after reset, got start %d", r.Start)
	}
}

func TestEmptyRowCount(t *testing.T) {
	t.Parallel()

	e := New(2, 500)
	r := e.Compute(0, 10, 1, 0)
	if r != (Range{}) {
		t.Fatalf("expected zero range for empty data, got %+v", r)
	}
}

func TestSelectionRowIndependentOfWindow(t *testing.T) {
	t.Parallel()

	// Scrolling row 500 out of and back into the window never touches row
	// indices; the window only decides what is materialized.
	e := New(5, 50)
	r := e.Compute(495, 10, 1, 1000)
	if !r.Contains(500) {
		t.Fatalf("expected row 500 materialized at scroll 495")
	}
	r = e.Compute(900, 10, 1, 1000)
	if r.Contains(500) {
		t.Fatalf("expected row 500 outside window at scroll 900")
	}
	r = e.Compute(495, 10, 1, 1000)
	if !r.Contains(500) {
		t.Fatalf("expected row 500 materialized again after scrolling back")
	}
}
