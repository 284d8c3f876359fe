package gantt

import (
	"math"
	"testing"
	"time"

	"tableflip.dev/maint/pkg/maintenance"
)

func order(id, date string, hours float64) maintenance.WorkOrder {
	return maintenance.WorkOrder{
		ID:             id,
		MachineID:      "m1",
		ScheduledDate:  date,
		EstimatedHours: hours,
	}
}

func almost(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestLayoutProportions(t *testing.T) {
	// Day 10 of 31 with 16 estimated hours: two workdays.
	bars := Layout([]maintenance.WorkOrder{order("ot-1", "2024-03-10", 16)}, 31)
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	b := bars[0]
	if !almost(b.LeftPercent, 9.0/31.0*100) {
		t.Fatalf("unexpected left: %v", b.LeftPercent)
	}
	if !almost(b.WidthPercent, 2.0/31.0*100) {
		t.Fatalf("unexpected width: %v", b.WidthPercent)
	}
	if b.StackSlot != 0 {
		t.Fatalf("unexpected slot: %d", b.StackSlot)
	}
}

func TestLayoutMinimumWidth(t *testing.T) {
	// One day in a 31-day month is ~3.2%, but one hour still floors at 2%.
	bars := Layout([]maintenance.WorkOrder{order("ot-1", "2024-03-01", 1)}, 60)
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	if !almost(bars[0].WidthPercent, 2) {
		t.Fatalf("expected floored width 2, got %v", bars[0].WidthPercent)
	}
}

func TestLayoutMissingHoursDefaultsToOneDay(t *testing.T) {
	bars := Layout([]maintenance.WorkOrder{order("ot-1", "2024-03-05", 0)}, 31)
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	if !almost(bars[0].WidthPercent, math.Max(2, 1.0/31.0*100)) {
		t.Fatalf("unexpected width: %v", bars[0].WidthPercent)
	}
}

func TestLayoutStackSlotsArePositional(t *testing.T) {
	bars := Layout([]maintenance.WorkOrder{
		order("ot-1", "2024-03-05", 40),
		order("ot-2", "2024-03-06", 8), // overlaps ot-1's range
		order("ot-3", "2024-03-06", 8), // same date as ot-2
	}, 31)
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	for i, b := range bars {
		if b.StackSlot != i {
			t.Fatalf("bar %d has slot %d", i, b.StackSlot)
		}
	}
}

func TestLayoutBarsStayInsideTrack(t *testing.T) {
	// 80 hours starting on the 30th of 31 would run past the month; width
	// clamps so left+width never exceeds 100.
	bars := Layout([]maintenance.WorkOrder{order("ot-1", "2024-03-30", 80)}, 31)
	if len(bars) != 1 {
		t.Fatalf("expected 1 bar, got %d", len(bars))
	}
	b := bars[0]
	if b.LeftPercent < 0 || b.LeftPercent > 100 {
		t.Fatalf("left out of range: %v", b.LeftPercent)
	}
	if b.WidthPercent < 0 || b.LeftPercent+b.WidthPercent > 100+1e-9 {
		t.Fatalf("bar overflows track: left=%v width=%v", b.LeftPercent, b.WidthPercent)
	}
}

func TestLayoutEmptyAndGuarded(t *testing.T) {
	if bars := Layout(nil, 31); len(bars) != 0 {
		t.Fatalf("expected no bars for no orders")
	}
	if bars := Layout([]maintenance.WorkOrder{order("ot-1", "2024-03-10", 8)}, 0); bars != nil {
		t.Fatalf("expected nil for zero-day month")
	}
}

func TestTodayMarker(t *testing.T) {
	today := time.Date(2024, time.March, 16, 10, 0, 0, 0, time.UTC)
	pos, ok := TodayMarker(today, 2024, time.March, 31)
	if !ok {
		t.Fatalf("expected marker inside displayed month")
	}
	if !almost(pos, 15.0/31.0*100) {
		t.Fatalf("unexpected marker position: %v", pos)
	}

	if _, ok := TodayMarker(today, 2024, time.April, 30); ok {
		t.Fatalf("expected no marker outside displayed month")
	}
	if _, ok := TodayMarker(today, 2024, time.March, 0); ok {
		t.Fatalf("expected no marker for zero-day month")
	}
}
