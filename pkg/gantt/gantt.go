// Package gantt converts a machine's work orders into proportional bars
// along a one-month timeline.
package gantt

import (
	"math"
	"time"

	"tableflip.dev/maint/pkg/maintenance"
)

const (
	// hoursPerDay is the standard workday used to turn estimated hours
	// into bar length.
	hoursPerDay = 8.0
	// minWidthPercent keeps very short orders visible and clickable.
	minWidthPercent = 2.0
)

// Bar is one order's horizontal segment. LeftPercent and WidthPercent are
// in [0,100] and never overflow the track; StackSlot is the vertical row
// the bar occupies within its machine's lane.
type Bar struct {
	OrderID      string
	LeftPercent  float64
	WidthPercent float64
	StackSlot    int
}

// Layout lays out one machine's orders, already restricted to the
// displayed month and sorted by scheduled date. Slots are positional: the
// n-th order takes row n regardless of date overlap, so two orders never
// share a row.
func Layout(orders []maintenance.WorkOrder, totalDays int) []Bar {
	if totalDays <= 0 {
		return nil
	}
	bars := make([]Bar, 0, len(orders))
	for slot, o := range orders {
		at, err := o.ScheduledAt()
		if err != nil {
			continue
		}
		dayIndex := at.Day() - 1
		duration := durationDays(o.EstimatedHours)

		left := float64(dayIndex) / float64(totalDays) * 100
		width := math.Max(minWidthPercent, float64(duration)/float64(totalDays)*100)
		if left+width > 100 {
			width = 100 - left
		}

		bars = append(bars, Bar{
			OrderID:      o.ID,
			LeftPercent:  left,
			WidthPercent: width,
			StackSlot:    slot,
		})
	}
	return bars
}

// TodayMarker returns the marker position for the displayed month, or
// false when today falls outside it.
func TodayMarker(today time.Time, year int, month time.Month, totalDays int) (float64, bool) {
	if totalDays <= 0 {
		return 0, false
	}
	if today.Year() != year || today.Month() != month {
		return 0, false
	}
	return float64(today.Day()-1) / float64(totalDays) * 100, true
}

// durationDays converts estimated hours to whole workdays, minimum one.
func durationDays(estimatedHours float64) int {
	if estimatedHours <= 0 {
		return 1
	}
	d := int(math.Ceil(estimatedHours / hoursPerDay))
	if d < 1 {
		return 1
	}
	return d
}
