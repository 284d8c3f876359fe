// Package calendar produces the date grids the schedule views are laid
// out on: plain month days, Monday-aligned padded month grids, and
// Monday-aligned timeline weeks.
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDateRange reports a year outside the supported range.
var ErrInvalidDateRange = errors.New("calendar: invalid date range")

const (
	minYear = 1
	maxYear = 9999

	labelLayout = "Jan 2"
)

// Day describes one cell of a generated grid.
type Day struct {
	Date     time.Time
	InPeriod bool
	Today    bool
	Weekend  bool
}

// Week is exactly seven consecutive days starting on a Monday.
type Week struct {
	Start time.Time
	End   time.Time
	Label string
	Days  []Day
}

// Normalize folds out-of-range months into the adjacent year (month 0 is
// December of the previous year, month 13 January of the next) and
// validates the resulting year. This mirrors time.Date arithmetic so a
// caller stepping month+1 past December lands where it expects.
func Normalize(year, month int) (int, time.Month, error) {
	t := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	y := t.Year()
	if y < minYear || y > maxYear {
		return 0, 0, fmt.Errorf("%w: year %d month %d", ErrInvalidDateRange, year, month)
	}
	return y, t.Month(), nil
}

// MonthDays returns exactly the calendar days of the month, no padding.
func MonthDays(year, month int) ([]time.Time, error) {
	y, m, err := Normalize(year, month)
	if err != nil {
		return nil, err
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	n := daysIn(first)
	days := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, first.AddDate(0, 0, i))
	}
	return days, nil
}

// Grid returns the month padded to full Monday-start weeks: it walks back
// from the first of the month to the preceding Monday and forward from the
// last to the following Sunday. The total day count is always a multiple
// of seven, and the InPeriod days are exactly MonthDays.
func Grid(year, month int, today time.Time) ([]Week, error) {
	y, m, err := Normalize(year, month)
	if err != nil {
		return nil, err
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -mondayOffset(first))
	end := last.AddDate(0, 0, sundayShortfall(last))

	var weeks []Week
	for ws := start; !ws.After(end); ws = ws.AddDate(0, 0, 7) {
		weeks = append(weeks, makeWeek(ws, m, today))
	}
	return weeks, nil
}

// TimelineWeeks returns Monday-aligned weeks covering the month, stopping
// once a week start passes the month's last day. Unlike Grid it never
// emits a trailing week that only exists to square off the grid.
func TimelineWeeks(year, month int, today time.Time) ([]Week, error) {
	y, m, err := Normalize(year, month)
	if err != nil {
		return nil, err
	}
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var weeks []Week
	for ws := first.AddDate(0, 0, -mondayOffset(first)); !ws.After(last); ws = ws.AddDate(0, 0, 7) {
		weeks = append(weeks, makeWeek(ws, m, today))
	}
	return weeks, nil
}

func makeWeek(start time.Time, period time.Month, today time.Time) Week {
	end := start.AddDate(0, 0, 6)
	w := Week{
		Start: start,
		End:   end,
		Label: start.Format(labelLayout) + " - " + end.Format(labelLayout),
		Days:  make([]Day, 0, 7),
	}
	for i := 0; i < 7; i++ {
		d := start.AddDate(0, 0, i)
		w.Days = append(w.Days, Day{
			Date:     d,
			InPeriod: d.Month() == period,
			Today:    SameDay(d, today),
			Weekend:  d.Weekday() == time.Saturday || d.Weekday() == time.Sunday,
		})
	}
	return w
}

// mondayOffset is the back-step from a date to its week's Monday; Sunday
// counts as offset 6, not 0.
func mondayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// sundayShortfall is the forward step from a date to its week's Sunday.
func sundayShortfall(t time.Time) int {
	return (7 - int(t.Weekday())) % 7
}

// SameDay reports whether two times fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}
