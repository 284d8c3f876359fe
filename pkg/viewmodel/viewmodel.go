// Package viewmodel composes the schedule engines into the renderable
// model for one view mode. Compose is a pure function of its input: the
// caller owns memoization, keyed by the exact input tuple, so that a
// scroll-only change re-runs only the window math upstream.
package viewmodel

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"tableflip.dev/maint/pkg/calendar"
	"tableflip.dev/maint/pkg/filter"
	"tableflip.dev/maint/pkg/gantt"
	"tableflip.dev/maint/pkg/grouping"
	"tableflip.dev/maint/pkg/maintenance"
	"tableflip.dev/maint/pkg/schedule"
	"tableflip.dev/maint/pkg/virtual"
)

// Mode selects which view model Compose produces.
type Mode string

const (
	ModeGantt    Mode = "gantt"
	ModeCalendar Mode = "calendar"
	ModeTable    Mode = "table"
	ModeTimeline Mode = "timeline"
)

// AllModes returns the supported view modes.
func AllModes() []Mode {
	return []Mode{ModeGantt, ModeCalendar, ModeTable, ModeTimeline}
}

// ParseMode converts a string to a Mode; empty input defaults to gantt.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return ModeGantt, nil
	}
	for _, candidate := range AllModes() {
		if candidate == m {
			return candidate, nil
		}
	}
	return ModeGantt, fmt.Errorf("viewmodel: unknown mode %q", raw)
}

// DefaultVirtualizeThreshold is the visible-machine count above which the
// list is windowed. It is a tunable default, not a contract.
const DefaultVirtualizeThreshold = 50

// DefaultRowHeight is the assumed pixel height of one machine row.
const DefaultRowHeight = 80

// Scroll is the caller-owned scroll state.
type Scroll struct {
	Top             int
	ContainerHeight int
}

// Input is the full dependency tuple for one composition.
type Input struct {
	Machines []maintenance.Machine
	Orders   []maintenance.WorkOrder

	Year  int
	Month int

	Filter    filter.Criteria
	Sort      filter.Sort
	GroupBy   grouping.Mode
	Collapsed map[string]bool

	Mode   Mode
	Scroll Scroll
}

// Row is one machine lane of the gantt or timeline view.
type Row struct {
	Machine maintenance.Machine
	Orders  []maintenance.WorkOrder
	Bars    []gantt.Bar
}

// Model is the renderable result handed to a paint layer.
type Model struct {
	Mode      Mode
	Year      int
	Month     time.Month
	TotalDays int

	Groups  []grouping.Group
	Visible []maintenance.Machine

	Virtualized bool
	Window      virtual.Window

	Rows         []Row
	TodayPercent float64
	TodayShown   bool

	Weeks       []calendar.Week
	OrdersByDay map[string][]maintenance.WorkOrder

	Warnings []schedule.Warning
}

// Option customises Compose behaviour.
type Option func(*options)

type options struct {
	threshold int
	rowHeight int
	overscan  int
	locale    language.Tag
	now       time.Time
	hasNow    bool
}

// WithVirtualizeThreshold overrides the visible-count threshold above
// which the machine list is windowed rather than fully materialised.
func WithVirtualizeThreshold(n int) Option {
	return func(o *options) { o.threshold = n }
}

// WithRowHeight overrides the assumed machine row height in pixels.
func WithRowHeight(h int) Option {
	return func(o *options) { o.rowHeight = h }
}

// WithOverscan overrides the number of extra rows windowed on each side.
func WithOverscan(n int) Option {
	return func(o *options) { o.overscan = n }
}

// WithLocale overrides the collation locale used when sorting machines.
func WithLocale(tag language.Tag) Option {
	return func(o *options) { o.locale = tag }
}

// WithNow fixes the clock used for today markers. Tests and callers that
// memoize should always set it.
func WithNow(t time.Time) Option {
	return func(o *options) {
		o.now = t
		o.hasNow = true
	}
}

// Compose builds the view model for the requested mode. It holds no state
// and mutates none of its inputs.
func Compose(in Input, opts ...Option) (Model, error) {
	o := options{
		threshold: DefaultVirtualizeThreshold,
		rowHeight: DefaultRowHeight,
		overscan:  virtual.DefaultOverscan,
		locale:    language.English,
	}
	for _, opt := range opts {
		opt(&o)
	}
	now := o.now
	if !o.hasNow {
		now = time.Now()
	}

	year, month, err := calendar.Normalize(in.Year, in.Month)
	if err != nil {
		return Model{}, err
	}
	days, err := calendar.MonthDays(year, int(month))
	if err != nil {
		return Model{}, err
	}

	m := Model{
		Mode:      in.Mode,
		Year:      year,
		Month:     month,
		TotalDays: len(days),
	}
	if m.Mode == "" {
		m.Mode = ModeGantt
	}

	eng := filter.New(o.locale)
	filtered := eng.Apply(in.Machines, in.Filter, in.Sort)
	m.Groups = grouping.Partition(filtered, in.GroupBy)
	m.Visible = grouping.Visible(m.Groups, in.Collapsed)

	render := m.Visible
	if len(m.Visible) > o.threshold && in.Scroll.ContainerHeight > 0 {
		w, err := virtual.Compute(len(m.Visible), o.rowHeight, in.Scroll.ContainerHeight, in.Scroll.Top, o.overscan)
		if err != nil {
			return Model{}, err
		}
		m.Virtualized = true
		m.Window = w
		if w.Empty {
			render = nil
		} else {
			render = m.Visible[w.Start : w.End+1]
		}
	}

	// One index per composition; every view shares the same period scope.
	idx := schedule.Build(in.Orders)
	m.Warnings = idx.Warnings
	period := schedule.Build(idx.ForPeriod(days[0], days[len(days)-1]))

	switch m.Mode {
	case ModeCalendar:
		m.Weeks, err = calendar.Grid(year, int(month), now)
		if err != nil {
			return Model{}, err
		}
		m.OrdersByDay = period.ByDay
	case ModeTable:
		m.Weeks, err = calendar.TimelineWeeks(year, int(month), now)
		if err != nil {
			return Model{}, err
		}
		m.OrdersByDay = period.ByDay
	case ModeTimeline:
		m.Weeks, err = calendar.TimelineWeeks(year, int(month), now)
		if err != nil {
			return Model{}, err
		}
		m.OrdersByDay = period.ByDay
		m.Rows = layoutRows(render, period, m.TotalDays)
		m.TodayPercent, m.TodayShown = gantt.TodayMarker(now, year, month, m.TotalDays)
	default: // gantt
		m.Rows = layoutRows(render, period, m.TotalDays)
		m.TodayPercent, m.TodayShown = gantt.TodayMarker(now, year, month, m.TotalDays)
	}

	return m, nil
}

// layoutRows builds one lane per rendered machine. A machine with no
// in-period orders still gets a row, with an empty bar list.
func layoutRows(machines []maintenance.Machine, period schedule.Index, totalDays int) []Row {
	rows := make([]Row, 0, len(machines))
	for _, machine := range machines {
		orders := period.ByMachine[machine.ID]
		rows = append(rows, Row{
			Machine: machine,
			Orders:  orders,
			Bars:    gantt.Layout(orders, totalDays),
		})
	}
	return rows
}
