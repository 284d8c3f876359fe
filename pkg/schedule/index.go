// Package schedule indexes work orders for fast machine and day lookups,
// scoped to a display period.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"tableflip.dev/maint/pkg/calendar"
	"tableflip.dev/maint/pkg/maintenance"
)

// Warning records a work order excluded from the indices because its
// scheduled date could not be parsed. Data-quality problems degrade to
// warnings so one bad row never fails a whole view.
type Warning struct {
	OrderID string
	Reason  string
}

func (w Warning) String() string {
	return fmt.Sprintf("order %s skipped: %s", w.OrderID, w.Reason)
}

// Index holds the order lookup structures shared by every view over the
// same snapshot. Build it once per snapshot change, not per machine.
type Index struct {
	// ByMachine maps machine ID to that machine's orders, sorted by
	// scheduled date ascending.
	ByMachine map[string][]maintenance.WorkOrder
	// ByDay maps an ISO calendar date to the orders scheduled on it,
	// input order preserved.
	ByDay map[string][]maintenance.WorkOrder
	// Warnings lists the orders dropped for unparsable dates.
	Warnings []Warning

	orders []maintenance.WorkOrder
	dates  []time.Time
}

// Build indexes the given orders. Orders whose scheduled date does not
// parse are dropped and reported in Warnings.
func Build(orders []maintenance.WorkOrder) Index {
	idx := Index{
		ByMachine: make(map[string][]maintenance.WorkOrder),
		ByDay:     make(map[string][]maintenance.WorkOrder),
	}
	for _, o := range orders {
		at, err := o.ScheduledAt()
		if err != nil {
			idx.Warnings = append(idx.Warnings, Warning{
				OrderID: o.ID,
				Reason:  fmt.Sprintf("unparsable scheduled date %q", o.ScheduledDate),
			})
			continue
		}
		idx.ByMachine[o.MachineID] = append(idx.ByMachine[o.MachineID], o)
		key := maintenance.FormatDate(at)
		idx.ByDay[key] = append(idx.ByDay[key], o)
		idx.orders = append(idx.orders, o)
		idx.dates = append(idx.dates, at)
	}
	for id := range idx.ByMachine {
		sortByDate(idx.ByMachine[id])
	}
	return idx
}

// ForPeriod returns the indexed orders scheduled inside [start, end],
// both inclusive. One linear pass over the snapshot; callers sharing a
// period reuse the result instead of re-filtering per machine or day.
func (idx Index) ForPeriod(start, end time.Time) []maintenance.WorkOrder {
	var out []maintenance.WorkOrder
	for i, o := range idx.orders {
		d := idx.dates[i]
		if d.Before(start) && !calendar.SameDay(d, start) {
			continue
		}
		if d.After(end) && !calendar.SameDay(d, end) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// OnDay returns the orders scheduled on the given date.
func (idx Index) OnDay(day time.Time) []maintenance.WorkOrder {
	return idx.ByDay[maintenance.FormatDate(day)]
}

// sortByDate orders a slice by scheduled date ascending; ties keep their
// input order. Dates are parseable here, Build filtered the rest.
func sortByDate(orders []maintenance.WorkOrder) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].ScheduledDate < orders[j].ScheduledDate
	})
}
