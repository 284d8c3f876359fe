// Package board renders one schedule view for a month from snapshot
// files.
package board

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"tableflip.dev/maint/pkg/config"
	"tableflip.dev/maint/pkg/filter"
	"tableflip.dev/maint/pkg/grouping"
	"tableflip.dev/maint/pkg/maintenance"
	"tableflip.dev/maint/pkg/printers"
	"tableflip.dev/maint/pkg/viewmodel"
)

// Board composes and prints one view mode for one month.
type Board struct {
	Mode viewmodel.Mode

	Year  int
	Month int

	MachinesPath string
	OrdersPath   string

	Criteria  filter.Criteria
	Sort      filter.Sort
	GroupBy   grouping.Mode
	Collapsed map[string]bool

	ScrollTop int
	ShowID    bool

	Config config.Config
}

func (b *Board) Do(ctx context.Context) error {
	if b.MachinesPath == "" {
		return errors.New("can not render, no machines snapshot")
	}

	machines, orders, err := b.loadSnapshot()
	if err != nil {
		return err
	}

	locale, err := language.Parse(b.Config.Locale)
	if err != nil {
		locale = language.English
	}

	m, err := viewmodel.Compose(viewmodel.Input{
		Machines:  machines,
		Orders:    orders,
		Year:      b.Year,
		Month:     b.Month,
		Filter:    b.Criteria,
		Sort:      b.Sort,
		GroupBy:   b.GroupBy,
		Collapsed: b.Collapsed,
		Mode:      b.Mode,
		Scroll: viewmodel.Scroll{
			Top:             b.ScrollTop,
			ContainerHeight: b.Config.ViewportHeight,
		},
	},
		viewmodel.WithVirtualizeThreshold(b.Config.VirtualizeThreshold),
		viewmodel.WithRowHeight(b.Config.RowHeight),
		viewmodel.WithOverscan(b.Config.Overscan),
		viewmodel.WithLocale(locale),
	)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: b.ShowID}
	fmt.Println("")

	switch m.Mode {
	case viewmodel.ModeCalendar:
		pp.MonthCalendar(m)
	case viewmodel.ModeTable:
		pp.ScheduleTable(m)
		pp.MachineGroups(m.Groups, b.Collapsed)
	case viewmodel.ModeTimeline:
		pp.TimelineBoard(m)
	default:
		pp.GanttBoard(m)
	}
	pp.Warnings(m.Warnings)

	return nil
}

func (b *Board) loadSnapshot() ([]maintenance.Machine, []maintenance.WorkOrder, error) {
	data, err := os.ReadFile(b.MachinesPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading machines snapshot: %w", err)
	}
	machines, err := maintenance.UnmarshalMachines(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing machines snapshot: %w", err)
	}

	var orders []maintenance.WorkOrder
	if b.OrdersPath != "" {
		data, err = os.ReadFile(b.OrdersPath)
		if err != nil {
			return nil, nil, fmt.Errorf("reading orders snapshot: %w", err)
		}
		orders, err = maintenance.UnmarshalOrders(data)
		if err != nil {
			return nil, nil, fmt.Errorf("parsing orders snapshot: %w", err)
		}
	}
	return machines, orders, nil
}
