package printers

import (
	"fmt"
	"math"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/maint/pkg/maintenance"
	"tableflip.dev/maint/pkg/viewmodel"
)

const (
	trackWidth = 60
	labelWidth = len("SERIAL-000000  ")
)

// GanttBoard prints one lane per machine with proportional bars along the
// month track, one line per stack slot.
func (pp *PrettyPrint) GanttBoard(m viewmodel.Model) {
	pp.Title(fmt.Sprintf("%s %d - Gantt", m.Month, m.Year))
	pp.printWindowNote(m)
	pp.printTodayScale(m)

	for _, row := range m.Rows {
		crit := make(map[string]maintenance.Criticality, len(row.Orders))
		for _, o := range row.Orders {
			crit[o.ID] = o.Criticality
		}

		if len(row.Bars) == 0 {
			pp.printLane(row.Machine.Serial, "", nil, 0, 0)
			continue
		}
		for _, bar := range row.Bars {
			label := ""
			if bar.StackSlot == 0 {
				label = row.Machine.Serial
			}
			start := cell(bar.LeftPercent)
			width := cell(bar.LeftPercent+bar.WidthPercent) - start
			if width < 1 {
				width = 1
			}
			pp.printLane(label, bar.OrderID, criticalityColor(crit[bar.OrderID]), start, width)
		}
	}
	fmt.Println("")
}

func (pp *PrettyPrint) printLane(label, orderID string, c *color.Color, start, width int) {
	l := color.New(color.Bold)
	_, _ = l.Print(pad(label, labelWidth))

	track := color.New(color.Faint)
	if width == 0 || start >= trackWidth {
		_, _ = track.Println(strings.Repeat("·", trackWidth))
		return
	}
	if start+width > trackWidth {
		width = trackWidth - start
	}
	_, _ = track.Print(strings.Repeat("·", start))
	_, _ = c.Print(strings.Repeat("█", width))
	_, _ = track.Print(strings.Repeat("·", trackWidth-start-width))
	if pp.ShowID {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Printf("  %s", orderID)
	}
	fmt.Println("")
}

func (pp *PrettyPrint) printTodayScale(m viewmodel.Model) {
	if !m.TodayShown {
		return
	}
	col := cell(m.TodayPercent)
	if col >= trackWidth {
		col = trackWidth - 1
	}
	t := color.New(color.FgHiCyan, color.Bold)
	fmt.Print(strings.Repeat(" ", labelWidth+col))
	_, _ = t.Println("▼ today")
}

// MonthCalendar prints the Monday-aligned grid; days with scheduled
// orders are bold, out-of-period padding is faint, today is underlined.
func (pp *PrettyPrint) MonthCalendar(m viewmodel.Model) {
	pp.Title(fmt.Sprintf("%s %d", m.Month, m.Year))

	h := color.New(color.FgWhite, color.Italic)
	_, _ = h.Println("Mo Tu We Th Fr Sa Su")

	faint := color.New(color.Faint)
	plain := color.New(color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)

	for _, week := range m.Weeks {
		for _, day := range week.Days {
			style := plain
			if !day.InPeriod {
				style = faint
			} else if len(m.OrdersByDay[maintenance.FormatDate(day.Date)]) > 0 {
				style = busy
			}
			if day.Today {
				style = color.New(color.Underline, color.Bold, color.FgHiCyan)
			}
			_, _ = style.Printf("%2d ", day.Date.Day())
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// TimelineBoard prints each timeline week with its scheduled orders,
// colored by criticality.
func (pp *PrettyPrint) TimelineBoard(m viewmodel.Model) {
	pp.Title(fmt.Sprintf("%s %d - Timeline", m.Month, m.Year))
	pp.printWindowNote(m)

	for _, week := range m.Weeks {
		w := color.New(color.Bold)
		_, _ = w.Println(week.Label)
		empty := true
		for _, day := range week.Days {
			orders := m.OrdersByDay[maintenance.FormatDate(day.Date)]
			if len(orders) == 0 {
				continue
			}
			empty = false
			d := color.New(color.FgWhite)
			_, _ = d.Printf("  %s\n", day.Date.Format("Mon Jan 2"))
			for _, o := range orders {
				c := criticalityColor(o.Criticality)
				_, _ = c.Printf("    ■ %s", o.Title)
				f := color.New(color.Faint)
				if pp.ShowID {
					_, _ = f.Printf(" (%s, %s)", o.ID, o.MachineID)
				} else {
					_, _ = f.Printf(" (%s)", o.MachineID)
				}
				fmt.Println("")
			}
		}
		if empty {
			f := color.New(color.Faint, color.Italic)
			_, _ = f.Println("  no scheduled work")
		}
	}
	fmt.Println("")
}

// ScheduleTable prints the table view: one row per timeline week with
// per-day order counts.
func (pp *PrettyPrint) ScheduleTable(m viewmodel.Model) {
	pp.Title(fmt.Sprintf("%s %d - Table", m.Month, m.Year))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("Week"), bold("Mo"), bold("Tu"), bold("We"), bold("Th"), bold("Fr"), bold("Sa"), bold("Su"))
	for _, week := range m.Weeks {
		cells := make([]interface{}, 0, 8)
		cells = append(cells, week.Label)
		for _, day := range week.Days {
			n := len(m.OrdersByDay[maintenance.FormatDate(day.Date)])
			switch {
			case !day.InPeriod:
				cells = append(cells, color.New(color.Faint).Sprint("·"))
			case n == 0:
				cells = append(cells, "·")
			default:
				cells = append(cells, color.New(color.Bold).Sprint(n))
			}
		}
		tbl.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

func (pp *PrettyPrint) printWindowNote(m viewmodel.Model) {
	if !m.Virtualized {
		return
	}
	f := color.New(color.Faint, color.Italic)
	if m.Window.Empty {
		_, _ = f.Println("nothing to render")
		return
	}
	_, _ = f.Printf("rows %d-%d of %d\n", m.Window.Start+1, m.Window.End+1, len(m.Visible))
}

// cell maps a percentage along the track to a column.
func cell(percent float64) int {
	return int(math.Round(percent / 100 * trackWidth))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}
