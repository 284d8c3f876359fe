package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/maint/pkg/grouping"
	"tableflip.dev/maint/pkg/maintenance"
	"tableflip.dev/maint/pkg/schedule"
)

// PrettyPrint renders composed schedule models as colored terminal text.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" machine")
	default:
		_, _ = c.Println(" machines")
	}
}

// MachineGroups prints every group as a table of machines; collapsed
// groups print their header only.
func (pp *PrettyPrint) MachineGroups(groups []grouping.Group, collapsed map[string]bool) {
	for _, g := range groups {
		pp.TitleWithCount(g.Key, g.Count)
		if collapsed[g.Key] {
			f := color.New(color.Faint, color.Italic)
			_, _ = f.Print(" collapsed\n\n")
			continue
		}
		pp.Machines(g.Machines...)
	}
}

// Machines prints one machine table.
func (pp *PrettyPrint) Machines(machines ...maintenance.Machine) {
	if len(machines) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow(bold("ID"), bold("Serial"), bold("Alias"), bold("Model"), bold("Location"), bold("Status"))
	} else {
		tbl.AddRow(bold("Serial"), bold("Alias"), bold("Model"), bold("Location"), bold("Status"))
	}
	for _, m := range machines {
		status := statusLabel(m)
		if pp.ShowID {
			tbl.AddRow(m.ID, m.Serial, orDash(m.Alias), orDash(m.Model()), orDash(m.Location), status)
		} else {
			tbl.AddRow(m.Serial, orDash(m.Alias), orDash(m.Model()), orDash(m.Location), status)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Warnings prints the dropped-order warnings, if any.
func (pp *PrettyPrint) Warnings(warnings []schedule.Warning) {
	if len(warnings) == 0 {
		return
	}
	f := color.New(color.Faint, color.Italic, color.FgYellow)
	for _, w := range warnings {
		_, _ = f.Printf("! %s\n", w)
	}
	fmt.Println("")
}

func statusLabel(m maintenance.Machine) string {
	if m.Active {
		return color.New(color.FgGreen).Sprint("active")
	}
	return color.New(color.Faint).Sprint("inactive")
}

func criticalityColor(c maintenance.Criticality) *color.Color {
	switch c {
	case maintenance.CriticalityCritical:
		return color.New(color.FgHiRed, color.Bold)
	case maintenance.CriticalityHigh:
		return color.New(color.FgRed)
	case maintenance.CriticalityLow:
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgYellow)
	}
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
