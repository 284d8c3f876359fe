// Package machines lists the machine collection filtered, sorted and
// grouped.
package machines

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/text/language"

	"tableflip.dev/maint/pkg/filter"
	"tableflip.dev/maint/pkg/grouping"
	"tableflip.dev/maint/pkg/maintenance"
	"tableflip.dev/maint/pkg/printers"
)

type Machines struct {
	MachinesPath string

	Criteria  filter.Criteria
	Sort      filter.Sort
	GroupBy   grouping.Mode
	Collapsed map[string]bool

	Locale string
	ShowID bool
}

func (n *Machines) Do(ctx context.Context) error {
	if n.MachinesPath == "" {
		return errors.New("can not list, no machines snapshot")
	}
	data, err := os.ReadFile(n.MachinesPath)
	if err != nil {
		return fmt.Errorf("reading machines snapshot: %w", err)
	}
	all, err := maintenance.UnmarshalMachines(data)
	if err != nil {
		return fmt.Errorf("parsing machines snapshot: %w", err)
	}

	locale, err := language.Parse(n.Locale)
	if err != nil {
		locale = language.English
	}

	eng := filter.New(locale)
	matched := eng.Apply(all, n.Criteria, n.Sort)
	groups := grouping.Partition(matched, n.GroupBy)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.MachineGroups(groups, n.Collapsed)

	return nil
}
