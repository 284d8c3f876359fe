package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/maint/pkg/commands/options"
	"tableflip.dev/maint/pkg/config"
	"tableflip.dev/maint/pkg/runner/board"
	"tableflip.dev/maint/pkg/viewmodel"
)

var boardShorts = map[viewmodel.Mode]string{
	viewmodel.ModeGantt:    "Render the month as a gantt board, one lane per machine.",
	viewmodel.ModeCalendar: "Render the month as a calendar grid.",
	viewmodel.ModeTable:    "Render the month as a weekly table plus grouped machines.",
	viewmodel.ModeTimeline: "Render the month as a weekly timeline of scheduled work.",
}

func addBoards(topLevel *cobra.Command) {
	for _, mode := range viewmodel.AllModes() {
		addBoardMode(topLevel, mode)
	}
}

func addBoardMode(topLevel *cobra.Command, mode viewmodel.Mode) {
	so := &options.SnapshotOptions{}
	mo := &options.MonthOptions{}
	fo := &options.FilterOptions{}
	gro := &options.GroupOptions{}
	io := &options.IDOptions{}
	sc := &options.ScrollOptions{}

	cmd := &cobra.Command{
		Use:   string(mode),
		Short: boardShorts[mode],
		Example: fmt.Sprintf(`
maint %[1]s --month 2024-03
maint %[1]s --machines plant.json --orders march.json --group-by location
maint %[1]s -q haas --status active --collapse "No location"
`, mode),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return oo.HandleError(err)
			}
			year, month, err := mo.Resolve(time.Now())
			if err != nil {
				return oo.HandleError(err)
			}
			sortSpec, err := fo.Sort()
			if err != nil {
				return oo.HandleError(err)
			}
			groupBy, err := gro.Mode()
			if err != nil {
				return oo.HandleError(err)
			}
			criteria, err := fo.Criteria()
			if err != nil {
				return oo.HandleError(err)
			}

			b := board.Board{
				Mode:         mode,
				Year:         year,
				Month:        month,
				MachinesPath: so.Machines,
				OrdersPath:   so.Orders,
				Criteria:     criteria,
				Sort:         sortSpec,
				GroupBy:      groupBy,
				Collapsed:    gro.CollapsedKeys(),
				ScrollTop:    sc.Top,
				ShowID:       io.ShowID,
				Config:       cfg,
			}
			return oo.HandleError(b.Do(context.Background()))
		},
	}

	options.AddSnapshotArgs(cmd, so)
	options.AddMonthArgs(cmd, mo)
	options.AddFilterArgs(cmd, fo)
	options.AddGroupArgs(cmd, gro)
	options.AddShowIDArgs(cmd, io)
	options.AddScrollArgs(cmd, sc)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
