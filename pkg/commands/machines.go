package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/maint/pkg/commands/options"
	"tableflip.dev/maint/pkg/config"
	"tableflip.dev/maint/pkg/runner/machines"
)

func addMachines(topLevel *cobra.Command) {
	so := &options.SnapshotOptions{}
	fo := &options.FilterOptions{}
	gro := &options.GroupOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "machines",
		Short:   "List machines filtered, sorted and grouped.",
		Aliases: []string{"machine", "m"},
		Example: `
maint machines
maint machines --group-by manufacturer --sort model
maint machines -q cnc --status inactive --desc
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
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

			n := machines.Machines{
				MachinesPath: so.Machines,
				Criteria:     criteria,
				Sort:         sortSpec,
				GroupBy:      groupBy,
				Collapsed:    gro.CollapsedKeys(),
				Locale:       cfg.Locale,
				ShowID:       io.ShowID,
			}
			return oo.HandleError(n.Do(context.Background()))
		},
	}

	options.AddSnapshotArgs(cmd, so)
	options.AddFilterArgs(cmd, fo)
	options.AddGroupArgs(cmd, gro)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
