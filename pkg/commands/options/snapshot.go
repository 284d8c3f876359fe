package options

import "github.com/spf13/cobra"

// SnapshotOptions points at the already-resolved machine and work-order
// snapshot files supplied by the data layer.
type SnapshotOptions struct {
	Machines string
	Orders   string
}

func AddSnapshotArgs(cmd *cobra.Command, so *SnapshotOptions) {
	cmd.Flags().StringVar(&so.Machines, "machines", "machines.json",
		"Path to the machines snapshot file.")
	cmd.Flags().StringVar(&so.Orders, "orders", "orders.json",
		"Path to the work-orders snapshot file.")
}
