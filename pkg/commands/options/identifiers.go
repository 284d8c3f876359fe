package options

import "github.com/spf13/cobra"

// IDOptions toggles printing raw identifiers next to rendered rows.
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, io *IDOptions) {
	cmd.Flags().BoolVar(&io.ShowID, "show-ids", false,
		"Show machine and order IDs.")
}

// ScrollOptions carries the caller-owned scroll offset for windowed
// rendering of large machine lists.
type ScrollOptions struct {
	Top int
}

func AddScrollArgs(cmd *cobra.Command, sc *ScrollOptions) {
	cmd.Flags().IntVar(&sc.Top, "scroll", 0,
		"Scroll offset in pixels for virtualized rendering.")
}
