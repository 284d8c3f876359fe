package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	goversion "go.hein.dev/go-version"
)

func addVersion(topLevel *cobra.Command) {
	shortened := false
	version := "dev"
	commit := "none"
	date := "unknown"
	output := "json"
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the maint build version, commit and date.",
		Example: `
maint version
maint version --short
`,
		Run: func(_ *cobra.Command, _ []string) {
			resp := goversion.FuncWithOutput(shortened, version, commit, date, output)
			fmt.Print(resp)
		},
	}

	cmd.Flags().BoolVarP(&shortened, "short", "s", false, "Print only the version number, skipping commit and build date.")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Format for the full version report, 'json' or 'yaml'.")

	topLevel.AddCommand(cmd)
}
