package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/maint/pkg/grouping"
)

// GroupOptions selects the grouping mode and the collapsed group keys.
type GroupOptions struct {
	GroupBy   string
	Collapsed []string
}

func AddGroupArgs(cmd *cobra.Command, gro *GroupOptions) {
	cmd.Flags().StringVarP(&gro.GroupBy, "group-by", "g", string(grouping.ModeNone),
		"Group machines by: none, location, model, manufacturer or status.")
	cmd.Flags().StringSliceVar(&gro.Collapsed, "collapse", nil,
		"Group keys to collapse; repeatable.")
}

// Mode parses the grouping mode flag.
func (gro *GroupOptions) Mode() (grouping.Mode, error) {
	return grouping.ParseMode(gro.GroupBy)
}

// CollapsedKeys returns the collapse set.
func (gro *GroupOptions) CollapsedKeys() map[string]bool {
	if len(gro.Collapsed) == 0 {
		return nil
	}
	keys := make(map[string]bool, len(gro.Collapsed))
	for _, k := range gro.Collapsed {
		keys[k] = true
	}
	return keys
}
