package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

const monthLayout = "2006-01"

// MonthOptions selects the displayed period.
type MonthOptions struct {
	Month string
}

func AddMonthArgs(cmd *cobra.Command, mo *MonthOptions) {
	cmd.Flags().StringVarP(&mo.Month, "month", "m", "",
		"Displayed month as YYYY-MM. Defaults to the current month.")
}

// Resolve returns the requested year and month, falling back to now.
func (mo *MonthOptions) Resolve(now time.Time) (int, int, error) {
	raw := strings.TrimSpace(mo.Month)
	if raw == "" {
		return now.Year(), int(now.Month()), nil
	}
	t, err := time.Parse(monthLayout, raw)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM: %w", raw, err)
	}
	return t.Year(), int(t.Month()), nil
}
