package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/maint/pkg/filter"
)

// FilterOptions narrows and orders the machine collection.
type FilterOptions struct {
	Search   string
	Status   string
	Location string

	SortBy     string
	Descending bool
}

func AddFilterArgs(cmd *cobra.Command, fo *FilterOptions) {
	cmd.Flags().StringVarP(&fo.Search, "search", "q", "",
		"Case-insensitive text matched against serial, alias, model, manufacturer and location.")
	cmd.Flags().StringVar(&fo.Status, "status", filter.Any,
		"Status filter: all, active or inactive.")
	cmd.Flags().StringVar(&fo.Location, "location", filter.Any,
		"Location filter: all or an exact location.")
	cmd.Flags().StringVar(&fo.SortBy, "sort", string(filter.FieldSerial),
		"Sort field: serial, alias, model, location or status.")
	cmd.Flags().BoolVar(&fo.Descending, "desc", false,
		"Sort descending.")
}

// Criteria converts the flags to the engine's filter criteria.
func (fo *FilterOptions) Criteria() (filter.Criteria, error) {
	status, err := filter.ParseStatusFilter(fo.Status)
	if err != nil {
		return filter.Criteria{}, err
	}
	return filter.Criteria{
		Search:   fo.Search,
		Status:   status,
		Location: fo.Location,
	}, nil
}

// Sort converts the flags to the engine's sort spec.
func (fo *FilterOptions) Sort() (filter.Sort, error) {
	field, err := filter.ParseField(fo.SortBy)
	if err != nil {
		return filter.Sort{}, err
	}
	return filter.Sort{Field: field, Descending: fo.Descending}, nil
}
