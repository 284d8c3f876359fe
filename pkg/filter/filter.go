// Package filter narrows and orders the machine collection: free-text
// search, status and location filters, and locale-aware multi-field sort.
package filter

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tableflip.dev/maint/pkg/maintenance"
)

// Any is the wildcard value for the status and location filters.
const Any = "all"

// StatusActive and StatusInactive are the concrete status filter values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Criteria is the machine filter; zero value matches everything.
type Criteria struct {
	// Search is matched case-insensitively as a substring against
	// serial, alias, model name, manufacturer and location (OR).
	Search string
	// Status is Any, StatusActive or StatusInactive. The engine treats
	// anything else as Any; callers taking user input should validate
	// with ParseStatusFilter first.
	Status string
	// Location is Any or an exact location value. Machines without a
	// location never match a concrete value.
	Location string
}

// ParseStatusFilter validates a status filter value; empty input means
// the wildcard.
func ParseStatusFilter(raw string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return Any, nil
	case Any, StatusActive, StatusInactive:
		return s, nil
	}
	return Any, fmt.Errorf("filter: unknown status filter %q", raw)
}

// Field names a sortable machine attribute.
type Field string

const (
	FieldSerial   Field = "serial"
	FieldAlias    Field = "alias"
	FieldModel    Field = "model"
	FieldLocation Field = "location"
	FieldStatus   Field = "status"
)

// AllFields returns the supported sort fields.
func AllFields() []Field {
	return []Field{FieldSerial, FieldAlias, FieldModel, FieldLocation, FieldStatus}
}

// ParseField converts a string to a Field; empty input defaults to serial.
func ParseField(raw string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(raw)))
	if f == "" {
		return FieldSerial, nil
	}
	for _, candidate := range AllFields() {
		if candidate == f {
			return candidate, nil
		}
	}
	return FieldSerial, fmt.Errorf("filter: unknown sort field %q", raw)
}

// Sort describes the requested ordering.
type Sort struct {
	Field      Field
	Descending bool
}

// Engine filters and sorts machines with a fixed collation locale.
type Engine struct {
	collator *collate.Collator
}

// New returns an engine sorting with the given locale's collation rules.
func New(tag language.Tag) *Engine {
	return &Engine{collator: collate.New(tag, collate.IgnoreCase)}
}

// Apply filters then sorts. The input slice is never mutated; no match is
// an empty result, not an error.
func (e *Engine) Apply(machines []maintenance.Machine, c Criteria, s Sort) []maintenance.Machine {
	out := make([]maintenance.Machine, 0, len(machines))
	for _, m := range machines {
		if matches(m, c) {
			out = append(out, m)
		}
	}
	e.sortMachines(out, s)
	return out
}

func matches(m maintenance.Machine, c Criteria) bool {
	if !matchesSearch(m, c.Search) {
		return false
	}
	switch c.Status {
	case "", Any:
	case StatusActive:
		if !m.Active {
			return false
		}
	case StatusInactive:
		if m.Active {
			return false
		}
	}
	if c.Location != "" && c.Location != Any && m.Location != c.Location {
		return false
	}
	return true
}

func matchesSearch(m maintenance.Machine, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{m.Serial, m.Alias, m.ModelName, m.Manufacturer, m.Location} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// sortMachines is stable: machines comparing equal keep their relative
// order, so chained refinements behave predictably.
func (e *Engine) sortMachines(machines []maintenance.Machine, s Sort) {
	field := s.Field
	if field == "" {
		field = FieldSerial
	}
	sort.SliceStable(machines, func(i, j int) bool {
		cmp := e.collator.CompareString(sortKey(machines[i], field), sortKey(machines[j], field))
		if s.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
}

// sortKey extracts the comparison key; missing values compare as the
// empty string, which sorts before any non-empty value ascending.
func sortKey(m maintenance.Machine, f Field) string {
	switch f {
	case FieldAlias:
		return m.Alias
	case FieldModel:
		return m.Model()
	case FieldLocation:
		return m.Location
	case FieldStatus:
		if m.Active {
			return "active"
		}
		return "inactive"
	default:
		return m.Serial
	}
}
