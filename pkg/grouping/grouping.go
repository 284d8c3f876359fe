// Package grouping partitions machines into named groups with
// deterministic ordering and externally tracked collapse state.
package grouping

import (
	"fmt"
	"sort"
	"strings"

	"tableflip.dev/maint/pkg/maintenance"
)

// Mode selects the grouping key.
type Mode string

const (
	ModeNone         Mode = "none"
	ModeLocation     Mode = "location"
	ModeModel        Mode = "model"
	ModeManufacturer Mode = "manufacturer"
	ModeStatus       Mode = "status"
)

// AllModes returns the supported grouping modes.
func AllModes() []Mode {
	return []Mode{ModeNone, ModeLocation, ModeModel, ModeManufacturer, ModeStatus}
}

// ParseMode converts a string to a Mode; empty input means no grouping.
func ParseMode(raw string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return ModeNone, nil
	}
	for _, candidate := range AllModes() {
		if candidate == m {
			return candidate, nil
		}
	}
	return ModeNone, fmt.Errorf("grouping: unknown mode %q", raw)
}

// Labels for machines missing the grouped attribute, and for the
// ungrouped view.
const (
	AllLabel            = "All machines"
	NoLocationLabel     = "No location"
	NoModelLabel        = "No model"
	NoManufacturerLabel = "No manufacturer"
	ActiveLabel         = "Active"
	InactiveLabel       = "Inactive"
)

// Group is one named partition of the machine set.
type Group struct {
	Key      string
	Machines []maintenance.Machine
	Count    int
}

// Partition splits machines into groups for the given mode. Every input
// machine lands in exactly one group; within a group machines sort by
// serial ascending; groups sort alphabetically by key except that
// fallback ("No …") keys always come last.
func Partition(machines []maintenance.Machine, mode Mode) []Group {
	if mode == ModeNone || mode == "" {
		all := make([]maintenance.Machine, len(machines))
		copy(all, machines)
		sortBySerial(all)
		return []Group{{Key: AllLabel, Machines: all, Count: len(all)}}
	}

	buckets := make(map[string][]maintenance.Machine)
	for _, m := range machines {
		key := groupKey(m, mode)
		buckets[key] = append(buckets[key], m)
	}

	groups := make([]Group, 0, len(buckets))
	for key, members := range buckets {
		sortBySerial(members)
		groups = append(groups, Group{Key: key, Machines: members, Count: len(members)})
	}
	sort.Slice(groups, func(i, j int) bool {
		fi, fj := isFallback(groups[i].Key), isFallback(groups[j].Key)
		if fi != fj {
			return fj
		}
		return strings.ToLower(groups[i].Key) < strings.ToLower(groups[j].Key)
	})
	return groups
}

// Visible flattens every non-collapsed group, preserving each group's
// internal order, concatenated in group order.
func Visible(groups []Group, collapsed map[string]bool) []maintenance.Machine {
	var out []maintenance.Machine
	for _, g := range groups {
		if collapsed[g.Key] {
			continue
		}
		out = append(out, g.Machines...)
	}
	return out
}

func groupKey(m maintenance.Machine, mode Mode) string {
	switch mode {
	case ModeLocation:
		if m.Location == "" {
			return NoLocationLabel
		}
		return m.Location
	case ModeModel:
		if model := m.Model(); model != "" {
			return model
		}
		return NoModelLabel
	case ModeManufacturer:
		if m.Manufacturer == "" {
			return NoManufacturerLabel
		}
		return m.Manufacturer
	case ModeStatus:
		if m.Active {
			return ActiveLabel
		}
		return InactiveLabel
	}
	return AllLabel
}

func isFallback(key string) bool {
	switch key {
	case NoLocationLabel, NoModelLabel, NoManufacturerLabel:
		return true
	}
	return false
}

func sortBySerial(machines []maintenance.Machine) {
	sort.SliceStable(machines, func(i, j int) bool {
		return machines[i].Serial < machines[j].Serial
	})
}
