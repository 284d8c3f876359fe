package grouping

import (
	"fmt"
	"sort"
	"testing"

	"tableflip.dev/maint/pkg/maintenance"
)

func TestPartitionNoneIsSingleGroup(t *testing.T) {
	machines := []maintenance.Machine{
		{ID: "1", Serial: "B-2"},
		{ID: "2", Serial: "A-1"},
	}
	groups := Partition(machines, ModeNone)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	g := groups[0]
	if g.Key != AllLabel {
		t.Fatalf("unexpected key: %s", g.Key)
	}
	if g.Count != 2 || len(g.Machines) != 2 {
		t.Fatalf("unexpected count: %d", g.Count)
	}
	if g.Machines[0].Serial != "A-1" {
		t.Fatalf("group members not sorted by serial: %v", g.Machines)
	}
}

func TestPartitionByLocationFallbackLast(t *testing.T) {
	// 120 machines over 5 locations plus 10 with no location at all.
	locations := []string{"Annex", "Basement", "Dock", "Hall 1", "Zone 9"}
	var machines []maintenance.Machine
	for i := 0; i < 110; i++ {
		machines = append(machines, maintenance.Machine{
			ID:       fmt.Sprintf("m%03d", i),
			Serial:   fmt.Sprintf("SER-%03d", i),
			Location: locations[i%len(locations)],
		})
	}
	for i := 110; i < 120; i++ {
		machines = append(machines, maintenance.Machine{
			ID:     fmt.Sprintf("m%03d", i),
			Serial: fmt.Sprintf("SER-%03d", i),
		})
	}

	groups := Partition(machines, ModeLocation)
	if len(groups) != 6 {
		t.Fatalf("expected 6 groups, got %d", len(groups))
	}
	// Alphabetical, except the fallback group is pinned last even though
	// "No location" < "Zone 9" alphabetically.
	want := []string{"Annex", "Basement", "Dock", "Hall 1", "Zone 9", NoLocationLabel}
	for i, g := range groups {
		if g.Key != want[i] {
			t.Fatalf("group %d: got %s, want %s", i, g.Key, want[i])
		}
	}
	if groups[5].Count != 10 {
		t.Fatalf("expected 10 unlocated machines, got %d", groups[5].Count)
	}
}

func TestPartitionStatusLabels(t *testing.T) {
	machines := []maintenance.Machine{
		{ID: "1", Serial: "A", Active: true},
		{ID: "2", Serial: "B", Active: false},
		{ID: "3", Serial: "C", Active: true},
	}
	groups := Partition(machines, ModeStatus)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != ActiveLabel || groups[0].Count != 2 {
		t.Fatalf("unexpected first group: %s (%d)", groups[0].Key, groups[0].Count)
	}
	if groups[1].Key != InactiveLabel || groups[1].Count != 1 {
		t.Fatalf("unexpected second group: %s (%d)", groups[1].Key, groups[1].Count)
	}
}

func TestPartitionModelConcatenation(t *testing.T) {
	machines := []maintenance.Machine{
		{ID: "1", Serial: "A", Manufacturer: "Haas", ModelName: "VF-2"},
		{ID: "2", Serial: "B", Manufacturer: "Haas", ModelName: "VF-2"},
		{ID: "3", Serial: "C"},
	}
	groups := Partition(machines, ModeModel)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Key != "Haas VF-2" {
		t.Fatalf("unexpected model key: %s", groups[0].Key)
	}
	if groups[1].Key != NoModelLabel {
		t.Fatalf("expected fallback group last, got %s", groups[1].Key)
	}
}

func TestPartitionPreservesMultiset(t *testing.T) {
	var machines []maintenance.Machine
	for i := 0; i < 40; i++ {
		machines = append(machines, maintenance.Machine{
			ID:           fmt.Sprintf("m%d", i),
			Serial:       fmt.Sprintf("S-%02d", i),
			Location:     []string{"", "Hall A", "Hall B"}[i%3],
			Manufacturer: []string{"", "Haas"}[i%2],
			ModelName:    []string{"VF-2", ""}[i%2],
			Active:       i%4 == 0,
		})
	}

	for _, mode := range AllModes() {
		groups := Partition(machines, mode)
		var ids []string
		for _, g := range groups {
			if g.Count != len(g.Machines) {
				t.Fatalf("mode %s: count %d != members %d", mode, g.Count, len(g.Machines))
			}
			for _, m := range g.Machines {
				ids = append(ids, m.ID)
			}
		}
		if len(ids) != len(machines) {
			t.Fatalf("mode %s: flattened %d machines, want %d", mode, len(ids), len(machines))
		}
		sort.Strings(ids)
		for i := 1; i < len(ids); i++ {
			if ids[i] == ids[i-1] {
				t.Fatalf("mode %s: machine %s duplicated", mode, ids[i])
			}
		}
	}
}

func TestVisibleSkipsCollapsedGroups(t *testing.T) {
	machines := []maintenance.Machine{
		{ID: "1", Serial: "A", Location: "Hall A"},
		{ID: "2", Serial: "B", Location: "Hall B"},
		{ID: "3", Serial: "C", Location: "Hall A"},
	}
	groups := Partition(machines, ModeLocation)

	all := Visible(groups, nil)
	if len(all) != 3 {
		t.Fatalf("expected all machines visible, got %d", len(all))
	}
	if all[0].Serial != "A" || all[1].Serial != "C" || all[2].Serial != "B" {
		t.Fatalf("unexpected flatten order: %v", all)
	}

	some := Visible(groups, map[string]bool{"Hall A": true})
	if len(some) != 1 || some[0].Serial != "B" {
		t.Fatalf("expected only Hall B visible, got %v", some)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" Location "); err != nil || m != ModeLocation {
		t.Fatalf("ParseMode(Location) = %v, %v", m, err)
	}
	if m, err := ParseMode(""); err != nil || m != ModeNone {
		t.Fatalf("empty mode should mean none, got %v, %v", m, err)
	}
	if _, err := ParseMode("color"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
}
