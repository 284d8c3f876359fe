// Package maintenance defines the machine and work-order snapshot types
// the schedule engines operate on.
package maintenance

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used by snapshot files.
const DateLayout = "2006-01-02"

// Criticality classifies how urgent a work order is.
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// AllCriticalities returns the supported criticality levels, lowest first.
func AllCriticalities() []Criticality {
	return []Criticality{
		CriticalityLow,
		CriticalityMedium,
		CriticalityHigh,
		CriticalityCritical,
	}
}

// ParseCriticality converts a string to a Criticality or returns an error
// for unknown values. Empty input defaults to medium.
func ParseCriticality(raw string) (Criticality, error) {
	c := Criticality(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return CriticalityMedium, nil
	}
	for _, candidate := range AllCriticalities() {
		if candidate == c {
			return candidate, nil
		}
	}
	return CriticalityMedium, fmt.Errorf("maintenance: unknown criticality %q", raw)
}

// Status identifies where a work order is in its lifecycle.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// AllStatuses returns the supported work-order statuses.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
	}
}

// ParseStatus converts a string to a Status or returns an error for
// unknown values. Empty input defaults to pending.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusPending, nil
	}
	for _, candidate := range AllStatuses() {
		if candidate == s {
			return candidate, nil
		}
	}
	return StatusPending, fmt.Errorf("maintenance: unknown status %q", raw)
}

// Machine is an immutable snapshot of one maintainable asset. The engines
// never mutate it.
type Machine struct {
	ID           string `json:"id"`
	Serial       string `json:"serial"`
	Alias        string `json:"alias,omitempty"`
	Location     string `json:"location,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
	ModelName    string `json:"modelName,omitempty"`
	Active       bool   `json:"active"`
}

// Model returns the "manufacturer model" concatenation used for search,
// sorting and grouping, or "" when neither part is set.
func (m Machine) Model() string {
	switch {
	case m.Manufacturer == "" && m.ModelName == "":
		return ""
	case m.Manufacturer == "":
		return m.ModelName
	case m.ModelName == "":
		return m.Manufacturer
	default:
		return m.Manufacturer + " " + m.ModelName
	}
}

// WorkOrder is a scheduled maintenance task for one machine.
//
// ScheduledDate is kept as the raw snapshot string and parsed lazily; a
// snapshot with a malformed date must degrade to a warning, not a failed
// load.
type WorkOrder struct {
	ID             string      `json:"id"`
	Title          string      `json:"title"`
	MachineID      string      `json:"machineId"`
	AssignedUserID string      `json:"assignedUserId,omitempty"`
	Criticality    Criticality `json:"criticality,omitempty"`
	Status         Status      `json:"status,omitempty"`
	ScheduledDate  string      `json:"scheduledDate"`
	EstimatedHours float64     `json:"estimatedHours,omitempty"`
	CreatedDate    string      `json:"createdDate,omitempty"`
	CompletionDate string      `json:"completionDate,omitempty"`
}

// ScheduledAt parses the order's scheduled date.
func (o WorkOrder) ScheduledAt() (time.Time, error) {
	return ParseDate(o.ScheduledDate)
}

// ParseDate parses a snapshot calendar date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatDate renders a time as a snapshot calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
