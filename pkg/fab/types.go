package fab

import (
	"fmt"
	"strings"
)

// Unassigned is the assignee value for a task nobody has picked up.
// It is a real value, not the absence of one.
const Unassigned = "UNASSIGNED"

// AllAssignees is the board's "no filter" value. No task or resource may use
// it as a name, so a filter on it can never be mistaken for a real person.
const AllAssignees = "ALL"

// MaxProgress is the number of cells in a task's progress meter.
const MaxProgress = 5

// WorkloadDays is the fixed length of a resource's workload history.
const WorkloadDays = 7

// Task represents a unit of work on the fabrication board.
type Task struct {
	ID             string   `json:"id" yaml:"id" toml:"id"`
	Title          string   `json:"title" yaml:"title" toml:"title"`
	Status         Status   `json:"status" yaml:"status" toml:"status"`
	Priority       Priority `json:"priority" yaml:"priority" toml:"priority"`
	Assignee       string   `json:"assignee" yaml:"assignee" toml:"assignee"`                                       // Display name or Unassigned
	AssigneeAvatar string   `json:"assigneeAvatar" yaml:"assigneeAvatar,omitempty" toml:"assigneeAvatar,omitempty"` // Empty means no avatar
	Progress       int      `json:"progress" yaml:"progress" toml:"progress"`                                       // 0..MaxProgress
	Notes          string   `json:"notes,omitempty" yaml:"notes,omitempty" toml:"notes,omitempty"`
}

// Status is the kanban stage a task sits in.
type Status string

const (
	// StatusBacklog is the entry stage for new work
	StatusBacklog Status = "BACKLOG"

	// StatusFabrication covers cutting, machining and welding
	StatusFabrication Status = "FABRICATION"

	// StatusAssembly covers fitting fabricated parts together
	StatusAssembly Status = "ASSEMBLY"

	// StatusDeployment is the terminal stage of the advance sequence
	StatusDeployment Status = "DEPLOYMENT"
)

var statusSequence = []Status{StatusBacklog, StatusFabrication, StatusAssembly, StatusDeployment}

// Statuses returns the stages in sequence order.
func Statuses() []Status {
	out := make([]Status, len(statusSequence))
	copy(out, statusSequence)
	return out
}

// Next returns the stage that follows s in the sequence.
// Returns false for DEPLOYMENT and for values outside the sequence.
func (s Status) Next() (Status, bool) {
	for i, st := range statusSequence {
		if st == s {
			if i+1 < len(statusSequence) {
				return statusSequence[i+1], true
			}
			return s, false
		}
	}
	return s, false
}

// IsTerminal reports whether s is the last stage of the sequence.
func (s Status) IsTerminal() bool {
	return s == StatusDeployment
}

// Validate checks if the Status is a valid enum value.
func (s Status) Validate() error {
	switch s {
	case StatusBacklog, StatusFabrication, StatusAssembly, StatusDeployment:
		return nil
	default:
		return fmt.Errorf("unknown status: %q", s)
	}
}

// ParseStatus converts user input into a Status, ignoring case and surrounding space.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if err := st.Validate(); err != nil {
		return "", err
	}
	return st, nil
}

// Priority ranks a task independently of its stage.
type Priority string

const (
	PriorityLow  Priority = "LOW"
	PriorityMed  Priority = "MED"
	PriorityHigh Priority = "HIGH"
	PriorityCrit Priority = "CRIT"
	PriorityRdy  Priority = "RDY"
)

// Priorities returns every priority in display order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMed, PriorityHigh, PriorityCrit, PriorityRdy}
}

// Validate checks if the Priority is a valid enum value.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMed, PriorityHigh, PriorityCrit, PriorityRdy:
		return nil
	default:
		return fmt.Errorf("unknown priority: %q", p)
	}
}

// Label returns the long display name used by the create form and inspector.
func (p Priority) Label() string {
	switch p {
	case PriorityCrit:
		return "CRITICAL"
	case PriorityRdy:
		return "READY"
	default:
		return string(p)
	}
}

// ParsePriority converts user input into a Priority.
// The display labels CRITICAL and READY are accepted as aliases.
func ParsePriority(s string) (Priority, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch v {
	case "CRITICAL":
		return PriorityCrit, nil
	case "READY":
		return PriorityRdy, nil
	}
	p := Priority(v)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks if the Task has valid field values.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("task ID cannot be empty")
	}

	if err := t.Status.Validate(); err != nil {
		return fmt.Errorf("task %s: invalid status: %w", t.ID, err)
	}

	if err := t.Priority.Validate(); err != nil {
		return fmt.Errorf("task %s: invalid priority: %w", t.ID, err)
	}

	if err := ValidateProgress(t.Progress); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}

	if err := ValidateAssignee(t.Assignee); err != nil {
		return fmt.Errorf("task %s: %w", t.ID, err)
	}

	return nil
}

// ValidateAssignee rejects the reserved filter name.
func ValidateAssignee(name string) error {
	if strings.EqualFold(strings.TrimSpace(name), AllAssignees) {
		return fmt.Errorf("invalid assignee: %q is reserved", AllAssignees)
	}
	return nil
}

// ValidateProgress checks that p fits the progress meter.
func ValidateProgress(p int) error {
	if p < 0 || p > MaxProgress {
		return fmt.Errorf("invalid progress: must be between 0 and %d, got %d", MaxProgress, p)
	}
	return nil
}

// Resource represents an operator and the machine they run.
// Resources are reference data; nothing in the core mutates them.
type Resource struct {
	ID         string            `json:"id" yaml:"id" toml:"id"`
	OperatorID string            `json:"operatorId" yaml:"operatorId" toml:"operatorId"`
	Name       string            `json:"name" yaml:"name" toml:"name"`
	Role       string            `json:"role" yaml:"role" toml:"role"`
	MachineID  string            `json:"machineId" yaml:"machineId" toml:"machineId"`
	Status     ResourceStatus    `json:"status" yaml:"status" toml:"status"`
	Workload   [WorkloadDays]int `json:"workload" yaml:"workload" toml:"workload"` // Load percentage for each of the last 7 days
	Efficiency int               `json:"efficiency" yaml:"efficiency" toml:"efficiency"`
	Avatar     string            `json:"avatar" yaml:"avatar,omitempty" toml:"avatar,omitempty"`
}

// ResourceStatus is the live state of an operator's machine.
type ResourceStatus string

const (
	ResourceBusy  ResourceStatus = "BUSY"
	ResourceIdle  ResourceStatus = "IDLE"
	ResourceError ResourceStatus = "ERROR"
)

// Validate checks if the ResourceStatus is a valid enum value.
func (rs ResourceStatus) Validate() error {
	switch rs {
	case ResourceBusy, ResourceIdle, ResourceError:
		return nil
	default:
		return fmt.Errorf("unknown resource status: %q", rs)
	}
}

// Validate checks if the Resource has valid field values.
func (r *Resource) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("resource ID cannot be empty")
	}
	if r.Name == "" {
		return fmt.Errorf("resource %s: name cannot be empty", r.ID)
	}
	if err := ValidateAssignee(r.Name); err != nil {
		return fmt.Errorf("resource %s: %w", r.ID, err)
	}
	if err := r.Status.Validate(); err != nil {
		return fmt.Errorf("resource %s: %w", r.ID, err)
	}
	return nil
}

// Config is the flat calibration settings record.
// Fields are independent; there are no cross-field invariants.
type Config struct {
	HighContrast     bool    `json:"highContrast" yaml:"highContrast" toml:"highContrast"`
	HapticFeedback   bool    `json:"hapticFeedback" yaml:"hapticFeedback" toml:"hapticFeedback"`
	RefreshRate      int     `json:"refreshRate" yaml:"refreshRate" toml:"refreshRate"` // Hz
	MaxTorque        float64 `json:"maxTorque" yaml:"maxTorque" toml:"maxTorque"`       // Nm
	TempCeiling      float64 `json:"tempCeiling" yaml:"tempCeiling" toml:"tempCeiling"` // °C
	GridDensity      int     `json:"gridDensity" yaml:"gridDensity" toml:"gridDensity"`
	CalibrationNotes string  `json:"calibrationNotes" yaml:"calibrationNotes" toml:"calibrationNotes"`
}

// Config keys, as used by the calibration panel.
const (
	KeyHighContrast     = "highContrast"
	KeyHapticFeedback   = "hapticFeedback"
	KeyRefreshRate      = "refreshRate"
	KeyMaxTorque        = "maxTorque"
	KeyTempCeiling      = "tempCeiling"
	KeyGridDensity      = "gridDensity"
	KeyCalibrationNotes = "calibrationNotes"
)
