package resources

import (
	"strings"

	"github.com/dyluth/forge/pkg/fab"
)

// AssignMode selects how a new task's assignee is chosen.
type AssignMode string

const (
	// AssignResource picks an operator from the registry
	AssignResource AssignMode = "resource"

	// AssignManual takes a free-text name and avatar
	AssignManual AssignMode = "manual"
)

// Assignment is the assignee part of the create-task form.
type Assignment struct {
	Mode       AssignMode
	ResourceID string // AssignResource: registry ID; empty means unassigned
	Name       string // AssignManual
	Avatar     string // AssignManual
}

// Resolve turns an assignment into the name and avatar stored on the task.
// Anything that does not resolve to a person yields UNASSIGNED with no avatar,
// including a manual name that collides with the ALL filter.
func (r *Registry) Resolve(a Assignment) (name, avatar string) {
	switch a.Mode {
	case AssignResource:
		if a.ResourceID == "" {
			return fab.Unassigned, ""
		}
		if res, ok := r.Get(a.ResourceID); ok {
			return res.Name, res.Avatar
		}
		return fab.Unassigned, ""

	case AssignManual:
		n := strings.ToUpper(strings.TrimSpace(a.Name))
		if n == "" {
			n = fab.Unassigned
		}
		if n == fab.AllAssignees {
			return fab.Unassigned, ""
		}
		return n, a.Avatar

	default:
		return fab.Unassigned, ""
	}
}
