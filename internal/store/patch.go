package store

import (
	"fmt"

	"github.com/dyluth/forge/pkg/fab"
)

// TaskPatch is a partial update. Nil fields are left untouched.
// The task ID is not patchable.
type TaskPatch struct {
	Title          *string
	Status         *fab.Status
	Priority       *fab.Priority
	Assignee       *string
	AssigneeAvatar *string
	Progress       *int
	Notes          *string
}

// IsEmpty reports whether the patch sets no fields.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Status == nil && p.Priority == nil &&
		p.Assignee == nil && p.AssigneeAvatar == nil && p.Progress == nil && p.Notes == nil
}

// Validate checks the fields the patch sets.
func (p TaskPatch) Validate() error {
	if p.Status != nil {
		if err := p.Status.Validate(); err != nil {
			return err
		}
	}
	if p.Priority != nil {
		if err := p.Priority.Validate(); err != nil {
			return err
		}
	}
	if p.Progress != nil {
		if err := fab.ValidateProgress(*p.Progress); err != nil {
			return err
		}
	}
	if p.Assignee != nil {
		if err := fab.ValidateAssignee(*p.Assignee); err != nil {
			return err
		}
	}
	return nil
}

// apply merges the patch onto t (shallow).
func (p TaskPatch) apply(t fab.Task) fab.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.AssigneeAvatar != nil {
		t.AssigneeAvatar = *p.AssigneeAvatar
	}
	if p.Progress != nil {
		t.Progress = *p.Progress
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	return t
}

// String summarises the fields a patch sets, for change notifications.
func (p TaskPatch) String() string {
	s := ""
	add := func(k, v string) {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("%s=%q", k, v)
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Status != nil {
		add("status", string(*p.Status))
	}
	if p.Priority != nil {
		add("priority", string(*p.Priority))
	}
	if p.Assignee != nil {
		add("assignee", *p.Assignee)
	}
	if p.AssigneeAvatar != nil {
		add("avatar", *p.AssigneeAvatar)
	}
	if p.Progress != nil {
		add("progress", fmt.Sprint(*p.Progress))
	}
	if p.Notes != nil {
		add("notes", *p.Notes)
	}
	return s
}

// Ptr returns a pointer to v. Handy for building patches inline.
func Ptr[T any](v T) *T {
	return &v
}
