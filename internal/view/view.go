// Package view derives the projections the board displays from a task list.
// Nothing here is stored: every function recomputes from the snapshot it is given.
package view

import (
	"sort"

	"github.com/dyluth/forge/pkg/fab"
)

// All is the filter sentinel meaning "do not filter on this field".
// It is a UI value, never a real assignee or priority: task and resource
// validation reject it as a name.
const All = fab.AllAssignees

// Filter narrows a task list by assignee and priority.
// Both criteria are ANDed; an empty value or All matches every task.
type Filter struct {
	Assignee string
	Priority string
}

// Matches returns true if the task satisfies every active criterion.
func (f Filter) Matches(t fab.Task) bool {
	if isActive(f.Assignee) && t.Assignee != f.Assignee {
		return false
	}
	if isActive(f.Priority) && string(t.Priority) != f.Priority {
		return false
	}
	return true
}

// IsActive returns true if any criterion narrows the list.
func (f Filter) IsActive() bool {
	return isActive(f.Assignee) || isActive(f.Priority)
}

func isActive(v string) bool {
	return v != "" && v != All
}

// Filtered returns the tasks matching f, in their original order.
func Filtered(tasks []fab.Task, f Filter) []fab.Task {
	out := make([]fab.Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// ByStatus returns the tasks in the given stage, in their original order.
func ByStatus(tasks []fab.Task, status fab.Status) []fab.Task {
	out := make([]fab.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// DistinctAssignees returns All followed by every assignee on the board,
// sorted lexicographically. UNASSIGNED is listed like any other name.
// A task carrying All as its assignee can only be built by bypassing
// validation; it is left out rather than listed twice.
func DistinctAssignees(tasks []fab.Task) []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range tasks {
		if t.Assignee == All || seen[t.Assignee] {
			continue
		}
		seen[t.Assignee] = true
		names = append(names, t.Assignee)
	}
	sort.Strings(names)

	return append([]string{All}, names...)
}

// Column is one stage of the board.
type Column struct {
	Status fab.Status
	Tasks  []fab.Task
}

// Count returns the number of cards in the column.
func (c Column) Count() int {
	return len(c.Tasks)
}

// Columns partitions tasks into one column per stage, in sequence order.
// Tasks with a status outside the sequence appear in no column.
func Columns(tasks []fab.Task) []Column {
	statuses := fab.Statuses()
	cols := make([]Column, len(statuses))
	for i, st := range statuses {
		cols[i] = Column{Status: st, Tasks: ByStatus(tasks, st)}
	}
	return cols
}
