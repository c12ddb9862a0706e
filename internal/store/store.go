// Package store holds the authoritative task list for a board session.
//
// The store is owned by a single goroutine: every operation completes before
// returning and nothing runs in the background, so there is no locking. Lookups
// by an unknown ID are no-ops, never errors.
package store

import (
	"fmt"

	"github.com/dyluth/forge/pkg/fab"
)

// TaskStore keeps tasks in insertion order and tracks which one is open in the
// inspector. The inspector holds only an ID; reads resolve it against the list
// so the inspected view can never drift from the task it points at.
type TaskStore struct {
	tasks     []fab.Task
	index     map[string]int // task ID → position in tasks
	inspected string
	listeners []Listener
}

// New creates a store seeded with the given tasks, in order.
// Returns an error if a seed task is invalid or repeats an ID.
func New(seed ...fab.Task) (*TaskStore, error) {
	s := &TaskStore{
		tasks: make([]fab.Task, 0, len(seed)),
		index: make(map[string]int, len(seed)),
	}
	for _, t := range seed {
		if err := s.Create(t); err != nil {
			return nil, fmt.Errorf("failed to seed store: %w", err)
		}
	}
	return s, nil
}

// Subscribe registers fn to be called after every applied mutation.
func (s *TaskStore) Subscribe(fn Listener) {
	if fn != nil {
		s.listeners = append(s.listeners, fn)
	}
}

func (s *TaskStore) emit(e Event) {
	for _, fn := range s.listeners {
		fn(e)
	}
}

// List returns a copy of every task in insertion order.
func (s *TaskStore) List() []fab.Task {
	out := make([]fab.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given ID.
func (s *TaskStore) Get(id string) (fab.Task, bool) {
	i, ok := s.index[id]
	if !ok {
		return fab.Task{}, false
	}
	return s.tasks[i], true
}

// Has reports whether a task with the given ID exists.
func (s *TaskStore) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// IDs returns every task ID in insertion order.
func (s *TaskStore) IDs() []string {
	ids := make([]string, len(s.tasks))
	for i, t := range s.tasks {
		ids[i] = t.ID
	}
	return ids
}

// Create appends task to the end of the list.
// Duplicate IDs are rejected with ErrDuplicateID and the store is left unchanged.
func (s *TaskStore) Create(task fab.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	if s.Has(task.ID) {
		return fmt.Errorf("%w: %s", ErrDuplicateID, task.ID)
	}

	s.index[task.ID] = len(s.tasks)
	s.tasks = append(s.tasks, task)

	s.emit(Event{Kind: EventCreated, TaskID: task.ID, To: task.Status})
	return nil
}

// Update shallow-merges patch onto the task with the given ID.
// An unknown ID is a no-op whatever the patch holds. For a known ID, a patch
// with out-of-domain values returns ErrInvalidTask and changes nothing.
func (s *TaskStore) Update(id string, patch TaskPatch) error {
	i, ok := s.index[id]
	if !ok {
		return nil
	}

	if err := patch.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}
	if patch.IsEmpty() {
		return nil
	}

	before := s.tasks[i]
	s.tasks[i] = patch.apply(before)

	s.emit(Event{Kind: EventUpdated, TaskID: id, From: before.Status, To: s.tasks[i].Status, Detail: patch.String()})
	return nil
}

// Move sets the status of a task directly. Any stage may be reached from any
// other; this is the board's manual override and ignores the sequence.
// An unknown ID is a no-op, even with an invalid status.
func (s *TaskStore) Move(id string, status fab.Status) error {
	i, ok := s.index[id]
	if !ok {
		return nil
	}

	if err := status.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTask, err)
	}

	from := s.tasks[i].Status
	if from == status {
		return nil
	}
	s.tasks[i].Status = status

	s.emit(Event{Kind: EventMoved, TaskID: id, From: from, To: status})
	return nil
}

// Advance moves a task one stage forward in the sequence.
// Returns false, changing nothing, if the ID is unknown or the task is
// already in DEPLOYMENT.
func (s *TaskStore) Advance(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}

	from := s.tasks[i].Status
	next, ok := from.Next()
	if !ok {
		return false
	}
	s.tasks[i].Status = next

	s.emit(Event{Kind: EventAdvanced, TaskID: id, From: from, To: next})
	return true
}

// Inspect points the inspector at the task with the given ID.
// No validation is done; an unknown ID simply inspects nothing.
func (s *TaskStore) Inspect(id string) {
	s.inspected = id
}

// CloseInspector clears the inspector.
func (s *TaskStore) CloseInspector() {
	s.inspected = ""
}

// InspectedID returns the ID the inspector points at, or "" if it is closed.
func (s *TaskStore) InspectedID() string {
	return s.inspected
}

// Inspected returns the current state of the inspected task.
func (s *TaskStore) Inspected() (fab.Task, bool) {
	if s.inspected == "" {
		return fab.Task{}, false
	}
	return s.Get(s.inspected)
}
