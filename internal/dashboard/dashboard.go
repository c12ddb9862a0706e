// Package dashboard wires the task store, resource registry and calibration
// store into one session object that the console owns and passes around.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/dyluth/forge/internal/calibration"
	"github.com/dyluth/forge/internal/config"
	"github.com/dyluth/forge/internal/resources"
	"github.com/dyluth/forge/internal/store"
	"github.com/dyluth/forge/internal/view"
	"github.com/dyluth/forge/pkg/fab"
)

// Dashboard is the state behind one board session.
type Dashboard struct {
	Tasks       *store.TaskStore
	Resources   *resources.Registry
	Calibration *calibration.Store
}

// New builds a session from a loaded configuration.
func New(cfg *config.ForgeConfig) (*Dashboard, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	tasks, err := store.New(cfg.SeedTasks()...)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Tasks:       tasks,
		Resources:   resources.NewRegistry(cfg.SeedResources()),
		Calibration: calibration.NewStore(cfg.CalibrationDefaults()),
	}, nil
}

// NewTaskRequest carries the fields of the create-task form.
// Empty Priority and Status fall back to LOW and BACKLOG.
type NewTaskRequest struct {
	Title      string
	Priority   fab.Priority
	Status     fab.Status
	Assignment resources.Assignment
}

// CreateTask validates the form, resolves the assignee against the roster and
// appends a new task with a freshly minted ID.
func (d *Dashboard) CreateTask(req NewTaskRequest) (fab.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return fab.Task{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	priority := req.Priority
	if priority == "" {
		priority = fab.PriorityLow
	}
	if err := priority.Validate(); err != nil {
		return fab.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	status := req.Status
	if status == "" {
		status = fab.StatusBacklog
	}
	if err := status.Validate(); err != nil {
		return fab.Task{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	assignee, avatar := d.Resources.Resolve(req.Assignment)

	task := fab.Task{
		ID:             store.NewTaskID(d.Tasks.Has),
		Title:          title,
		Status:         status,
		Priority:       priority,
		Assignee:       assignee,
		AssigneeAvatar: avatar,
		Progress:       0,
		Notes:          "",
	}
	if err := d.Tasks.Create(task); err != nil {
		return fab.Task{}, err
	}
	return task, nil
}

// AdvanceInspected moves the inspected task to its next stage and closes the
// inspector, as the inspector's advance button does. Returns the task after the
// move and whether its status changed. With the inspector closed, or the task
// already deployed, nothing moves; the inspector is closed either way.
func (d *Dashboard) AdvanceInspected() (fab.Task, bool) {
	id := d.Tasks.InspectedID()
	defer d.Tasks.CloseInspector()

	if id == "" {
		return fab.Task{}, false
	}
	advanced := d.Tasks.Advance(id)
	task, ok := d.Tasks.Get(id)
	if !ok {
		return fab.Task{}, false
	}
	return task, advanced
}

// Board returns the board columns after applying filter.
func (d *Dashboard) Board(filter view.Filter) []view.Column {
	return view.Columns(view.Filtered(d.Tasks.List(), filter))
}

// FilteredTasks returns the flat task list after applying filter.
func (d *Dashboard) FilteredTasks(filter view.Filter) []fab.Task {
	return view.Filtered(d.Tasks.List(), filter)
}

// Assignees returns the assignee filter options.
func (d *Dashboard) Assignees() []string {
	return view.DistinctAssignees(d.Tasks.List())
}
