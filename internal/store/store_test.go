package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/dyluth/forge/pkg/fab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTask(id string, status fab.Status) fab.Task {
	return fab.Task{
		ID:       id,
		Title:    "task " + id,
		Status:   status,
		Priority: fab.PriorityLow,
		Assignee: fab.Unassigned,
	}
}

func seededStore(t *testing.T) *TaskStore {
	t.Helper()
	s, err := New(fab.SeedTasks()...)
	require.NoError(t, err)
	return s
}

func TestNew_PreservesSeedOrder(t *testing.T) {
	s := seededStore(t)

	var want []string
	for _, task := range fab.SeedTasks() {
		want = append(want, task.ID)
	}
	assert.Equal(t, want, s.IDs())
	assert.Equal(t, len(want), s.Len())
}

func TestNew_RejectsDuplicateSeed(t *testing.T) {
	_, err := New(newTask("T-1", fab.StatusBacklog), newTask("T-1", fab.StatusAssembly))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestCreate(t *testing.T) {
	t.Run("appends to the end", func(t *testing.T) {
		s := seededStore(t)
		require.NoError(t, s.Create(newTask("T-9", fab.StatusBacklog)))

		tasks := s.List()
		assert.Equal(t, "T-9", tasks[len(tasks)-1].ID)
	})

	t.Run("rejects duplicate id without mutating", func(t *testing.T) {
		s := seededStore(t)
		before := s.List()

		dup := newTask("A-242", fab.StatusDeployment)
		dup.Title = "impostor"
		err := s.Create(dup)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrDuplicateID)
		assert.Contains(t, err.Error(), "A-242")
		assert.Equal(t, before, s.List())
	})

	t.Run("rejects invalid task", func(t *testing.T) {
		s := seededStore(t)
		bad := newTask("T-9", "SHIPPED")

		err := s.Create(bad)
		assert.ErrorIs(t, err, ErrInvalidTask)
		assert.False(t, s.Has("T-9"))
	})

	t.Run("rejects the ALL filter value as assignee", func(t *testing.T) {
		s := seededStore(t)
		bad := newTask("T-9", fab.StatusBacklog)
		bad.Assignee = fab.AllAssignees

		err := s.Create(bad)
		assert.ErrorIs(t, err, ErrInvalidTask)
		assert.False(t, s.Has("T-9"))
	})
}

func TestList_ReturnsCopy(t *testing.T) {
	s := seededStore(t)
	tasks := s.List()
	tasks[0].Title = "mutated outside"

	got, ok := s.Get(tasks[0].ID)
	require.True(t, ok)
	assert.NotEqual(t, "mutated outside", got.Title)
}

func TestUpdate(t *testing.T) {
	t.Run("shallow merges set fields only", func(t *testing.T) {
		s := seededStore(t)
		before, _ := s.Get("C-882")

		require.NoError(t, s.Update("C-882", TaskPatch{Title: Ptr("Re-cut plating"), Progress: Ptr(3)}))

		after, _ := s.Get("C-882")
		assert.Equal(t, "Re-cut plating", after.Title)
		assert.Equal(t, 3, after.Progress)
		assert.Equal(t, before.Status, after.Status)
		assert.Equal(t, before.Assignee, after.Assignee)
		assert.Equal(t, before.Notes, after.Notes)
	})

	t.Run("progress may move in either direction", func(t *testing.T) {
		s := seededStore(t)
		require.NoError(t, s.Update("F-002", TaskPatch{Progress: Ptr(1)}))

		got, _ := s.Get("F-002")
		assert.Equal(t, 1, got.Progress)
	})

	t.Run("status may be set to any stage", func(t *testing.T) {
		s := seededStore(t)
		require.NoError(t, s.Update("F-002", TaskPatch{Status: Ptr(fab.StatusBacklog)}))

		got, _ := s.Get("F-002")
		assert.Equal(t, fab.StatusBacklog, got.Status)
	})

	t.Run("invalid patch changes nothing", func(t *testing.T) {
		s := seededStore(t)
		before := s.List()

		err := s.Update("A-242", TaskPatch{Title: Ptr("x"), Progress: Ptr(6)})
		assert.ErrorIs(t, err, ErrInvalidTask)

		err = s.Update("A-242", TaskPatch{Priority: Ptr(fab.Priority("URGENT"))})
		assert.ErrorIs(t, err, ErrInvalidTask)

		err = s.Update("A-242", TaskPatch{Assignee: Ptr(fab.AllAssignees)})
		assert.ErrorIs(t, err, ErrInvalidTask)

		assert.Equal(t, before, s.List())
	})
}

// Unknown IDs leave the list untouched: same length, same field values.
func TestUnknownID_NoOp(t *testing.T) {
	s := seededStore(t)
	before := s.List()

	assert.NoError(t, s.Update("NOPE-1", TaskPatch{Title: Ptr("X"), Progress: Ptr(5)}))
	assert.False(t, s.Advance("NOPE-1"))
	assert.NoError(t, s.Move("NOPE-1", fab.StatusDeployment))

	// Validation is never reached for an ID that does not exist
	assert.NoError(t, s.Update("NOPE-1", TaskPatch{Progress: Ptr(9)}))
	assert.NoError(t, s.Move("NOPE-1", fab.Status("DONE")))

	assert.Equal(t, before, s.List())
}

func TestAdvance_FourthStepIsNoOp(t *testing.T) {
	for _, start := range fab.Statuses() {
		t.Run(string(start), func(t *testing.T) {
			s, err := New(newTask("T-1", start))
			require.NoError(t, err)

			for i := 0; i < 4; i++ {
				s.Advance("T-1")
			}
			got, _ := s.Get("T-1")
			assert.Equal(t, fab.StatusDeployment, got.Status)

			assert.False(t, s.Advance("T-1"))
			got, _ = s.Get("T-1")
			assert.Equal(t, fab.StatusDeployment, got.Status)
		})
	}
}

func TestAdvance_Scenario(t *testing.T) {
	s, err := New(fab.Task{ID: "T-1", Title: "scenario", Status: fab.StatusBacklog, Priority: fab.PriorityMed, Assignee: fab.Unassigned, Progress: 0})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.True(t, s.Advance("T-1"))
	}
	got, _ := s.Get("T-1")
	require.Equal(t, fab.StatusAssembly, got.Status)

	require.NoError(t, s.Update("T-1", TaskPatch{Progress: Ptr(5)}))
	got, _ = s.Get("T-1")
	assert.Equal(t, 5, got.Progress)
	assert.Equal(t, fab.StatusAssembly, got.Status)

	assert.True(t, s.Advance("T-1"))
	got, _ = s.Get("T-1")
	assert.Equal(t, fab.StatusDeployment, got.Status)

	assert.False(t, s.Advance("T-1"))
	got, _ = s.Get("T-1")
	assert.Equal(t, fab.StatusDeployment, got.Status)
}

func TestMove_BypassesSequence(t *testing.T) {
	s := seededStore(t)

	require.NoError(t, s.Move("A-242", fab.StatusDeployment))
	got, _ := s.Get("A-242")
	assert.Equal(t, fab.StatusDeployment, got.Status)

	require.NoError(t, s.Move("A-242", fab.StatusBacklog))
	got, _ = s.Get("A-242")
	assert.Equal(t, fab.StatusBacklog, got.Status)
}

func TestMove_InvalidStatus(t *testing.T) {
	s := seededStore(t)
	err := s.Move("A-242", fab.Status("LIMBO"))
	assert.ErrorIs(t, err, ErrInvalidTask)

	got, _ := s.Get("A-242")
	assert.Equal(t, fab.StatusBacklog, got.Status)
}

func TestInspected(t *testing.T) {
	t.Run("closed by default", func(t *testing.T) {
		s := seededStore(t)
		_, ok := s.Inspected()
		assert.False(t, ok)
		assert.Empty(t, s.InspectedID())
	})

	t.Run("reflects updates to the inspected task", func(t *testing.T) {
		s := seededStore(t)
		s.Inspect("A-201")

		require.NoError(t, s.Update("A-201", TaskPatch{Title: Ptr("X")}))

		got, ok := s.Inspected()
		require.True(t, ok)
		assert.Equal(t, "X", got.Title)
	})

	t.Run("unchanged when another task is updated", func(t *testing.T) {
		s := seededStore(t)
		s.Inspect("A-201")
		before, _ := s.Inspected()

		require.NoError(t, s.Update("A-249", TaskPatch{Title: Ptr("X")}))

		after, ok := s.Inspected()
		require.True(t, ok)
		assert.Equal(t, before, after)
	})

	t.Run("reflects advance and move", func(t *testing.T) {
		s := seededStore(t)
		s.Inspect("B-105")

		s.Advance("B-105")
		got, _ := s.Inspected()
		assert.Equal(t, fab.StatusFabrication, got.Status)

		require.NoError(t, s.Move("B-105", fab.StatusDeployment))
		got, _ = s.Inspected()
		assert.Equal(t, fab.StatusDeployment, got.Status)
	})

	t.Run("unknown id inspects nothing", func(t *testing.T) {
		s := seededStore(t)
		s.Inspect("GHOST")

		_, ok := s.Inspected()
		assert.False(t, ok)
		assert.Equal(t, "GHOST", s.InspectedID())
	})

	t.Run("close clears the reference", func(t *testing.T) {
		s := seededStore(t)
		s.Inspect("A-242")
		s.CloseInspector()

		_, ok := s.Inspected()
		assert.False(t, ok)
	})
}

func TestSubscribe(t *testing.T) {
	s := seededStore(t)

	var events []Event
	s.Subscribe(func(e Event) { events = append(events, e) })

	require.NoError(t, s.Create(newTask("T-7", fab.StatusBacklog)))
	s.Advance("T-7")
	require.NoError(t, s.Move("T-7", fab.StatusDeployment))
	require.NoError(t, s.Update("T-7", TaskPatch{Notes: Ptr("done")}))

	// No-ops do not notify
	s.Advance("T-7")
	s.Advance("GHOST")
	require.NoError(t, s.Move("T-7", fab.StatusDeployment))
	require.NoError(t, s.Update("T-7", TaskPatch{}))

	require.Len(t, events, 4)
	assert.Equal(t, EventCreated, events[0].Kind)
	assert.Equal(t, Event{Kind: EventAdvanced, TaskID: "T-7", From: fab.StatusBacklog, To: fab.StatusFabrication}, events[1])
	assert.Equal(t, EventMoved, events[2].Kind)
	assert.Equal(t, fab.StatusDeployment, events[2].To)
	assert.Equal(t, EventUpdated, events[3].Kind)
	assert.Contains(t, events[3].String(), `notes="done"`)
}

func TestNewTaskID(t *testing.T) {
	t.Run("format", func(t *testing.T) {
		id := NewTaskID(nil)
		assert.True(t, strings.HasPrefix(id, "T-"))
		assert.Len(t, id, 10)
		assert.Equal(t, strings.ToUpper(id), id)
	})

	t.Run("skips taken ids", func(t *testing.T) {
		calls := 0
		id := NewTaskID(func(string) bool {
			calls++
			return calls < 3
		})
		assert.Equal(t, 3, calls)
		assert.NotEmpty(t, id)
	})

	t.Run("unique across many draws", func(t *testing.T) {
		s, err := New()
		require.NoError(t, err)
		for i := 0; i < 1000; i++ {
			task := newTask(NewTaskID(s.Has), fab.StatusBacklog)
			require.NoError(t, s.Create(task))
		}
		assert.Equal(t, 1000, s.Len())
	})
}
