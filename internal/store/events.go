package store

import (
	"fmt"

	"github.com/dyluth/forge/pkg/fab"
)

// EventKind identifies the mutation that produced an Event.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventUpdated  EventKind = "updated"
	EventMoved    EventKind = "moved"
	EventAdvanced EventKind = "advanced"
)

// Event describes a change that has been applied to the store.
// From and To are set for status changes.
type Event struct {
	Kind   EventKind
	TaskID string
	From   fab.Status
	To     fab.Status
	Detail string
}

// String renders the event as a one-line activity entry.
func (e Event) String() string {
	switch e.Kind {
	case EventMoved, EventAdvanced:
		return fmt.Sprintf("%s %s %s → %s", e.TaskID, e.Kind, e.From, e.To)
	case EventUpdated:
		if e.Detail != "" {
			return fmt.Sprintf("%s updated: %s", e.TaskID, e.Detail)
		}
		return fmt.Sprintf("%s updated", e.TaskID)
	default:
		return fmt.Sprintf("%s %s", e.TaskID, e.Kind)
	}
}

// Listener receives events synchronously, after the mutation is visible.
type Listener func(Event)
