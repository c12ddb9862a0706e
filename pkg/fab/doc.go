// Package fab provides the type definitions shared by every part of the
// fabrication board: tasks moving through the kanban stages, the operators
// and machines they can be assigned to, and the calibration settings record.
//
// # Overview
//
// A Task is a unit of shop-floor work. Its Status is one of four kanban
// stages, walked in a fixed order by the "advance" operation:
//
//	BACKLOG → FABRICATION → ASSEMBLY → DEPLOYMENT
//
// DEPLOYMENT is terminal for advancing. Setting a status directly (the board's
// drag-and-drop move) may jump to any stage; the sequence only constrains
// Next.
//
// Resources are read-only reference records for operators and their machines.
// Config is a flat record of independent calibration settings.
//
// # Usage Example
//
//	task := fab.Task{
//		ID:       "T-1A2B3C4D",
//		Title:    "Servo calibration",
//		Status:   fab.StatusBacklog,
//		Priority: fab.PriorityLow,
//		Assignee: fab.Unassigned,
//	}
//	if err := task.Validate(); err != nil {
//		log.Fatal(err)
//	}
//
//	next, ok := task.Status.Next()
//	// next = FABRICATION, ok = true
//
// # Seed Data
//
// SeedTasks, SeedResources and DefaultConfig return fresh copies of the
// built-in demo data, so callers may mutate what they receive.
package fab
