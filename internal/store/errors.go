package store

import "errors"

var (
	// ErrDuplicateID is returned by Create when a task with the same ID already exists.
	ErrDuplicateID = errors.New("duplicate task id")

	// ErrInvalidTask is returned when a task or patch carries values outside their domain.
	ErrInvalidTask = errors.New("invalid task")
)
