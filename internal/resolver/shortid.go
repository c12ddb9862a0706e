package resolver

import (
	"fmt"
	"strings"
)

// MinShortIDLength is the minimum required length for short ID prefixes.
// Three characters covers the stage letter, the dash and one digit ("A-2").
const MinShortIDLength = 3

// ResolveTaskID resolves user input to a task ID from ids.
// Returns the full ID if exactly one task matches.
// Returns error if zero or multiple tasks match.
//
// The function handles three cases:
// 1. Input equals an ID (ignoring case) - returns that ID
// 2. Input is too short (< 3 chars) - returns validation error
// 3. Input is a prefix - returns the unique task it starts
func ResolveTaskID(ids []string, input string) (string, error) {
	input = strings.TrimSpace(input)

	for _, id := range ids {
		if strings.EqualFold(id, input) {
			return id, nil
		}
	}

	if len(input) < MinShortIDLength {
		return "", fmt.Errorf("short ID must be at least %d characters (got %d)", MinShortIDLength, len(input))
	}

	prefix := strings.ToUpper(input)
	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(strings.ToUpper(id), prefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", &NotFoundError{ShortID: input}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousError{ShortID: input, Matches: matches}
	}
}

// NotFoundError indicates no tasks matched the short ID.
type NotFoundError struct {
	ShortID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no tasks found matching '%s'", e.ShortID)
}

// AmbiguousError indicates multiple tasks matched the short ID.
type AmbiguousError struct {
	ShortID string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short ID '%s' matches %d tasks", e.ShortID, len(e.Matches))
}

// FormatAmbiguousError creates a user-friendly error message for ambiguous short IDs.
// Lists all matching IDs (up to 10, then "...and N more").
func FormatAmbiguousError(err *AmbiguousError) string {
	msg := fmt.Sprintf("Error: ambiguous short ID '%s' matches %d tasks:\n", err.ShortID, len(err.Matches))

	displayCount := len(err.Matches)
	if displayCount > 10 {
		displayCount = 10
	}

	for i := 0; i < displayCount; i++ {
		msg += fmt.Sprintf("  %s\n", err.Matches[i])
	}

	if len(err.Matches) > 10 {
		msg += fmt.Sprintf("  ...and %d more\n", len(err.Matches)-10)
	}

	msg += "\nUse a longer prefix to uniquely identify the task."
	return msg
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
