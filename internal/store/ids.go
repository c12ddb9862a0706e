package store

import (
	"strings"

	"github.com/google/uuid"
)

// taskIDPrefix marks identifiers minted by the console.
const taskIDPrefix = "T-"

// NewTaskID returns a fresh task identifier of the form T-XXXXXXXX, drawing the
// suffix from a random UUID. taken may be nil; when set, candidates it reports
// as in use are skipped.
func NewTaskID(taken func(id string) bool) string {
	for {
		raw := strings.ReplaceAll(uuid.NewString(), "-", "")
		id := taskIDPrefix + strings.ToUpper(raw[:8])
		if taken == nil || !taken(id) {
			return id
		}
	}
}
