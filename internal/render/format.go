package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dyluth/forge/internal/resources"
	"github.com/dyluth/forge/internal/view"
	"github.com/dyluth/forge/pkg/fab"
)

// OutputFormat specifies how task lists are written.
type OutputFormat string

const (
	// OutputFormatDefault uses a table format with truncated titles
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSONL outputs complete tasks as line-delimited JSON
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSONL:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

const taskRowFormat = "%-10s %-11s %-4s %-12s %-7s %s\n"

// FormatBoard writes the board one column at a time, in stage order.
// Returns the number of cards written.
func FormatBoard(w io.Writer, columns []view.Column, filter view.Filter) int {
	if filter.IsActive() {
		fmt.Fprintf(w, "Board (assignee=%s, priority=%s)\n\n", orAll(filter.Assignee), orAll(filter.Priority))
	} else {
		fmt.Fprintf(w, "Board\n\n")
	}

	total := 0
	for i, col := range columns {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%02d // %s [%d]\n", i+1, col.Status, col.Count())
		if col.Count() == 0 {
			fmt.Fprintf(w, "  (empty)\n")
			continue
		}
		for _, t := range col.Tasks {
			fmt.Fprintf(w, "  %-10s %-4s %-12s %-7s %s\n",
				t.ID,
				t.Priority,
				formatAssignee(t.Assignee),
				formatProgress(t.Progress),
				formatTitle(t.Title),
			)
		}
		total += col.Count()
	}

	fmt.Fprintf(w, "\n%d %s on board\n", total, plural(total, "task", "tasks"))
	return total
}

// FormatTaskTable writes tasks as a flat table.
// Returns the number of tasks formatted.
func FormatTaskTable(w io.Writer, tasks []fab.Task) int {
	if len(tasks) == 0 {
		fmt.Fprintf(w, "No tasks found\n")
		return 0
	}

	fmt.Fprintf(w, taskRowFormat, "ID", "STATUS", "PRI", "ASSIGNEE", "PROG", "TITLE")
	fmt.Fprintf(w, taskRowFormat,
		"----------", "-----------", "----", "------------", "-------", "----------------------------------------")

	for _, t := range tasks {
		fmt.Fprintf(w, taskRowFormat,
			t.ID,
			t.Status,
			t.Priority,
			formatAssignee(t.Assignee),
			formatProgress(t.Progress),
			formatTitle(t.Title),
		)
	}

	fmt.Fprintf(w, "\n%d %s found\n", len(tasks), plural(len(tasks), "task", "tasks"))
	return len(tasks)
}

// FormatTaskJSONL writes tasks as line-delimited JSON (JSONL) to the provided writer.
// Each task is written as a single JSON object on its own line.
func FormatTaskJSONL(w io.Writer, tasks []fab.Task) error {
	for _, task := range tasks {
		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to marshal task to JSON: %w", err)
		}

		_, err = fmt.Fprintf(w, "%s\n", string(data))
		if err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// FormatTaskJSON writes a single task as pretty-printed JSON to the provided writer.
func FormatTaskJSON(w io.Writer, task fab.Task) error {
	data, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal task to JSON: %w", err)
	}

	_, err = w.Write(data)
	if err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	fmt.Fprintln(w)
	return nil
}

// FormatInspector writes the detail view of a single task.
func FormatInspector(w io.Writer, t fab.Task) {
	fmt.Fprintf(w, "TASK INSPECTOR // %s\n\n", t.ID)
	fmt.Fprintf(w, "  Title:     %s\n", t.Title)
	fmt.Fprintf(w, "  Status:    %s\n", t.Status)
	fmt.Fprintf(w, "  Priority:  %s\n", t.Priority.Label())
	fmt.Fprintf(w, "  Assignee:  %s\n", t.Assignee)
	if t.AssigneeAvatar != "" {
		fmt.Fprintf(w, "  Avatar:    %s\n", t.AssigneeAvatar)
	}
	fmt.Fprintf(w, "  Progress:  %s %d/%d\n", formatProgress(t.Progress), t.Progress, fab.MaxProgress)

	if notes := strings.TrimSpace(t.Notes); notes != "" {
		fmt.Fprintf(w, "\n  Notes:\n")
		for _, line := range strings.Split(notes, "\n") {
			fmt.Fprintf(w, "    %s\n", line)
		}
	}

	if next, ok := t.Status.Next(); ok {
		fmt.Fprintf(w, "\n  Next stage: %s\n", next)
	} else {
		fmt.Fprintf(w, "\n  Final stage reached\n")
	}
}

const resourceRowFormat = "%-7s %-12s %-11s %-15s %-6s %-7s %s\n"

// FormatResources writes the operator roster with a workload sparkline per row.
// Returns the number of resources formatted.
func FormatResources(w io.Writer, list []fab.Resource, summary resources.Summary) int {
	if len(list) == 0 {
		fmt.Fprintf(w, "No resources registered\n")
		return 0
	}

	fmt.Fprintf(w, "Resources: %d total, %d busy, %d idle, %d error, mean efficiency %d%%\n\n",
		summary.Total,
		summary.ByStatus[fab.ResourceBusy],
		summary.ByStatus[fab.ResourceIdle],
		summary.ByStatus[fab.ResourceError],
		summary.MeanEfficiency,
	)

	fmt.Fprintf(w, resourceRowFormat, "OP", "NAME", "ROLE", "MACHINE", "STATUS", "LOAD", "EFF")
	fmt.Fprintf(w, resourceRowFormat, "-------", "------------", "-----------", "---------------", "------", "-------", "----")

	for _, r := range list {
		fmt.Fprintf(w, resourceRowFormat,
			r.OperatorID,
			truncate(r.Name, 12),
			truncate(r.Role, 11),
			truncate(r.MachineID, 15),
			r.Status,
			formatSparkline(r.Workload),
			formatEfficiency(r),
		)
	}

	return len(list)
}

// FormatConfig writes calibration settings as aligned key/value pairs in key order.
func FormatConfig(w io.Writer, keys []string, lookup func(key string) (string, error)) error {
	width := 0
	for _, k := range keys {
		if len(k) > width {
			width = len(k)
		}
	}

	for _, k := range keys {
		v, err := lookup(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  %-*s  %s\n", width, k, v)
	}
	return nil
}

// formatTitle truncates a title to its first line with max 40 characters.
// Empty titles return "-".
func formatTitle(title string) string {
	var firstLine string
	for _, line := range strings.Split(title, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			firstLine = trimmed
			break
		}
	}

	if firstLine == "" {
		return "-"
	}
	return truncate(firstLine, 40)
}

// formatAssignee shortens long names for the assignee column.
func formatAssignee(name string) string {
	if name == "" {
		return "-"
	}
	return truncate(name, 12)
}

// formatProgress renders the 5-cell progress meter, e.g. "[###..]".
// Out-of-range values are clamped for display.
func formatProgress(p int) string {
	if p < 0 {
		p = 0
	}
	if p > fab.MaxProgress {
		p = fab.MaxProgress
	}
	return "[" + strings.Repeat("#", p) + strings.Repeat(".", fab.MaxProgress-p) + "]"
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// formatSparkline renders a 7-day workload history, one block per day.
func formatSparkline(workload [fab.WorkloadDays]int) string {
	var b strings.Builder
	for _, v := range workload {
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		b.WriteRune(sparkLevels[v*(len(sparkLevels)-1)/100])
	}
	return b.String()
}

// formatEfficiency shows "-" for machines that are not producing.
func formatEfficiency(r fab.Resource) string {
	if r.Status != fab.ResourceBusy && r.Efficiency == 0 {
		return "-"
	}
	return fmt.Sprintf("%d%%", r.Efficiency)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max-3]) + "..."
	}
	return s
}

func orAll(v string) string {
	if v == "" {
		return view.All
	}
	return v
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
