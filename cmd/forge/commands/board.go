package commands

import (
	"fmt"
	"strings"

	"github.com/dyluth/forge/internal/dashboard"
	"github.com/dyluth/forge/internal/printer"
	"github.com/dyluth/forge/internal/render"
	"github.com/dyluth/forge/internal/view"
	"github.com/dyluth/forge/pkg/fab"
	"github.com/spf13/cobra"
)

// filterFlags are the board's assignee and priority selectors.
type filterFlags struct {
	assignee string
	priority string
	output   string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.assignee, "assignee", "a", view.All, "Show only tasks for this assignee (see 'forge assignees')")
	cmd.Flags().StringVarP(&f.priority, "priority", "p", view.All, "Show only tasks with this priority: LOW, MED, HIGH, CRIT, RDY")
	cmd.Flags().StringVarP(&f.output, "output", "o", "default", "Output format: default or jsonl")
}

// parse validates the flags against the session.
func (f *filterFlags) parse(d *dashboard.Dashboard) (view.Filter, render.OutputFormat, error) {
	format, err := render.ParseOutputFormat(f.output)
	if err != nil {
		return view.Filter{}, "", printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", f.output),
			[]string{"Valid formats: default, jsonl"},
		)
	}

	filter := view.Filter{Assignee: strings.TrimSpace(f.assignee)}

	if p := strings.TrimSpace(f.priority); p != "" && !strings.EqualFold(p, view.All) {
		priority, err := fab.ParsePriority(p)
		if err != nil {
			return view.Filter{}, "", printer.Error(
				"invalid priority",
				err.Error(),
				[]string{"Valid priorities: LOW, MED, HIGH, CRIT, RDY (or ALL)"},
			)
		}
		filter.Priority = string(priority)
	}

	if filter.Assignee != "" && filter.Assignee != view.All {
		known := false
		for _, a := range d.Assignees() {
			if a == filter.Assignee {
				known = true
				break
			}
		}
		if !known {
			printer.Warning("no tasks are assigned to %q (names are case-sensitive)\n", filter.Assignee)
		}
	}

	return filter, format, nil
}

func newBoardCmd(c *console) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the board, one column per stage",
		Long: `Show the board with one column per stage, in stage order.

Filters narrow the cards shown; empty columns are still listed.

Examples:
  # Full board
  forge board

  # Critical work only
  forge board --priority CRIT

  # One operator's cards as JSONL
  forge board --assignee "K. REESE" --output jsonl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			filter, format, err := flags.parse(d)
			if err != nil {
				return err
			}

			if format == render.OutputFormatJSONL {
				return render.FormatTaskJSONL(out(cmd), d.FilteredTasks(filter))
			}
			render.FormatBoard(out(cmd), d.Board(filter), filter)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newTasksCmd(c *console) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List tasks as a flat table",
		Long: `List tasks in board order as a flat table, or as JSONL for piping.

Accepts the same filters as 'forge board'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			filter, format, err := flags.parse(d)
			if err != nil {
				return err
			}

			tasks := d.FilteredTasks(filter)
			if format == render.OutputFormatJSONL {
				return render.FormatTaskJSONL(out(cmd), tasks)
			}
			render.FormatTaskTable(out(cmd), tasks)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newAssigneesCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "assignees",
		Short: "List the assignee filter options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}
			for _, a := range d.Assignees() {
				fmt.Fprintln(out(cmd), a)
			}
			return nil
		},
	}
}
