package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/forge/internal/dashboard"
	"github.com/dyluth/forge/internal/printer"
	"github.com/dyluth/forge/internal/render"
	"github.com/dyluth/forge/internal/resolver"
	"github.com/dyluth/forge/internal/resources"
	"github.com/dyluth/forge/internal/store"
	"github.com/dyluth/forge/pkg/fab"
	"github.com/spf13/cobra"
)

func newTaskCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Create, show and change individual tasks",
		Long: `Create, show and change individual tasks.

Task IDs may be shortened to any unique prefix of at least 3 characters
(e.g. "A-2" for "A-201" when no other task starts with "A-2").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newTaskCreateCmd(c),
		newTaskShowCmd(c),
		newTaskUpdateCmd(c),
		newTaskMoveCmd(c),
		newTaskAdvanceCmd(c),
	)
	return cmd
}

// resolveTask maps user input to a task ID, printing a formatted error if it cannot.
func resolveTask(d *dashboard.Dashboard, input string) (string, error) {
	id, err := resolver.ResolveTaskID(d.Tasks.IDs(), input)
	if err == nil {
		return id, nil
	}

	if resolver.IsNotFoundError(err) {
		return "", printer.Error(
			fmt.Sprintf("task with ID '%s' not found", input),
			"No task on the board has that ID or starts with that prefix.",
			[]string{"List all tasks:\n  forge tasks"},
		)
	}

	var ambErr *resolver.AmbiguousError
	if errors.As(err, &ambErr) {
		return "", printer.Error(
			"ambiguous task ID",
			resolver.FormatAmbiguousError(ambErr),
			nil,
		)
	}

	return "", printer.Error(
		"invalid task ID",
		err.Error(),
		[]string{fmt.Sprintf("Use the full task ID or a prefix of at least %d characters", resolver.MinShortIDLength)},
	)
}

func newTaskCreateCmd(c *console) *cobra.Command {
	var (
		title    string
		priority string
		status   string
		resource string
		assignee string
		avatar   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a task to the board",
		Long: `Add a task to the board with a generated ID.

The assignee is either an operator from the roster (--resource, by resource ID
or operator ID) or a free-text name (--assignee, stored upper-cased, with an
optional --avatar URL). Without either the task is UNASSIGNED.

Examples:
  forge task create --title "Weld chassis frame" --priority HIGH --resource OP-088
  forge task create --title "Paint shell" --assignee "j. doe"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			req := dashboard.NewTaskRequest{Title: title}

			if priority != "" {
				if req.Priority, err = fab.ParsePriority(priority); err != nil {
					return printer.Error("invalid priority", err.Error(),
						[]string{"Valid priorities: LOW, MED, HIGH, CRIT, RDY"})
				}
			}
			if status != "" {
				if req.Status, err = fab.ParseStatus(status); err != nil {
					return printer.Error("invalid status", err.Error(),
						[]string{"Valid statuses: BACKLOG, FABRICATION, ASSEMBLY, DEPLOYMENT"})
				}
			}

			switch {
			case resource != "":
				res, ok := d.Resources.Get(resource)
				if !ok {
					res, ok = d.Resources.FindByOperator(resource)
				}
				if !ok {
					return printer.Error(
						fmt.Sprintf("resource '%s' not found", resource),
						"No resource on the roster has that ID or operator ID.",
						[]string{"List the roster:\n  forge resources"},
					)
				}
				req.Assignment = resources.Assignment{Mode: resources.AssignResource, ResourceID: res.ID}
			case cmd.Flags().Changed("assignee") || avatar != "":
				req.Assignment = resources.Assignment{Mode: resources.AssignManual, Name: assignee, Avatar: avatar}
			default:
				req.Assignment = resources.Assignment{Mode: resources.AssignResource}
			}

			task, err := d.CreateTask(req)
			if err != nil {
				return printer.Error("failed to create task", err.Error(),
					[]string{"A title is required:\n  forge task create --title \"...\""})
			}

			printer.Success("Created %s in %s (%s, %s)\n", task.ID, task.Status, task.Priority, task.Assignee)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "Task title (required)")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "Priority: LOW, MED, HIGH, CRIT, RDY (default LOW)")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Starting stage (default BACKLOG)")
	cmd.Flags().StringVarP(&resource, "resource", "r", "", "Assign to a roster resource by ID or operator ID")
	cmd.Flags().StringVarP(&assignee, "assignee", "a", "", "Assign to a free-text name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar URL for a free-text assignee")
	cmd.MarkFlagsMutuallyExclusive("resource", "assignee")
	cmd.MarkFlagsMutuallyExclusive("resource", "avatar")
	return cmd
}

func newTaskShowCmd(c *console) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show TASK_ID",
		Short: "Show every field of a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			id, err := resolveTask(d, args[0])
			if err != nil {
				return err
			}
			task, _ := d.Tasks.Get(id)

			switch output {
			case "json":
				return render.FormatTaskJSON(out(cmd), task)
			case "default":
				render.FormatInspector(out(cmd), task)
				return nil
			default:
				return printer.Error(
					"invalid output format",
					fmt.Sprintf("Unknown format: %s", output),
					[]string{"Valid formats: default, json"},
				)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "default", "Output format: default or json")
	return cmd
}

func newTaskUpdateCmd(c *console) *cobra.Command {
	var (
		title    string
		priority string
		status   string
		assignee string
		avatar   string
		progress int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "update TASK_ID",
		Short: "Change fields of a task",
		Long: `Change fields of a task. Only the flags given are changed.

Examples:
  forge task update A-249 --progress 4
  forge task update C-882 --notes "Waiting on titanium stock" --priority HIGH`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			id, err := resolveTask(d, args[0])
			if err != nil {
				return err
			}

			var patch store.TaskPatch
			flags := cmd.Flags()
			if flags.Changed("title") {
				patch.Title = store.Ptr(title)
			}
			if flags.Changed("priority") {
				p, err := fab.ParsePriority(priority)
				if err != nil {
					return printer.Error("invalid priority", err.Error(),
						[]string{"Valid priorities: LOW, MED, HIGH, CRIT, RDY"})
				}
				patch.Priority = &p
			}
			if flags.Changed("status") {
				s, err := fab.ParseStatus(status)
				if err != nil {
					return printer.Error("invalid status", err.Error(),
						[]string{"Valid statuses: BACKLOG, FABRICATION, ASSEMBLY, DEPLOYMENT"})
				}
				patch.Status = &s
			}
			if flags.Changed("assignee") {
				patch.Assignee = store.Ptr(strings.TrimSpace(assignee))
			}
			if flags.Changed("avatar") {
				patch.AssigneeAvatar = store.Ptr(avatar)
			}
			if flags.Changed("progress") {
				patch.Progress = store.Ptr(progress)
			}
			if flags.Changed("notes") {
				patch.Notes = store.Ptr(notes)
			}

			if patch.IsEmpty() {
				printer.Warning("nothing to update for %s\n", id)
				return nil
			}

			if err := d.Tasks.Update(id, patch); err != nil {
				return printer.ErrorWithContext(
					"failed to update task",
					err.Error(),
					map[string]string{"Task": id},
					[]string{fmt.Sprintf("Progress must be between 0 and %d", fab.MaxProgress)},
				)
			}

			printer.Success("Updated %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority")
	cmd.Flags().StringVarP(&status, "status", "s", "", "New stage (any stage, like dragging the card)")
	cmd.Flags().StringVarP(&assignee, "assignee", "a", "", "New assignee name")
	cmd.Flags().StringVar(&avatar, "avatar", "", "New assignee avatar URL")
	cmd.Flags().IntVar(&progress, "progress", 0, fmt.Sprintf("Progress, 0 to %d", fab.MaxProgress))
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Replace the notes")
	return cmd
}

func newTaskMoveCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "move TASK_ID STATUS",
		Short: "Move a task to any stage",
		Long: `Move a task straight to the given stage, as dragging its card across the
board does. Unlike 'advance', stages may be skipped or revisited.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			id, err := resolveTask(d, args[0])
			if err != nil {
				return err
			}

			status, err := fab.ParseStatus(args[1])
			if err != nil {
				return printer.Error("invalid status", err.Error(),
					[]string{"Valid statuses: BACKLOG, FABRICATION, ASSEMBLY, DEPLOYMENT"})
			}

			before, _ := d.Tasks.Get(id)
			if before.Status == status {
				printer.Info("%s is already in %s\n", id, status)
				return nil
			}

			if err := d.Tasks.Move(id, status); err != nil {
				return printer.ErrorWithContext("failed to move task", err.Error(),
					map[string]string{"Task": id}, nil)
			}

			printer.Success("Moved %s: %s → %s\n", id, before.Status, status)
			return nil
		},
	}
}

func newTaskAdvanceCmd(c *console) *cobra.Command {
	return &cobra.Command{
		Use:   "advance TASK_ID",
		Short: "Move a task to the next stage",
		Long: `Move a task one stage forward: BACKLOG → FABRICATION → ASSEMBLY → DEPLOYMENT.
A task already in DEPLOYMENT stays there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			id, err := resolveTask(d, args[0])
			if err != nil {
				return err
			}

			before, _ := d.Tasks.Get(id)
			if !d.Tasks.Advance(id) {
				printer.Warning("%s is already in %s\n", id, before.Status)
				return nil
			}

			after, _ := d.Tasks.Get(id)
			printer.Success("Advanced %s: %s → %s\n", id, before.Status, after.Status)
			return nil
		},
	}
}
