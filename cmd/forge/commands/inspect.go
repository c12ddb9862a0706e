package commands

import (
	"github.com/dyluth/forge/internal/printer"
	"github.com/dyluth/forge/internal/render"
	"github.com/spf13/cobra"
)

func newInspectCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect [TASK_ID]",
		Short: "Open a task in the inspector",
		Long: `Open a task in the inspector, or show the task already open.

The inspector always shows the task's current state: changes made with
'forge task' while it is open are reflected the next time it is shown.
It is most useful inside 'forge shell', where it stays open between commands.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				id, err := resolveTask(d, args[0])
				if err != nil {
					return err
				}
				d.Tasks.Inspect(id)
			}

			task, ok := d.Tasks.Inspected()
			if !ok {
				printer.Info("Inspector is closed\n")
				return nil
			}
			render.FormatInspector(out(cmd), task)
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "close",
			Short: "Close the inspector",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := c.session()
				if err != nil {
					return err
				}
				d.Tasks.CloseInspector()
				return nil
			},
		},
		&cobra.Command{
			Use:   "advance",
			Short: "Move the inspected task to the next stage and close the inspector",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := c.session()
				if err != nil {
					return err
				}

				id := d.Tasks.InspectedID()
				if id == "" {
					return printer.Error(
						"inspector is closed",
						"There is no task open in the inspector.",
						[]string{"Open one first:\n  inspect TASK_ID"},
					)
				}

				task, moved := d.AdvanceInspected()
				if !moved {
					if task.ID == "" {
						printer.Warning("%s is no longer on the board\n", id)
					} else {
						printer.Warning("%s is already in %s\n", task.ID, task.Status)
					}
					return nil
				}
				printer.Success("Advanced %s to %s\n", task.ID, task.Status)
				return nil
			},
		},
	)
	return cmd
}
