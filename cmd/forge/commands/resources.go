package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dyluth/forge/internal/printer"
	"github.com/dyluth/forge/internal/render"
	"github.com/spf13/cobra"
)

func newResourcesCmd(c *console) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Show the operator and machine roster",
		Long: `Show the operator and machine roster with a 7-day workload sparkline
per resource and a summary of the roster's status.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}

			list := d.Resources.List()
			switch output {
			case "default":
				render.FormatResources(out(cmd), list, d.Resources.Summary())
				return nil
			case "jsonl":
				for _, r := range list {
					data, err := json.Marshal(r)
					if err != nil {
						return fmt.Errorf("failed to marshal resource to JSON: %w", err)
					}
					fmt.Fprintf(out(cmd), "%s\n", data)
				}
				return nil
			default:
				return printer.Error(
					"invalid output format",
					fmt.Sprintf("Unknown format: %s", output),
					[]string{"Valid formats: default, jsonl"},
				)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "default", "Output format: default or jsonl")
	return cmd
}
