package commands

import (
	"fmt"

	"github.com/dyluth/forge/internal/config"
	"github.com/dyluth/forge/internal/scaffold"
	"github.com/spf13/cobra"
)

func newInitCmd(c *console) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter forge.yml",
		Long: `Write a starter forge.yml with the calibration defaults and commented
examples of board tasks and roster resources.

The file is written to --config, $FORGE_CONFIG, or ./forge.yml.

Use --force to overwrite an existing file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := config.ResolvePath(c.configPath)

			// Check for existing files (unless --force)
			if !force {
				if err := scaffold.CheckExisting(path); err != nil {
					return err
				}
			}

			if err := scaffold.Initialize(path, force); err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			scaffold.PrintSuccess(path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}
