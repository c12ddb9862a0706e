package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dyluth/forge/internal/calibration"
	"github.com/dyluth/forge/internal/printer"
	"github.com/dyluth/forge/internal/render"
	"github.com/spf13/cobra"
)

func newCalibrateCmd(c *console) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Show and change calibration settings",
		Long: `Show and change the cell's calibration settings.

Values are parsed to the setting's type (true/false, integer, number or text);
ranges are not enforced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.session()
			if err != nil {
				return err
			}
			printer.Heading("Calibration")
			return render.FormatConfig(out(cmd), calibration.Keys(), d.Calibration.Lookup)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get KEY",
			Short: "Print one setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := c.session()
				if err != nil {
					return err
				}
				v, err := d.Calibration.Lookup(args[0])
				if err != nil {
					return unknownKeyError(args[0])
				}
				fmt.Fprintln(out(cmd), v)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set KEY VALUE",
			Short: "Change one setting",
			Long: `Change one setting. Words after KEY are joined, so notes need no quoting.

Examples:
  forge calibrate set refreshRate 120
  forge calibrate set highContrast true
  forge calibrate set calibrationNotes Torque limits raised for batch 12`,
			Args: cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := c.session()
				if err != nil {
					return err
				}

				key, value := args[0], strings.Join(args[1:], " ")
				if err := d.Calibration.Set(key, value); err != nil {
					if errors.Is(err, calibration.ErrUnknownKey) {
						return unknownKeyError(key)
					}
					return printer.ErrorWithContext(
						"invalid calibration value",
						err.Error(),
						map[string]string{"Key": key, "Value": value},
						nil,
					)
				}

				printer.Success("%s = %s\n", key, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Discard every change since the session started",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				d, err := c.session()
				if err != nil {
					return err
				}
				d.Calibration.Reset()
				printer.Success("Calibration reset to defaults\n")
				return nil
			},
		},
	)
	return cmd
}

func unknownKeyError(key string) error {
	return printer.Error(
		fmt.Sprintf("unknown calibration key '%s'", key),
		"Keys are case-sensitive.",
		[]string{"Valid keys: " + strings.Join(calibration.Keys(), ", ")},
	)
}
