package main

import (
	"fmt"
	"os"

	"dev.acmcsuf.com/rgbfusion"
	"dev.acmcsuf.com/rgbfusion/devices"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var assumeYes = false

var zonetestCmd = &cobra.Command{
	Use:   "zonetest",
	Short: "Test available RGB zones",
	Long: "zonetest paints every zone of the device in a distinct color, so each\n" +
		"color can be matched to a physical LED. It overwrites the current lighting.",
	Args: cobra.NoArgs,
	RunE: runZoneTest,
}

func init() {
	zonetestCmd.Flags().BoolVarP(&assumeYes, "yes", "y", assumeYes, "do not ask for confirmation")
}

func runZoneTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	name := deviceName

	if name == "" || !assumeYes {
		if !interactive() {
			if name == "" {
				return fmt.Errorf("%w: --device is required", rgbfusion.ErrUnsupportedDevice)
			}
			return fmt.Errorf("refusing to overwrite the RGB configuration without --yes")
		}

		p, err := newPrompter()
		if err != nil {
			return err
		}
		defer p.Close()

		if !assumeYes {
			ok, err := p.confirm("Are you sure you want to test the available RGB zones?\n" +
				warning("This will reset your RGB configuration."))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(out, "Bailing out.")
				return nil
			}
		}

		if name == "" {
			if name, err = p.selectOne("device", devices.Names()); err != nil {
				return err
			}
		}
	}

	device, err := devices.Lookup(name)
	if err != nil {
		return fmt.Errorf("--device: %w", err)
	}

	ctrl, release := newController()
	defer release()

	fmt.Fprintf(out, "\nTesting available RGB zones of %s...\n\n", device.Description)

	_, err = ctrl.ZoneTest(cmd.Context(), device, func(r rgbfusion.ZoneTestResult) {
		if r.Err != nil {
			fmt.Fprintf(out, "Skipping zone %s: %v\n", r.Zone.Name, r.Err)
			return
		}
		fmt.Fprintf(out, "Color for zone %s: %s\n", r.Zone.Name, r.Color)
	})
	return err
}

// warning renders s in red when stdout is a terminal.
func warning(s string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}
