package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"dev.acmcsuf.com/rgbfusion"
	"dev.acmcsuf.com/rgbfusion/devices"
	"dev.acmcsuf.com/rgbfusion/dryrun"
	"dev.acmcsuf.com/rgbfusion/hidtransport"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	deviceName    = ""
	zoneName      = ""
	colorHex      = ""
	effectName    = ""
	fadeInTime    = ""
	fadeOutTime   = ""
	holdTime      = ""
	maxBrightness = ""
	minBrightness = ""
	dryRun        = false
	verbose       = false
)

var logger = slog.Default()

var rootCmd = &cobra.Command{
	Use:   "rgbfusion",
	Short: "Configure motherboard RGB lighting",
	Long: "rgbfusion configures the addressable RGB zones of supported motherboards.\n" +
		"Missing parameters are prompted for when running in a terminal.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runApply,
}

func init() {
	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&deviceName, "device", "d", deviceName, "RGB device ["+strings.Join(devices.Names(), ", ")+"]")
	pflags.BoolVar(&dryRun, "dry-run", dryRun, "log reports instead of writing them to the device")
	pflags.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")

	addEffectFlags(rootCmd.Flags())
	rootCmd.AddCommand(zonetestCmd, devicesCmd)
}

func addEffectFlags(flags *pflag.FlagSet) {
	flags.SortFlags = false
	flags.StringVarP(&zoneName, "zone", "z", zoneName, "position of the LED")
	flags.StringVarP(&colorHex, "color", "c", colorHex, "LED color in RGB [0xRRGGBB]")
	flags.StringVarP(&effectName, "effect", "e", effectName, "color transition effect ["+strings.Join(effectNames(), ", ")+"]")
	flags.StringVar(&fadeInTime, "fade-in-time", fadeInTime, "effect fade in time in milliseconds")
	flags.StringVar(&fadeOutTime, "fade-out-time", fadeOutTime, "effect fade out time in milliseconds")
	flags.StringVar(&holdTime, "hold-time", holdTime, "effect hold time in milliseconds")
	flags.StringVarP(&maxBrightness, "max-brightness", "b", maxBrightness, "maximum brightness [0..255]")
	flags.StringVar(&minBrightness, "min-brightness", minBrightness, "minimum brightness used for non-static effects [0..255]")
}

func effectNames() []string {
	kinds := rgbfusion.EffectKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}

func main() {
	log.SetFlags(0)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Print("error: ", err)
		cancel()
		os.Exit(exitCode(err))
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	logHandler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05 PM", // extended time.Kitchen
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})

	logger = slog.New(logHandler)
	slog.SetDefault(logger)
	return nil
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case rgbfusion.IsValidationError(err):
		return 2
	case errors.Is(err, rgbfusion.ErrDeviceNotFound):
		return 3
	case errors.Is(err, rgbfusion.ErrTransport):
		return 4
	default:
		return 1
	}
}

func interactive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// newController creates a controller writing either to the USB bus or, in
// dry-run mode, to the log. The returned function releases the transport.
func newController() (*rgbfusion.Controller, func()) {
	var transport rgbfusion.Transport
	release := func() {}

	if dryRun {
		transport = dryrun.New(logger.With("component", "dry-run"))
	} else {
		hid := hidtransport.New(logger.With("component", "hid"))
		transport = hid
		release = func() {
			if err := hid.Close(); err != nil {
				logger.Warn(
					"failed to release hidapi",
					"error", err)
			}
		}
	}

	ctrl := rgbfusion.NewController(rgbfusion.ControllerOpts{
		Transport: transport,
		Logger:    logger.With("component", "controller"),
	})

	return ctrl, release
}

func runApply(cmd *cobra.Command, args []string) error {
	req := rgbfusion.EffectRequest{
		Effect:        effectName,
		Color:         colorHex,
		FadeIn:        fadeInTime,
		FadeOut:       fadeOutTime,
		Hold:          holdTime,
		MaxBrightness: maxBrightness,
		MinBrightness: minBrightness,
	}

	in := applyInput{Device: deviceName, Zone: zoneName, Request: req}
	prompted := false

	if in.missing() {
		if !interactive() {
			return in.missingError()
		}

		p, err := newPrompter()
		if err != nil {
			return err
		}
		err = in.prompt(p)
		p.Close()
		if err != nil {
			return err
		}
		prompted = true
	}

	device, err := devices.Lookup(in.Device)
	if err != nil {
		return fmt.Errorf("--device: %w", err)
	}

	if prompted {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Configuration successful.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "To reapply this config, you can run the following command:\n\n%s\n\n",
			in.Request.CommandLine(cmd.Root().Name(), device.Name, in.Zone))
	}

	ctrl, release := newController()
	defer release()

	if err := ctrl.Apply(cmd.Context(), device, in.Zone, in.Request); err != nil {
		return err
	}

	logger.Info(
		"applied lighting",
		"device", device.Name,
		"zone", in.Zone,
		"effect", in.Request.Effect)

	return nil
}

// applyInput is the user input of a single apply command.
type applyInput struct {
	Device  string
	Zone    string
	Request rgbfusion.EffectRequest
}

func (in applyInput) needsColor() bool {
	if in.Request.Color != "" {
		return false
	}
	kind, err := rgbfusion.ParseEffectKind(in.Request.Effect)
	return err == nil && kind.UsesColor()
}

func (in applyInput) missing() bool {
	return in.Device == "" || in.Zone == "" || in.Request.Effect == "" || in.needsColor()
}

func (in applyInput) missingError() error {
	switch {
	case in.Device == "":
		return fmt.Errorf("%w: --device is required", rgbfusion.ErrUnsupportedDevice)
	case in.Zone == "":
		return fmt.Errorf("%w: --zone is required", rgbfusion.ErrUnsupportedZone)
	case in.Request.Effect == "":
		return fmt.Errorf("%w: --effect is required", rgbfusion.ErrInvalidEffectParameter)
	default:
		return fmt.Errorf("%w: --color is required by the %s effect", rgbfusion.ErrInvalidColor, in.Request.Effect)
	}
}

// prompt asks for every missing value. Values that were supplied on the
// command line are kept as they are.
func (in *applyInput) prompt(p *prompter) error {
	if in.Device == "" {
		name, err := p.selectOne("device", devices.Names())
		if err != nil {
			return err
		}
		in.Device = name
	}

	device, err := devices.Lookup(in.Device)
	if err != nil {
		return fmt.Errorf("--device: %w", err)
	}

	if in.Zone == "" {
		name, err := p.selectOne("zone", device.Zones.Names())
		if err != nil {
			return err
		}
		in.Zone = name
	}

	if in.Request.Effect == "" {
		kinds := device.Effects()
		names := make([]string, len(kinds))
		for i, k := range kinds {
			names[i] = k.String()
		}

		name, err := p.selectOne("effect", names)
		if err != nil {
			return err
		}
		in.Request.Effect = name
	}

	if in.needsColor() {
		c, err := p.color()
		if err != nil {
			return err
		}
		in.Request.Color = c.String()
	}

	return nil
}
