package rgbfusion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ControllerOpts are options for a controller.
type ControllerOpts struct {
	// Transport is used to reach the RGB controller of the board.
	Transport Transport
	// Logger is the logger to use for the controller.
	Logger *slog.Logger
}

// Controller applies lighting effects to devices. It holds no state between
// calls; every call is a single open, write, close cycle.
type Controller struct {
	opts ControllerOpts
}

// NewController creates a new controller.
func NewController(opts ControllerOpts) *Controller {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Controller{opts: opts}
}

// Apply validates the request against the device and writes the resulting
// reports. Validation errors are returned before the device is opened.
func (c *Controller) Apply(ctx context.Context, device *Device, zoneName string, req EffectRequest) error {
	zone, err := device.Zones.Lookup(zoneName)
	if err != nil {
		return fmt.Errorf("--zone: %w", err)
	}

	effect, err := req.Parse()
	if err != nil {
		return err
	}

	return c.ApplyEffect(ctx, device, zone, effect)
}

// ApplyEffect writes an already validated effect to a zone of the device.
// The packets are written in encoder order. A failure part way through
// leaves the earlier packets applied.
func (c *Controller) ApplyEffect(ctx context.Context, device *Device, zone Zone, effect Effect) error {
	if err := device.CheckEffect(effect.Kind); err != nil {
		return err
	}

	packets, err := device.Encoder.Encode(zone, effect)
	if err != nil {
		return fmt.Errorf("failed to encode %s for zone %s: %w", effect.Kind, zone.Name, err)
	}

	return c.write(ctx, device, packets)
}

func (c *Controller) write(ctx context.Context, device *Device, packets []Packet) (err error) {
	logger := c.opts.Logger.With("device", device.Name)

	h, err := c.opts.Transport.Open(device.VendorID, device.ProductID)
	if err != nil {
		if errors.Is(err, ErrDeviceNotFound) {
			return err
		}
		return fmt.Errorf("%w: failed to open %s: %w", ErrTransport, device, err)
	}

	defer func() {
		if closeErr := h.Close(); closeErr != nil {
			logger.Warn(
				"failed to close device",
				"error", closeErr)
			if err == nil {
				err = fmt.Errorf("%w: failed to close %s: %w", ErrTransport, device, closeErr)
			}
		}
	}()

	for i, p := range packets {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%w: %d of %d reports written: %w", ErrTransport, i, len(packets), err)
		}

		logger.Debug(
			"writing report",
			"index", i,
			"report", p.String())

		if err := h.Write(p); err != nil {
			return fmt.Errorf("%w: failed to write report %d of %d: %w", ErrTransport, i+1, len(packets), err)
		}
	}

	return nil
}

// TestColors are the colors used by ZoneTest, in zone order.
var TestColors = []Color{
	{R: 0xff, G: 0x00, B: 0x00},
	{R: 0x00, G: 0xff, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xff},
	{R: 0xff, G: 0x00, B: 0xff},
	{R: 0xff, G: 0xff, B: 0x00},
	{R: 0xff, G: 0xff, B: 0xff},
}

// ZoneTestResult is the outcome of testing a single zone.
type ZoneTestResult struct {
	Zone  Zone
	Color Color
	Err   error
}

// ZoneTest paints every zone of the device in a distinct static color, so
// that each color can be matched to a physical LED location. It overwrites
// the current lighting of the board and does not restore it afterwards.
//
// fn, if not nil, is called after each zone is written. A missing device
// stops the test; other failures are recorded and the test continues with
// the next zone.
func (c *Controller) ZoneTest(ctx context.Context, device *Device, fn func(ZoneTestResult)) ([]ZoneTestResult, error) {
	zones := device.Zones.Zones()
	results := make([]ZoneTestResult, 0, len(zones))
	var errs []error

	for i, zone := range zones {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		color := TestColors[i%len(TestColors)]
		err := c.ApplyEffect(ctx, device, zone, StaticEffect(color))

		result := ZoneTestResult{Zone: zone, Color: color, Err: err}
		results = append(results, result)
		if fn != nil {
			fn(result)
		}

		if err != nil {
			if errors.Is(err, ErrDeviceNotFound) {
				return results, err
			}

			c.opts.Logger.Warn(
				"skipping zone",
				"device", device.Name,
				"zone", zone.Name,
				"error", err)

			errs = append(errs, fmt.Errorf("zone %s: %w", zone.Name, err))
		}
	}

	return results, errors.Join(errs...)
}
