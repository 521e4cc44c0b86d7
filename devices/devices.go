// Package devices enumerates the supported motherboards.
package devices

import (
	"fmt"
	"strings"

	"dev.acmcsuf.com/rgbfusion"
	"dev.acmcsuf.com/rgbfusion/aura"
	"dev.acmcsuf.com/rgbfusion/fusion2"
)

var all = []*rgbfusion.Device{
	aura.X670EF,
	fusion2.TRX40,
}

// All returns every supported device. The first one is the default.
func All() []*rgbfusion.Device {
	return append([]*rgbfusion.Device(nil), all...)
}

// Names returns the names of all supported devices.
func Names() []string {
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	return names
}

// Lookup returns the device with the given name, ignoring case.
func Lookup(name string) (*rgbfusion.Device, error) {
	for _, d := range all {
		if strings.EqualFold(d.Name, strings.TrimSpace(name)) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("%w %q (available: %s)",
		rgbfusion.ErrUnsupportedDevice, name, strings.Join(Names(), ", "))
}
