package rgbfusion

import (
	"errors"
	"fmt"
)

// Validation errors. These are detected before any I/O happens.
var (
	ErrInvalidColor           = errors.New("invalid color")
	ErrInvalidEffectParameter = errors.New("invalid effect parameter")
	ErrUnsupportedZone        = errors.New("unsupported zone")
	ErrUnsupportedEffect      = errors.New("unsupported effect")
	ErrUnsupportedDevice      = errors.New("unsupported device")
)

// Transport errors. These originate at the HID boundary.
var (
	ErrDeviceNotFound = errors.New("device not found")
	ErrTransport      = errors.New("transport error")
)

// IsValidationError returns true if err is one of the validation errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidColor) ||
		errors.Is(err, ErrInvalidEffectParameter) ||
		errors.Is(err, ErrUnsupportedZone) ||
		errors.Is(err, ErrUnsupportedEffect) ||
		errors.Is(err, ErrUnsupportedDevice)
}

// paramError returns an error wrapping kind that names the offending flag.
func paramError(kind error, flag, value string, reason string) error {
	return fmt.Errorf("%w: --%s %q: %s", kind, flag, value, reason)
}
