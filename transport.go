package rgbfusion

// Transport opens HID devices by their USB identity.
type Transport interface {
	// Open opens the first attached device matching vendorID and productID.
	// It returns an error wrapping ErrDeviceNotFound if there is none.
	Open(vendorID, productID uint16) (Handle, error)
}

// Handle is an open HID device.
type Handle interface {
	// Write writes a single report. The first byte is the report ID.
	Write(report []byte) error
	// Close releases the device.
	Close() error
}
