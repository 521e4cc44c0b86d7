// Package hidtransport implements rgbfusion.Transport on top of hidapi.
package hidtransport

import (
	"fmt"
	"log/slog"
	"sync"

	"dev.acmcsuf.com/rgbfusion"
	"github.com/sstallion/go-hid"
)

// Transport opens USB HID devices through hidapi.
type Transport struct {
	logger   *slog.Logger
	initOnce sync.Once
	initErr  error
	ready    bool
}

var _ rgbfusion.Transport = (*Transport)(nil)

// New creates a new HID transport. hidapi is initialized lazily on the
// first Open.
func New(logger *slog.Logger) *Transport {
	return &Transport{logger: logger}
}

// Open implements rgbfusion.Transport.
func (t *Transport) Open(vendorID, productID uint16) (rgbfusion.Handle, error) {
	t.initOnce.Do(func() {
		t.initErr = hid.Init()
		t.ready = t.initErr == nil
	})
	if t.initErr != nil {
		return nil, fmt.Errorf("failed to initialize hidapi: %w", t.initErr)
	}

	var paths []string
	err := hid.Enumerate(vendorID, productID, func(info *hid.DeviceInfo) error {
		paths = append(paths, info.Path)
		return nil
	})
	// Newer hidapi versions report an empty enumeration as an error.
	if len(paths) == 0 {
		if err != nil {
			t.logger.Debug(
				"HID enumeration failed",
				"error", err)
		}
		return nil, fmt.Errorf("%w: no HID device %04x:%04x attached",
			rgbfusion.ErrDeviceNotFound, vendorID, productID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate HID devices: %w", err)
	}

	t.logger.Debug(
		"opening HID device",
		"path", paths[0],
		"matches", len(paths))

	dev, err := hid.OpenFirst(vendorID, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to open %04x:%04x (root permissions required?): %w",
			vendorID, productID, err)
	}

	return &handle{dev: dev}, nil
}

// Close releases hidapi. The transport must not be used afterwards.
func (t *Transport) Close() error {
	if !t.ready {
		return nil
	}
	return hid.Exit()
}

type handle struct {
	dev *hid.Device
}

func (h *handle) Write(report []byte) error {
	n, err := h.dev.Write(report)
	if err != nil {
		return err
	}
	if n != len(report) {
		return fmt.Errorf("short write: %d of %d bytes", n, len(report))
	}
	return nil
}

func (h *handle) Close() error {
	return h.dev.Close()
}
