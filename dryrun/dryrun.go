// Package dryrun provides a transport that logs reports instead of sending
// them to a device.
package dryrun

import (
	"fmt"
	"log/slog"

	"dev.acmcsuf.com/rgbfusion"
)

// Transport is a rgbfusion.Transport that never touches the USB bus. Every
// opened handle logs the reports written to it.
type Transport struct {
	logger *slog.Logger
}

var _ rgbfusion.Transport = (*Transport)(nil)

// New creates a new dry-run transport logging to logger.
func New(logger *slog.Logger) *Transport {
	return &Transport{logger: logger}
}

// Open implements rgbfusion.Transport.
func (t *Transport) Open(vendorID, productID uint16) (rgbfusion.Handle, error) {
	logger := t.logger.With("device", fmt.Sprintf("%04x:%04x", vendorID, productID))
	logger.Info("dry run: opening device")
	return &handle{logger: logger}, nil
}

type handle struct {
	logger *slog.Logger
	count  int
	closed bool
}

func (h *handle) Write(report []byte) error {
	if h.closed {
		return fmt.Errorf("write on closed handle")
	}

	h.count++
	h.logger.Info(
		"dry run: report",
		"index", h.count,
		"size", len(report),
		"bytes", rgbfusion.Packet(report).String())

	return nil
}

func (h *handle) Close() error {
	if h.closed {
		return fmt.Errorf("handle already closed")
	}
	h.closed = true

	h.logger.Info(
		"dry run: closing device",
		"reports", h.count)

	return nil
}
