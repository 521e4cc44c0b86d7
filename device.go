package rgbfusion

import "fmt"

// Packet is a fixed-size HID report ready to be written to a device. The
// first byte is the report ID. Packets are created fresh by an Encoder and
// must not be modified afterwards.
type Packet []byte

// String formats the packet as space-separated hex bytes.
func (p Packet) String() string {
	return fmt.Sprintf("% x", []byte(p))
}

// Encoder converts effects into the reports of one controller family.
// Implementations are pure and never perform I/O.
type Encoder interface {
	// Opcode returns the mode byte of the given effect kind, or false if the
	// family cannot render it.
	Opcode(kind EffectKind) (byte, bool)
	// Encode returns the reports that apply effect to zone, in the order
	// they must be written.
	Encode(zone Zone, effect Effect) ([]Packet, error)
	// Reports describes the wire format of the reports produced by Encode.
	Reports() []ReportLayout
}

// ReportLayout documents a report of a controller family.
type ReportLayout struct {
	Name   string        `yaml:"name"`
	Size   int           `yaml:"size"`
	Fields []ReportField `yaml:"fields"`
}

// ReportField is a field within a report.
type ReportField struct {
	Name     string `yaml:"name"`
	Offset   int    `yaml:"offset"`
	Size     int    `yaml:"size"`
	Encoding string `yaml:"encoding,omitempty"`
}

// Device is a supported motherboard model. Devices are static and are
// never discovered at runtime.
type Device struct {
	// Name is the short name used on the command line.
	Name string
	// Description is the marketing name of the board.
	Description string
	// VendorID and ProductID identify the RGB controller on the USB bus.
	VendorID  uint16
	ProductID uint16
	// Zones is the zone table of the board.
	Zones *ZoneRegistry
	// Encoder produces the reports understood by the controller.
	Encoder Encoder
}

// String implements fmt.Stringer.
func (d *Device) String() string {
	return fmt.Sprintf("%s (%04x:%04x)", d.Name, d.VendorID, d.ProductID)
}

// Effects returns the effect kinds the device can render.
func (d *Device) Effects() []EffectKind {
	var kinds []EffectKind
	for _, k := range EffectKinds() {
		if _, ok := d.Encoder.Opcode(k); ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// CheckEffect returns ErrUnsupportedEffect if the device cannot render kind.
func (d *Device) CheckEffect(kind EffectKind) error {
	if _, ok := d.Encoder.Opcode(kind); !ok {
		return fmt.Errorf("%w %q on %s", ErrUnsupportedEffect, kind, d.Name)
	}
	return nil
}
