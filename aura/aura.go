// Package aura implements the ASUS Aura USB protocol used by the
// ROG Strix X670E-F.
package aura

import (
	"fmt"

	"dev.acmcsuf.com/rgbfusion"
)

// ReportSize is the size of every report, including the report ID.
const ReportSize = 65

// ReportID is the report ID of all Aura reports.
const ReportID = 0xec

// Commands, sent in the byte after the report ID.
const (
	cmdSetEffect = 0x35
	cmdSetColor  = 0x36
	cmdCommit    = 0x3f
)

// commitMagic persists the configuration across reboots.
const commitMagic = 0x55

// Offsets within the effect and color reports.
const (
	offsetEffectZone   = 2
	offsetEffectOpcode = 5
	offsetColorMask    = 3
	offsetColorLEDs    = 5
)

// numLEDs is the number of RGB slots in a color report.
const numLEDs = 7

// LED masks. The mainboard owns LEDs 0 through 2, the 12V header LEDs 5
// (CPU) and 6 (GPU). LEDs 3 and 4 are not populated on this board.
const (
	maskIO      = 0x04 | 0x02 | 0x01
	maskCPU     = 0x20
	maskGPU     = 0x40
	maskHeader0 = maskCPU | maskGPU

	maskPopulated = maskIO | maskHeader0
)

var opcodes = map[rgbfusion.EffectKind]byte{
	rgbfusion.EffectOff:       0x00,
	rgbfusion.EffectStatic:    0x01,
	rgbfusion.EffectPulse:     0x02,
	rgbfusion.EffectFlash:     0x03,
	rgbfusion.EffectCycle:     0x04,
	rgbfusion.EffectRainbow:   0x05,
	rgbfusion.EffectChaseFade: 0x07,
	rgbfusion.EffectChase:     0x09,
}

// Encoder encodes effects for Aura USB controllers. Effect timings and
// brightness are fixed by the firmware and are not encoded.
type Encoder struct{}

var _ rgbfusion.Encoder = Encoder{}

// Opcode implements rgbfusion.Encoder.
func (Encoder) Opcode(kind rgbfusion.EffectKind) (byte, bool) {
	op, ok := opcodes[kind]
	return op, ok
}

// Encode implements rgbfusion.Encoder. It returns the effect, color and
// commit reports, in that order.
func (e Encoder) Encode(zone rgbfusion.Zone, effect rgbfusion.Effect) ([]rgbfusion.Packet, error) {
	op, ok := e.Opcode(effect.Kind)
	if !ok {
		return nil, fmt.Errorf("%w %q by Aura", rgbfusion.ErrUnsupportedEffect, effect.Kind)
	}
	if zone.Mask == 0 {
		return nil, fmt.Errorf("%w %q: zone has no LED mask", rgbfusion.ErrUnsupportedZone, zone.Name)
	}

	effectReport := newReport(cmdSetEffect)
	effectReport[offsetEffectZone] = byte(zone.ID)
	effectReport[offsetEffectOpcode] = op

	color := rgbfusion.Black
	if effect.Kind.UsesColor() {
		color = effect.Color
	}

	colorReport := newReport(cmdSetColor)
	colorReport[offsetColorMask] = zone.Mask
	for i := 0; i < numLEDs; i++ {
		if maskPopulated&(1<<i) == 0 {
			continue
		}
		off := offsetColorLEDs + 3*i
		colorReport[off+0] = color.R
		colorReport[off+1] = color.G
		colorReport[off+2] = color.B
	}

	commitReport := newReport(cmdCommit)
	commitReport[2] = commitMagic

	return []rgbfusion.Packet{effectReport, colorReport, commitReport}, nil
}

// Reports implements rgbfusion.Encoder.
func (Encoder) Reports() []rgbfusion.ReportLayout {
	return []rgbfusion.ReportLayout{
		{
			Name: "effect",
			Size: ReportSize,
			Fields: []rgbfusion.ReportField{
				{Name: "report id", Offset: 0, Size: 1, Encoding: "0xec"},
				{Name: "command", Offset: 1, Size: 1, Encoding: "0x35"},
				{Name: "zone", Offset: offsetEffectZone, Size: 1},
				{Name: "opcode", Offset: offsetEffectOpcode, Size: 1},
			},
		},
		{
			Name: "color",
			Size: ReportSize,
			Fields: []rgbfusion.ReportField{
				{Name: "report id", Offset: 0, Size: 1, Encoding: "0xec"},
				{Name: "command", Offset: 1, Size: 1, Encoding: "0x36"},
				{Name: "led mask", Offset: offsetColorMask, Size: 1, Encoding: "bit n selects LED n"},
				{Name: "leds", Offset: offsetColorLEDs, Size: 3 * numLEDs, Encoding: "RGB per LED"},
			},
		},
		{
			Name: "commit",
			Size: ReportSize,
			Fields: []rgbfusion.ReportField{
				{Name: "report id", Offset: 0, Size: 1, Encoding: "0xec"},
				{Name: "command", Offset: 1, Size: 1, Encoding: "0x3f"},
				{Name: "magic", Offset: 2, Size: 1, Encoding: "0x55"},
			},
		},
	}
}

func newReport(cmd byte) []byte {
	b := make([]byte, ReportSize)
	b[0] = ReportID
	b[1] = cmd
	return b
}
