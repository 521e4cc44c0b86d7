// Package fusion2 implements the Gigabyte RGB Fusion 2 USB protocol, as
// found on the TRX40 Aorus Master.
//
// The protocol is documented at
// https://gitlab.com/CalcProgrammer1/OpenRGB/-/wikis/Gigabyte-RGB-Fusion-2.0.
package fusion2

import (
	"encoding/binary"
	"fmt"
	"time"

	"dev.acmcsuf.com/rgbfusion"
)

// ReportSize is the size of every report, including the report ID.
const ReportSize = 64

// ReportID is the report ID of all RGB Fusion 2 reports.
const ReportID = 0xcc

// Field offsets of the effect report.
const (
	offsetZone           = 1
	offsetOpcode         = 11
	offsetMaxBrightness  = 12
	offsetMinBrightness  = 13
	offsetColor          = 14
	offsetSecondaryColor = 18
	offsetFadeIn         = 22
	offsetFadeOut        = 24
	offsetHold           = 26
)

// applyCommand makes the controller apply the previously sent effect.
var applyCommand = []byte{ReportID, 0x28, 0xff}

// brightnessMax is the brightest level understood by the controller.
const brightnessMax = 0x5a

// durationUnit is the resolution of the timing fields.
const durationUnit = 250 * time.Millisecond

var opcodes = map[rgbfusion.EffectKind]byte{
	rgbfusion.EffectOff:    0x00,
	rgbfusion.EffectStatic: 0x01,
	rgbfusion.EffectPulse:  0x02,
	rgbfusion.EffectFlash:  0x03,
	rgbfusion.EffectCycle:  0x04,
}

// Encoder encodes effects for RGB Fusion 2 controllers.
type Encoder struct{}

var _ rgbfusion.Encoder = Encoder{}

// Opcode implements rgbfusion.Encoder.
func (Encoder) Opcode(kind rgbfusion.EffectKind) (byte, bool) {
	op, ok := opcodes[kind]
	return op, ok
}

// Encode implements rgbfusion.Encoder. It returns the effect report
// followed by the apply report.
func (e Encoder) Encode(zone rgbfusion.Zone, effect rgbfusion.Effect) ([]rgbfusion.Packet, error) {
	op, ok := e.Opcode(effect.Kind)
	if !ok {
		return nil, fmt.Errorf("%w %q by RGB Fusion 2", rgbfusion.ErrUnsupportedEffect, effect.Kind)
	}

	b := make([]byte, ReportSize)
	b[0] = ReportID
	binary.BigEndian.PutUint16(b[offsetZone:], zone.ID)
	b[offsetOpcode] = op
	b[offsetMaxBrightness] = scaleBrightness(effect.MaxBrightness)
	b[offsetMinBrightness] = scaleBrightness(effect.MinBrightness)

	// Colors are sent in BGR order. The secondary color stays black.
	if effect.Kind.UsesColor() {
		b[offsetColor+0] = effect.Color.B
		b[offsetColor+1] = effect.Color.G
		b[offsetColor+2] = effect.Color.R
	}

	binary.BigEndian.PutUint16(b[offsetFadeIn:], scaleDuration(effect.FadeIn))
	binary.BigEndian.PutUint16(b[offsetFadeOut:], scaleDuration(effect.FadeOut))
	binary.BigEndian.PutUint16(b[offsetHold:], scaleDuration(effect.Hold))

	apply := make([]byte, ReportSize)
	copy(apply, applyCommand)

	return []rgbfusion.Packet{b, apply}, nil
}

// Reports implements rgbfusion.Encoder.
func (Encoder) Reports() []rgbfusion.ReportLayout {
	return []rgbfusion.ReportLayout{
		{
			Name: "effect",
			Size: ReportSize,
			Fields: []rgbfusion.ReportField{
				{Name: "report id", Offset: 0, Size: 1, Encoding: "0xcc"},
				{Name: "zone", Offset: offsetZone, Size: 2, Encoding: "u16 big endian"},
				{Name: "opcode", Offset: offsetOpcode, Size: 1},
				{Name: "max brightness", Offset: offsetMaxBrightness, Size: 1, Encoding: "0..0x5a"},
				{Name: "min brightness", Offset: offsetMinBrightness, Size: 1, Encoding: "0..0x5a"},
				{Name: "color", Offset: offsetColor, Size: 3, Encoding: "BGR"},
				{Name: "secondary color", Offset: offsetSecondaryColor, Size: 3, Encoding: "BGR, unused"},
				{Name: "fade in", Offset: offsetFadeIn, Size: 2, Encoding: "u16 big endian, 250 ms units"},
				{Name: "fade out", Offset: offsetFadeOut, Size: 2, Encoding: "u16 big endian, 250 ms units"},
				{Name: "hold", Offset: offsetHold, Size: 2, Encoding: "u16 big endian, 250 ms units"},
			},
		},
		{
			Name: "apply",
			Size: ReportSize,
			Fields: []rgbfusion.ReportField{
				{Name: "report id", Offset: 0, Size: 1, Encoding: "0xcc"},
				{Name: "command", Offset: 1, Size: 2, Encoding: "0x28 0xff"},
			},
		},
	}
}

// scaleBrightness converts 0..255 into the controller's 0..0x5a range.
func scaleBrightness(b rgbfusion.Brightness) byte {
	return byte(brightnessMax * uint16(b) / uint16(rgbfusion.MaxBrightness))
}

// scaleDuration converts a duration into quarter seconds, truncating.
func scaleDuration(d time.Duration) uint16 {
	if d < 0 {
		return 0
	}
	q := d / durationUnit
	if q > 0xffff {
		return 0xffff
	}
	return uint16(q)
}
