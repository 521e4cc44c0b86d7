package aura

import (
	"errors"
	"testing"

	"dev.acmcsuf.com/rgbfusion"
	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name   string
		zone   string
		effect rgbfusion.Effect
		opcode byte
		mask   byte
		color  rgbfusion.Color
	}{
		{
			name:   "io static",
			zone:   "io",
			effect: rgbfusion.StaticEffect(rgbfusion.Color{R: 0xff}),
			opcode: 0x01,
			mask:   0x07,
			color:  rgbfusion.Color{R: 0xff},
		},
		{
			name:   "header0 chase",
			zone:   "header0",
			effect: rgbfusion.Effect{Kind: rgbfusion.EffectChase, Color: rgbfusion.Color{G: 0x80, B: 0x40}},
			opcode: 0x09,
			mask:   0x60,
			color:  rgbfusion.Color{G: 0x80, B: 0x40},
		},
		{
			name:   "io rainbow ignores color",
			zone:   "io",
			effect: rgbfusion.Effect{Kind: rgbfusion.EffectRainbow, Color: rgbfusion.Color{R: 0xff}},
			opcode: 0x05,
			mask:   0x07,
		},
		{
			name:   "header0 off",
			zone:   "header0",
			effect: rgbfusion.OffEffect(),
			opcode: 0x00,
			mask:   0x60,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			zone, err := X670EF.Zones.Lookup(test.zone)
			if err != nil {
				t.Fatal(err)
			}

			packets, err := Encoder{}.Encode(zone, test.effect)
			if err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			if len(packets) != 3 {
				t.Fatalf("Encode() returned %d packets, want 3", len(packets))
			}
			for i, p := range packets {
				if len(p) != ReportSize {
					t.Errorf("packet %d has size %d, want %d", i, len(p), ReportSize)
				}
			}

			effect := newReport(0x35)
			effect[2] = byte(zone.ID)
			effect[5] = test.opcode
			assertPacket(t, effect, packets[0])

			color := newReport(0x36)
			color[3] = test.mask
			for _, led := range []int{0, 1, 2, 5, 6} {
				color[5+3*led+0] = test.color.R
				color[5+3*led+1] = test.color.G
				color[5+3*led+2] = test.color.B
			}
			assertPacket(t, color, packets[1])

			commit := newReport(0x3f)
			commit[2] = 0x55
			assertPacket(t, commit, packets[2])
		})
	}
}

func TestEncodeOpcodeOnlyInEffectReport(t *testing.T) {
	zone, _ := X670EF.Zones.Lookup("io")
	c := rgbfusion.Color{R: 0x01, G: 0x02, B: 0x03}

	packets, err := Encoder{}.Encode(zone, rgbfusion.StaticEffect(c))
	if err != nil {
		t.Fatalf("Encode() unexpected error: %v", err)
	}

	var carriers int
	for _, p := range packets {
		if p[1] == cmdSetEffect {
			carriers++
		}
	}
	if carriers != 1 {
		t.Errorf("%d reports carry the effect opcode, want 1", carriers)
	}
}

func TestEncodeErrors(t *testing.T) {
	io, _ := X670EF.Zones.Lookup("io")

	_, err := Encoder{}.Encode(rgbfusion.Zone{Name: "bogus", ID: 7}, rgbfusion.OffEffect())
	if !errors.Is(err, rgbfusion.ErrUnsupportedZone) {
		t.Errorf("Encode() with maskless zone error = %v, want %v", err, rgbfusion.ErrUnsupportedZone)
	}

	_, err = Encoder{}.Encode(io, rgbfusion.Effect{Kind: rgbfusion.EffectKind(200)})
	if !errors.Is(err, rgbfusion.ErrUnsupportedEffect) {
		t.Errorf("Encode() with unknown effect error = %v, want %v", err, rgbfusion.ErrUnsupportedEffect)
	}
}

func TestSupportsEveryEffect(t *testing.T) {
	if diff := cmp.Diff(rgbfusion.EffectKinds(), X670EF.Effects()); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}

func assertPacket(t *testing.T, want []byte, got rgbfusion.Packet) {
	t.Helper()

	if diff := cmp.Diff(rgbfusion.Packet(want), got); diff != "" {
		t.Errorf("unexpected diff (-want +got):\n%s", diff)
	}
}
