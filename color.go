package rgbfusion

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Black is the zero color. Effects that do not use a color encode it.
var Black = Color{}

// ColorFromUint converts a 0xRRGGBB integer to a Color. Bits above the
// lower 24 are ignored.
func ColorFromUint(v uint32) Color {
	return Color{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// ToUint returns the color as a 0xRRGGBB integer.
func (c Color) ToUint() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// String formats the color as 0xrrggbb, which ParseColor accepts.
func (c Color) String() string {
	return fmt.Sprintf("0x%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColor parses a hexadecimal color literal. The canonical form is
// 0xRRGGBB; #RRGGBB and a bare RRGGBB are accepted as well.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(hex, "0x"), strings.HasPrefix(hex, "0X"):
		hex = hex[2:]
	case strings.HasPrefix(hex, "#"):
		hex = hex[1:]
	}

	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w %q: expected format 0xRRGGBB", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w %q: not a hexadecimal number", ErrInvalidColor, s)
	}

	return ColorFromUint(uint32(v)), nil
}
