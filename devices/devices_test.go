package devices

import (
	"testing"

	"dev.acmcsuf.com/rgbfusion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	d, err := Lookup("TRX40")
	require.NoError(t, err)
	assert.Equal(t, "trx40", d.Name)
	assert.Equal(t, uint16(0x048d), d.VendorID)
	assert.Equal(t, uint16(0x8297), d.ProductID)

	d, err = Lookup("x670ef")
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0b05), d.VendorID)
	assert.Equal(t, uint16(0x19af), d.ProductID)

	_, err = Lookup("z790")
	assert.ErrorIs(t, err, rgbfusion.ErrUnsupportedDevice)
	assert.ErrorContains(t, err, "x670ef, trx40")
}

func TestAll(t *testing.T) {
	list := All()
	require.Len(t, list, 2)
	assert.Equal(t, []string{"x670ef", "trx40"}, Names())

	list[0] = nil
	assert.NotNil(t, All()[0], "All must return a copy")
}

func TestDevicesAreConsistent(t *testing.T) {
	seen := make(map[[2]uint16]string)

	for _, d := range All() {
		t.Run(d.Name, func(t *testing.T) {
			id := [2]uint16{d.VendorID, d.ProductID}
			other, dup := seen[id]
			assert.False(t, dup, "USB ID shared with %s", other)
			seen[id] = d.Name

			require.NotZero(t, d.Zones.Len())
			assert.Contains(t, d.Effects(), rgbfusion.EffectOff)
			assert.Contains(t, d.Effects(), rgbfusion.EffectStatic)

			// Every zone must encode the simplest effects.
			for _, z := range d.Zones.Zones() {
				for _, e := range []rgbfusion.Effect{
					rgbfusion.OffEffect(),
					rgbfusion.StaticEffect(rgbfusion.Color{R: 0xff}),
				} {
					packets, err := d.Encoder.Encode(z, e)
					require.NoError(t, err, "zone %s, effect %s", z.Name, e.Kind)
					require.NotEmpty(t, packets)

					for _, p := range packets {
						assert.Equal(t, d.Encoder.Reports()[0].Size, len(p))
					}
				}
			}
		})
	}
}
