package fusion2

import "dev.acmcsuf.com/rgbfusion"

// TRX40 is the Gigabyte TRX40 Aorus Master.
var TRX40 = &rgbfusion.Device{
	Name:        "trx40",
	Description: "Gigabyte TRX40 Aorus Master",
	VendorID:    0x048d,
	ProductID:   0x8297,
	Zones: rgbfusion.NewZoneRegistry(
		rgbfusion.Zone{Name: "io", ID: 0x2001},
		rgbfusion.Zone{Name: "cpu", ID: 0x2102},
		rgbfusion.Zone{Name: "audio", ID: 0x2308},
		rgbfusion.Zone{Name: "chipset", ID: 0x2410},
		rgbfusion.Zone{Name: "header0", ID: 0x2520},
		rgbfusion.Zone{Name: "header1", ID: 0x2640},
	),
	Encoder: Encoder{},
}
