package aura

import "dev.acmcsuf.com/rgbfusion"

// X670EF is the ASUS ROG Strix X670E-F Gaming WiFi.
var X670EF = &rgbfusion.Device{
	Name:        "x670ef",
	Description: "ASUS ROG Strix X670E-F",
	VendorID:    0x0b05,
	ProductID:   0x19af,
	Zones: rgbfusion.NewZoneRegistry(
		rgbfusion.Zone{Name: "io", ID: 0x00, Mask: maskIO},
		rgbfusion.Zone{Name: "header0", ID: 0x01, Mask: maskHeader0},
	),
	Encoder: Encoder{},
}
