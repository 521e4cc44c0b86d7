package main

import (
	"fmt"
	"io"

	"dev.acmcsuf.com/rgbfusion"
	"dev.acmcsuf.com/rgbfusion/devices"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Describe supported devices, their zones and report layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := devices.All()
		if deviceName != "" {
			d, err := devices.Lookup(deviceName)
			if err != nil {
				return fmt.Errorf("--device: %w", err)
			}
			list = []*rgbfusion.Device{d}
		}
		return writeDeviceDocs(cmd.OutOrStdout(), list)
	},
}

type deviceDoc struct {
	Name        string                   `yaml:"name"`
	Description string                   `yaml:"description"`
	USB         string                   `yaml:"usb"`
	Zones       []zoneDoc                `yaml:"zones"`
	Effects     []effectDoc              `yaml:"effects"`
	Reports     []rgbfusion.ReportLayout `yaml:"reports"`
}

type zoneDoc struct {
	Name string `yaml:"name"`
	ID   string `yaml:"id"`
	Mask string `yaml:"mask,omitempty"`
}

type effectDoc struct {
	Name   string `yaml:"name"`
	Opcode string `yaml:"opcode"`
}

func describeDevice(d *rgbfusion.Device) deviceDoc {
	doc := deviceDoc{
		Name:        d.Name,
		Description: d.Description,
		USB:         fmt.Sprintf("%04x:%04x", d.VendorID, d.ProductID),
		Reports:     d.Encoder.Reports(),
	}

	for _, z := range d.Zones.Zones() {
		zd := zoneDoc{Name: z.Name, ID: fmt.Sprintf("0x%04x", z.ID)}
		if z.Mask != 0 {
			zd.Mask = fmt.Sprintf("0x%02x", z.Mask)
		}
		doc.Zones = append(doc.Zones, zd)
	}

	for _, k := range d.Effects() {
		op, _ := d.Encoder.Opcode(k)
		doc.Effects = append(doc.Effects, effectDoc{
			Name:   k.String(),
			Opcode: fmt.Sprintf("0x%02x", op),
		})
	}

	return doc
}

func writeDeviceDocs(w io.Writer, list []*rgbfusion.Device) error {
	docs := make([]deviceDoc, len(list))
	for i, d := range list {
		docs[i] = describeDevice(d)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return fmt.Errorf("failed to encode device description: %w", err)
	}
	return enc.Close()
}
