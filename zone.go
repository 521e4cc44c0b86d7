package rgbfusion

import (
	"fmt"
	"strings"
)

// Zone is a user-nameable LED location on a specific device. A Zone is only
// meaningful together with the Device whose registry defines it.
type Zone struct {
	// Name is the logical name, e.g. "io" or "cpu".
	Name string
	// ID is the protocol-level zone selector.
	ID uint16
	// Mask selects the LEDs of the zone for controllers that address LEDs
	// by bitmask. It is zero for controllers that don't.
	Mask uint8
}

// ZoneRegistry is an immutable, ordered table of the zones of one device.
type ZoneRegistry struct {
	zones  []Zone
	byName map[string]int
}

// NewZoneRegistry creates a registry from the given zones. The order of the
// zones is kept. It panics on duplicate names, since registries are static
// tables built at init.
func NewZoneRegistry(zones ...Zone) *ZoneRegistry {
	r := &ZoneRegistry{
		zones:  append([]Zone(nil), zones...),
		byName: make(map[string]int, len(zones)),
	}

	for i, z := range r.zones {
		key := strings.ToLower(z.Name)
		if _, dup := r.byName[key]; dup {
			panic(fmt.Sprintf("rgbfusion: duplicate zone %q", z.Name))
		}
		r.byName[key] = i
	}

	return r
}

// Lookup returns the zone with the given name, ignoring case.
func (r *ZoneRegistry) Lookup(name string) (Zone, error) {
	i, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Zone{}, fmt.Errorf("%w %q (available: %s)",
			ErrUnsupportedZone, name, strings.Join(r.Names(), ", "))
	}
	return r.zones[i], nil
}

// Zones returns all zones in registry order.
func (r *ZoneRegistry) Zones() []Zone {
	return append([]Zone(nil), r.zones...)
}

// Names returns the names of all zones in registry order.
func (r *ZoneRegistry) Names() []string {
	names := make([]string, len(r.zones))
	for i, z := range r.zones {
		names[i] = z.Name
	}
	return names
}

// Len returns the number of zones.
func (r *ZoneRegistry) Len() int {
	return len(r.zones)
}
