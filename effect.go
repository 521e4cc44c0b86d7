package rgbfusion

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// EffectKind is a lighting behavior understood by the RGB controllers.
type EffectKind uint8

const (
	EffectOff EffectKind = iota
	EffectStatic
	EffectPulse
	EffectFlash
	EffectCycle
	EffectRainbow
	EffectChaseFade
	EffectChase
)

var effectNames = [...]string{
	EffectOff:       "off",
	EffectStatic:    "static",
	EffectPulse:     "pulse",
	EffectFlash:     "flash",
	EffectCycle:     "cycle",
	EffectRainbow:   "rainbow",
	EffectChaseFade: "chase-fade",
	EffectChase:     "chase",
}

// EffectKinds returns all effect kinds in declaration order.
func EffectKinds() []EffectKind {
	kinds := make([]EffectKind, len(effectNames))
	for i := range effectNames {
		kinds[i] = EffectKind(i)
	}
	return kinds
}

// String returns the CLI name of the effect kind.
func (k EffectKind) String() string {
	if int(k) < len(effectNames) {
		return effectNames[k]
	}
	return fmt.Sprintf("EffectKind(%d)", uint8(k))
}

// IsValid returns true if k is a known effect kind.
func (k EffectKind) IsValid() bool {
	return int(k) < len(effectNames)
}

// IsDynamic returns true if the effect animates and therefore takes timing
// and brightness parameters.
func (k EffectKind) IsDynamic() bool {
	return k.IsValid() && k != EffectOff && k != EffectStatic
}

// UsesColor returns true if the effect renders a user-supplied color.
// Cycle and Rainbow walk the hue spectrum on their own.
func (k EffectKind) UsesColor() bool {
	switch k {
	case EffectStatic, EffectPulse, EffectFlash, EffectChaseFade, EffectChase:
		return true
	default:
		return false
	}
}

// ParseEffectKind parses the CLI name of an effect, ignoring case.
func ParseEffectKind(s string) (EffectKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	if name == "chasefade" {
		name = "chase-fade"
	}

	for i, n := range effectNames {
		if n == name {
			return EffectKind(i), nil
		}
	}

	return 0, fmt.Errorf("%w %q", ErrUnsupportedEffect, s)
}

// Brightness is an LED brightness level in 0..255.
type Brightness uint8

// MaxBrightness is the brightest level.
const MaxBrightness Brightness = math.MaxUint8

// MaxDuration is the longest effect timing representable on the wire.
const MaxDuration = math.MaxUint16 * time.Millisecond

// DefaultDuration is used for timings that are not supplied.
const DefaultDuration = 100 * time.Millisecond

// Effect is a fully validated lighting state. Only dynamic kinds use the
// timing and brightness fields.
type Effect struct {
	Kind  EffectKind
	Color Color

	FadeIn  time.Duration
	FadeOut time.Duration
	Hold    time.Duration

	MaxBrightness Brightness
	MinBrightness Brightness
}

// OffEffect returns an effect that turns a zone off.
func OffEffect() Effect {
	return Effect{Kind: EffectOff, MaxBrightness: MaxBrightness}
}

// StaticEffect returns an effect that shows a single color.
func StaticEffect(c Color) Effect {
	return Effect{Kind: EffectStatic, Color: c, MaxBrightness: MaxBrightness}
}

// EffectRequest holds the raw, user-supplied tokens describing an effect.
// An empty string means the value was not supplied.
type EffectRequest struct {
	Effect        string
	Color         string
	FadeIn        string
	FadeOut       string
	Hold          string
	MaxBrightness string
	MinBrightness string
}

// Parse validates the request and converts it into an Effect.
func (r EffectRequest) Parse() (Effect, error) {
	if r.Effect == "" {
		return Effect{}, paramError(ErrInvalidEffectParameter, "effect", r.Effect, "an effect is required")
	}

	kind, err := ParseEffectKind(r.Effect)
	if err != nil {
		return Effect{}, err
	}

	effect := Effect{
		Kind:          kind,
		FadeIn:        DefaultDuration,
		FadeOut:       DefaultDuration,
		Hold:          DefaultDuration,
		MaxBrightness: MaxBrightness,
	}

	if !kind.IsDynamic() {
		for _, f := range r.dynamicFields() {
			if f.value != "" {
				return Effect{}, paramError(ErrInvalidEffectParameter, f.flag, f.value,
					fmt.Sprintf("not supported by the %s effect", kind))
			}
		}
	}

	switch {
	case r.Color != "":
		c, err := ParseColor(r.Color)
		if err != nil {
			return Effect{}, fmt.Errorf("--color: %w", err)
		}
		effect.Color = c
	case kind.UsesColor():
		return Effect{}, fmt.Errorf("%w: --color is required by the %s effect", ErrInvalidColor, kind)
	}

	if !kind.IsDynamic() {
		return effect, nil
	}

	durations := []struct {
		flag  string
		value string
		dst   *time.Duration
	}{
		{"fade-in-time", r.FadeIn, &effect.FadeIn},
		{"fade-out-time", r.FadeOut, &effect.FadeOut},
		{"hold-time", r.Hold, &effect.Hold},
	}
	for _, d := range durations {
		if d.value == "" {
			continue
		}
		v, err := parseDuration(d.flag, d.value)
		if err != nil {
			return Effect{}, err
		}
		*d.dst = v
	}

	if r.MaxBrightness != "" {
		b, err := parseBrightness("max-brightness", r.MaxBrightness)
		if err != nil {
			return Effect{}, err
		}
		effect.MaxBrightness = b
	}

	if r.MinBrightness != "" {
		b, err := parseBrightness("min-brightness", r.MinBrightness)
		if err != nil {
			return Effect{}, err
		}
		effect.MinBrightness = b
	}

	if effect.MinBrightness > effect.MaxBrightness {
		return Effect{}, paramError(ErrInvalidEffectParameter, "min-brightness", r.MinBrightness,
			fmt.Sprintf("must not exceed max-brightness (%d)", effect.MaxBrightness))
	}

	return effect, nil
}

type requestField struct {
	flag  string
	value string
}

func (r EffectRequest) dynamicFields() []requestField {
	return []requestField{
		{"fade-in-time", r.FadeIn},
		{"fade-out-time", r.FadeOut},
		{"hold-time", r.Hold},
		{"max-brightness", r.MaxBrightness},
		{"min-brightness", r.MinBrightness},
	}
}

// parseDuration accepts either integer milliseconds or a Go duration
// string such as "1.5s".
func parseDuration(flag, s string) (time.Duration, error) {
	var d time.Duration

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		if ms > int64(MaxDuration/time.Millisecond) {
			return 0, paramError(ErrInvalidEffectParameter, flag, s,
				fmt.Sprintf("must not exceed %d ms", MaxDuration/time.Millisecond))
		}
		d = time.Duration(ms) * time.Millisecond
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, paramError(ErrInvalidEffectParameter, flag, s, "not a duration in milliseconds")
		}
	}

	if d < 0 {
		return 0, paramError(ErrInvalidEffectParameter, flag, s, "must not be negative")
	}
	if d > MaxDuration {
		return 0, paramError(ErrInvalidEffectParameter, flag, s,
			fmt.Sprintf("must not exceed %d ms", MaxDuration/time.Millisecond))
	}

	return d, nil
}

func parseBrightness(flag, s string) (Brightness, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, paramError(ErrInvalidEffectParameter, flag, s, "must be an integer in 0..255")
	}
	return Brightness(v), nil
}

// CommandLine renders a command line that reproduces the request on the
// given device and zone. Values equal to their defaults are omitted.
func (r EffectRequest) CommandLine(program, device, zone string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s \\\n  --device %s \\\n  --zone %s \\\n  --effect %s", program, device, zone, r.Effect)

	kind, err := ParseEffectKind(r.Effect)
	if err != nil || kind == EffectOff {
		return b.String()
	}

	if r.Color != "" {
		fmt.Fprintf(&b, " \\\n  --color %s", r.Color)
	}

	if !kind.IsDynamic() {
		return b.String()
	}

	optional := []struct {
		flag  string
		value string
		def   string
	}{
		{"max-brightness", r.MaxBrightness, strconv.Itoa(int(MaxBrightness))},
		{"min-brightness", r.MinBrightness, "0"},
		{"fade-in-time", r.FadeIn, strconv.Itoa(int(DefaultDuration / time.Millisecond))},
		{"fade-out-time", r.FadeOut, strconv.Itoa(int(DefaultDuration / time.Millisecond))},
		{"hold-time", r.Hold, strconv.Itoa(int(DefaultDuration / time.Millisecond))},
	}
	for _, o := range optional {
		if o.value != "" && o.value != o.def {
			fmt.Fprintf(&b, " \\\n  --%s %s", o.flag, o.value)
		}
	}

	return b.String()
}
