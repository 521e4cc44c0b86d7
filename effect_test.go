package rgbfusion

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestParseEffectKind(t *testing.T) {
	for _, k := range EffectKinds() {
		got, err := ParseEffectKind(strings.ToUpper(k.String()))
		if err != nil {
			t.Errorf("ParseEffectKind(%q) unexpected error: %v", k, err)
			continue
		}
		if got != k {
			t.Errorf("ParseEffectKind(%q) = %v, want %v", k, got, k)
		}
	}

	for _, alias := range []string{"chasefade", "chase_fade", "Chase-Fade"} {
		if got, err := ParseEffectKind(alias); err != nil || got != EffectChaseFade {
			t.Errorf("ParseEffectKind(%q) = %v, %v; want chase-fade", alias, got, err)
		}
	}

	if _, err := ParseEffectKind("strobe"); !errors.Is(err, ErrUnsupportedEffect) {
		t.Errorf("ParseEffectKind(strobe) error = %v, want %v", err, ErrUnsupportedEffect)
	}
}

func TestEffectKindProperties(t *testing.T) {
	tests := []struct {
		kind      EffectKind
		dynamic   bool
		usesColor bool
	}{
		{EffectOff, false, false},
		{EffectStatic, false, true},
		{EffectPulse, true, true},
		{EffectFlash, true, true},
		{EffectCycle, true, false},
		{EffectRainbow, true, false},
		{EffectChaseFade, true, true},
		{EffectChase, true, true},
		{EffectKind(42), false, false},
	}

	for _, test := range tests {
		t.Run(test.kind.String(), func(t *testing.T) {
			if got := test.kind.IsDynamic(); got != test.dynamic {
				t.Errorf("IsDynamic() = %v, want %v", got, test.dynamic)
			}
			if got := test.kind.UsesColor(); got != test.usesColor {
				t.Errorf("UsesColor() = %v, want %v", got, test.usesColor)
			}
		})
	}
}

func TestEffectRequestParse(t *testing.T) {
	tests := []struct {
		name string
		req  EffectRequest
		want Effect
		err  error
		flag string
	}{
		{
			name: "static",
			req:  EffectRequest{Effect: "static", Color: "0xff0000"},
			want: Effect{
				Kind:          EffectStatic,
				Color:         Color{R: 0xff},
				FadeIn:        DefaultDuration,
				FadeOut:       DefaultDuration,
				Hold:          DefaultDuration,
				MaxBrightness: MaxBrightness,
			},
		},
		{
			name: "pulse",
			req: EffectRequest{
				Effect:        "pulse",
				Color:         "0x00ff00",
				FadeIn:        "500",
				FadeOut:       "500",
				Hold:          "1000",
				MaxBrightness: "255",
				MinBrightness: "10",
			},
			want: Effect{
				Kind:          EffectPulse,
				Color:         Color{G: 0xff},
				FadeIn:        500 * time.Millisecond,
				FadeOut:       500 * time.Millisecond,
				Hold:          time.Second,
				MaxBrightness: 255,
				MinBrightness: 10,
			},
		},
		{
			name: "duration strings",
			req:  EffectRequest{Effect: "flash", Color: "0x0000ff", FadeIn: "1.5s", Hold: "250ms"},
			want: Effect{
				Kind:          EffectFlash,
				Color:         Color{B: 0xff},
				FadeIn:        1500 * time.Millisecond,
				FadeOut:       DefaultDuration,
				Hold:          250 * time.Millisecond,
				MaxBrightness: MaxBrightness,
			},
		},
		{
			name: "rainbow without color",
			req:  EffectRequest{Effect: "rainbow"},
			want: Effect{
				Kind:          EffectRainbow,
				FadeIn:        DefaultDuration,
				FadeOut:       DefaultDuration,
				Hold:          DefaultDuration,
				MaxBrightness: MaxBrightness,
			},
		},
		{
			name: "off without color",
			req:  EffectRequest{Effect: "off"},
			want: Effect{
				Kind:          EffectOff,
				FadeIn:        DefaultDuration,
				FadeOut:       DefaultDuration,
				Hold:          DefaultDuration,
				MaxBrightness: MaxBrightness,
			},
		},
		{
			name: "max duration",
			req:  EffectRequest{Effect: "cycle", Hold: "65535"},
			want: Effect{
				Kind:          EffectCycle,
				FadeIn:        DefaultDuration,
				FadeOut:       DefaultDuration,
				Hold:          MaxDuration,
				MaxBrightness: MaxBrightness,
			},
		},
		{
			name: "missing effect",
			req:  EffectRequest{Color: "0xffffff"},
			err:  ErrInvalidEffectParameter,
			flag: "--effect",
		},
		{
			name: "unknown effect",
			req:  EffectRequest{Effect: "strobe", Color: "0xffffff"},
			err:  ErrUnsupportedEffect,
		},
		{
			name: "static with fade",
			req:  EffectRequest{Effect: "static", Color: "0xffffff", FadeIn: "100"},
			err:  ErrInvalidEffectParameter,
			flag: "--fade-in-time",
		},
		{
			name: "static with brightness",
			req:  EffectRequest{Effect: "static", Color: "0xffffff", MaxBrightness: "100"},
			err:  ErrInvalidEffectParameter,
			flag: "--max-brightness",
		},
		{
			name: "off with hold",
			req:  EffectRequest{Effect: "off", Hold: "100"},
			err:  ErrInvalidEffectParameter,
			flag: "--hold-time",
		},
		{
			name: "min above max",
			req:  EffectRequest{Effect: "pulse", Color: "0xffffff", MaxBrightness: "10", MinBrightness: "20"},
			err:  ErrInvalidEffectParameter,
			flag: "--min-brightness",
		},
		{
			name: "brightness out of range",
			req:  EffectRequest{Effect: "pulse", Color: "0xffffff", MaxBrightness: "256"},
			err:  ErrInvalidEffectParameter,
			flag: "--max-brightness",
		},
		{
			name: "duration too long",
			req:  EffectRequest{Effect: "pulse", Color: "0xffffff", FadeOut: "65536"},
			err:  ErrInvalidEffectParameter,
			flag: "--fade-out-time",
		},
		{
			name: "duration string too long",
			req:  EffectRequest{Effect: "pulse", Color: "0xffffff", FadeOut: "2m"},
			err:  ErrInvalidEffectParameter,
			flag: "--fade-out-time",
		},
		{
			name: "negative duration",
			req:  EffectRequest{Effect: "pulse", Color: "0xffffff", Hold: "-1"},
			err:  ErrInvalidEffectParameter,
			flag: "--hold-time",
		},
		{
			name: "malformed duration",
			req:  EffectRequest{Effect: "pulse", Color: "0xffffff", Hold: "soon"},
			err:  ErrInvalidEffectParameter,
			flag: "--hold-time",
		},
		{
			name: "missing color",
			req:  EffectRequest{Effect: "pulse"},
			err:  ErrInvalidColor,
			flag: "--color",
		},
		{
			name: "malformed color",
			req:  EffectRequest{Effect: "static", Color: "0xzzzzzz"},
			err:  ErrInvalidColor,
			flag: "--color",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := test.req.Parse()
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Parse() error = %v, want %v", err, test.err)
				}
				if test.flag != "" && !strings.Contains(err.Error(), test.flag) {
					t.Errorf("Parse() error %q does not name %s", err, test.flag)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEffectRequestCommandLine(t *testing.T) {
	tests := []struct {
		name string
		req  EffectRequest
		want string
	}{
		{
			name: "off",
			req:  EffectRequest{Effect: "off", Color: "0xffffff"},
			want: "rgbfusion \\\n  --device trx40 \\\n  --zone io \\\n  --effect off",
		},
		{
			name: "static",
			req:  EffectRequest{Effect: "static", Color: "0xff0000"},
			want: "rgbfusion \\\n  --device trx40 \\\n  --zone io \\\n  --effect static \\\n  --color 0xff0000",
		},
		{
			name: "pulse omits defaults",
			req: EffectRequest{
				Effect:        "pulse",
				Color:         "0x00ff00",
				FadeIn:        "500",
				FadeOut:       "100",
				MaxBrightness: "255",
				MinBrightness: "10",
			},
			want: "rgbfusion \\\n  --device trx40 \\\n  --zone io \\\n  --effect pulse \\\n  --color 0x00ff00" +
				" \\\n  --min-brightness 10 \\\n  --fade-in-time 500",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := test.req.CommandLine("rgbfusion", "trx40", "io")
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected diff (-want +got):\n%s", diff)
			}
		})
	}
}
