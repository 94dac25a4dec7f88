package field

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		spec string
		want color.RGBA
		ok   bool
	}{
		{"rgba(0, 180, 216, 0.5)", color.RGBA{0, 180, 216, 128}, true},
		{"rgba(255,255,255,1)", color.RGBA{255, 255, 255, 255}, true},
		{"rgb(10, 20, 30)", color.RGBA{10, 20, 30, 255}, true},
		{"#ffffff", color.RGBA{255, 255, 255, 255}, true},
		{"#abc", color.RGBA{0xaa, 0xbb, 0xcc, 255}, true},
		{"#ABCDEF", color.RGBA{0xab, 0xcd, 0xef, 255}, true},
		{"rgba(300, 0, 0, 1)", color.RGBA{}, false},
		{"rgba(0, 0, 0, 2)", color.RGBA{}, false},
		{"rgba(0, 0, 0)", color.RGBA{}, false},
		{"#zzzzzz", color.RGBA{}, false},
		{"blue", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.spec)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.spec, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSubstituteAlpha(t *testing.T) {
	tests := []struct {
		spec  string
		alpha float64
		want  string
	}{
		{"rgba(0, 180, 216, 0.2)", 0.5, "rgba(0, 180, 216, 0.5)"},
		{"rgba(0,180,216,1)", 0.25, "rgba(0,180,216,0.25)"},
		// No alpha slot: the original string comes back unchanged.
		{"#ffffff", 0.5, "#ffffff"},
		{"blue", 0.5, "blue"},
		{"", 0.5, ""},
	}
	for _, tt := range tests {
		if got := SubstituteAlpha(tt.spec, tt.alpha); got != tt.want {
			t.Errorf("SubstituteAlpha(%q, %v) = %q, want %q", tt.spec, tt.alpha, got, tt.want)
		}
	}
}

func TestEdgeColorOverridesAlpha(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineColor = "rgba(100, 100, 100, 0.2)"
	pal := newPalette(cfg)

	got := pal.edgeColor(0.5)
	want := color.RGBA{100, 100, 100, 128}
	if got != want {
		t.Errorf("edgeColor(0.5) = %v, want %v", got, want)
	}
}

func TestEdgeColorFallbackWithoutAlphaSlot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LineColor = "#336699"
	pal := newPalette(cfg)

	want := color.RGBA{0x33, 0x66, 0x99, 255}
	if got := pal.edgeColor(0.1); got != want {
		t.Errorf("edgeColor = %v, want configured color %v", got, want)
	}
}

func TestEdgeColorFallbackOnUnparseableSubstitution(t *testing.T) {
	// "rgb(...)" has a trailing number (the blue channel) so substitution
	// fires, but the rewritten string no longer parses; the configured
	// color must be used unmodified.
	cfg := DefaultConfig()
	cfg.LineColor = "rgb(10, 20, 30)"
	pal := newPalette(cfg)

	want := color.RGBA{10, 20, 30, 255}
	if got := pal.edgeColor(0.5); got != want {
		t.Errorf("edgeColor = %v, want base color %v", got, want)
	}
}
