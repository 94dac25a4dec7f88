package field

import (
	"image/color"
	"regexp"
	"strconv"
	"strings"
)

// trailingAlpha matches a numeric value just before the closing paren of a
// functional color spec, i.e. the alpha slot of "rgba(r,g,b,a)".
var trailingAlpha = regexp.MustCompile(`(\d*\.?\d+)\s*\)\s*$`)

// SubstituteAlpha rewrites the trailing numeric alpha of a color spec. When
// the spec has no such slot (hex colors, malformed strings) the input is
// returned unchanged; callers treat that as a tolerated fallback, not an
// error.
func SubstituteAlpha(spec string, alpha float64) string {
	loc := trailingAlpha.FindStringSubmatchIndex(spec)
	if loc == nil {
		return spec
	}
	return spec[:loc[2]] + strconv.FormatFloat(alpha, 'f', -1, 64) + spec[loc[3]:]
}

// ParseColor parses "rgba(r,g,b,a)", "rgb(r,g,b)" and "#rrggbb"/"#rgb"
// specs. The alpha component is a fraction in [0,1].
func ParseColor(spec string) (color.RGBA, bool) {
	s := strings.TrimSpace(strings.ToLower(spec))
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgba(") && strings.HasSuffix(s, ")"):
		return parseChannels(s[5:len(s)-1], true)
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseChannels(s[4:len(s)-1], false)
	}
	return color.RGBA{}, false
}

func parseHex(s string) (color.RGBA, bool) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, true
}

func parseChannels(s string, hasAlpha bool) (color.RGBA, bool) {
	parts := strings.Split(s, ",")
	want := 3
	if hasAlpha {
		want = 4
	}
	if len(parts) != want {
		return color.RGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return color.RGBA{}, false
		}
		ch[i] = uint8(v)
	}
	a := 1.0
	if hasAlpha {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || v < 0 || v > 1 {
			return color.RGBA{}, false
		}
		a = v
	}
	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: uint8(a*255 + 0.5)}, true
}

// palette holds the colors resolved once per (re)configure so the render
// pass never re-parses strings.
type palette struct {
	particle color.RGBA
	line     color.RGBA
	// lineAlphaSlot records whether the configured line color carries a
	// substitutable alpha. Without one, edges reuse the base color as-is.
	lineAlphaSlot bool
	lineSpec      string
}

func newPalette(cfg Config) palette {
	pc, _ := ParseColor(cfg.ParticleColor)
	lc, _ := ParseColor(cfg.LineColor)
	return palette{
		particle:      pc,
		line:          lc,
		lineAlphaSlot: trailingAlpha.MatchString(cfg.LineColor),
		lineSpec:      cfg.LineColor,
	}
}

// edgeColor resolves the color of one edge. With an alpha slot present the
// edge opacity replaces the configured alpha; otherwise the configured color
// is used unmodified.
func (p palette) edgeColor(opacity float64) color.RGBA {
	if !p.lineAlphaSlot {
		return p.line
	}
	c, ok := ParseColor(SubstituteAlpha(p.lineSpec, opacity))
	if !ok {
		return p.line
	}
	return c
}
